// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (S3 compatible) behind a small Client interface. The content-state
// service uses it to write per-user consumption exports; the integrity check uses it to verify the
// export bucket is reachable.
//
// The Client interface keeps storage interactions mockable in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
