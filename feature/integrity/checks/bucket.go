package checks

import (
	"context"
	"fmt"

	"content-state/core/storage"

	"go.uber.org/zap"
)

// BucketReport is the result of the export bucket check.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
}

// CheckBucket reports whether the export bucket is reachable and present.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	return &BucketReport{Bucket: bucket, Exists: exists}, nil
}

// FixBucket creates the export bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	logger.Info("Creating export bucket", zap.String("bucket", bucket))
	return storage.EnsureBucket(ctx, client, bucket, region)
}
