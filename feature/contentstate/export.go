package contentstate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"content-state/core/reconcile"
	"content-state/core/storage"
	"content-state/feature/contentstate/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Exporter writes a user's consumption records to object storage.
type Exporter struct {
	repo   *Repository
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewExporter creates an exporter writing under bucket/prefix.
func NewExporter(repo *Repository, client storage.Client, bucket, prefix string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{repo: repo, client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// ObjectKey returns the object key a user's export is written to.
func (e *Exporter) ObjectKey(userID string) string {
	return path.Join(e.prefix, userID+".json")
}

// Export writes every record of userID as one JSON document and returns the object key and the
// number of records written.
func (e *Exporter) Export(ctx context.Context, userID string) (string, int, error) {
	rows, err := e.repo.FindByUser(ctx, userID)
	if err != nil {
		return "", 0, err
	}

	doc := models.Export{
		UserID:      userID,
		ExportedAt:  reconcile.FormatTimestamp(time.Now()),
		ContentList: make([]map[string]any, 0, len(rows)),
	}
	for _, row := range rows {
		doc.ContentList = append(doc.ContentList, Project(row.ToRecord(), nil))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode export: %w", err)
	}

	key := e.ObjectKey(userID)
	_, err = e.client.PutObject(ctx, e.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload export %s: %w", key, err)
	}

	e.logger.Info("Consumption export written",
		zap.String("user_id", userID),
		zap.String("bucket", e.bucket),
		zap.String("key", key),
		zap.Int("records", len(rows)),
	)
	return key, len(rows), nil
}
