package integrity

import (
	"context"

	"content-state/core/storage"
	"content-state/feature/contentstate/models"
	"content-state/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		db:     db,
	}
}

// CheckSchema compares the consumption table with its model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.UserEntityConsumption{})
}

// CheckBucket reports whether the export bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the export bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	return checks.FixBucket(ctx, s.client, s.bucket, s.region, s.logger)
}
