package contentstate

import (
	"context"
	"errors"
	"fmt"

	"content-state/core/reconcile"
	"content-state/feature/contentstate/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reads and writes consumption rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on top of db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the consumption table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.UserEntityConsumption{})
}

// Find returns the user's rows for the given content ids. Missing ids are simply absent.
func (r *Repository) Find(ctx context.Context, userID string, contentIDs []string) ([]models.UserEntityConsumption, error) {
	var rows []models.UserEntityConsumption
	err := r.db.WithContext(ctx).
		Where("userid = ? AND resourceid IN ?", userID, contentIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query consumption records: %w", err)
	}
	return rows, nil
}

// FindByUser returns every row of a user ordered by content id.
func (r *Repository) FindByUser(ctx context.Context, userID string) ([]models.UserEntityConsumption, error) {
	var rows []models.UserEntityConsumption
	err := r.db.WithContext(ctx).
		Where("userid = ?", userID).
		Order("resourceid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query consumption records: %w", err)
	}
	return rows, nil
}

// Get returns the row for (userID, contentID), or nil when none is stored.
func (r *Repository) Get(ctx context.Context, userID, contentID string) (*models.UserEntityConsumption, error) {
	var row models.UserEntityConsumption
	err := r.db.WithContext(ctx).
		Where("userid = ? AND resourceid = ?", userID, contentID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consumption record: %w", err)
	}
	return &row, nil
}

// Upsert inserts the column map, or updates every known non-key column it carries when the key
// exists. Columns absent from the map keep their stored value.
func (r *Repository) Upsert(ctx context.Context, columns map[string]any) error {
	if columns[reconcile.ColumnUserID] == nil || columns[reconcile.ColumnResourceID] == nil {
		return errors.New("consumption record key is incomplete")
	}

	updates := make([]string, 0, len(columns))
	for _, col := range reconcile.StorageColumns() {
		if col == reconcile.ColumnUserID || col == reconcile.ColumnResourceID {
			continue
		}
		if _, ok := columns[col]; ok {
			updates = append(updates, col)
		}
	}

	err := r.db.WithContext(ctx).
		Model(&models.UserEntityConsumption{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: reconcile.ColumnUserID}, {Name: reconcile.ColumnResourceID}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(columns).Error
	if err != nil {
		return fmt.Errorf("failed to upsert consumption record: %w", err)
	}
	return nil
}
