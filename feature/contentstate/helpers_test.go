package contentstate_test

import (
	"testing"

	"content-state/core/database"
	"content-state/core/reconcile"
	"content-state/feature/contentstate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func defaultPolicy() reconcile.Config {
	return reconcile.Config{
		AllowedReadFields: []string{
			"userId", "contentId", "status", "progress", "lastAccessTime", "lastCompletedTime",
			"lastUpdatedTime", "completionPercentage", "progressDetails",
		},
		RequiredUpdateFields: []string{"contentId", "status"},
		SerializeWrites:      true,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, contentstate.NewRepository(db).Migrate())
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func updateBody(contents ...any) map[string]any {
	return map[string]any{"request": map[string]any{"contents": contents}}
}

func readBody(ids []any, fields []any) map[string]any {
	req := map[string]any{"contentIds": ids}
	if fields != nil {
		req["fields"] = fields
	}
	return map[string]any{"request": req}
}
