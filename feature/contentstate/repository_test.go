package contentstate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-state/core/reconcile"
	"content-state/feature/contentstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := contentstate.NewRepository(setupTestDB(t))
	now := time.Date(2024, 3, 1, 4, 45, 30, 7_000_000, time.UTC)

	row, err := repo.Get(ctx, "u1", "do_1")
	require.NoError(t, err)
	assert.Nil(t, row)

	err = repo.Upsert(ctx, map[string]any{
		reconcile.ColumnUserID:          "u1",
		reconcile.ColumnResourceID:      "do_1",
		reconcile.ColumnStatus:          1,
		reconcile.ColumnProgress:        40,
		reconcile.ColumnLastAccessTime:  now,
		reconcile.ColumnLastUpdatedTime: now,
		reconcile.ColumnProgressDetails: `{"page":3}`,
	})
	require.NoError(t, err)

	// Second write updates only the columns it carries.
	err = repo.Upsert(ctx, map[string]any{
		reconcile.ColumnUserID:     "u1",
		reconcile.ColumnResourceID: "do_1",
		reconcile.ColumnStatus:     2,
		reconcile.ColumnProgress:   100,
	})
	require.NoError(t, err)

	row, err = repo.Get(ctx, "u1", "do_1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.Status)
	assert.Equal(t, 100, row.Progress)
	require.NotNil(t, row.ProgressDetails)
	assert.Equal(t, `{"page":3}`, *row.ProgressDetails)
	require.NotNil(t, row.LastAccessTime)
	assert.True(t, row.LastAccessTime.Equal(now))
}

func TestRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := contentstate.NewRepository(setupTestDB(t))

	for _, key := range [][2]string{{"u1", "do_1"}, {"u1", "do_2"}, {"u2", "do_1"}} {
		require.NoError(t, repo.Upsert(ctx, map[string]any{
			reconcile.ColumnUserID:     key[0],
			reconcile.ColumnResourceID: key[1],
			reconcile.ColumnStatus:     1,
		}))
	}

	rows, err := repo.Find(ctx, "u1", []string{"do_1", "do_3"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "do_1", rows[0].ResourceID)

	rows, err = repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "do_1", rows[0].ResourceID)
	assert.Equal(t, "do_2", rows[1].ResourceID)
}

func TestRepository_UpsertRequiresKey(t *testing.T) {
	repo := contentstate.NewRepository(setupTestDB(t))

	err := repo.Upsert(context.Background(), map[string]any{reconcile.ColumnUserID: "u1"})
	assert.Error(t, err)
}

func TestRepository_GetError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := contentstate.NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `user_entity_consumption`").
		WillReturnError(errors.New("connection refused"))

	row, err := repo.Get(context.Background(), "u1", "do_1")
	assert.Nil(t, row)
	assert.ErrorContains(t, err, "failed to fetch consumption record")
	assert.NoError(t, mock.ExpectationsWereMet())
}
