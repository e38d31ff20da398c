package models_test

import (
	"testing"
	"time"

	"content-state/core/reconcile"
	"content-state/feature/contentstate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEntityConsumption_ToRecord(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	access := time.Date(2024, 3, 1, 10, 15, 30, 0, loc)
	details := `{"page":3}`

	row := models.UserEntityConsumption{
		UserID:          "u1",
		ResourceID:      "do_1",
		LastAccessTime:  &access,
		Progress:        40,
		ProgressDetails: &details,
		Status:          1,
	}

	rec := row.ToRecord()
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "do_1", rec.ContentID)
	assert.Equal(t, reconcile.StatusInProgress, rec.Status)
	assert.Equal(t, time.UTC, rec.LastAccessTime.Location())
	assert.True(t, rec.LastAccessTime.Equal(access))
	assert.Nil(t, rec.LastCompletedTime)
	assert.True(t, rec.LastUpdatedTime.IsZero())
	assert.Equal(t, &details, rec.ProgressDetails)
}

func TestUserEntityConsumption_MergeBase(t *testing.T) {
	t.Run("Legacy Fallback", func(t *testing.T) {
		oldAccess := "2023-06-01 08:00:00:120+0530"
		oldCompleted := "2023-06-02 09:30:00:000+0000"
		row := models.UserEntityConsumption{
			UserID:               "u1",
			ResourceID:           "do_1",
			Status:               2,
			OldLastAccessTime:    &oldAccess,
			OldLastCompletedTime: &oldCompleted,
		}

		rec := row.MergeBase()
		require.NotNil(t, rec.LastAccessTime)
		require.NotNil(t, rec.LastCompletedTime)
		assert.Equal(t, time.Date(2023, 6, 1, 2, 30, 0, 120*int(time.Millisecond), time.UTC), *rec.LastAccessTime)
		assert.Equal(t, time.Date(2023, 6, 2, 9, 30, 0, 0, time.UTC), *rec.LastCompletedTime)

		assert.Nil(t, row.ToRecord().LastAccessTime, "reads do not surface legacy columns")
	})

	t.Run("Typed Columns Win", func(t *testing.T) {
		access := time.Date(2024, 3, 1, 4, 45, 30, 0, time.UTC)
		oldAccess := "2023-06-01 08:00:00:000+0000"
		row := models.UserEntityConsumption{UserID: "u1", ResourceID: "do_1", LastAccessTime: &access, OldLastAccessTime: &oldAccess}

		rec := row.MergeBase()
		assert.Equal(t, access, *rec.LastAccessTime)
		assert.Nil(t, rec.LastCompletedTime)
	})

	t.Run("Unparseable Legacy", func(t *testing.T) {
		garbage := "last tuesday"
		row := models.UserEntityConsumption{UserID: "u1", ResourceID: "do_1", OldLastAccessTime: &garbage}

		assert.Nil(t, row.MergeBase().LastAccessTime)
	})

	assert.Equal(t, models.TableName, models.UserEntityConsumption{}.TableName())
}
