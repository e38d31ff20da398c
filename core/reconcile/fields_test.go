package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStorageName(t *testing.T) {
	tests := map[string]string{
		"userId":               "userid",
		"contentId":            "resourceid",
		"lastAccessTime":       "last_access_time",
		"lastCompletedTime":    "last_completed_time",
		"lastUpdatedTime":      "last_updated_time",
		"progress":             "progress",
		"progressDetails":      "progressdetails",
		"status":               "status",
		"completionPercentage": "completion_percentage",
		"batchId":              "batchId",
	}
	for external, storage := range tests {
		assert.Equal(t, storage, ToStorageName(external), external)
	}
}

func TestToStorageColumns(t *testing.T) {
	in := map[string]any{"contentId": "do_1", "status": 2, "extra": true}
	out := ToStorageColumns(in)

	assert.Equal(t, map[string]any{"resourceid": "do_1", "status": 2, "extra": true}, out)
	assert.Contains(t, in, "contentId", "input must not be mutated")
}

func TestStorageColumns(t *testing.T) {
	assert.Equal(t, []string{
		"userid", "resourceid", "last_access_time", "last_completed_time", "last_updated_time",
		"progress", "progressdetails", "status", "completion_percentage",
	}, StorageColumns())
}
