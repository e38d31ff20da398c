package reconcile

// External field names, as used in requests and inside the merge.
const (
	FieldUserID               = "userId"
	FieldContentID            = "contentId"
	FieldStatus               = "status"
	FieldProgress             = "progress"
	FieldLastAccessTime       = "lastAccessTime"
	FieldLastCompletedTime    = "lastCompletedTime"
	FieldLastUpdatedTime      = "lastUpdatedTime"
	FieldCompletionPercentage = "completionPercentage"
	FieldProgressDetails      = "progressDetails"
)

// Storage column names of the consumption table.
const (
	ColumnUserID               = "userid"
	ColumnResourceID           = "resourceid"
	ColumnStatus               = "status"
	ColumnProgress             = "progress"
	ColumnLastAccessTime       = "last_access_time"
	ColumnLastCompletedTime    = "last_completed_time"
	ColumnLastUpdatedTime      = "last_updated_time"
	ColumnCompletionPercentage = "completion_percentage"
	ColumnProgressDetails      = "progressdetails"
)

// fieldMapping is ordered so callers that need stable column lists can range over it.
var fieldMapping = [...]struct{ external, storage string }{
	{FieldUserID, ColumnUserID},
	{FieldContentID, ColumnResourceID},
	{FieldLastAccessTime, ColumnLastAccessTime},
	{FieldLastCompletedTime, ColumnLastCompletedTime},
	{FieldLastUpdatedTime, ColumnLastUpdatedTime},
	{FieldProgress, ColumnProgress},
	{FieldProgressDetails, ColumnProgressDetails},
	{FieldStatus, ColumnStatus},
	{FieldCompletionPercentage, ColumnCompletionPercentage},
}

// ToStorageName maps an external field name to its storage column.
// Unknown names are returned unchanged.
func ToStorageName(external string) string {
	for _, m := range fieldMapping {
		if m.external == external {
			return m.storage
		}
	}
	return external
}

// ToStorageColumns renames every key of an externally named field map.
func ToStorageColumns(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[ToStorageName(k)] = v
	}
	return out
}

// StorageColumns returns every known storage column in mapping order.
func StorageColumns() []string {
	cols := make([]string, 0, len(fieldMapping))
	for _, m := range fieldMapping {
		cols = append(cols, m.storage)
	}
	return cols
}
