package reconcile

import (
	"encoding/json"
	"time"
)

// Status is the consumption state of a piece of content.
type Status int

const (
	// StatusNotStarted means the user has not opened the content yet.
	StatusNotStarted Status = 0
	// StatusInProgress means the user has started but not finished the content.
	StatusInProgress Status = 1
	// StatusCompleted means the user has finished the content. It is terminal.
	StatusCompleted Status = 2
)

// normalizeStatus clamps an arbitrary client value into the known range.
func normalizeStatus(v int) Status {
	switch {
	case v <= 0:
		return StatusNotStarted
	case v >= int(StatusCompleted):
		return StatusCompleted
	default:
		return Status(v)
	}
}

// ConsumptionRecord is the canonical, persisted consumption state for a (user, content) pair.
type ConsumptionRecord struct {
	// UserID identifies the user. It is always taken from the resolved identity, never the payload.
	UserID string
	// ContentID identifies the content. Together with UserID it forms the record key.
	ContentID string
	// Status is monotonically non-decreasing across merges.
	Status Status
	// Progress is a percentage in 0..100 and never decreases across merges.
	Progress int
	// LastAccessTime is the most recent touch. Nil only transiently during a merge.
	LastAccessTime *time.Time
	// LastCompletedTime is nil unless Status has reached StatusCompleted.
	LastCompletedTime *time.Time
	// LastUpdatedTime is the write-audit time, refreshed on every merge.
	LastUpdatedTime time.Time
	// CompletionPercentage is caller supplied and passed through unchanged.
	CompletionPercentage *float64
	// ProgressDetails is an opaque payload kept in its serialized JSON form.
	ProgressDetails *string
}

// Fields returns the record as a map keyed by external field names.
// Absent optional values are omitted.
func (r ConsumptionRecord) Fields() map[string]any {
	out := map[string]any{
		FieldUserID:          r.UserID,
		FieldContentID:       r.ContentID,
		FieldStatus:          int(r.Status),
		FieldProgress:        r.Progress,
		FieldLastUpdatedTime: r.LastUpdatedTime,
	}
	if r.LastAccessTime != nil {
		out[FieldLastAccessTime] = *r.LastAccessTime
	}
	if r.LastCompletedTime != nil {
		out[FieldLastCompletedTime] = *r.LastCompletedTime
	}
	if r.CompletionPercentage != nil {
		out[FieldCompletionPercentage] = *r.CompletionPercentage
	}
	if r.ProgressDetails != nil {
		out[FieldProgressDetails] = *r.ProgressDetails
	}
	return out
}

// PartialRecord is one incoming update entry. Every field except ContentID is optional.
// Timestamps are kept as submitted text and parsed by the engine.
type PartialRecord struct {
	ContentID            string
	Status               *int
	Progress             *int
	LastAccessTime       string
	LastCompletedTime    string
	CompletionPercentage *float64
	ProgressDetails      json.RawMessage
}
