package models

import (
	"time"

	"content-state/core/reconcile"
)

// TableName is the consumption table.
const TableName = "user_entity_consumption"

// UserEntityConsumption represents one row of the consumption table.
type UserEntityConsumption struct {
	UserID               string     `gorm:"column:userid;primaryKey;size:64"`
	ResourceID           string     `gorm:"column:resourceid;primaryKey;size:64"`
	LastAccessTime       *time.Time `gorm:"column:last_access_time"`
	LastCompletedTime    *time.Time `gorm:"column:last_completed_time"`
	LastUpdatedTime      *time.Time `gorm:"column:last_updated_time"`
	Progress             int        `gorm:"column:progress"`
	ProgressDetails      *string    `gorm:"column:progressdetails;type:text"`
	Status               int        `gorm:"column:status"`
	CompletionPercentage *float64   `gorm:"column:completion_percentage"`

	// Legacy text timestamps from before the typed columns existed. Read only.
	OldLastAccessTime    *string `gorm:"column:old_last_access_time;size:64"`
	OldLastCompletedTime *string `gorm:"column:old_last_completed_time;size:64"`
}

// TableName overrides gorm's pluralized default.
func (UserEntityConsumption) TableName() string {
	return TableName
}

// ToRecord converts the row into the canonical record used by the merge engine.
func (m UserEntityConsumption) ToRecord() reconcile.ConsumptionRecord {
	r := reconcile.ConsumptionRecord{
		UserID:               m.UserID,
		ContentID:            m.ResourceID,
		Status:               reconcile.Status(m.Status),
		Progress:             m.Progress,
		LastAccessTime:       utc(m.LastAccessTime),
		LastCompletedTime:    utc(m.LastCompletedTime),
		CompletionPercentage: m.CompletionPercentage,
		ProgressDetails:      m.ProgressDetails,
	}
	if m.LastUpdatedTime != nil {
		r.LastUpdatedTime = m.LastUpdatedTime.UTC()
	}
	return r
}

// MergeBase is ToRecord with the legacy text columns standing in for unset access and completion
// times, the stored state an update is merged onto. Unparseable legacy values count as unset.
func (m UserEntityConsumption) MergeBase() reconcile.ConsumptionRecord {
	r := m.ToRecord()
	if r.LastAccessTime == nil {
		r.LastAccessTime = legacyTime(m.OldLastAccessTime)
	}
	if r.LastCompletedTime == nil {
		r.LastCompletedTime = legacyTime(m.OldLastCompletedTime)
	}
	return r
}

func legacyTime(text *string) *time.Time {
	if text == nil {
		return nil
	}
	t, err := reconcile.ParseTimestamp(*text)
	if err != nil {
		return nil
	}
	return t
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
