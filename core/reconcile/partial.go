package reconcile

import (
	"encoding/json"

	"content-state/core/utils"
)

// PartialFromMap converts a decoded JSON update entry into a PartialRecord.
// Numeric fields accept any JSON number or numeric string; unknown keys are ignored.
func PartialFromMap(entry map[string]any) PartialRecord {
	p := PartialRecord{
		ContentID:         stringValue(entry[FieldContentID]),
		LastAccessTime:    stringValue(entry[FieldLastAccessTime]),
		LastCompletedTime: stringValue(entry[FieldLastCompletedTime]),
	}
	if v, ok := entry[FieldStatus]; ok && v != nil {
		s := utils.ToInt(v)
		p.Status = &s
	}
	if v, ok := entry[FieldProgress]; ok && v != nil {
		pr := utils.ToInt(v)
		p.Progress = &pr
	}
	if v, ok := entry[FieldCompletionPercentage]; ok && v != nil {
		f := utils.ToFloat(v)
		p.CompletionPercentage = &f
	}
	if v, ok := entry[FieldProgressDetails]; ok && v != nil {
		if raw, err := json.Marshal(v); err == nil {
			p.ProgressDetails = raw
		}
	}
	return p
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return utils.ToString(v)
}

// RecordFromMap builds a stored record from a map keyed by external field names, such as a record
// previously rendered by a read. Unparseable timestamps are an error here since the input is
// expected to be canonical.
func RecordFromMap(entry map[string]any) (ConsumptionRecord, error) {
	p := PartialFromMap(entry)
	r := ConsumptionRecord{
		UserID:               stringValue(entry[FieldUserID]),
		ContentID:            p.ContentID,
		CompletionPercentage: p.CompletionPercentage,
	}
	if p.Status != nil {
		r.Status = normalizeStatus(*p.Status)
	}
	if p.Progress != nil {
		r.Progress = clampProgress(*p.Progress)
	}
	if len(p.ProgressDetails) > 0 {
		s := string(p.ProgressDetails)
		r.ProgressDetails = &s
	}

	var err error
	if r.LastAccessTime, err = ParseTimestamp(p.LastAccessTime); err != nil {
		return ConsumptionRecord{}, err
	}
	if r.LastCompletedTime, err = ParseTimestamp(p.LastCompletedTime); err != nil {
		return ConsumptionRecord{}, err
	}
	updated, err := ParseTimestamp(stringValue(entry[FieldLastUpdatedTime]))
	if err != nil {
		return ConsumptionRecord{}, err
	}
	if updated != nil {
		r.LastUpdatedTime = *updated
	}
	return r, nil
}
