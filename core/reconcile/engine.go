package reconcile

import (
	"bytes"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const maxProgress = 100

// Engine merges incoming partial updates into stored consumption records.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a merge engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Merge combines incoming with existing (nil on first write for the key) into the record to persist.
// The result is a deterministic function of (incoming, existing, now); userID always overrides
// whatever identity the payload carried and now always becomes LastUpdatedTime.
func (e *Engine) Merge(incoming PartialRecord, existing *ConsumptionRecord, userID string, now time.Time) ConsumptionRecord {
	now = now.UTC()

	inputStatus := StatusNotStarted
	if incoming.Status != nil {
		inputStatus = normalizeStatus(*incoming.Status)
	}
	inputProgress := 0
	if incoming.Progress != nil {
		inputProgress = clampProgress(*incoming.Progress)
	}

	result := ConsumptionRecord{
		ContentID:            incoming.ContentID,
		Status:               inputStatus,
		Progress:             inputProgress,
		CompletionPercentage: incoming.CompletionPercentage,
		ProgressDetails:      e.serializeDetails(incoming),
	}

	inputCompletedTime := e.parse(FieldLastCompletedTime, incoming.LastCompletedTime)
	inputAccessTime := e.parse(FieldLastAccessTime, incoming.LastAccessTime)

	if existing != nil && !existing.isEmpty() {
		accessed := ResolveLater(existing.LastAccessTime, inputAccessTime, now)
		result.LastAccessTime = &accessed
		result.Progress = max(inputProgress, clampProgress(existing.Progress))

		if result.ContentID == "" {
			result.ContentID = existing.ContentID
		}
		if result.CompletionPercentage == nil {
			result.CompletionPercentage = existing.CompletionPercentage
		}
		if result.ProgressDetails == nil {
			result.ProgressDetails = existing.ProgressDetails
		}

		existingStatus := normalizeStatus(int(existing.Status))
		if inputStatus >= existingStatus {
			if inputStatus >= StatusCompleted {
				completed := ResolveLater(existing.LastCompletedTime, inputCompletedTime, now)
				result.complete(completed)
			}
		} else {
			result.Status = existingStatus
			if existingStatus == StatusCompleted {
				// A late non-completed update must not move the original completion time.
				completed := now
				if existing.LastCompletedTime != nil {
					completed = *existing.LastCompletedTime
				} else if inputCompletedTime != nil {
					completed = *inputCompletedTime
				}
				result.complete(completed)
			}
		}
	} else {
		if inputStatus >= StatusCompleted {
			completed := ResolveLater(nil, inputCompletedTime, now)
			result.complete(completed)
		}
		accessed := ResolveLater(nil, inputAccessTime, now)
		result.LastAccessTime = &accessed
	}

	result.LastUpdatedTime = now
	result.UserID = userID
	result.normalize()

	return result
}

// parse resolves a textual timestamp, logging and discarding malformed values.
func (e *Engine) parse(field, text string) *time.Time {
	t, err := ParseTimestamp(text)
	if err != nil {
		e.logger.Warn("Ignoring unparseable timestamp",
			zap.String("field", field),
			zap.String("value", text),
			zap.Error(err))
		return nil
	}
	return t
}

// serializeDetails converts the opaque progressDetails payload into its stored string form.
func (e *Engine) serializeDetails(incoming PartialRecord) *string {
	raw := bytes.TrimSpace(incoming.ProgressDetails)
	if len(raw) == 0 || bytes.Equal(raw, []byte(nullToken)) {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		e.logger.Warn("Storing progressDetails verbatim",
			zap.String("contentId", incoming.ContentID),
			zap.Error(err))
		s := string(raw)
		return &s
	}
	s := buf.String()
	return &s
}

func (r *ConsumptionRecord) complete(at time.Time) {
	r.Status = StatusCompleted
	r.Progress = maxProgress
	r.LastCompletedTime = &at
}

// normalize converts every instant to UTC so stored and returned values share one representation.
func (r *ConsumptionRecord) normalize() {
	if r.LastAccessTime != nil {
		t := r.LastAccessTime.UTC()
		r.LastAccessTime = &t
	}
	if r.LastCompletedTime != nil {
		t := r.LastCompletedTime.UTC()
		r.LastCompletedTime = &t
	}
	r.LastUpdatedTime = r.LastUpdatedTime.UTC()
}

// isEmpty reports whether a fetched record carries no stored state at all.
func (r *ConsumptionRecord) isEmpty() bool {
	return r.UserID == "" && r.ContentID == "" && r.Status == StatusNotStarted && r.Progress == 0 &&
		r.LastAccessTime == nil && r.LastCompletedTime == nil && r.LastUpdatedTime.IsZero()
}

func clampProgress(p int) int {
	return min(max(p, 0), maxProgress)
}
