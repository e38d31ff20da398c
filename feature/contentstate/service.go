package contentstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"content-state/core/api"
	"content-state/core/events"
	"content-state/core/reconcile"
	"content-state/core/utils"
	"content-state/feature/contentstate/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Request body keys.
const (
	keyRequest    = "request"
	keyContentIDs = "contentIds"
	keyFields     = "fields"
	keyContents   = "contents"
)

// Client facing validation messages.
const (
	msgEmptyBody      = "Request body is empty"
	msgInvalidRequest = "Missing or invalid 'request' object in payload"
	msgContentIDs     = "'contentIds' is mandatory and should be a non-empty list"
	msgInvalidFields  = "Invalid fields in request"
	msgMissingFields  = "Missing or invalid fields"
)

// Service orchestrates validation, storage and the merge engine for consumption state.
type Service struct {
	repo      *Repository
	engine    *reconcile.Engine
	policy    reconcile.Config
	publisher events.Publisher
	locks     *reconcile.KeyedMutex
	reads     singleflight.Group
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new content state service.
func NewService(repo *Repository, policy reconcile.Config, publisher events.Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	s := &Service{
		repo:      repo,
		engine:    reconcile.NewEngine(logger),
		policy:    policy,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	if policy.SerializeWrites {
		s.locks = reconcile.NewKeyedMutex()
	}
	return s
}

// Read validates body and returns the user's records for the requested content ids, projected to
// the requested fields (or the allow-list when no projection is given).
func (s *Service) Read(ctx context.Context, userID string, body map[string]any) (*models.ReadResult, error) {
	q, err := s.parseReadQuery(userID, body)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The shared query is detached from any single caller; each caller still stops waiting on
	// its own cancellation.
	key := q.UserID + "\x00" + strings.Join(q.ContentIDs, "\x00")
	detached := context.WithoutCancel(ctx)
	ch := s.reads.DoChan(key, func() (any, error) {
		return s.repo.Find(detached, q.UserID, q.ContentIDs)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		s.logger.Debug("Shared concurrent read", zap.String("user_id", q.UserID))
	}
	rows := res.Val.([]models.UserEntityConsumption)

	fields := q.Fields
	if len(fields) == 0 {
		fields = s.policy.AllowedReadFields
	}

	list := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		list = append(list, Project(row.ToRecord(), fields))
	}
	return &models.ReadResult{ContentList: list}, nil
}

func (s *Service) parseReadQuery(userID string, body map[string]any) (models.ReadQuery, error) {
	if len(body) == 0 {
		return models.ReadQuery{}, reconcile.NewValidationError(msgEmptyBody, nil)
	}
	req, ok := body[keyRequest].(map[string]any)
	if !ok {
		return models.ReadQuery{}, reconcile.NewValidationError(msgInvalidRequest, nil)
	}
	rawIDs, ok := req[keyContentIDs].([]any)
	if !ok || len(rawIDs) == 0 {
		return models.ReadQuery{}, reconcile.NewValidationError(msgContentIDs, nil)
	}

	q := models.ReadQuery{UserID: userID, ContentIDs: stringList(rawIDs)}
	if len(q.ContentIDs) == 0 {
		return models.ReadQuery{}, reconcile.NewValidationError(msgContentIDs, nil)
	}
	if rawFields, ok := req[keyFields].([]any); ok {
		q.Fields = stringList(rawFields)
		if q.Fields == nil {
			q.Fields = []string{}
		}
	}

	if v := reconcile.ValidateReadFields(q.Fields, s.policy.AllowedReadFields, s.policy.RequireReadFields); !v.OK() {
		return models.ReadQuery{}, reconcile.NewValidationError(msgInvalidFields, v)
	}
	return q, nil
}

// Update validates body, merges the update entries with their stored records and persists the
// results. Only the first entry is processed unless ProcessAllContents is set.
func (s *Service) Update(ctx context.Context, userID string, body map[string]any) (models.UpdateResult, error) {
	entries, err := s.parseUpdate(body)
	if err != nil {
		return nil, err
	}

	if !s.policy.ProcessAllContents && len(entries) > 1 {
		s.logger.Info("Ignoring additional update entries",
			zap.String("user_id", userID),
			zap.Int("ignored", len(entries)-1),
		)
		entries = entries[:1]
	}

	partials := make([]reconcile.PartialRecord, 0, len(entries))
	var missing reconcile.Violations
	for i, e := range entries {
		p := reconcile.PartialFromMap(e)
		if strings.TrimSpace(p.ContentID) == "" {
			missing = append(missing, fmt.Sprintf("contents[%d].%s", i, reconcile.FieldContentID))
		}
		partials = append(partials, p)
	}
	if !missing.OK() {
		return nil, reconcile.NewValidationError(msgMissingFields, missing)
	}

	// Entries are applied independently. The request only fails as a whole when nothing was written.
	result := make(models.UpdateResult, len(partials))
	var firstErr error
	written := 0
	for _, p := range partials {
		if _, err := s.Apply(ctx, userID, p); err != nil {
			s.logger.Error("Failed to apply update entry",
				zap.String("user_id", userID),
				zap.String("content_id", p.ContentID),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			result[p.ContentID] = api.StatusFailed
			continue
		}
		written++
		result[p.ContentID] = api.StatusSuccess
	}
	if firstErr != nil && written == 0 {
		return nil, firstErr
	}
	return result, nil
}

func (s *Service) parseUpdate(body map[string]any) ([]map[string]any, error) {
	if len(body) == 0 {
		return nil, reconcile.NewValidationError(msgEmptyBody, nil)
	}
	req, ok := body[keyRequest].(map[string]any)
	if !ok {
		return nil, reconcile.NewValidationError(msgMissingFields, reconcile.Violations{keyRequest})
	}
	contents, ok := req[keyContents].([]any)
	if !ok {
		return nil, reconcile.NewValidationError(msgMissingFields, reconcile.Violations{keyContents})
	}
	if v := reconcile.ValidateRequiredFields(contents, s.policy.RequiredUpdateFields); !v.OK() {
		return nil, reconcile.NewValidationError(msgMissingFields, v)
	}

	entries := make([]map[string]any, 0, len(contents))
	for _, c := range contents {
		entries = append(entries, c.(map[string]any))
	}
	return entries, nil
}

// Apply runs fetch, merge and persist for a single entry and publishes the merged record.
func (s *Service) Apply(ctx context.Context, userID string, in reconcile.PartialRecord) (reconcile.ConsumptionRecord, error) {
	if s.locks != nil {
		unlock := s.locks.Lock(reconcile.RecordKey(userID, in.ContentID))
		defer unlock()
	}

	row, err := s.repo.Get(ctx, userID, in.ContentID)
	if err != nil {
		return reconcile.ConsumptionRecord{}, err
	}
	var existing *reconcile.ConsumptionRecord
	if row != nil {
		rec := row.MergeBase()
		existing = &rec
	}

	merged := s.engine.Merge(in, existing, userID, s.now())

	if err := s.repo.Upsert(ctx, reconcile.ToStorageColumns(merged.Fields())); err != nil {
		return reconcile.ConsumptionRecord{}, err
	}

	s.publish(ctx, merged)
	return merged, nil
}

func (s *Service) publish(ctx context.Context, rec reconcile.ConsumptionRecord) {
	evt := events.StateChanged{
		EventID:   uuid.NewString(),
		UserID:    rec.UserID,
		ContentID: rec.ContentID,
		Record:    Project(rec, nil),
		Timestamp: rec.LastUpdatedTime,
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish state change",
			zap.String("user_id", rec.UserID),
			zap.String("content_id", rec.ContentID),
			zap.Error(err),
		)
	}
}

// Project renders rec keyed by external field names, restricted to fields when non-empty.
// Timestamps use the canonical text format and progressDetails is emitted as JSON when it parses.
func Project(rec reconcile.ConsumptionRecord, fields []string) map[string]any {
	all := rec.Fields()

	keep := all
	if len(fields) > 0 {
		keep = make(map[string]any, len(fields))
		for _, f := range fields {
			if v, ok := all[f]; ok {
				keep[f] = v
			}
		}
	}

	out := make(map[string]any, len(keep))
	for k, v := range keep {
		switch val := v.(type) {
		case time.Time:
			if val.IsZero() {
				continue
			}
			out[k] = reconcile.FormatTimestamp(val)
		case string:
			if k == reconcile.FieldProgressDetails && json.Valid([]byte(val)) {
				out[k] = json.RawMessage(val)
				continue
			}
			out[k] = val
		default:
			out[k] = val
		}
	}
	return out
}

func stringList(raw []any) []string {
	var out []string
	for _, v := range raw {
		if v == nil {
			continue
		}
		if s := strings.TrimSpace(utils.ToString(v)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsValidation reports whether err should be surfaced to the client as-is.
func IsValidation(err error) (*reconcile.ValidationError, bool) {
	var vErr *reconcile.ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
