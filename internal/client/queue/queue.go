// Package queue implements the durable offline completion queue: a
// de-duplicated list of completions recorded without connectivity,
// pending confirmation against the backend.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/homevisit/internal/client/storage"
	"github.com/iudanet/homevisit/pkg/api"
)

// SubmitFunc submits one queued action through the online completion
// path. A non-nil error means the submission never reached a verdict
// (transport failure); a response with Success=false is a verdict.
type SubmitFunc func(ctx context.Context, action *storage.OfflineAction) (*api.CompleteResponse, error)

// Rejection describes a queued action the backend refused on
// validation grounds. The entry stays queued but is never resubmitted
// automatically with the same inputs; the rejection is surfaced upward.
type Rejection struct {
	VisitID        string
	Code           string
	Message        string
	DistanceMeters float64
}

// DrainResult accounts for every entry touched by DrainAndRetry:
// each one is either removed (Confirmed, AlreadyCompleted) or retained
// (Rejected, TransportFailed). Nothing disappears without a reason.
type DrainResult struct {
	Rejected         []Rejection
	Confirmed        int
	AlreadyCompleted int
	TransportFailed  int
}

// Queue is the offline action queue over durable storage
type Queue struct {
	store  storage.QueueStorage
	logger *slog.Logger
	now    func() time.Time
}

// New creates a queue over the given storage
func New(store storage.QueueStorage, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Enqueue stores the action, stamping EnqueuedAt when unset.
// De-duplicates by visit id with replace semantics.
func (q *Queue) Enqueue(ctx context.Context, action *storage.OfflineAction) error {
	if action.VisitID == "" {
		return fmt.Errorf("action visit id is required")
	}
	if action.EnqueuedAt.IsZero() {
		action.EnqueuedAt = q.now()
	}

	if err := q.store.PutAction(ctx, action); err != nil {
		return fmt.Errorf("failed to enqueue action: %w", err)
	}

	q.logger.Info("queued offline completion",
		"visit_id", action.VisitID,
		"distance_m", action.DistanceMeters)
	return nil
}

// List returns all queued actions in enqueue order
func (q *Queue) List(ctx context.Context) ([]*storage.OfflineAction, error) {
	return q.store.ListActions(ctx)
}

// Remove drops the queued action for the visit id
func (q *Queue) Remove(ctx context.Context, visitID string) error {
	return q.store.DeleteAction(ctx, visitID)
}

// Len returns the number of queued actions
func (q *Queue) Len(ctx context.Context) (int, error) {
	return q.store.CountActions(ctx)
}

// DrainAndRetry submits every queued action and partitions the
// verdicts. Confirmed successes and confirmed-already-completed are
// removed; transport failures and validation rejections are retained
// for a later attempt. Транспортный сбой никогда не уничтожает запись.
func (q *Queue) DrainAndRetry(ctx context.Context, submit SubmitFunc) (*DrainResult, error) {
	actions, err := q.store.ListActions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	result := &DrainResult{}

	for _, action := range actions {
		resp, err := submit(ctx, action)
		if err != nil {
			// До сервера не достучались - оставляем на следующий раз
			result.TransportFailed++
			q.logger.Warn("queued completion submit failed",
				"visit_id", action.VisitID,
				"error", err)
			continue
		}

		switch {
		case resp.Success:
			if err := q.store.DeleteAction(ctx, action.VisitID); err != nil {
				return nil, fmt.Errorf("failed to remove confirmed action %s: %w", action.VisitID, err)
			}
			result.Confirmed++
			q.logger.Info("offline completion confirmed", "visit_id", action.VisitID)

		case resp.Code == api.CodeAlreadyCompleted:
			// Сервер уже знает про это завершение - убираем без повтора
			if err := q.store.DeleteAction(ctx, action.VisitID); err != nil {
				return nil, fmt.Errorf("failed to remove already-completed action %s: %w", action.VisitID, err)
			}
			result.AlreadyCompleted++
			q.logger.Info("offline completion already on server", "visit_id", action.VisitID)

		default:
			// Отказ валидации: запись остается, но с теми же входными
			// данными автоматически не повторяется - только наверх
			result.Rejected = append(result.Rejected, Rejection{
				VisitID:        action.VisitID,
				Code:           resp.Code,
				Message:        resp.Message,
				DistanceMeters: resp.DistanceMeters,
			})
			q.logger.Warn("queued completion rejected",
				"visit_id", action.VisitID,
				"code", resp.Code)
		}
	}

	return result, nil
}
