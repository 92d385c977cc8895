package storage

import (
	"context"
	"time"

	"github.com/iudanet/homevisit/internal/models"
)

// Visit is the server-side visit row: the shared visit record plus
// assignment and completion evidence the client never sees raw.
type Visit struct {
	models.Visit
	CompletedAt  *time.Time
	CompletedLat *float64
	CompletedLng *float64
	WorkerID     string
}

// Completion records where and when a visit was closed
type Completion struct {
	At    time.Time
	Notes string
	Lat   float64
	Lng   float64
}

// VisitStorage defines the interface for visit persistence
type VisitStorage interface {
	// CreateVisit stores a new visit assigned to a worker
	CreateVisit(ctx context.Context, visit *Visit) error

	// GetVisit retrieves a visit by id.
	// Returns ErrVisitNotFound if the visit doesn't exist.
	GetVisit(ctx context.Context, visitID string) (*Visit, error)

	// ListVisits returns the worker's visits scheduled in [from, to),
	// ordered by scheduled time
	ListVisits(ctx context.Context, workerID string, from, to time.Time) ([]*Visit, error)

	// CompleteVisit marks the visit completed with the given evidence.
	// Returns ErrVisitNotFound if the visit doesn't exist.
	CompleteVisit(ctx context.Context, visitID string, completion Completion) error

	// ReopenVisit reverts a completed visit to pending and clears the
	// completion evidence. Административный откат, клиенту недоступен.
	ReopenVisit(ctx context.Context, visitID string) error

	// FilterCompleted returns the subset of ids that belong to the
	// worker and are already completed
	FilterCompleted(ctx context.Context, workerID string, visitIDs []string) ([]string, error)

	// CountCompletedSameService counts the worker's visits for the same
	// patient and service type completed within [from, to)
	CountCompletedSameService(ctx context.Context, workerID, patientName, serviceType string, from, to time.Time) (int, error)
}
