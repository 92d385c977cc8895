package storage

import (
	"context"
	"time"
)

//go:generate moq -out queue_mock.go . QueueStorage

// OfflineAction is a completion recorded while offline, pending remote
// confirmation. At most one action exists per visit id: a later
// enqueue for the same visit replaces the earlier one.
type OfflineAction struct {
	EnqueuedAt     time.Time `json:"enqueued_at"`
	VisitID        string    `json:"visit_id"`
	Notes          string    `json:"notes"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	DistanceMeters float64   `json:"distance_meters"` // дистанция, вычисленная при постановке в очередь
}

// QueueStorage defines the durable offline completion queue
type QueueStorage interface {
	// PutAction stores or replaces the action keyed by visit id
	PutAction(ctx context.Context, action *OfflineAction) error

	// ListActions returns all queued actions in enqueue-time order
	ListActions(ctx context.Context) ([]*OfflineAction, error)

	// DeleteAction removes the action for the visit id.
	// Returns ErrActionNotFound if nothing is queued for it.
	DeleteAction(ctx context.Context, visitID string) error

	// CountActions returns the number of queued actions
	CountActions(ctx context.Context) (int, error)
}
