package models

import "time"

// VisitStatus represents the lifecycle state of a visit
type VisitStatus string

const (
	StatusPending    VisitStatus = "pending"
	StatusInProgress VisitStatus = "in_progress"
	StatusCompleted  VisitStatus = "completed"
	StatusCancelled  VisitStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states
func (s VisitStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status is a final state.
// Завершенный или отмененный визит клиент изменить не может;
// откат делает только административный reset на сервере.
func (s VisitStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether a transition to the target status is
// allowed. Transitions are monotonic toward completed/cancelled.
func (s VisitStatus) CanTransitionTo(target VisitStatus) bool {
	if !s.Valid() || !target.Valid() || s == target {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCompleted || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	default:
		// completed и cancelled — терминальные состояния
		return false
	}
}

// Visit represents a dated home-visit service record with a patient
// location. Owned by the backend; the client holds read-only projections.
type Visit struct {
	ScheduledAt  time.Time
	ID           string
	Status       VisitStatus
	PatientName  string
	PatientPhone string
	Address      string
	Description  string
	Notes        string
	ServiceType  string
	AmountCents  int64
	Lat          float64
	Lng          float64
}
