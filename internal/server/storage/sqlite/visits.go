package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/internal/server/storage"
)

const visitColumns = `
	id, worker_id, status, scheduled_at,
	patient_name, patient_phone, address, description, notes,
	service_type, amount_cents, lat, lng,
	completed_at, completed_lat, completed_lng
`

// CreateVisit stores a new visit assigned to a worker
func (s *Storage) CreateVisit(ctx context.Context, visit *storage.Visit) error {
	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		visit.ID,
		visit.WorkerID,
		visit.Status,
		visit.ScheduledAt,
		visit.PatientName,
		visit.PatientPhone,
		visit.Address,
		visit.Description,
		visit.Notes,
		visit.ServiceType,
		visit.AmountCents,
		visit.Lat,
		visit.Lng,
		visit.CompletedAt,
		visit.CompletedLat,
		visit.CompletedLng,
	)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}

	return nil
}

// GetVisit retrieves a visit by id
func (s *Storage) GetVisit(ctx context.Context, visitID string) (*storage.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = ?`

	visit, err := scanVisit(s.db.QueryRowContext(ctx, query, visitID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	return visit, nil
}

// ListVisits returns the worker's visits scheduled in [from, to)
func (s *Storage) ListVisits(ctx context.Context, workerID string, from, to time.Time) ([]*storage.Visit, error) {
	query := `
		SELECT ` + visitColumns + `
		FROM visits
		WHERE worker_id = ? AND scheduled_at >= ? AND scheduled_at < ?
		ORDER BY scheduled_at
	`

	rows, err := s.db.QueryContext(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	var visits []*storage.Visit
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, visit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits: %w", err)
	}

	return visits, nil
}

// CompleteVisit marks the visit completed with the given evidence
func (s *Storage) CompleteVisit(ctx context.Context, visitID string, completion storage.Completion) error {
	// Статус проверяется в самом UPDATE: завершить можно любой
	// нетерминальный визит (pending или in_progress).
	query := `
		UPDATE visits
		SET status = ?, notes = ?, completed_at = ?, completed_lat = ?, completed_lng = ?
		WHERE id = ? AND status IN (?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		models.StatusCompleted,
		completion.Notes,
		completion.At,
		completion.Lat,
		completion.Lng,
		visitID,
		models.StatusPending,
		models.StatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to complete visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return s.transitionError(ctx, visitID)
	}

	return nil
}

// ReopenVisit reverts a completed visit to pending
func (s *Storage) ReopenVisit(ctx context.Context, visitID string) error {
	// Административный сброс применим только к завершённому визиту.
	query := `
		UPDATE visits
		SET status = ?, completed_at = NULL, completed_lat = NULL, completed_lng = NULL
		WHERE id = ? AND status = ?
	`

	result, err := s.db.ExecContext(ctx, query, models.StatusPending, visitID, models.StatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to reopen visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return s.transitionError(ctx, visitID)
	}

	return nil
}

// transitionError distinguishes a missing visit from one whose current
// status forbids the requested change.
func (s *Storage) transitionError(ctx context.Context, visitID string) error {
	var status string
	err := s.db.QueryRowContext(ctx, `SELECT status FROM visits WHERE id = ?`, visitID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrVisitNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check visit status: %w", err)
	}
	return storage.ErrInvalidTransition
}

// FilterCompleted returns the subset of ids already completed by the worker
func (s *Storage) FilterCompleted(ctx context.Context, workerID string, visitIDs []string) ([]string, error) {
	if len(visitIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(visitIDs))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT id FROM visits
		WHERE worker_id = ? AND status = ? AND id IN (%s)
	`, placeholders)

	args := make([]any, 0, len(visitIDs)+2)
	args = append(args, workerID, models.StatusCompleted)
	for _, id := range visitIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter completed visits: %w", err)
	}
	defer rows.Close()

	var completed []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan visit id: %w", err)
		}
		completed = append(completed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visit ids: %w", err)
	}

	return completed, nil
}

// CountCompletedSameService counts completions for the same patient and
// service type within [from, to)
func (s *Storage) CountCompletedSameService(ctx context.Context, workerID, patientName, serviceType string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM visits
		WHERE worker_id = ? AND patient_name = ? AND service_type = ?
		  AND status = ? AND completed_at >= ? AND completed_at < ?
	`

	var count int
	err := s.db.QueryRowContext(ctx, query,
		workerID, patientName, serviceType,
		models.StatusCompleted, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}

	return count, nil
}

// scanTarget покрывает и *sql.Row, и *sql.Rows
type scanTarget interface {
	Scan(dest ...any) error
}

func scanVisit(row scanTarget) (*storage.Visit, error) {
	visit := &storage.Visit{}
	var completedAt sql.NullTime
	var completedLat, completedLng sql.NullFloat64

	err := row.Scan(
		&visit.ID,
		&visit.WorkerID,
		&visit.Status,
		&visit.ScheduledAt,
		&visit.PatientName,
		&visit.PatientPhone,
		&visit.Address,
		&visit.Description,
		&visit.Notes,
		&visit.ServiceType,
		&visit.AmountCents,
		&visit.Lat,
		&visit.Lng,
		&completedAt,
		&completedLat,
		&completedLng,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		visit.CompletedAt = &completedAt.Time
	}
	if completedLat.Valid {
		visit.CompletedLat = &completedLat.Float64
	}
	if completedLng.Valid {
		visit.CompletedLng = &completedLng.Float64
	}

	return visit, nil
}
