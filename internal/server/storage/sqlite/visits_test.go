package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/internal/server/storage"
)

func testVisit(workerID string, scheduledAt time.Time) *storage.Visit {
	return &storage.Visit{
		Visit: models.Visit{
			ID:          uuid.New().String(),
			Status:      models.StatusPending,
			ScheduledAt: scheduledAt,
			PatientName: "Сидоров П.П.",
			Address:     "ул. Ленина, 1",
			ServiceType: "injection",
			AmountCents: 150000,
			Lat:         55.7558,
			Lng:         37.6173,
		},
		WorkerID: workerID,
	}
}

func seedWorker(t *testing.T, s *Storage) string {
	t.Helper()
	user := testUser("worker-" + uuid.New().String()[:8])
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user.ID
}

func TestVisitStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	visit := testVisit(workerID, time.Now())
	require.NoError(t, s.CreateVisit(ctx, visit))

	retrieved, err := s.GetVisit(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, visit.PatientName, retrieved.PatientName)
	assert.Equal(t, models.StatusPending, retrieved.Status)
	assert.Equal(t, visit.AmountCents, retrieved.AmountCents)
	assert.Nil(t, retrieved.CompletedAt)

	_, err = s.GetVisit(ctx, "no-such-visit")
	assert.ErrorIs(t, err, storage.ErrVisitNotFound)
}

func TestVisitStorage_ListVisitsRange(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	base := time.Date(2024, 10, 14, 9, 0, 0, 0, time.UTC)
	inRange1 := testVisit(workerID, base)
	inRange2 := testVisit(workerID, base.Add(3*time.Hour))
	outOfRange := testVisit(workerID, base.AddDate(0, 0, 1))
	require.NoError(t, s.CreateVisit(ctx, inRange2))
	require.NoError(t, s.CreateVisit(ctx, inRange1))
	require.NoError(t, s.CreateVisit(ctx, outOfRange))

	// Визиты другого работника не видны
	otherWorker := seedWorker(t, s)
	require.NoError(t, s.CreateVisit(ctx, testVisit(otherWorker, base)))

	dayStart := base.Truncate(24 * time.Hour)
	visits, err := s.ListVisits(ctx, workerID, dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, visits, 2)

	// Отсортированы по времени
	assert.Equal(t, inRange1.ID, visits[0].ID)
	assert.Equal(t, inRange2.ID, visits[1].ID)
}

func TestVisitStorage_CompleteAndReopen(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	visit := testVisit(workerID, time.Now())
	require.NoError(t, s.CreateVisit(ctx, visit))

	completedAt := time.Now().Truncate(time.Second)
	require.NoError(t, s.CompleteVisit(ctx, visit.ID, storage.Completion{
		At:    completedAt,
		Notes: "injection done",
		Lat:   55.7559,
		Lng:   37.6174,
	}))

	retrieved, err := s.GetVisit(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, retrieved.Status)
	assert.Equal(t, "injection done", retrieved.Notes)
	require.NotNil(t, retrieved.CompletedAt)
	require.NotNil(t, retrieved.CompletedLat)
	assert.InDelta(t, 55.7559, *retrieved.CompletedLat, 1e-9)

	require.NoError(t, s.ReopenVisit(ctx, visit.ID))

	reopened, err := s.GetVisit(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
	assert.Nil(t, reopened.CompletedLat)

	assert.ErrorIs(t, s.CompleteVisit(ctx, "no-such", storage.Completion{At: completedAt}), storage.ErrVisitNotFound)
	assert.ErrorIs(t, s.ReopenVisit(ctx, "no-such"), storage.ErrVisitNotFound)
}

func TestVisitStorage_TransitionGuards(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	visit := testVisit(workerID, time.Now())
	require.NoError(t, s.CreateVisit(ctx, visit))

	// Pending-визит нельзя переоткрыть.
	assert.ErrorIs(t, s.ReopenVisit(ctx, visit.ID), storage.ErrInvalidTransition)

	require.NoError(t, s.CompleteVisit(ctx, visit.ID, storage.Completion{At: time.Now()}))

	// Повторное завершение отклоняется на уровне хранилища.
	assert.ErrorIs(t, s.CompleteVisit(ctx, visit.ID, storage.Completion{At: time.Now()}), storage.ErrInvalidTransition)

	// Визит в работе — нетерминальный, завершается как и pending.
	started := testVisit(workerID, time.Now())
	started.Status = models.StatusInProgress
	require.NoError(t, s.CreateVisit(ctx, started))
	require.NoError(t, s.CompleteVisit(ctx, started.ID, storage.Completion{At: time.Now()}))

	done, err := s.GetVisit(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)
}

func TestVisitStorage_FilterCompleted(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	done := testVisit(workerID, time.Now())
	pending := testVisit(workerID, time.Now())
	require.NoError(t, s.CreateVisit(ctx, done))
	require.NoError(t, s.CreateVisit(ctx, pending))
	require.NoError(t, s.CompleteVisit(ctx, done.ID, storage.Completion{At: time.Now()}))

	// Завершенный визит чужого работника не учитывается
	otherWorker := seedWorker(t, s)
	foreign := testVisit(otherWorker, time.Now())
	require.NoError(t, s.CreateVisit(ctx, foreign))
	require.NoError(t, s.CompleteVisit(ctx, foreign.ID, storage.Completion{At: time.Now()}))

	completed, err := s.FilterCompleted(ctx, workerID, []string{done.ID, pending.ID, foreign.ID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, []string{done.ID}, completed)

	empty, err := s.FilterCompleted(ctx, workerID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVisitStorage_CountCompletedSameService(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	workerID := seedWorker(t, s)

	day := time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC)

	first := testVisit(workerID, day.Add(9*time.Hour))
	require.NoError(t, s.CreateVisit(ctx, first))
	require.NoError(t, s.CompleteVisit(ctx, first.ID, storage.Completion{At: day.Add(9 * time.Hour)}))

	// Другой тип услуги того же пациента не считается
	other := testVisit(workerID, day.Add(10*time.Hour))
	other.ServiceType = "checkup"
	require.NoError(t, s.CreateVisit(ctx, other))
	require.NoError(t, s.CompleteVisit(ctx, other.ID, storage.Completion{At: day.Add(10 * time.Hour)}))

	// Завершение в другой день не считается
	yesterday := testVisit(workerID, day.Add(-10*time.Hour))
	require.NoError(t, s.CreateVisit(ctx, yesterday))
	require.NoError(t, s.CompleteVisit(ctx, yesterday.ID, storage.Completion{At: day.Add(-10 * time.Hour)}))

	count, err := s.CountCompletedSameService(ctx, workerID, "Сидоров П.П.", "injection", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
