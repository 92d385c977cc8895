package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/internal/server/storage"
	"github.com/iudanet/homevisit/pkg/api"
)

// mockVisitStorage is an in-memory VisitStorage for testing
type mockVisitStorage struct {
	visits map[string]*storage.Visit
}

func newMockVisitStorage() *mockVisitStorage {
	return &mockVisitStorage{visits: make(map[string]*storage.Visit)}
}

func (m *mockVisitStorage) CreateVisit(ctx context.Context, visit *storage.Visit) error {
	m.visits[visit.ID] = visit
	return nil
}

func (m *mockVisitStorage) GetVisit(ctx context.Context, visitID string) (*storage.Visit, error) {
	visit, ok := m.visits[visitID]
	if !ok {
		return nil, storage.ErrVisitNotFound
	}
	return visit, nil
}

func (m *mockVisitStorage) ListVisits(ctx context.Context, workerID string, from, to time.Time) ([]*storage.Visit, error) {
	var out []*storage.Visit
	for _, visit := range m.visits {
		if visit.WorkerID == workerID && !visit.ScheduledAt.Before(from) && visit.ScheduledAt.Before(to) {
			out = append(out, visit)
		}
	}
	return out, nil
}

func (m *mockVisitStorage) CompleteVisit(ctx context.Context, visitID string, completion storage.Completion) error {
	visit, ok := m.visits[visitID]
	if !ok {
		return storage.ErrVisitNotFound
	}
	if visit.Status.Terminal() {
		return storage.ErrInvalidTransition
	}
	visit.Status = models.StatusCompleted
	visit.Notes = completion.Notes
	at := completion.At
	lat, lng := completion.Lat, completion.Lng
	visit.CompletedAt, visit.CompletedLat, visit.CompletedLng = &at, &lat, &lng
	return nil
}

func (m *mockVisitStorage) ReopenVisit(ctx context.Context, visitID string) error {
	visit, ok := m.visits[visitID]
	if !ok {
		return storage.ErrVisitNotFound
	}
	if visit.Status != models.StatusCompleted {
		return storage.ErrInvalidTransition
	}
	visit.Status = models.StatusPending
	visit.CompletedAt, visit.CompletedLat, visit.CompletedLng = nil, nil, nil
	return nil
}

func (m *mockVisitStorage) FilterCompleted(ctx context.Context, workerID string, visitIDs []string) ([]string, error) {
	var out []string
	for _, id := range visitIDs {
		if visit, ok := m.visits[id]; ok && visit.WorkerID == workerID && visit.Status == models.StatusCompleted {
			out = append(out, id)
		}
	}
	return out, nil
}

func (m *mockVisitStorage) CountCompletedSameService(ctx context.Context, workerID, patientName, serviceType string, from, to time.Time) (int, error) {
	count := 0
	for _, visit := range m.visits {
		if visit.WorkerID != workerID || visit.PatientName != patientName || visit.ServiceType != serviceType {
			continue
		}
		if visit.Status != models.StatusCompleted || visit.CompletedAt == nil {
			continue
		}
		if !visit.CompletedAt.Before(from) && visit.CompletedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func seedVisit(m *mockVisitStorage, id, worker string, status models.VisitStatus) *storage.Visit {
	visit := &storage.Visit{
		Visit: models.Visit{
			ID:          id,
			Status:      status,
			ScheduledAt: time.Now(),
			PatientName: "Сидоров П.П.",
			ServiceType: "injection",
			Lat:         55.7558,
			Lng:         37.6173,
		},
		WorkerID: worker,
	}
	if status == models.StatusCompleted {
		now := time.Now()
		visit.CompletedAt = &now
	}
	m.visits[id] = visit
	return visit
}

func newVisitsHandler(m *mockVisitStorage) *VisitsHandler {
	return NewVisitsHandler(testHandlerLogger(), m, 50)
}

func completeRequest(t *testing.T, visitID, worker string, body api.CompleteRequest) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/visits/"+visitID+"/complete", bytes.NewReader(raw))
	r.SetPathValue("id", visitID)
	ctx := context.WithValue(r.Context(), UserIDKey, worker)
	return r.WithContext(ctx)
}

func decodeVerdict(t *testing.T, w *httptest.ResponseRecorder) api.CompleteResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.CompleteResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestCompleteWithinRadius(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-1", "worker-1", api.CompleteRequest{
		Lat: 55.7558, Lng: 37.6173, Notes: "done",
	}))

	resp := decodeVerdict(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, api.CodeOK, resp.Code)

	assert.Equal(t, models.StatusCompleted, m.visits["visit-1"].Status)
	assert.Equal(t, "done", m.visits["visit-1"].Notes)
	require.NotNil(t, m.visits["visit-1"].CompletedLat)
}

func TestCompleteInProgressVisit(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusInProgress)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-1", "worker-1", api.CompleteRequest{
		Lat: 55.7558, Lng: 37.6173, Notes: "done on site",
	}))

	resp := decodeVerdict(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, api.CodeOK, resp.Code)
	assert.Equal(t, models.StatusCompleted, m.visits["visit-1"].Status)
}

func TestCompleteOutOfRange(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	// ~1.1км севернее пациента
	h.Complete(w, completeRequest(t, "visit-1", "worker-1", api.CompleteRequest{
		Lat: 55.7658, Lng: 37.6173,
	}))

	resp := decodeVerdict(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, api.CodeOutOfRange, resp.Code)
	assert.Greater(t, resp.DistanceMeters, 1000.0)

	// Визит не завершен
	assert.Equal(t, models.StatusPending, m.visits["visit-1"].Status)
}

func TestCompleteAlreadyCompleted(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusCompleted)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-1", "worker-1", api.CompleteRequest{
		Lat: 55.7558, Lng: 37.6173,
	}))

	resp := decodeVerdict(t, w)
	assert.Equal(t, api.CodeAlreadyCompleted, resp.Code)
}

func TestCompleteForeignVisitLooksMissing(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-1", "worker-2", api.CompleteRequest{
		Lat: 55.7558, Lng: 37.6173,
	}))

	resp := decodeVerdict(t, w)
	assert.Equal(t, api.CodeNotFound, resp.Code)
	assert.Equal(t, models.StatusPending, m.visits["visit-1"].Status)
}

func TestCompleteDailyLimit(t *testing.T) {
	m := newMockVisitStorage()
	// Та же услуга тому же пациенту уже оказана сегодня
	seedVisit(m, "visit-done", "worker-1", models.StatusCompleted)
	seedVisit(m, "visit-2", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	// 21:30: до полуночи 2.5 часа
	h.now = func() time.Time {
		return time.Date(2024, 10, 14, 21, 30, 0, 0, time.UTC)
	}
	at := time.Date(2024, 10, 14, 9, 0, 0, 0, time.UTC)
	m.visits["visit-done"].CompletedAt = &at

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-2", "worker-1", api.CompleteRequest{
		Lat: 55.7558, Lng: 37.6173,
	}))

	resp := decodeVerdict(t, w)
	assert.Equal(t, api.CodeDailyLimit, resp.Code)
	assert.Equal(t, int64((2*time.Hour + 30*time.Minute).Seconds()), resp.RetryAfterSeconds)
	assert.Equal(t, models.StatusPending, m.visits["visit-2"].Status)
}

func TestCompleteInvalidCoordinates(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	w := httptest.NewRecorder()
	h.Complete(w, completeRequest(t, "visit-1", "worker-1", api.CompleteRequest{
		Lat: 95, Lng: 37.6173,
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVisits(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusPending)
	seedVisit(m, "visit-2", "worker-2", models.StatusPending)
	h := newVisitsHandler(m)

	from := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	to := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	r := httptest.NewRequest(http.MethodGet, "/api/v1/visits?from="+from+"&to="+to, nil)
	r = r.WithContext(context.WithValue(r.Context(), UserIDKey, "worker-1"))

	w := httptest.NewRecorder()
	h.List(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.VisitsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Visits, 1)
	assert.Equal(t, "visit-1", resp.Visits[0].ID)
}

func TestListVisitsBadRange(t *testing.T) {
	m := newMockVisitStorage()
	h := newVisitsHandler(m)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/visits?from=yesterday&to=today", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserIDKey, "worker-1"))

	w := httptest.NewRecorder()
	h.List(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckCompleted(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-done", "worker-1", models.StatusCompleted)
	seedVisit(m, "visit-pending", "worker-1", models.StatusPending)
	h := newVisitsHandler(m)

	body, err := json.Marshal(api.CompletedCheckRequest{IDs: []string{"visit-done", "visit-pending", "ghost"}})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/visits/completed", bytes.NewReader(body))
	r = r.WithContext(context.WithValue(r.Context(), UserIDKey, "worker-1"))

	w := httptest.NewRecorder()
	h.CheckCompleted(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.CompletedCheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"visit-done"}, resp.CompletedIDs)
}

func TestReopenVisit(t *testing.T) {
	m := newMockVisitStorage()
	seedVisit(m, "visit-1", "worker-1", models.StatusCompleted)
	h := newVisitsHandler(m)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/visits/visit-1/reopen", nil)
	r.SetPathValue("id", "visit-1")

	w := httptest.NewRecorder()
	h.Reopen(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, models.StatusPending, m.visits["visit-1"].Status)
	assert.Nil(t, m.visits["visit-1"].CompletedAt)

	// Повторный сброс уже pending-визита конфликтует.
	r = httptest.NewRequest(http.MethodPost, "/api/v1/admin/visits/visit-1/reopen", nil)
	r.SetPathValue("id", "visit-1")
	w = httptest.NewRecorder()
	h.Reopen(w, r)
	assert.Equal(t, http.StatusConflict, w.Code)
}
