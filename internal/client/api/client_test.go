package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homevisit/internal/models"
	pkgapi "github.com/iudanet/homevisit/pkg/api"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mworker", req.Username)

		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{
			AccessToken: "token-abc",
			UserID:      "user-1",
			ExpiresIn:   3600,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{Username: "mworker", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestFetchRangeConvertsRecords(t *testing.T) {
	scheduled := time.Date(2024, time.October, 15, 9, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("to"))

		_ = json.NewEncoder(w).Encode(pkgapi.VisitsResponse{
			Visits: []pkgapi.VisitRecord{
				{
					ID:          "visit-1",
					ScheduledAt: scheduled,
					Status:      "pending",
					PatientName: "Maria Lopez",
					AmountCents: 250000,
					Lat:         -34.6037,
					Lng:         -58.3816,
					ServiceType: "nursing",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	visits, err := client.FetchRange(context.Background(), "token-abc", scheduled, scheduled.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, visits, 1)

	assert.Equal(t, "visit-1", visits[0].ID)
	assert.Equal(t, models.StatusPending, visits[0].Status)
	assert.Equal(t, int64(250000), visits[0].AmountCents)
	assert.Equal(t, -34.6037, visits[0].Lat)
}

func TestCompleteVisitDomainVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/visits/visit-1/complete", r.URL.Path)

		var req pkgapi.CompleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, -34.6037, req.Lat)

		// Доменный отказ приходит со статусом 200, не как ошибка
		_ = json.NewEncoder(w).Encode(pkgapi.CompleteResponse{
			Success:        false,
			Code:           pkgapi.CodeOutOfRange,
			Message:        "worker is 120m from the patient",
			DistanceMeters: 120,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.CompleteVisit(context.Background(), "token-abc", "visit-1", -34.6037, -58.3816, "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, pkgapi.CodeOutOfRange, resp.Code)
	assert.Equal(t, 120.0, resp.DistanceMeters)
}

func TestCheckCompleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.CompletedCheckRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"visit-1", "visit-2"}, req.IDs)

		_ = json.NewEncoder(w).Encode(pkgapi.CompletedCheckResponse{CompletedIDs: []string{"visit-2"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ids, err := client.CheckCompleted(context.Background(), "token-abc", []string{"visit-1", "visit-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"visit-2"}, ids)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchRange(context.Background(), "stale", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "database unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CheckCompleted(context.Background(), "token", []string{"visit-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "database unavailable")
}
