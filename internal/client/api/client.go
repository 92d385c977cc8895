package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/pkg/api"
)

// ErrUnauthorized сигнализирует о невалидном/просроченном токене.
// Вызывающий код обязан пробросить его наверх без cache fallback,
// чтобы форсировать повторную аутентификацию.
var ErrUnauthorized = errors.New("unauthorized")

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the surface of the remote data source. The backend
// is authoritative for visit data, the geofence and the daily limit.
type ClientAPI interface {
	// Login exchanges credentials for an access token
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// FetchRange returns the worker's visits scheduled in [from, to).
	// Координаты приходят уже нормализованными в плоские lat/lng.
	FetchRange(ctx context.Context, token string, from, to time.Time) ([]models.Visit, error)

	// CompleteVisit runs the server-side validate-and-complete
	// operation. Domain verdicts (out of range, daily limit, already
	// completed) come back inside the response, not as errors.
	CompleteVisit(ctx context.Context, token, visitID string, lat, lng float64, notes string) (*api.CompleteResponse, error)

	// CheckCompleted returns the subset of ids already completed
	// server-side
	CheckCompleted(ctx context.Context, token string, ids []string) ([]string, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login выполняет аутентификацию работника
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// FetchRange запрашивает визиты работника в диапазоне [from, to)
func (c *Client) FetchRange(ctx context.Context, token string, from, to time.Time) ([]models.Visit, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))

	var resp api.VisitsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/visits?"+query.Encode(), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch range request failed: %w", err)
	}

	visits := make([]models.Visit, 0, len(resp.Visits))
	for _, rec := range resp.Visits {
		visits = append(visits, recordToVisit(rec))
	}
	return visits, nil
}

// CompleteVisit отправляет атомарную операцию "проверь и заверши"
func (c *Client) CompleteVisit(ctx context.Context, token, visitID string, lat, lng float64, notes string) (*api.CompleteResponse, error) {
	req := api.CompleteRequest{Lat: lat, Lng: lng, Notes: notes}

	var resp api.CompleteResponse
	path := "/api/v1/visits/" + url.PathEscape(visitID) + "/complete"
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("complete request failed: %w", err)
	}
	return &resp, nil
}

// CheckCompleted возвращает подмножество уже завершенных на сервере id
func (c *Client) CheckCompleted(ctx context.Context, token string, ids []string) ([]string, error) {
	req := api.CompletedCheckRequest{IDs: ids}

	var resp api.CompletedCheckResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/visits/completed", token, req, &resp); err != nil {
		return nil, fmt.Errorf("completed check request failed: %w", err)
	}
	return resp.CompletedIDs, nil
}

// recordToVisit конвертирует wire-представление в доменную модель.
// Единственная точка превращения wire-формата в модель: движок
// синхронизации никогда не видит сырые ответы сервера.
func recordToVisit(rec api.VisitRecord) models.Visit {
	return models.Visit{
		ID:           rec.ID,
		ScheduledAt:  rec.ScheduledAt,
		Status:       models.VisitStatus(rec.Status),
		AmountCents:  rec.AmountCents,
		PatientName:  rec.PatientName,
		PatientPhone: rec.PatientPhone,
		Address:      rec.Address,
		Description:  rec.Description,
		Notes:        rec.Notes,
		ServiceType:  rec.ServiceType,
		Lat:          rec.Lat,
		Lng:          rec.Lng,
	}
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, errResp.Error)
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
