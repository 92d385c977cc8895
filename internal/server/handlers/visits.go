package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/homevisit/internal/geo"
	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/internal/server/storage"
	"github.com/iudanet/homevisit/internal/validation"
	"github.com/iudanet/homevisit/pkg/api"
)

// DailyServiceLimit - сколько раз одну услугу можно оказать одному
// пациенту за календарные сутки
const DailyServiceLimit = 1

// VisitsHandler обрабатывает запросы по визитам.
// Сервер авторитетен для геозоны и дневного лимита: клиентская
// предвалидация — только UX, вердикт выносится здесь.
type VisitsHandler struct {
	logger       *slog.Logger
	visitStorage storage.VisitStorage
	radiusMeters float64
	now          func() time.Time
}

// NewVisitsHandler создает новый handler для визитов
func NewVisitsHandler(logger *slog.Logger, visitStorage storage.VisitStorage, radiusMeters float64) *VisitsHandler {
	if radiusMeters <= 0 {
		radiusMeters = geo.DefaultRadiusMeters
	}
	return &VisitsHandler{
		logger:       logger,
		visitStorage: visitStorage,
		radiusMeters: radiusMeters,
		now:          time.Now,
	}
}

// List обрабатывает GET /api/v1/visits?from=...&to=...
// Возвращает визиты работника в диапазоне [from, to)
func (h *VisitsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	worker, ok := workerID(r)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		sendError(h.logger, w, "invalid 'from' parameter, expected RFC3339", http.StatusBadRequest)
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		sendError(h.logger, w, "invalid 'to' parameter, expected RFC3339", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRange(from, to); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	visits, err := h.visitStorage.ListVisits(ctx, worker, from, to)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list visits", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.VisitsResponse{Visits: make([]api.VisitRecord, 0, len(visits))}
	for _, visit := range visits {
		resp.Visits = append(resp.Visits, visitToRecord(visit))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Complete обрабатывает POST /api/v1/visits/{id}/complete
// Атомарная проверка: принадлежность, статус, геозона, дневной лимит.
// Доменные отказы возвращаются со статусом 200 и кодом вердикта.
func (h *VisitsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	worker, ok := workerID(r)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	visitID := r.PathValue("id")
	if visitID == "" {
		sendError(h.logger, w, "visit id is required", http.StatusBadRequest)
		return
	}

	var req api.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode complete request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateCoordinates(req.Lat, req.Lng); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	visit, err := h.visitStorage.GetVisit(ctx, visitID)
	if err != nil {
		if errors.Is(err, storage.ErrVisitNotFound) {
			h.verdict(ctx, w, visitID, api.CompleteResponse{
				Code:    api.CodeNotFound,
				Message: "visit not found",
			})
			return
		}
		h.logger.ErrorContext(ctx, "failed to get visit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Чужой визит неотличим от несуществующего
	if visit.WorkerID != worker {
		h.verdict(ctx, w, visitID, api.CompleteResponse{
			Code:    api.CodeNotFound,
			Message: "visit not found",
		})
		return
	}

	switch visit.Status {
	case models.StatusCompleted:
		h.verdict(ctx, w, visitID, api.CompleteResponse{
			Code:    api.CodeAlreadyCompleted,
			Message: "visit is already completed",
		})
		return
	case models.StatusCancelled:
		h.verdict(ctx, w, visitID, api.CompleteResponse{
			Code:    api.CodeNotFound,
			Message: "visit is cancelled",
		})
		return
	}

	distance := geo.Distance(req.Lat, req.Lng, visit.Lat, visit.Lng)
	if !geo.Admits(distance, h.radiusMeters) {
		h.verdict(ctx, w, visitID, api.CompleteResponse{
			Code:           api.CodeOutOfRange,
			Message:        fmt.Sprintf("%.0fm from the patient, limit is %.0fm", distance, h.radiusMeters),
			DistanceMeters: distance,
		})
		return
	}

	now := h.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	count, err := h.visitStorage.CountCompletedSameService(ctx, worker, visit.PatientName, visit.ServiceType, dayStart, dayEnd)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count completions", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if count >= DailyServiceLimit {
		h.verdict(ctx, w, visitID, api.CompleteResponse{
			Code:              api.CodeDailyLimit,
			Message:           "daily limit for this patient and service reached",
			RetryAfterSeconds: int64(dayEnd.Sub(now).Seconds()),
		})
		return
	}

	err = h.visitStorage.CompleteVisit(ctx, visitID, storage.Completion{
		At:    now,
		Notes: req.Notes,
		Lat:   req.Lat,
		Lng:   req.Lng,
	})
	if err != nil {
		// Гонка двух завершений: кто-то успел первым между проверкой и UPDATE.
		if errors.Is(err, storage.ErrInvalidTransition) {
			h.verdict(ctx, w, visitID, api.CompleteResponse{
				Code:    api.CodeAlreadyCompleted,
				Message: "visit is already completed",
			})
			return
		}
		h.logger.ErrorContext(ctx, "failed to complete visit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "visit completed",
		slog.String("visit_id", visitID),
		slog.String("worker_id", worker),
		slog.Float64("distance_m", distance))

	sendJSON(h.logger, w, api.CompleteResponse{
		Success:        true,
		Code:           api.CodeOK,
		Message:        "visit completed",
		DistanceMeters: distance,
	}, http.StatusOK)
}

// CheckCompleted обрабатывает POST /api/v1/visits/completed
// Идемпотентность оффлайн-очереди: какие из перечисленных визитов
// уже завершены на сервере
func (h *VisitsHandler) CheckCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	worker, ok := workerID(r)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CompletedCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	completed, err := h.visitStorage.FilterCompleted(ctx, worker, req.IDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to filter completed visits", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.CompletedCheckResponse{CompletedIDs: completed}, http.StatusOK)
}

// Create обрабатывает POST /api/v1/admin/visits
// Административное создание визита для работника
func (h *VisitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.WorkerID == "" {
		sendError(h.logger, w, "worker_id is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateCoordinates(req.Visit.Lat, req.Visit.Lng); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Visit.ScheduledAt.IsZero() {
		sendError(h.logger, w, "scheduled_at is required", http.StatusBadRequest)
		return
	}

	visit := &storage.Visit{
		Visit: models.Visit{
			ID:           req.Visit.ID,
			Status:       models.StatusPending,
			ScheduledAt:  req.Visit.ScheduledAt,
			PatientName:  req.Visit.PatientName,
			PatientPhone: req.Visit.PatientPhone,
			Address:      req.Visit.Address,
			Description:  req.Visit.Description,
			Notes:        req.Visit.Notes,
			ServiceType:  req.Visit.ServiceType,
			AmountCents:  req.Visit.AmountCents,
			Lat:          req.Visit.Lat,
			Lng:          req.Visit.Lng,
		},
		WorkerID: req.WorkerID,
	}
	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}

	if err := h.visitStorage.CreateVisit(ctx, visit); err != nil {
		h.logger.ErrorContext(ctx, "failed to create visit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "visit created",
		slog.String("visit_id", visit.ID),
		slog.String("worker_id", req.WorkerID))

	sendJSON(h.logger, w, api.CreateVisitResponse{VisitID: visit.ID}, http.StatusCreated)
}

// Reopen обрабатывает POST /api/v1/admin/visits/{id}/reopen
// Административный откат завершения: единственный разрешенный переход
// из терминального состояния
func (h *VisitsHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID := r.PathValue("id")
	if visitID == "" {
		sendError(h.logger, w, "visit id is required", http.StatusBadRequest)
		return
	}

	if err := h.visitStorage.ReopenVisit(ctx, visitID); err != nil {
		if errors.Is(err, storage.ErrVisitNotFound) {
			sendError(h.logger, w, "visit not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, storage.ErrInvalidTransition) {
			sendError(h.logger, w, "visit is not completed", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to reopen visit", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "visit reopened", slog.String("visit_id", visitID))

	sendJSON(h.logger, w, api.ReopenResponse{
		VisitID: visitID,
		Status:  string(models.StatusPending),
	}, http.StatusOK)
}

// verdict отправляет доменный отказ со статусом 200
func (h *VisitsHandler) verdict(ctx context.Context, w http.ResponseWriter, visitID string, resp api.CompleteResponse) {
	h.logger.InfoContext(ctx, "completion verdict",
		slog.String("visit_id", visitID),
		slog.String("code", resp.Code))
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// visitToRecord конвертирует серверную строку в wire-представление
func visitToRecord(visit *storage.Visit) api.VisitRecord {
	return api.VisitRecord{
		ID:           visit.ID,
		Status:       string(visit.Status),
		ScheduledAt:  visit.ScheduledAt,
		PatientName:  visit.PatientName,
		PatientPhone: visit.PatientPhone,
		Address:      visit.Address,
		Description:  visit.Description,
		Notes:        visit.Notes,
		ServiceType:  visit.ServiceType,
		AmountCents:  visit.AmountCents,
		Lat:          visit.Lat,
		Lng:          visit.Lng,
	}
}
