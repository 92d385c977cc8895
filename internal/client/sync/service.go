// Package sync implements the offline-first synchronization engine:
// range fetches with cache fallback, geofence-validated completion and
// reconnect-time reconciliation of the offline queue against the
// authoritative backend.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	clientapi "github.com/iudanet/homevisit/internal/client/api"
	"github.com/iudanet/homevisit/internal/client/connectivity"
	"github.com/iudanet/homevisit/internal/client/queue"
	"github.com/iudanet/homevisit/internal/client/storage"
	"github.com/iudanet/homevisit/internal/geo"
	"github.com/iudanet/homevisit/internal/models"
	pkgapi "github.com/iudanet/homevisit/pkg/api"
)

// Connectivity is the slice of the monitor the engine needs
type Connectivity interface {
	// CheckOnline performs a fresh reachability check
	CheckOnline(ctx context.Context) (bool, error)

	// Current returns the cached last-known state
	Current() connectivity.State
}

// TokenSource yields the access token for authenticated calls
type TokenSource interface {
	// Token returns a valid access token or auth.ErrNotAuthenticated
	Token(ctx context.Context) (string, error)
}

// FetchResult is the outcome of a range fetch
type FetchResult struct {
	FetchedAt time.Time
	Pending   []models.Visit
	Completed []models.Visit
	FromCache bool
	Offline   bool
}

// CompleteResult is the outcome of a completion attempt. Validation
// verdicts (out of range, daily limit, already completed) land here
// with Success=false; ошибки зарезервированы для транспорта, auth и
// повреждений хранилища.
type CompleteResult struct {
	Code           string
	Message        string
	DistanceMeters float64
	RetryAfter     time.Duration
	Success        bool
	Queued         bool
}

// Service is the sync orchestrator. All shared mutable state (cache,
// queue) is reached only through its operations.
type Service struct {
	api    clientapi.ClientAPI
	conn   Connectivity
	cache  storage.CacheStorage
	queue  *queue.Queue
	tokens TokenSource
	logger *slog.Logger
	now    func() time.Time
	radius float64

	// group схлопывает конкурентные fetch по одному scope в один
	// сетевой запрос: второй вызов ждет и получает результат первого
	group singleflight.Group
}

// NewService creates the orchestrator
func NewService(
	api clientapi.ClientAPI,
	conn Connectivity,
	cache storage.CacheStorage,
	q *queue.Queue,
	tokens TokenSource,
	logger *slog.Logger,
) *Service {
	return &Service{
		api:    api,
		conn:   conn,
		cache:  cache,
		queue:  q,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		radius: geo.DefaultRadiusMeters,
	}
}

// FetchForRange returns the visits for the scope, partitioned by
// status. Online it queries the backend (with cache fallback on remote
// failure); offline it serves the cache at any age or fails with a
// connectivity failure.
func (s *Service) FetchForRange(ctx context.Context, scope models.Scope, forceRefresh bool) (*FetchResult, error) {
	v, err, shared := s.group.Do(scope.String(), func() (interface{}, error) {
		return s.fetchForRange(ctx, scope, forceRefresh)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("joined in-flight fetch", "scope", scope)
	}
	return v.(*FetchResult), nil
}

func (s *Service) fetchForRange(ctx context.Context, scope models.Scope, forceRefresh bool) (*FetchResult, error) {
	online, err := s.conn.CheckOnline(ctx)
	if err != nil {
		s.logger.Warn("connectivity check failed, assuming offline", "error", err)
		online = false
	}

	if !online {
		entry, err := s.cache.ReadRange(ctx, scope, false)
		if err != nil {
			if errors.Is(err, storage.ErrCacheMiss) {
				return nil, newFailure(KindConnectivity,
					fmt.Sprintf("no connection and no cached data for %s", scope), nil)
			}
			return nil, fmt.Errorf("failed to read cache: %w", err)
		}
		s.logger.Info("serving cached data offline", "scope", scope, "age", entry.Age(s.now()))
		return cachedResult(entry, true), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, newFailure(KindAuth, "authentication required", err)
	}

	// Идемпотентная чистка очереди: завершения, которые успели дойти
	// до сервера перед обрывом связи, снимаем без повторной отправки
	s.cleanupQueue(ctx, token)

	// Свежая запись кэша позволяет не ходить в сеть, если обновление
	// не форсировано
	if !forceRefresh {
		if entry, err := s.cache.ReadRange(ctx, scope, true); err == nil {
			s.logger.Debug("serving fresh cache online", "scope", scope)
			return cachedResult(entry, false), nil
		}
	}

	start, end, err := scope.Range(s.now())
	if err != nil {
		return nil, fmt.Errorf("invalid scope: %w", err)
	}

	fetchedAt := s.now()
	visits, err := s.api.FetchRange(ctx, token, start, end)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			// Auth ошибки идут наверх мимо любого fallback
			return nil, newFailure(KindAuth, "session rejected by backend", err)
		}

		// Сеть номинально есть, бэкенд не ответил: отдаем кэш любого
		// возраста - форсированное обновление уже не удалось
		if entry, cacheErr := s.cache.ReadRange(ctx, scope, false); cacheErr == nil {
			s.logger.Warn("remote fetch failed, falling back to cache",
				"scope", scope, "error", err)
			return cachedResult(entry, false), nil
		}

		return nil, newFailure(KindRemote,
			fmt.Sprintf("backend unavailable and no cached data for %s", scope), err)
	}

	result := &FetchResult{FetchedAt: fetchedAt}
	for _, visit := range visits {
		switch visit.Status {
		case models.StatusCompleted:
			result.Completed = append(result.Completed, visit)
		case models.StatusCancelled:
			// Отмененные не показываем и не кэшируем
		default:
			result.Pending = append(result.Pending, visit)
		}
	}

	// Оффлайн-доступность нужна только для "сегодня"
	if scope.Cacheable() {
		entry := &storage.CachedRange{
			WrittenAt: fetchedAt,
			Pending:   result.Pending,
			Completed: result.Completed,
		}
		if err := s.cache.WriteRange(ctx, scope, entry); err != nil {
			s.logger.Warn("failed to persist cache entry", "scope", scope, "error", err)
		}
	}

	s.logger.Info("range fetched",
		"scope", scope,
		"pending", len(result.Pending),
		"completed", len(result.Completed))

	return result, nil
}

// CompleteWithValidation completes a visit at the given coordinates.
// Online the backend validates atomically; offline the engine
// pre-validates against the cached patient location and queues the
// completion for later confirmation.
func (s *Service) CompleteWithValidation(ctx context.Context, visitID string, lat, lng float64, notes string) (*CompleteResult, error) {
	online, err := s.conn.CheckOnline(ctx)
	if err != nil {
		s.logger.Warn("connectivity check failed, assuming offline", "error", err)
		online = false
	}

	if online {
		return s.completeOnline(ctx, visitID, lat, lng, notes)
	}
	return s.completeOffline(ctx, visitID, lat, lng, notes)
}

func (s *Service) completeOnline(ctx context.Context, visitID string, lat, lng float64, notes string) (*CompleteResult, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, newFailure(KindAuth, "authentication required", err)
	}

	resp, err := s.api.CompleteVisit(ctx, token, visitID, lat, lng, notes)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			return nil, newFailure(KindAuth, "session rejected by backend", err)
		}
		return nil, newFailure(KindRemote, "completion request failed", err)
	}

	result := &CompleteResult{
		Success:        resp.Success,
		Code:           resp.Code,
		Message:        resp.Message,
		DistanceMeters: resp.DistanceMeters,
	}

	// Дневной лимит: retry-after до следующей локальной полуночи
	if resp.Code == pkgapi.CodeDailyLimit {
		result.RetryAfter = untilNextMidnight(s.now())
	}

	return result, nil
}

func (s *Service) completeOffline(ctx context.Context, visitID string, lat, lng float64, notes string) (*CompleteResult, error) {
	entry, err := s.cache.ReadRange(ctx, models.ScopeToday, false)
	if err != nil {
		if errors.Is(err, storage.ErrCacheMiss) {
			return nil, newFailure(KindNotFoundOffline, "no cached visits for today", nil)
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	// Уже завершенный по кэшу визит не ставим в очередь
	for _, visit := range entry.Completed {
		if visit.ID == visitID {
			return &CompleteResult{
				Code:    pkgapi.CodeAlreadyCompleted,
				Message: "visit already completed",
			}, nil
		}
	}

	var target *models.Visit
	for i := range entry.Pending {
		if entry.Pending[i].ID == visitID {
			target = &entry.Pending[i]
			break
		}
	}
	if target == nil {
		return nil, newFailure(KindNotFoundOffline,
			fmt.Sprintf("visit %s not in today's cached schedule", visitID), nil)
	}

	distance := geo.Distance(lat, lng, target.Lat, target.Lng)
	if !geo.Admits(distance, s.radius) {
		// Вне геозоны: не ставим в очередь, отдаем дистанцию для UI
		return &CompleteResult{
			Code:           pkgapi.CodeOutOfRange,
			Message:        fmt.Sprintf("%.0fm from the patient, limit is %.0fm", distance, s.radius),
			DistanceMeters: distance,
		}, nil
	}

	action := &storage.OfflineAction{
		VisitID:        visitID,
		Lat:            lat,
		Lng:            lng,
		Notes:          notes,
		DistanceMeters: distance,
	}
	if err := s.queue.Enqueue(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to queue completion: %w", err)
	}

	return &CompleteResult{
		Success:        true,
		Queued:         true,
		Code:           pkgapi.CodeOK,
		Message:        "completion queued for sync",
		DistanceMeters: distance,
	}, nil
}

// Reconcile aligns the offline queue with the server: confirmed
// completions are dropped without resubmission, the rest are retried
// through the normal online path. Returns the drain accounting; the
// number of newly confirmed completions is DrainResult.Confirmed.
func (s *Service) Reconcile(ctx context.Context) (*queue.DrainResult, error) {
	online, err := s.conn.CheckOnline(ctx)
	if err != nil || !online {
		return nil, newFailure(KindConnectivity, "reconciliation requires a connection", err)
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, newFailure(KindAuth, "authentication required", err)
	}

	s.cleanupQueue(ctx, token)

	result, err := s.queue.DrainAndRetry(ctx, func(ctx context.Context, action *storage.OfflineAction) (*pkgapi.CompleteResponse, error) {
		return s.api.CompleteVisit(ctx, token, action.VisitID, action.Lat, action.Lng, action.Notes)
	})
	if err != nil {
		return nil, fmt.Errorf("reconciliation failed: %w", err)
	}

	s.logger.Info("reconciliation finished",
		"confirmed", result.Confirmed,
		"already_completed", result.AlreadyCompleted,
		"rejected", len(result.Rejected),
		"transport_failed", result.TransportFailed)

	return result, nil
}

// ListOfflineQueue returns the pending offline completions
func (s *Service) ListOfflineQueue(ctx context.Context) ([]*storage.OfflineAction, error) {
	return s.queue.List(ctx)
}

// Distance exposes the engine's distance computation to the UI layer
func (s *Service) Distance(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.Distance(lat1, lng1, lat2, lng2)
}

// cleanupQueue удаляет из очереди завершения, уже известные серверу.
// Закрывает гонку: отправка успела пройти, а подтверждение съел обрыв
// связи. Ошибки здесь не фатальны - чистка повторится при следующем
// онлайн-проходе.
func (s *Service) cleanupQueue(ctx context.Context, token string) {
	actions, err := s.queue.List(ctx)
	if err != nil {
		s.logger.Warn("queue cleanup: list failed", "error", err)
		return
	}
	if len(actions) == 0 {
		return
	}

	ids := make([]string, 0, len(actions))
	for _, action := range actions {
		ids = append(ids, action.VisitID)
	}

	completed, err := s.api.CheckCompleted(ctx, token, ids)
	if err != nil {
		s.logger.Warn("queue cleanup: check failed", "error", err)
		return
	}

	for _, id := range completed {
		if err := s.queue.Remove(ctx, id); err != nil {
			s.logger.Warn("queue cleanup: remove failed", "visit_id", id, "error", err)
			continue
		}
		s.logger.Info("dropped already-confirmed completion", "visit_id", id)
	}
}

func cachedResult(entry *storage.CachedRange, offline bool) *FetchResult {
	return &FetchResult{
		FetchedAt: entry.WrittenAt,
		Pending:   entry.Pending,
		Completed: entry.Completed,
		FromCache: true,
		Offline:   offline,
	}
}

// untilNextMidnight возвращает время до следующей локальной полуночи
func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
