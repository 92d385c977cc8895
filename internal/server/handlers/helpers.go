package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/homevisit/pkg/api"
)

// contextKey - отдельный тип для ключей контекста, чтобы не
// конфликтовать с другими пакетами
type contextKey string

const (
	// UserIDKey is the context key carrying the authenticated worker id
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key carrying the authenticated username
	UsernameKey contextKey = "username"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// workerID извлекает id аутентифицированного работника из контекста
func workerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserIDKey).(string)
	return id, ok && id != ""
}
