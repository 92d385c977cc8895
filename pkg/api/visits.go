package api

import "time"

// VisitRecord представляет одну престацию (домашний визит) на проводе.
// Координаты пациента всегда передаются как плоские lat/lng float64 —
// это единственное представление локации в системе, клиент никогда
// не разбирает GeoJSON/WKT и прочие форматы.
type VisitRecord struct {
	ScheduledAt  time.Time `json:"scheduled_at"`
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	PatientName  string    `json:"patient_name"`
	PatientPhone string    `json:"patient_phone"`
	Address      string    `json:"address"`
	Description  string    `json:"description"`
	Notes        string    `json:"notes"`
	ServiceType  string    `json:"service_type"`
	AmountCents  int64     `json:"amount_cents"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
}

// VisitsResponse представляет ответ на запрос диапазона визитов
type VisitsResponse struct {
	Visits []VisitRecord `json:"visits"`
}

// Коды результата завершения визита.
// Это доменные исходы, а не ошибки транспорта: сервер отвечает ими
// со статусом 200, чтобы клиент мог различать их без разбора строк.
const (
	CodeOK               = "ok"                // визит завершен
	CodeOutOfRange       = "out_of_range"      // работник вне геозоны пациента
	CodeDailyLimit       = "daily_limit"       // услуга уже оказана сегодня
	CodeAlreadyCompleted = "already_completed" // визит уже завершен ранее
	CodeNotFound         = "not_found"         // визит не найден или отменен
)

// CompleteRequest представляет запрос на завершение визита
type CompleteRequest struct {
	Notes string  `json:"notes,omitempty"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// CompleteResponse представляет результат завершения визита.
// Сервер авторитетен для геозоны и дневного лимита.
type CompleteResponse struct {
	Code              string  `json:"code"`
	Message           string  `json:"message"`
	DistanceMeters    float64 `json:"distance_meters,omitempty"`
	RetryAfterSeconds int64   `json:"retry_after_seconds,omitempty"`
	Success           bool    `json:"success"`
}

// CompletedCheckRequest представляет запрос проверки идемпотентности:
// какие из перечисленных визитов уже завершены на сервере
type CompletedCheckRequest struct {
	IDs []string `json:"ids"`
}

// CompletedCheckResponse представляет подмножество уже завершенных визитов
type CompletedCheckResponse struct {
	CompletedIDs []string `json:"completed_ids"`
}
