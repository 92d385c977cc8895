package api

// CreateVisitRequest представляет административный запрос на создание
// визита для конкретного работника
type CreateVisitRequest struct {
	WorkerID string      `json:"worker_id"`
	Visit    VisitRecord `json:"visit"`
}

// CreateVisitResponse возвращает id созданного визита
type CreateVisitResponse struct {
	VisitID string `json:"visit_id"`
}

// ReopenResponse подтверждает административный откат завершения
type ReopenResponse struct {
	VisitID string `json:"visit_id"`
	Status  string `json:"status"`
}
