package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger проверяет доступность хранилища (реализуется *pgxpool.Pool)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает проверку состояния сервиса
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler создает новый HealthHandler; db может быть nil для хранилища в памяти
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HealthResponse представляет ответ проверки состояния
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Check обрабатывает GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy", Database: "memory"})
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Database ping failed", "error", err)
		RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "unhealthy", Error: err.Error()})
		return
	}

	RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}
