package handler

import (
	"net/http"

	"github.com/aidar/dsc-roster/internal/service"
)

// ClubHandler обрабатывает эндпоинты с информацией о клубе
type ClubHandler struct {
	clubService *service.ClubService
}

// NewClubHandler создает новый ClubHandler
func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// RootResponse представляет ответ корневого эндпоинта
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Root обрабатывает GET /
func (h *ClubHandler) Root(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "DSC Team Management API",
		Status:  "running",
	})
}

// Info обрабатывает GET /api/club-info
func (h *ClubHandler) Info(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, h.clubService.Info())
}
