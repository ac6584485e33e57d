package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/dsc-roster/internal/domain"
	"github.com/aidar/dsc-roster/internal/service"
)

// MemberHandler обрабатывает эндпоинты участников команды
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler создает новый MemberHandler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// DeleteMemberResponse представляет ответ на удаление участника
type DeleteMemberResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// List обрабатывает GET /api/team-members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// Create обрабатывает POST /api/team-members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeBadRequest), "invalid request body")
		return
	}

	member, err := h.memberService.Create(r.Context(), draft)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// Get обрабатывает GET /api/team-members/{id}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// Update обрабатывает PUT /api/team-members/{id} (отсутствующие поля не меняются)
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var update domain.MemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeBadRequest), "invalid request body")
		return
	}

	member, err := h.memberService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// Delete обрабатывает DELETE /api/team-members/{id}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.memberService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DeleteMemberResponse{
		Message: "Team member deleted successfully",
		ID:      id,
	})
}
