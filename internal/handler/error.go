package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/dsc-roster/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := string(domain.MapErrorToCode(err))

	switch {
	case errors.Is(err, domain.ErrInvalidMember):
		RespondWithError(w, r, http.StatusBadRequest, code, "name and role are required")
	case errors.Is(err, domain.ErrMemberNotFound):
		RespondWithError(w, r, http.StatusNotFound, code, "Team member not found")
	case errors.Is(err, domain.ErrMemberExists):
		RespondWithError(w, r, http.StatusConflict, code, "team member already exists")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, code, "internal server error")
	}
}
