package domain

import "errors"

// Доменные ошибки сервиса участников
var (
	// ErrMemberNotFound возвращается когда участник с указанным ID не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrInvalidMember возвращается когда не заполнены обязательные поля name и role
	ErrInvalidMember = errors.New("name and role are required")

	// ErrMemberExists возвращается при повторной вставке участника с тем же ID
	ErrMemberExists = errors.New("team member already exists")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"    // Некорректный запрос
	CodeNotFound   ErrorCode = "NOT_FOUND"      // Ресурс не найден
	CodeConflict   ErrorCode = "CONFLICT"       // Ресурс уже существует
	CodeInternal   ErrorCode = "INTERNAL_ERROR" // Внутренняя ошибка сервера
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidMember):
		return CodeBadRequest
	case errors.Is(err, ErrMemberNotFound):
		return CodeNotFound
	case errors.Is(err, ErrMemberExists):
		return CodeConflict
	default:
		return CodeInternal
	}
}
