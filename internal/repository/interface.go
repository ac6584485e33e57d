package repository

import (
	"context"

	"github.com/aidar/dsc-roster/internal/domain"
)

// MemberRepository определяет методы для работы с данными участников команды
type MemberRepository interface {
	// Create сохраняет нового участника (ID и временные метки уже заполнены)
	Create(ctx context.Context, member *domain.TeamMember) error

	// List возвращает всех участников в порядке создания
	List(ctx context.Context) ([]*domain.TeamMember, error)

	// GetByID получает участника по ID
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)

	// Update перезаписывает редактируемые поля участника и updated_at
	Update(ctx context.Context, member *domain.TeamMember) error

	// Delete удаляет участника по ID
	Delete(ctx context.Context, id string) error
}
