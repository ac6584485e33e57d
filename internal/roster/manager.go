// Package roster хранит снимок состава команды на стороне клиента и
// синхронизирует его с удаленным сервисом участников.
//
// Снимок никогда не является источником истины: после каждой успешной
// мутации он целиком заменяется свежим результатом List. Ошибки сервиса
// не возвращаются вызывающему коду, а только пишутся в лог.
package roster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aidar/dsc-roster/internal/domain"
)

// Store описывает удаленное хранилище участников (реализуется client.Client)
type Store interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Create(ctx context.Context, draft domain.Draft) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, draft domain.Draft) error
	Delete(ctx context.Context, id string) error
}

// Manager управляет снимком состава команды
type Manager struct {
	store  Store
	logger *slog.Logger

	mu       sync.RWMutex
	snapshot []domain.TeamMember
}

// NewManager создает Manager с пустым снимком
func NewManager(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:    store,
		logger:   logger,
		snapshot: []domain.TeamMember{},
	}
}

// Snapshot возвращает копию текущего снимка
func (m *Manager) Snapshot() []domain.TeamMember {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.snapshot)
}

// LoadAll загружает полный состав и заменяет снимок.
// При ошибке снимок не меняется и возвращается прежнее значение.
func (m *Manager) LoadAll(ctx context.Context) []domain.TeamMember {
	members, err := m.store.List(ctx)
	if err != nil {
		m.logger.Error("Error fetching team members", "error", err)
		return m.Snapshot()
	}

	fresh := clone(members)

	m.mu.Lock()
	m.snapshot = fresh
	m.mu.Unlock()

	return clone(fresh)
}

// Create отправляет черновик в сервис и после успеха обновляет снимок.
// Возвращает nil, если сервис вернул ошибку.
func (m *Manager) Create(ctx context.Context, draft domain.Draft) *domain.TeamMember {
	member, err := m.store.Create(ctx, draft)
	if err != nil {
		m.logger.Error("Error saving team member", "op", "create", "error", err)
		return nil
	}

	m.LoadAll(ctx)
	return member
}

// Update полностью заменяет поля участника id значениями черновика.
// Существование id не проверяется: ошибка сервиса только логируется.
func (m *Manager) Update(ctx context.Context, id string, draft domain.Draft) bool {
	if err := m.store.Update(ctx, id, draft); err != nil {
		m.logger.Error("Error saving team member", "op", "update", "id", id, "error", err)
		return false
	}

	m.LoadAll(ctx)
	return true
}

// Remove удаляет участника по подтвержденному намерению и обновляет снимок
func (m *Manager) Remove(ctx context.Context, intent RemovalIntent) bool {
	if !intent.valid() {
		m.logger.Error("Refusing to delete team member without confirmation")
		return false
	}

	if err := m.store.Delete(ctx, intent.id); err != nil {
		m.logger.Error("Error deleting team member", "id", intent.id, "error", err)
		return false
	}

	m.LoadAll(ctx)
	return true
}

func clone(members []domain.TeamMember) []domain.TeamMember {
	out := make([]domain.TeamMember, len(members))
	copy(out, members)
	return out
}
