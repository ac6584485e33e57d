package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aidar/dsc-roster/internal/domain"
)

// MemberRepository реализует repository.MemberRepository в памяти процесса
type MemberRepository struct {
	mu      sync.RWMutex
	members map[string]domain.TeamMember
}

// NewMemberRepository создает пустое хранилище участников
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{members: make(map[string]domain.TeamMember)}
}

// Create сохраняет нового участника
func (r *MemberRepository) Create(_ context.Context, member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.ID]; ok {
		return domain.ErrMemberExists
	}

	r.members[member.ID] = *member
	return nil
}

// List возвращает всех участников в порядке ORDER BY created_at, id (NULL в конце, как в PostgreSQL)
func (r *MemberRepository) List(_ context.Context) ([]*domain.TeamMember, error) {
	r.mu.RLock()
	members := make([]*domain.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		member := m
		members = append(members, &member)
	}
	r.mu.RUnlock()

	sort.Slice(members, func(i, j int) bool {
		a, b := members[i].CreatedAt, members[j].CreatedAt
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case a == nil && b != nil:
			return false
		case a != nil && b == nil:
			return true
		}
		return members[i].ID < members[j].ID
	})

	return members, nil
}

// GetByID получает участника по ID
func (r *MemberRepository) GetByID(_ context.Context, id string) (*domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return &member, nil
}

// Update перезаписывает поля существующего участника
func (r *MemberRepository) Update(_ context.Context, member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.members[member.ID]
	if !ok {
		return domain.ErrMemberNotFound
	}

	// created_at не меняется при обновлении
	updated := *member
	updated.CreatedAt = existing.CreatedAt
	r.members[member.ID] = updated
	return nil
}

// Delete удаляет участника по ID
func (r *MemberRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return domain.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}
