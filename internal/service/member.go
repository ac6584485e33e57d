package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidar/dsc-roster/internal/domain"
	"github.com/aidar/dsc-roster/internal/repository"
)

// MemberService handles business logic for team members
type MemberService struct {
	memberRepo repository.MemberRepository
	now        func() time.Time
	newID      func() string
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Create assigns an ID and timestamps and stores the member
func (s *MemberService) Create(ctx context.Context, draft domain.Draft) (*domain.TeamMember, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	member := &domain.TeamMember{
		ID:          s.newID(),
		Name:        draft.Name,
		Role:        draft.Role,
		Photo:       draft.Photo,
		Description: draft.Description,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}

	return member, nil
}

// List returns all members ordered by creation time
func (s *MemberService) List(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.memberRepo.List(ctx)
}

// Get retrieves a member by ID
func (s *MemberService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of the update to an existing member
func (s *MemberService) Update(ctx context.Context, id string, update domain.MemberUpdate) (*domain.TeamMember, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(member)
	if member.Name == "" || member.Role == "" {
		return nil, domain.ErrInvalidMember
	}

	now := s.now()
	member.UpdatedAt = &now

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update team member %s: %w", id, err)
	}

	return member, nil
}

// Delete removes a member by ID
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team member %s: %w", id, err)
	}
	return nil
}
