package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/dsc-roster/internal/domain"
	"github.com/aidar/dsc-roster/internal/repository/memory"
)

func newTestService() *MemberService {
	svc := NewMemberService(memory.NewMemberRepository())
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func TestMemberService_CreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newTestService()

	member, err := svc.Create(context.Background(), domain.Draft{Name: "Ada", Role: "Lead"})
	require.NoError(t, err)

	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "Ada", member.Name)
	assert.Equal(t, "Lead", member.Role)
	assert.Equal(t, "", member.Photo)
	assert.Equal(t, "", member.Description)
	require.NotNil(t, member.CreatedAt)
	assert.Equal(t, member.CreatedAt, member.UpdatedAt)
}

func TestMemberService_CreateRejectsMissingFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), domain.Draft{Name: "Ada"})
	assert.ErrorIs(t, err, domain.ErrInvalidMember)

	_, err = svc.Create(context.Background(), domain.Draft{Role: "Lead"})
	assert.ErrorIs(t, err, domain.ErrInvalidMember)
}

func TestMemberService_CreateUsesUniqueIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.Draft{Name: "Ada", Role: "Lead"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, domain.Draft{Name: "Ada", Role: "Lead"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemberService_UpdatePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Draft{Name: "Ada", Role: "Lead", Photo: "http://img/ada.png"})
	require.NoError(t, err)

	desc := "x"
	updated, err := svc.Update(ctx, created.ID, domain.MemberUpdate{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "http://img/ada.png", updated.Photo)
	assert.Equal(t, "x", updated.Description)
	assert.True(t, updated.UpdatedAt.After(*created.CreatedAt))
}

func TestMemberService_UpdateFullReplace(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Draft{Name: "Ada", Role: "Lead", Photo: "http://img/ada.png"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, domain.FullUpdate(domain.Draft{Name: "Ada L.", Role: "Lead", Description: "x"}))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Draft{Name: "Ada L.", Role: "Lead", Photo: "", Description: "x"}, domain.DraftOf(*got))
}

func TestMemberService_UpdateCannotBlankRequiredFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Draft{Name: "Ada", Role: "Lead"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, created.ID, domain.MemberUpdate{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidMember)
}

func TestMemberService_MissingMember(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	_, err = svc.Update(ctx, "missing", domain.MemberUpdate{})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	err = svc.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrMemberNotFound))
}

func TestClubService_InfoIsCopied(t *testing.T) {
	svc := NewClubService()

	info := svc.Info()
	info.Activities[0] = "changed"

	assert.Equal(t, "Developer Students Club", svc.Info().Name)
	assert.Equal(t, "Workshops and technical sessions", svc.Info().Activities[0])
}
