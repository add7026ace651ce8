package budgeting

import (
	"context"
	"testing"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/identity"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupService_ListForProfile(t *testing.T) {
	profileID := uuid.New()

	mkGroup := func(name string) budgeting.Group {
		group, err := budgeting.NewGroup(name, profileID)
		require.NoError(t, err)
		return *group
	}

	t.Run("flags the active group", func(t *testing.T) {
		groupRepo := new(MockGroupRepository)
		profileRepo := new(MockProfileRepository)
		service := NewGroupService(groupRepo, profileRepo)

		active := mkGroup("Active")
		other := mkGroup("Other")
		groupRepo.On("FindByProfile", mock.Anything, profileID).Return([]budgeting.Group{active, other}, nil)

		profile, err := identity.NewProfile(profileID, "user@example.com")
		require.NoError(t, err)
		profile.SetActiveGroup(active.ID)
		profileRepo.On("FindByID", mock.Anything, profileID).Return(profile, nil)

		groups, err := service.ListForProfile(context.Background(), profileID)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.True(t, groups[0].IsActive)
		assert.False(t, groups[1].IsActive)
	})

	t.Run("no active flag when profile is missing", func(t *testing.T) {
		groupRepo := new(MockGroupRepository)
		profileRepo := new(MockProfileRepository)
		service := NewGroupService(groupRepo, profileRepo)

		group := mkGroup("Keluarga")
		groupRepo.On("FindByProfile", mock.Anything, profileID).Return([]budgeting.Group{group}, nil)
		profileRepo.On("FindByID", mock.Anything, profileID).Return(nil, shared.ErrNotFound)

		groups, err := service.ListForProfile(context.Background(), profileID)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.False(t, groups[0].IsActive)
	})
}

func TestGroupService_Members(t *testing.T) {
	profileID := uuid.New()
	groupID := uuid.New()

	t.Run("lists members for a member", func(t *testing.T) {
		groupRepo := new(MockGroupRepository)
		service := NewGroupService(groupRepo, new(MockProfileRepository))

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(true, nil)
		groupRepo.On("FindMembers", mock.Anything, groupID).Return([]budgeting.GroupMember{
			{
				ProfileID: profileID,
				Email:     "owner@example.com",
				Role:      budgeting.RoleOwner,
				JoinedAt:  time.Now(),
			},
		}, nil)

		members, err := service.Members(context.Background(), profileID, groupID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "owner", members[0].Role)
		assert.Equal(t, "owner@example.com", members[0].Email)
	})

	t.Run("rejects non-members", func(t *testing.T) {
		groupRepo := new(MockGroupRepository)
		service := NewGroupService(groupRepo, new(MockProfileRepository))

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(false, nil)

		_, err := service.Members(context.Background(), profileID, groupID)
		assert.Equal(t, shared.ErrNotGroupMember, err)
		groupRepo.AssertNotCalled(t, "FindMembers", mock.Anything, mock.Anything)
	})
}
