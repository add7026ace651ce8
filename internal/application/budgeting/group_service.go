package budgeting

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/identity"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GroupService handles group listing and membership queries
type GroupService struct {
	groupRepo   budgeting.GroupRepository
	profileRepo identity.ProfileRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo budgeting.GroupRepository, profileRepo identity.ProfileRepository) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		profileRepo: profileRepo,
	}
}

// GroupResponse is one group as seen by the requesting profile
type GroupResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DefaultCurrency string    `json:"defaultCurrency"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	IsActive        bool      `json:"isActive"`
}

// MemberResponse is one group member joined with profile info
type MemberResponse struct {
	ProfileID uuid.UUID `json:"profileId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// ListForProfile lists the requesting profile's groups, newest first, each
// flagged against the profile's active group.
func (s *GroupService) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]GroupResponse, error) {
	groups, err := s.groupRepo.FindByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	var activeID uuid.UUID
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if err == nil && profile.ActiveGroupID != nil {
		activeID = *profile.ActiveGroupID
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = GroupResponse{
			ID:              group.ID,
			Name:            group.Name,
			DefaultCurrency: group.DefaultCurrency,
			CreatedBy:       group.CreatedBy,
			CreatedAt:       group.CreatedAt,
			IsActive:        group.ID == activeID,
		}
	}
	return responses, nil
}

// Members lists the members of a group. The requester must be a member.
func (s *GroupService) Members(ctx context.Context, profileID, groupID uuid.UUID) ([]MemberResponse, error) {
	if err := s.requireMember(ctx, groupID, profileID); err != nil {
		return nil, err
	}

	members, err := s.groupRepo.FindMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = MemberResponse{
			ProfileID: member.ProfileID,
			Email:     member.Email,
			FullName:  member.FullName,
			AvatarURL: member.AvatarURL,
			Role:      string(member.Role),
			JoinedAt:  member.JoinedAt,
		}
	}
	return responses, nil
}

// requireMember resolves to ErrNotGroupMember when the profile does not
// belong to the group.
func (s *GroupService) requireMember(ctx context.Context, groupID, profileID uuid.UUID) error {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, profileID)
	if err != nil {
		return err
	}
	if !isMember {
		return shared.ErrNotGroupMember
	}
	return nil
}
