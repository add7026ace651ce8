package identity

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/identity"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService handles profile queries and active-group switching
type ProfileService struct {
	profileRepo identity.ProfileRepository
	groupRepo   budgeting.GroupRepository
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo identity.ProfileRepository, groupRepo budgeting.GroupRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		groupRepo:   groupRepo,
		logger:      logger,
	}
}

// ProfileResponse is the current profile as returned to its owner
type ProfileResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	FullName            string     `json:"fullName,omitempty"`
	AvatarURL           string     `json:"avatarUrl,omitempty"`
	MonthlyIncomeCents  *int64     `json:"monthlyIncomeCents,omitempty"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	ActiveGroupID       *uuid.UUID `json:"activeGroupId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// Me returns the requesting identity's profile. A profile row is created
// lazily on first sight so a fresh identity always resolves.
func (s *ProfileService) Me(ctx context.Context, profileID uuid.UUID, email string) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, err
		}
		profile, err = identity.NewProfile(profileID, email)
		if err != nil {
			return nil, err
		}
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
		s.logger.Info("profile created on first sight",
			zap.String("profile_id", profileID.String()),
		)
	}
	return toProfileResponse(profile), nil
}

// SetActiveGroup switches the profile's active workspace.
// The profile must be a member of the target group.
func (s *ProfileService) SetActiveGroup(ctx context.Context, profileID, groupID uuid.UUID) error {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, profileID)
	if err != nil {
		return err
	}
	if !isMember {
		return shared.ErrNotGroupMember
	}
	return s.profileRepo.SetActiveGroup(ctx, profileID, groupID)
}

func toProfileResponse(profile *identity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:                  profile.ID,
		Email:               profile.Email,
		FullName:            profile.FullName,
		AvatarURL:           profile.AvatarURL,
		MonthlyIncomeCents:  profile.MonthlyIncomeCents,
		OnboardingCompleted: profile.OnboardingCompleted,
		ActiveGroupID:       profile.ActiveGroupID,
		CreatedAt:           profile.CreatedAt,
	}
}
