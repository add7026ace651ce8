package identity

import (
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Profile is the application-level record for an authenticated identity.
// Its ID equals the identity provider's user ID; the provider itself is
// external and opaque to this service.
type Profile struct {
	shared.BaseEntity
	Email                 string
	FullName              string
	AvatarURL             string
	MonthlyIncomeCents    *int64
	OnboardingCompleted   bool
	OnboardingCompletedAt *time.Time
	ActiveGroupID         *uuid.UUID
}

// NewProfile creates a profile for an externally-authenticated identity.
// The profile ID must equal the identity provider's user ID.
func NewProfile(id uuid.UUID, email string) (*Profile, error) {
	email = strings.TrimSpace(email)
	if id == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROFILE_ID", "Profile ID is required")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	now := time.Now()
	return &Profile{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email: email,
	}, nil
}

// CompleteOnboarding records the one-time onboarding completion. The income
// is stored in minor currency units; nil means the user skipped it.
func (p *Profile) CompleteOnboarding(monthlyIncomeCents *int64, at time.Time) {
	p.MonthlyIncomeCents = monthlyIncomeCents
	p.OnboardingCompleted = true
	p.OnboardingCompletedAt = &at
	p.UpdatedAt = at
}

// SetActiveGroup switches the profile's active workspace.
func (p *Profile) SetActiveGroup(groupID uuid.UUID) {
	p.ActiveGroupID = &groupID
	p.UpdatedAt = time.Now()
}
