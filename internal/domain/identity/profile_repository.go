package identity

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines persistence operations for profiles
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
	SetActiveGroup(ctx context.Context, profileID, groupID uuid.UUID) error
}
