package budgeting

import (
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultCurrency is the currency assigned to new groups.
const DefaultCurrency = "IDR"

// Group is a shared budgeting workspace. Categories, budgets and
// transactions are scoped to exactly one group.
type Group struct {
	shared.BaseEntity
	Name            string
	DefaultCurrency string
	CreatedBy       uuid.UUID
}

// NewGroup creates a group owned by the creating profile.
func NewGroup(name string, createdBy uuid.UUID) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_GROUP_NAME", "Group name is required")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Group creator is required")
	}
	return &Group{
		BaseEntity:      shared.NewBaseEntity(),
		Name:            name,
		DefaultCurrency: DefaultCurrency,
		CreatedBy:       createdBy,
	}, nil
}

// Rename updates the group name.
func (g *Group) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_GROUP_NAME", "Group name is required")
	}
	g.Name = name
	g.UpdatedAt = time.Now()
	return nil
}

// MemberRole is the role of a profile within a group
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

// IsValid checks if the role is a known MemberRole
func (r MemberRole) IsValid() bool {
	return r == RoleOwner || r == RoleMember
}

// Membership links a profile to a group with a role. At most one
// membership exists per (group, profile) pair.
type Membership struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	ProfileID uuid.UUID
	Role      MemberRole
	CreatedAt time.Time
}

// NewMembership creates a membership row.
func NewMembership(groupID, profileID uuid.UUID, role MemberRole) (*Membership, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown member role")
	}
	return &Membership{
		ID:        uuid.New(),
		GroupID:   groupID,
		ProfileID: profileID,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}
