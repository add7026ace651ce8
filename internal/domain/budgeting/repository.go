package budgeting

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GroupRepository defines persistence operations for groups and memberships
type GroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]Group, error)
	Save(ctx context.Context, group *Group) error
	AddMember(ctx context.Context, membership *Membership) error
	IsMember(ctx context.Context, groupID, profileID uuid.UUID) (bool, error)
	FindMembers(ctx context.Context, groupID uuid.UUID) ([]GroupMember, error)
	CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// GroupMember is a membership joined with its profile info, as exposed by
// the members listing.
type GroupMember struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Email     string
	FullName  string
	AvatarURL string
	Role      MemberRole
	JoinedAt  time.Time
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]Category, error)
	FindByName(ctx context.Context, groupID uuid.UUID, name string) (*Category, error)
	Save(ctx context.Context, category *Category) error
	SaveAll(ctx context.Context, categories []Category) error
}

// BudgetRepository defines persistence operations for budgets and items
type BudgetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]Budget, error)
	Save(ctx context.Context, budget *Budget) error
	SaveItem(ctx context.Context, item *BudgetItem) error
	FindItems(ctx context.Context, budgetID uuid.UUID) ([]BudgetItem, error)
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	shared.Filter
	From       *time.Time
	To         *time.Time
	Direction  *Direction
	CategoryID *uuid.UUID
}

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID, filter TransactionFilter) ([]Transaction, error)
	CountByGroup(ctx context.Context, groupID uuid.UUID, filter TransactionFilter) (int64, error)
	Save(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
