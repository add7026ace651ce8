package budgeting

import (
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryKind scopes a category to a transaction direction
type CategoryKind string

const (
	KindIncome   CategoryKind = "income"
	KindExpense  CategoryKind = "expense"
	KindTransfer CategoryKind = "transfer"
)

// IsValid checks if the kind is a known CategoryKind
func (k CategoryKind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}

// String returns the string representation of CategoryKind
func (k CategoryKind) String() string {
	return string(k)
}

// Category labels transactions and budget items within a group.
// (group, name) is unique; name comparison is exact and case-sensitive.
type Category struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	Name      string
	Kind      CategoryKind
	CreatedAt time.Time
}

// NewCategory creates a category scoped to a group. The name is trimmed;
// an empty kind defaults to expense.
func NewCategory(groupID uuid.UUID, name string, kind CategoryKind) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name is required")
	}
	if kind == "" {
		kind = KindExpense
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY_KIND", "Unknown category kind")
	}
	return &Category{
		ID:        uuid.New(),
		GroupID:   groupID,
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now(),
	}, nil
}

// DefaultCategory is one entry of the seed catalog
type DefaultCategory struct {
	Name string
	Kind CategoryKind
}

// DefaultCategories is the catalog seeded into every new group. Names are
// pre-trimmed; seeding skips entries whose exact name already exists in
// the group.
var DefaultCategories = []DefaultCategory{
	{Name: "Rent", Kind: KindExpense},
	{Name: "Utilities: Electricity", Kind: KindExpense},
	{Name: "Utilities: Water", Kind: KindExpense},
	{Name: "Utilities: Gas", Kind: KindExpense},
	{Name: "Food (eating out)", Kind: KindExpense},
	{Name: "Groceries", Kind: KindExpense},
	{Name: "Shopping", Kind: KindExpense},
	{Name: "Hobbies", Kind: KindExpense},
	{Name: "Travel", Kind: KindExpense},
	{Name: "Transportation", Kind: KindExpense},
	{Name: "Healthcare", Kind: KindExpense},
	{Name: "Entertainment", Kind: KindExpense},
	{Name: "Salary", Kind: KindIncome},
	{Name: "Investment", Kind: KindIncome},
	{Name: "Freelance", Kind: KindIncome},
	{Name: "Gift", Kind: KindIncome},
}
