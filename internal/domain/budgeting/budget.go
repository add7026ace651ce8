package budgeting

import (
	"fmt"
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BudgetPeriod is the period kind of a budget
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodCustom  BudgetPeriod = "custom"
)

// IsValid checks if the period is a known BudgetPeriod
func (p BudgetPeriod) IsValid() bool {
	return p == PeriodMonthly || p == PeriodCustom
}

// Budget tracks per-category spending limits for one period within a group.
type Budget struct {
	shared.BaseEntity
	GroupID         uuid.UUID
	Name            string
	Period          BudgetPeriod
	PeriodStart     time.Time
	PeriodEnd       *time.Time
	Currency        string
	TotalLimitCents *int64
	CreatedBy       uuid.UUID
}

// NewMonthlyBudget creates a budget covering the calendar month of the given
// date. The name is derived from the month and year ("Budget March 2024")
// and the period start is the first day of that month, date-only.
func NewMonthlyBudget(groupID uuid.UUID, at time.Time, currency string, createdBy uuid.UUID) (*Budget, error) {
	if groupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GROUP", "Budget group is required")
	}
	if currency = strings.TrimSpace(currency); currency == "" {
		currency = DefaultCurrency
	}
	start := MonthStart(at)
	return &Budget{
		BaseEntity:  shared.NewBaseEntity(),
		GroupID:     groupID,
		Name:        fmt.Sprintf("Budget %s %d", at.Month().String(), at.Year()),
		Period:      PeriodMonthly,
		PeriodStart: start,
		Currency:    currency,
		CreatedBy:   createdBy,
	}, nil
}

// MonthStart returns the first calendar day of the month of t, date-only.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BudgetItem is a per-category limit within one budget.
// (budget, category) is unique.
type BudgetItem struct {
	ID         uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	LimitCents int64
	CreatedAt  time.Time
}

// NewBudgetItem creates a budget item with a limit in minor units.
func NewBudgetItem(budgetID, categoryID uuid.UUID, limitCents int64) (*BudgetItem, error) {
	if limitCents <= 0 {
		return nil, shared.NewDomainError("INVALID_LIMIT", "Budget item limit must be positive")
	}
	return &BudgetItem{
		ID:         uuid.New(),
		BudgetID:   budgetID,
		CategoryID: categoryID,
		LimitCents: limitCents,
		CreatedAt:  time.Now(),
	}, nil
}
