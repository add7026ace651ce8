package budgeting

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BudgetService handles budget listing
type BudgetService struct {
	budgetRepo budgeting.BudgetRepository
	groupRepo  budgeting.GroupRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo budgeting.BudgetRepository, groupRepo budgeting.GroupRepository) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		groupRepo:  groupRepo,
	}
}

// BudgetItemResponse is one per-category limit
type BudgetItemResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	LimitCents int64     `json:"limitCents"`
}

// BudgetResponse is one budget with its items
type BudgetResponse struct {
	ID              uuid.UUID            `json:"id"`
	GroupID         uuid.UUID            `json:"groupId"`
	Name            string               `json:"name"`
	Period          string               `json:"period"`
	PeriodStart     time.Time            `json:"periodStart"`
	PeriodEnd       *time.Time           `json:"periodEnd,omitempty"`
	Currency        string               `json:"currency"`
	TotalLimitCents *int64               `json:"totalLimitCents,omitempty"`
	Items           []BudgetItemResponse `json:"items"`
}

// ListForGroup lists the budgets of a group with their items, newest
// period first. The requester must be a member.
func (s *BudgetService) ListForGroup(ctx context.Context, profileID, groupID uuid.UUID) ([]BudgetResponse, error) {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, profileID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, shared.ErrNotGroupMember
	}

	budgets, err := s.budgetRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		items, err := s.budgetRepo.FindItems(ctx, budget.ID)
		if err != nil {
			return nil, err
		}
		itemResponses := make([]BudgetItemResponse, len(items))
		for j, item := range items {
			itemResponses[j] = BudgetItemResponse{
				ID:         item.ID,
				CategoryID: item.CategoryID,
				LimitCents: item.LimitCents,
			}
		}
		responses[i] = BudgetResponse{
			ID:              budget.ID,
			GroupID:         budget.GroupID,
			Name:            budget.Name,
			Period:          string(budget.Period),
			PeriodStart:     budget.PeriodStart,
			PeriodEnd:       budget.PeriodEnd,
			Currency:        budget.Currency,
			TotalLimitCents: budget.TotalLimitCents,
			Items:           itemResponses,
		}
	}
	return responses, nil
}
