package persistence

import (
	"context"
	"errors"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/celengan/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBudgetRepository implements BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormBudgetRepository) WithTx(tx *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: tx}
}

// FindByID finds a budget by its ID
func (r *GormBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Budget, error) {
	var model models.BudgetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByGroup lists all budgets in a group, newest period first
func (r *GormBudgetRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]budgeting.Budget, error) {
	var budgetModels []models.BudgetModel
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("period_start DESC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]budgeting.Budget, len(budgetModels))
	for i, model := range budgetModels {
		budgets[i] = *model.ToDomain()
	}
	return budgets, nil
}

// Save creates or updates a budget
func (r *GormBudgetRepository) Save(ctx context.Context, budget *budgeting.Budget) error {
	model := models.BudgetModelFromDomain(budget)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveItem inserts a budget item.
// Returns ErrAlreadyExists when the (budget, category) pair is taken.
func (r *GormBudgetRepository) SaveItem(ctx context.Context, item *budgeting.BudgetItem) error {
	model := models.BudgetItemModelFromDomain(item)
	err := r.db.WithContext(ctx).Create(model).Error
	if isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// FindItems lists the items of a budget in insertion order
func (r *GormBudgetRepository) FindItems(ctx context.Context, budgetID uuid.UUID) ([]budgeting.BudgetItem, error) {
	var itemModels []models.BudgetItemModel
	err := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]budgeting.BudgetItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

var _ budgeting.BudgetRepository = (*GormBudgetRepository)(nil)
