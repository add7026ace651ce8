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

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormTransactionRepository) WithTx(tx *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: tx}
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByGroup lists transactions in a group matching the filter,
// newest first, paginated.
func (r *GormTransactionRepository) FindByGroup(ctx context.Context, groupID uuid.UUID, filter budgeting.TransactionFilter) ([]budgeting.Transaction, error) {
	f := filter.Filter.Normalize()

	var transactionModels []models.TransactionModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TransactionModel{}), groupID, filter).
		Order("occurred_at DESC, created_at DESC").
		Limit(f.PageSize).
		Offset(f.Offset())

	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]budgeting.Transaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// CountByGroup counts transactions in a group matching the filter
func (r *GormTransactionRepository) CountByGroup(ctx context.Context, groupID uuid.UUID, filter budgeting.TransactionFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TransactionModel{}), groupID, filter)
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *budgeting.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a transaction
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter narrows the query to the group and the optional filter fields
func (r *GormTransactionRepository) applyFilter(query *gorm.DB, groupID uuid.UUID, filter budgeting.TransactionFilter) *gorm.DB {
	query = query.Where("group_id = ?", groupID)
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}
	if filter.Direction != nil {
		query = query.Where("direction = ?", *filter.Direction)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	return query
}

var _ budgeting.TransactionRepository = (*GormTransactionRepository)(nil)
