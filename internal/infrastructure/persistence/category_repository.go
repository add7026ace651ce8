package persistence

import (
	"context"
	"errors"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/celengan/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: tx}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByGroup lists all categories in a group, ordered by name
func (r *GormCategoryRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]budgeting.Category, error) {
	var categoryModels []models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	categories := make([]budgeting.Category, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = *model.ToDomain()
	}
	return categories, nil
}

// FindByName finds a category by its exact name within a group.
// The match is case-sensitive.
func (r *GormCategoryRepository) FindByName(ctx context.Context, groupID uuid.UUID, name string) (*budgeting.Category, error) {
	var model models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND name = ?", groupID, name).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a category.
// Returns ErrAlreadyExists when the (group, name) pair is taken.
func (r *GormCategoryRepository) Save(ctx context.Context, category *budgeting.Category) error {
	model := models.CategoryModelFromDomain(category)
	err := r.db.WithContext(ctx).Save(model).Error
	if isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// SaveAll inserts categories in one batch, silently skipping rows whose
// (group, name) pair already exists. Used for seeding the default catalog.
func (r *GormCategoryRepository) SaveAll(ctx context.Context, categories []budgeting.Category) error {
	if len(categories) == 0 {
		return nil
	}
	categoryModels := make([]*models.CategoryModel, len(categories))
	for i := range categories {
		categoryModels[i] = models.CategoryModelFromDomain(&categories[i])
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(categoryModels).Error
}

var _ budgeting.CategoryRepository = (*GormCategoryRepository)(nil)
