package budgeting

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService handles category listing and default-catalog seeding
type CategoryService struct {
	categoryRepo budgeting.CategoryRepository
	groupRepo    budgeting.GroupRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo budgeting.CategoryRepository, groupRepo budgeting.GroupRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		groupRepo:    groupRepo,
		logger:       logger,
	}
}

// CategoryResponse is one category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"groupId"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// SeedResult reports the outcome of a default-catalog seeding run
type SeedResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// List lists the categories of a group, ordered by name.
// The requester must be a member.
func (s *CategoryService) List(ctx context.Context, profileID, groupID uuid.UUID) ([]CategoryResponse, error) {
	if err := s.requireMember(ctx, groupID, profileID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = toCategoryResponse(category)
	}
	return responses, nil
}

// SeedDefaults inserts the default catalog into the group, skipping names
// that already exist. Safe to call repeatedly.
func (s *CategoryService) SeedDefaults(ctx context.Context, profileID, groupID uuid.UUID) (*SeedResult, error) {
	if err := s.requireMember(ctx, groupID, profileID); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	existingNames := make(map[string]bool, len(existing))
	for _, category := range existing {
		existingNames[category.Name] = true
	}

	toSeed := make([]budgeting.Category, 0, len(budgeting.DefaultCategories))
	skipped := 0
	for _, dc := range budgeting.DefaultCategories {
		if existingNames[dc.Name] {
			skipped++
			continue
		}
		category, err := budgeting.NewCategory(groupID, dc.Name, dc.Kind)
		if err != nil {
			return nil, err
		}
		toSeed = append(toSeed, *category)
	}

	if len(toSeed) > 0 {
		if err := s.categoryRepo.SaveAll(ctx, toSeed); err != nil {
			return nil, err
		}
	}

	s.logger.Info("default categories seeded",
		zap.String("group_id", groupID.String()),
		zap.Int("added", len(toSeed)),
		zap.Int("skipped", skipped),
	)
	return &SeedResult{Added: len(toSeed), Skipped: skipped}, nil
}

func (s *CategoryService) requireMember(ctx context.Context, groupID, profileID uuid.UUID) error {
	isMember, err := s.groupRepo.IsMember(ctx, groupID, profileID)
	if err != nil {
		return err
	}
	if !isMember {
		return shared.ErrNotGroupMember
	}
	return nil
}

func toCategoryResponse(category budgeting.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		GroupID:   category.GroupID,
		Name:      category.Name,
		Kind:      string(category.Kind),
		CreatedAt: category.CreatedAt,
	}
}
