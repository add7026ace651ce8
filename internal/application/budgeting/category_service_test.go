package budgeting

import (
	"context"
	"testing"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategoryService_List(t *testing.T) {
	profileID := uuid.New()
	groupID := uuid.New()

	t.Run("lists categories for a member", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		groupRepo := new(MockGroupRepository)
		service := NewCategoryService(categoryRepo, groupRepo, zap.NewNop())

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(true, nil)
		category, err := budgeting.NewCategory(groupID, "Groceries", budgeting.KindExpense)
		require.NoError(t, err)
		categoryRepo.On("FindByGroup", mock.Anything, groupID).Return([]budgeting.Category{*category}, nil)

		categories, err := service.List(context.Background(), profileID, groupID)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Groceries", categories[0].Name)
		assert.Equal(t, "expense", categories[0].Kind)
	})

	t.Run("rejects non-members", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		groupRepo := new(MockGroupRepository)
		service := NewCategoryService(categoryRepo, groupRepo, zap.NewNop())

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(false, nil)

		_, err := service.List(context.Background(), profileID, groupID)
		assert.Equal(t, shared.ErrNotGroupMember, err)
	})
}

func TestCategoryService_SeedDefaults(t *testing.T) {
	profileID := uuid.New()
	groupID := uuid.New()

	t.Run("seeds a fresh group", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		groupRepo := new(MockGroupRepository)
		service := NewCategoryService(categoryRepo, groupRepo, zap.NewNop())

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(true, nil)
		categoryRepo.On("FindByGroup", mock.Anything, groupID).Return([]budgeting.Category{}, nil)
		categoryRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(categories []budgeting.Category) bool {
			return len(categories) == len(budgeting.DefaultCategories)
		})).Return(nil)

		result, err := service.SeedDefaults(context.Background(), profileID, groupID)
		require.NoError(t, err)
		assert.Equal(t, 16, result.Added)
		assert.Equal(t, 0, result.Skipped)
	})

	t.Run("skips names the group already has", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		groupRepo := new(MockGroupRepository)
		service := NewCategoryService(categoryRepo, groupRepo, zap.NewNop())

		existing, err := budgeting.NewCategory(groupID, "Groceries", budgeting.KindExpense)
		require.NoError(t, err)

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(true, nil)
		categoryRepo.On("FindByGroup", mock.Anything, groupID).Return([]budgeting.Category{*existing}, nil)
		categoryRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(categories []budgeting.Category) bool {
			for _, c := range categories {
				if c.Name == "Groceries" {
					return false
				}
			}
			return len(categories) == len(budgeting.DefaultCategories)-1
		})).Return(nil)

		result, err := service.SeedDefaults(context.Background(), profileID, groupID)
		require.NoError(t, err)
		assert.Equal(t, 15, result.Added)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("fully seeded group adds nothing", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		groupRepo := new(MockGroupRepository)
		service := NewCategoryService(categoryRepo, groupRepo, zap.NewNop())

		existing := make([]budgeting.Category, 0, len(budgeting.DefaultCategories))
		for _, dc := range budgeting.DefaultCategories {
			category, err := budgeting.NewCategory(groupID, dc.Name, dc.Kind)
			require.NoError(t, err)
			existing = append(existing, *category)
		}

		groupRepo.On("IsMember", mock.Anything, groupID, profileID).Return(true, nil)
		categoryRepo.On("FindByGroup", mock.Anything, groupID).Return(existing, nil)

		result, err := service.SeedDefaults(context.Background(), profileID, groupID)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 16, result.Skipped)
		categoryRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})
}
