package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/identity"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/celengan/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// guardKeyPrefix namespaces submission reservations in the idempotency store
const guardKeyPrefix = "onboarding:"

// ErrAlreadyRunning is returned when a second submission arrives while a
// previous one for the same profile is still in flight.
var ErrAlreadyRunning = shared.NewDomainError("ONBOARDING_IN_PROGRESS", "Onboarding is already being processed")

// BudgetItemInput is one requested budget line. Amounts are in major
// currency units (rupiah); conversion to cents happens inside the service.
type BudgetItemInput struct {
	Name        string
	Kind        string
	LimitRupiah float64
}

// CompleteInput carries the onboarding submission
type CompleteInput struct {
	GroupName           string
	MonthlyIncomeRupiah *float64
	BudgetItems         []BudgetItemInput
}

// CompleteResult reports what the transactor created
type CompleteResult struct {
	GroupID  uuid.UUID
	BudgetID uuid.UUID
}

// OnboardingService performs the all-or-nothing first-run setup: profile
// completion, group and owner membership, default category catalog, the
// first monthly budget and its items. Everything runs in one database
// transaction; a failure at any step leaves no trace.
type OnboardingService struct {
	db       *persistence.Database
	store    shared.IdempotencyStore
	guardTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(db *persistence.Database, store shared.IdempotencyStore, guardTTL time.Duration, logger *zap.Logger) *OnboardingService {
	return &OnboardingService{
		db:       db,
		store:    store,
		guardTTL: guardTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Complete runs the onboarding workflow for the given identity.
// It is guarded against double submission: a concurrent second call for the
// same profile gets ErrAlreadyRunning. The guard is released on failure so
// the user can retry immediately.
func (s *OnboardingService) Complete(ctx context.Context, profileID uuid.UUID, email string, input CompleteInput) (*CompleteResult, error) {
	groupName := strings.TrimSpace(input.GroupName)
	if groupName == "" {
		return nil, shared.NewDomainError("INVALID_GROUP_NAME", "Group name is required")
	}

	items := sanitizeItems(input.BudgetItems)
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_BUDGET_ITEMS", "At least one budget item with a name and a positive limit is required")
	}

	claimed, err := s.store.Reserve(ctx, guardKeyPrefix+profileID.String(), s.guardTTL)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyRunning
	}

	result, err := s.complete(ctx, profileID, email, groupName, input.MonthlyIncomeRupiah, items)
	if err != nil {
		if releaseErr := s.store.Release(ctx, guardKeyPrefix+profileID.String()); releaseErr != nil {
			s.logger.Warn("failed to release onboarding guard",
				zap.String("profile_id", profileID.String()),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}

	s.logger.Info("onboarding completed",
		zap.String("profile_id", profileID.String()),
		zap.String("group_id", result.GroupID.String()),
		zap.String("budget_id", result.BudgetID.String()),
		zap.Int("budget_items", len(items)),
	)
	return result, nil
}

// complete runs all workflow steps inside one transaction
func (s *OnboardingService) complete(ctx context.Context, profileID uuid.UUID, email, groupName string, incomeRupiah *float64, items []BudgetItemInput) (*CompleteResult, error) {
	now := s.now()
	result := &CompleteResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		profiles := persistence.NewGormProfileRepository(tx)
		groups := persistence.NewGormGroupRepository(tx)
		categories := persistence.NewGormCategoryRepository(tx)
		budgets := persistence.NewGormBudgetRepository(tx)

		// Profile: mark onboarding done, store income in cents.
		profile, err := profiles.FindByID(ctx, profileID)
		if err != nil {
			if err != shared.ErrNotFound {
				return err
			}
			profile, err = identity.NewProfile(profileID, email)
			if err != nil {
				return err
			}
		}
		var incomeCents *int64
		if incomeRupiah != nil {
			cents := budgeting.MajorToMinor(*incomeRupiah)
			incomeCents = &cents
		}
		profile.CompleteOnboarding(incomeCents, now)
		if err := profiles.Save(ctx, profile); err != nil {
			return err
		}

		// Group and owner membership.
		group, err := budgeting.NewGroup(groupName, profileID)
		if err != nil {
			return err
		}
		if err := groups.Save(ctx, group); err != nil {
			return err
		}
		membership, err := budgeting.NewMembership(group.ID, profileID, budgeting.RoleOwner)
		if err != nil {
			return err
		}
		if err := groups.AddMember(ctx, membership); err != nil {
			return err
		}
		if err := profiles.SetActiveGroup(ctx, profileID, group.ID); err != nil {
			return err
		}

		// Default catalog; existing (group, name) rows are kept as-is.
		if err := seedDefaults(ctx, categories, group.ID); err != nil {
			return err
		}

		// Resolve payload categories by exact name. The first occurrence of
		// a name decides the kind; later duplicates reuse it silently.
		categoryIDs := make(map[string]uuid.UUID, len(items))
		for _, item := range items {
			if _, ok := categoryIDs[item.Name]; ok {
				continue
			}
			id, err := resolveCategory(ctx, categories, group.ID, item.Name, budgeting.CategoryKind(item.Kind))
			if err != nil {
				return err
			}
			categoryIDs[item.Name] = id
		}

		// First monthly budget and its per-category limits.
		budget, err := budgeting.NewMonthlyBudget(group.ID, now, group.DefaultCurrency, profileID)
		if err != nil {
			return err
		}
		if err := budgets.Save(ctx, budget); err != nil {
			return err
		}
		for _, item := range items {
			categoryID, ok := categoryIDs[item.Name]
			if !ok {
				return missingCategoryError(item.Name)
			}
			budgetItem, err := budgeting.NewBudgetItem(budget.ID, categoryID, budgeting.MajorToMinor(item.LimitRupiah))
			if err != nil {
				return err
			}
			if err := budgets.SaveItem(ctx, budgetItem); err != nil {
				return err
			}
		}

		result.GroupID = group.ID
		result.BudgetID = budget.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasGroups reports whether the identity already belongs to any group.
// The client uses it to decide whether to show the first-run flow.
func (s *OnboardingService) HasGroups(ctx context.Context, profileID uuid.UUID) (bool, error) {
	groups := persistence.NewGormGroupRepository(s.db.DB)
	count, err := groups.CountByProfile(ctx, profileID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// missingCategoryError reports a budget line whose category disappeared
// between resolution and limit creation, naming the category involved.
func missingCategoryError(name string) error {
	return shared.NewDomainError("INTEGRITY", fmt.Sprintf("Category not found: %s", name))
}

// sanitizeItems trims names and drops rows without a name or a positive
// limit. Duplicate names are kept; resolution collapses them later.
func sanitizeItems(items []BudgetItemInput) []BudgetItemInput {
	out := make([]BudgetItemInput, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" || item.LimitRupiah <= 0 {
			continue
		}
		out = append(out, item)
	}
	return out
}

// seedDefaults inserts the default category catalog, skipping names the
// group already has.
func seedDefaults(ctx context.Context, categories *persistence.GormCategoryRepository, groupID uuid.UUID) error {
	toSeed := make([]budgeting.Category, 0, len(budgeting.DefaultCategories))
	for _, dc := range budgeting.DefaultCategories {
		c, err := budgeting.NewCategory(groupID, dc.Name, dc.Kind)
		if err != nil {
			return err
		}
		toSeed = append(toSeed, *c)
	}
	return categories.SaveAll(ctx, toSeed)
}

// resolveCategory finds a category by exact name or creates it
func resolveCategory(ctx context.Context, categories *persistence.GormCategoryRepository, groupID uuid.UUID, name string, kind budgeting.CategoryKind) (uuid.UUID, error) {
	existing, err := categories.FindByName(ctx, groupID, name)
	if err == nil {
		return existing.ID, nil
	}
	if err != shared.ErrNotFound {
		return uuid.Nil, err
	}

	category, err := budgeting.NewCategory(groupID, name, kind)
	if err != nil {
		return uuid.Nil, err
	}
	if err := categories.Save(ctx, category); err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}
