package budgeting

import (
	"context"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgeting.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]budgeting.Group, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.Group), args.Error(1)
}

func (m *MockGroupRepository) Save(ctx context.Context, group *budgeting.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, membership *budgeting.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockGroupRepository) IsMember(ctx context.Context, groupID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, groupID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) FindMembers(ctx context.Context, groupID uuid.UUID) ([]budgeting.GroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.GroupMember), args.Error(1)
}

func (m *MockGroupRepository) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgeting.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]budgeting.Category, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, groupID uuid.UUID, name string) (*budgeting.Category, error) {
	args := m.Called(ctx, groupID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgeting.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *budgeting.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveAll(ctx context.Context, categories []budgeting.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

// MockBudgetRepository is a mock implementation of BudgetRepository
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgeting.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]budgeting.Budget, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.Budget), args.Error(1)
}

func (m *MockBudgetRepository) Save(ctx context.Context, budget *budgeting.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveItem(ctx context.Context, item *budgeting.BudgetItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindItems(ctx context.Context, budgetID uuid.UUID) ([]budgeting.BudgetItem, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.BudgetItem), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgeting.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByGroup(ctx context.Context, groupID uuid.UUID, filter budgeting.TransactionFilter) ([]budgeting.Transaction, error) {
	args := m.Called(ctx, groupID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByGroup(ctx context.Context, groupID uuid.UUID, filter budgeting.TransactionFilter) (int64, error) {
	args := m.Called(ctx, groupID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *budgeting.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*identity.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SetActiveGroup(ctx context.Context, profileID, groupID uuid.UUID) error {
	args := m.Called(ctx, profileID, groupID)
	return args.Error(0)
}
