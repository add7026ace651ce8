package models

import (
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/google/uuid"
)

// GroupModel is the persistence model for the Group domain entity.
type GroupModel struct {
	BaseModel
	Name            string    `gorm:"type:varchar(200);not null"`
	DefaultCurrency string    `gorm:"type:varchar(3);not null;default:'IDR'"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (GroupModel) TableName() string {
	return "groups"
}

// ToDomain converts the persistence model to a domain Group entity.
func (m *GroupModel) ToDomain() *budgeting.Group {
	return &budgeting.Group{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		DefaultCurrency: m.DefaultCurrency,
		CreatedBy:       m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Group entity.
func (m *GroupModel) FromDomain(g *budgeting.Group) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.Name = g.Name
	m.DefaultCurrency = g.DefaultCurrency
	m.CreatedBy = g.CreatedBy
}

// GroupModelFromDomain creates a new persistence model from a domain Group entity.
func GroupModelFromDomain(g *budgeting.Group) *GroupModel {
	m := &GroupModel{}
	m.FromDomain(g)
	return m
}

// MembershipModel is the persistence model for the Membership domain entity.
// (group, profile) is unique.
type MembershipModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key"`
	GroupID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_group_profile,priority:1"`
	ProfileID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_group_profile,priority:2;index"`
	Role      budgeting.MemberRole `gorm:"type:varchar(20);not null;default:'member'"`
	CreatedAt time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MembershipModel) TableName() string {
	return "group_members"
}

// ToDomain converts the persistence model to a domain Membership entity.
func (m *MembershipModel) ToDomain() *budgeting.Membership {
	return &budgeting.Membership{
		ID:        m.ID,
		GroupID:   m.GroupID,
		ProfileID: m.ProfileID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Membership entity.
func (m *MembershipModel) FromDomain(mem *budgeting.Membership) {
	m.ID = mem.ID
	m.GroupID = mem.GroupID
	m.ProfileID = mem.ProfileID
	m.Role = mem.Role
	m.CreatedAt = mem.CreatedAt
}

// MembershipModelFromDomain creates a new persistence model from a domain Membership entity.
func MembershipModelFromDomain(mem *budgeting.Membership) *MembershipModel {
	m := &MembershipModel{}
	m.FromDomain(mem)
	return m
}

// CategoryModel is the persistence model for the Category domain entity.
// (group, name) is unique; name comparison is exact and case-sensitive.
type CategoryModel struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key"`
	GroupID   uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_categories_group_name,priority:1"`
	Name      string                 `gorm:"type:varchar(200);not null;uniqueIndex:idx_categories_group_name,priority:2"`
	Kind      budgeting.CategoryKind `gorm:"type:varchar(20);not null;default:'expense'"`
	CreatedAt time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *budgeting.Category {
	return &budgeting.Category{
		ID:        m.ID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		Kind:      m.Kind,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *budgeting.Category) {
	m.ID = c.ID
	m.GroupID = c.GroupID
	m.Name = c.Name
	m.Kind = c.Kind
	m.CreatedAt = c.CreatedAt
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *budgeting.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// BudgetModel is the persistence model for the Budget domain entity.
type BudgetModel struct {
	BaseModel
	GroupID         uuid.UUID              `gorm:"type:uuid;not null;index"`
	Name            string                 `gorm:"type:varchar(200);not null"`
	Period          budgeting.BudgetPeriod `gorm:"type:varchar(20);not null;default:'monthly'"`
	PeriodStart     time.Time              `gorm:"type:date;not null"`
	PeriodEnd       *time.Time             `gorm:"type:date"`
	Currency        string                 `gorm:"type:varchar(3);not null;default:'IDR'"`
	TotalLimitCents *int64                 `gorm:"type:bigint"`
	CreatedBy       uuid.UUID              `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts the persistence model to a domain Budget entity.
func (m *BudgetModel) ToDomain() *budgeting.Budget {
	return &budgeting.Budget{
		BaseEntity:      m.BaseModel.ToDomain(),
		GroupID:         m.GroupID,
		Name:            m.Name,
		Period:          m.Period,
		PeriodStart:     m.PeriodStart,
		PeriodEnd:       m.PeriodEnd,
		Currency:        m.Currency,
		TotalLimitCents: m.TotalLimitCents,
		CreatedBy:       m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Budget entity.
func (m *BudgetModel) FromDomain(b *budgeting.Budget) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.GroupID = b.GroupID
	m.Name = b.Name
	m.Period = b.Period
	m.PeriodStart = b.PeriodStart
	m.PeriodEnd = b.PeriodEnd
	m.Currency = b.Currency
	m.TotalLimitCents = b.TotalLimitCents
	m.CreatedBy = b.CreatedBy
}

// BudgetModelFromDomain creates a new persistence model from a domain Budget entity.
func BudgetModelFromDomain(b *budgeting.Budget) *BudgetModel {
	m := &BudgetModel{}
	m.FromDomain(b)
	return m
}

// BudgetItemModel is the persistence model for the BudgetItem domain entity.
// (budget, category) is unique. Items are owned by both their budget and
// their category: deleting either removes the item rows.
type BudgetItemModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key"`
	BudgetID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_budget_items_budget_category,priority:1"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_budget_items_budget_category,priority:2"`
	LimitCents int64          `gorm:"type:bigint;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	Budget     *BudgetModel   `gorm:"constraint:OnDelete:CASCADE"`
	Category   *CategoryModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// ToDomain converts the persistence model to a domain BudgetItem entity.
func (m *BudgetItemModel) ToDomain() *budgeting.BudgetItem {
	return &budgeting.BudgetItem{
		ID:         m.ID,
		BudgetID:   m.BudgetID,
		CategoryID: m.CategoryID,
		LimitCents: m.LimitCents,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain BudgetItem entity.
func (m *BudgetItemModel) FromDomain(i *budgeting.BudgetItem) {
	m.ID = i.ID
	m.BudgetID = i.BudgetID
	m.CategoryID = i.CategoryID
	m.LimitCents = i.LimitCents
	m.CreatedAt = i.CreatedAt
}

// BudgetItemModelFromDomain creates a new persistence model from a domain BudgetItem entity.
func BudgetItemModelFromDomain(i *budgeting.BudgetItem) *BudgetItemModel {
	m := &BudgetItemModel{}
	m.FromDomain(i)
	return m
}

// TransactionModel is the persistence model for the Transaction domain entity.
type TransactionModel struct {
	BaseModel
	GroupID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_transactions_group_date,priority:1"`
	OccurredAt  time.Time           `gorm:"not null;index:idx_transactions_group_date,priority:2,sort:desc"`
	AmountCents int64               `gorm:"type:bigint;not null"`
	Currency    string              `gorm:"type:varchar(3);not null;default:'IDR'"`
	Direction   budgeting.Direction `gorm:"type:varchar(20);not null"`
	Description string              `gorm:"type:text"`
	Note        string              `gorm:"type:text"`
	CategoryID  *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Owner       budgeting.Owner     `gorm:"type:varchar(20);not null;default:'mine'"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *budgeting.Transaction {
	return &budgeting.Transaction{
		BaseEntity:  m.BaseModel.ToDomain(),
		GroupID:     m.GroupID,
		OccurredAt:  m.OccurredAt,
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Direction:   m.Direction,
		Description: m.Description,
		Note:        m.Note,
		CategoryID:  m.CategoryID,
		CreatedBy:   m.CreatedBy,
		Owner:       m.Owner,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(t *budgeting.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.GroupID = t.GroupID
	m.OccurredAt = t.OccurredAt
	m.AmountCents = t.AmountCents
	m.Currency = t.Currency
	m.Direction = t.Direction
	m.Description = t.Description
	m.Note = t.Note
	m.CategoryID = t.CategoryID
	m.CreatedBy = t.CreatedBy
	m.Owner = t.Owner
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction entity.
func TransactionModelFromDomain(t *budgeting.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(t)
	return m
}

// AllModels lists every persistence model, used for AutoMigrate in tests.
var AllModels = []any{
	&ProfileModel{},
	&GroupModel{},
	&MembershipModel{},
	&CategoryModel{},
	&BudgetModel{},
	&BudgetItemModel{},
	&TransactionModel{},
}
