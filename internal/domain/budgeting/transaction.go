package budgeting

import (
	"strings"
	"time"

	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Direction is the direction of a transaction
type Direction string

const (
	DirectionIncome   Direction = "income"
	DirectionExpense  Direction = "expense"
	DirectionTransfer Direction = "transfer"
)

// IsValid checks if the direction is a known Direction
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncome, DirectionExpense, DirectionTransfer:
		return true
	}
	return false
}

// Owner marks whose money a transaction moves
type Owner string

const (
	OwnerMine   Owner = "mine"
	OwnerShared Owner = "shared"
	OwnerOther  Owner = "other"
)

// IsValid checks if the owner is a known Owner
func (o Owner) IsValid() bool {
	switch o {
	case OwnerMine, OwnerShared, OwnerOther:
		return true
	}
	return false
}

// Transaction is a single recorded income or expense within a group.
// Amounts are stored in minor currency units and are always positive;
// the direction carries the sign.
type Transaction struct {
	shared.BaseEntity
	GroupID     uuid.UUID
	OccurredAt  time.Time
	AmountCents int64
	Currency    string
	Direction   Direction
	Description string
	Note        string
	CategoryID  *uuid.UUID
	CreatedBy   uuid.UUID
	Owner       Owner
}

// NewTransactionInput carries the fields for creating a transaction
type NewTransactionInput struct {
	GroupID     uuid.UUID
	OccurredAt  time.Time
	AmountCents int64
	Currency    string
	Direction   Direction
	Description string
	Note        string
	CategoryID  *uuid.UUID
	CreatedBy   uuid.UUID
	Owner       Owner
}

// NewTransaction validates and creates a transaction.
func NewTransaction(in NewTransactionInput) (*Transaction, error) {
	if in.GroupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GROUP", "Transaction group is required")
	}
	if in.OccurredAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	if in.AmountCents <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	if in.Direction != DirectionIncome && in.Direction != DirectionExpense {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be income or expense")
	}
	if in.Currency = strings.TrimSpace(in.Currency); in.Currency == "" {
		in.Currency = DefaultCurrency
	}
	if in.Owner == "" {
		in.Owner = OwnerMine
	}
	if !in.Owner.IsValid() {
		return nil, shared.NewDomainError("INVALID_OWNER", "Unknown transaction owner")
	}
	return &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		GroupID:     in.GroupID,
		OccurredAt:  in.OccurredAt,
		AmountCents: in.AmountCents,
		Currency:    in.Currency,
		Direction:   in.Direction,
		Description: strings.TrimSpace(in.Description),
		Note:        strings.TrimSpace(in.Note),
		CategoryID:  in.CategoryID,
		CreatedBy:   in.CreatedBy,
		Owner:       in.Owner,
	}, nil
}
