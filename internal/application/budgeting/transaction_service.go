package budgeting

import (
	"context"
	"time"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService handles recording and listing transactions
type TransactionService struct {
	transactionRepo budgeting.TransactionRepository
	groupRepo       budgeting.GroupRepository
	logger          *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo budgeting.TransactionRepository, groupRepo budgeting.GroupRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		groupRepo:       groupRepo,
		logger:          logger,
	}
}

// CreateTransactionInput carries a new transaction request
type CreateTransactionInput struct {
	GroupID     uuid.UUID
	OccurredAt  time.Time
	AmountCents int64
	Currency    string
	Direction   string
	Description string
	Note        string
	CategoryID  *uuid.UUID
	Owner       string
}

// ListTransactionsInput narrows a transaction listing
type ListTransactionsInput struct {
	GroupID    uuid.UUID
	From       *time.Time
	To         *time.Time
	Direction  *string
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

// TransactionResponse is one transaction
type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	GroupID     uuid.UUID  `json:"groupId"`
	OccurredAt  time.Time  `json:"occurredAt"`
	AmountCents int64      `json:"amountCents"`
	Currency    string     `json:"currency"`
	Direction   string     `json:"direction"`
	Description string     `json:"description"`
	Note        string     `json:"note,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	Owner       string     `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Create records a transaction. The requester must be a group member.
func (s *TransactionService) Create(ctx context.Context, profileID uuid.UUID, input CreateTransactionInput) (*TransactionResponse, error) {
	if err := s.requireMember(ctx, input.GroupID, profileID); err != nil {
		return nil, err
	}

	tx, err := budgeting.NewTransaction(budgeting.NewTransactionInput{
		GroupID:     input.GroupID,
		OccurredAt:  input.OccurredAt,
		AmountCents: input.AmountCents,
		Currency:    input.Currency,
		Direction:   budgeting.Direction(input.Direction),
		Description: input.Description,
		Note:        input.Note,
		CategoryID:  input.CategoryID,
		CreatedBy:   profileID,
		Owner:       budgeting.Owner(input.Owner),
	})
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("group_id", tx.GroupID.String()),
		zap.String("direction", string(tx.Direction)),
		zap.Int64("amount_cents", tx.AmountCents),
	)

	response := toTransactionResponse(*tx)
	return &response, nil
}

// List lists transactions newest first. The requester must be a member.
func (s *TransactionService) List(ctx context.Context, profileID uuid.UUID, input ListTransactionsInput) (*shared.Paginated[TransactionResponse], error) {
	if err := s.requireMember(ctx, input.GroupID, profileID); err != nil {
		return nil, err
	}

	filter := budgeting.TransactionFilter{
		Filter: shared.Filter{Page: input.Page, PageSize: input.PageSize}.Normalize(),
		From:   input.From,
		To:     input.To,
	}
	if input.Direction != nil {
		direction := budgeting.Direction(*input.Direction)
		if !direction.IsValid() {
			return nil, shared.NewDomainError("INVALID_DIRECTION", "Unknown transaction direction")
		}
		filter.Direction = &direction
	}
	filter.CategoryID = input.CategoryID

	transactions, err := s.transactionRepo.FindByGroup(ctx, input.GroupID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.transactionRepo.CountByGroup(ctx, input.GroupID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *TransactionService) requireMember(ctx context.Context, groupID, profileID uuid.UUID) error {
	if groupID == uuid.Nil {
		return shared.NewDomainError("INVALID_GROUP", "Group is required")
	}
	isMember, err := s.groupRepo.IsMember(ctx, groupID, profileID)
	if err != nil {
		return err
	}
	if !isMember {
		return shared.ErrNotGroupMember
	}
	return nil
}

func toTransactionResponse(tx budgeting.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		GroupID:     tx.GroupID,
		OccurredAt:  tx.OccurredAt,
		AmountCents: tx.AmountCents,
		Currency:    tx.Currency,
		Direction:   string(tx.Direction),
		Description: tx.Description,
		Note:        tx.Note,
		CategoryID:  tx.CategoryID,
		CreatedBy:   tx.CreatedBy,
		Owner:       string(tx.Owner),
		CreatedAt:   tx.CreatedAt,
	}
}
