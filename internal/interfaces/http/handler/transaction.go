package handler

import (
	"time"

	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction recording and listing
type TransactionHandler struct {
	BaseHandler
	service *budgetingapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(service *budgetingapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// CreateTransactionRequest is the payload for recording a transaction
type CreateTransactionRequest struct {
	GroupID     string    `json:"groupId" binding:"required,uuid"`
	OccurredAt  time.Time `json:"occurredAt" binding:"required"`
	AmountCents int64     `json:"amountCents" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"omitempty,len=3"`
	Direction   string    `json:"direction" binding:"required,oneof=income expense"`
	Description string    `json:"description"`
	Note        string    `json:"note"`
	CategoryID  *string   `json:"categoryId" binding:"omitempty,uuid"`
	Owner       string    `json:"owner" binding:"omitempty,oneof=mine shared other"`
}

// ListTransactionsQuery narrows a transaction listing
type ListTransactionsQuery struct {
	GroupID    string  `form:"groupId" binding:"required,uuid"`
	From       *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Direction  *string `form:"direction" binding:"omitempty,oneof=income expense transfer"`
	CategoryID *string `form:"categoryId" binding:"omitempty,uuid"`
	Page       int     `form:"page" binding:"omitempty,min=1"`
	PageSize   int     `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Create records a transaction in a group the identity belongs to
func (h *TransactionHandler) Create(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	input := budgetingapp.CreateTransactionInput{
		GroupID:     uuid.MustParse(req.GroupID),
		OccurredAt:  req.OccurredAt,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Direction:   req.Direction,
		Description: req.Description,
		Note:        req.Note,
		Owner:       req.Owner,
	}
	if req.CategoryID != nil {
		categoryID := uuid.MustParse(*req.CategoryID)
		input.CategoryID = &categoryID
	}

	tx, err := h.service.Create(c.Request.Context(), profileID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tx)
}

// List returns transactions of a group, newest first
func (h *TransactionHandler) List(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	input := budgetingapp.ListTransactionsInput{
		GroupID:   uuid.MustParse(query.GroupID),
		Direction: query.Direction,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.From != nil {
		from, _ := time.Parse("2006-01-02", *query.From)
		input.From = &from
	}
	if query.To != nil {
		to, _ := time.Parse("2006-01-02", *query.To)
		input.To = &to
	}
	if query.CategoryID != nil {
		categoryID := uuid.MustParse(*query.CategoryID)
		input.CategoryID = &categoryID
	}

	page, err := h.service.List(c.Request.Context(), profileID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.List)
		transactions.POST("", h.Create)
	}
}
