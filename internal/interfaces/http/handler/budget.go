package handler

import (
	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BudgetHandler handles monthly budget listing
type BudgetHandler struct {
	BaseHandler
	service *budgetingapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(service *budgetingapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// List returns the budgets of a group with their items, newest period first
func (h *BudgetHandler) List(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query GroupIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "groupId query parameter is required")
		return
	}
	groupID := uuid.MustParse(query.GroupID)

	budgets, err := h.service.ListForGroup(c.Request.Context(), profileID, groupID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, budgets)
}

// RegisterRoutes registers budget routes
func (h *BudgetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.List)
	}
}
