package handler

import (
	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles category listing and default-catalog seeding
type CategoryHandler struct {
	BaseHandler
	service *budgetingapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service *budgetingapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GroupIDQuery binds the groupId query parameter
type GroupIDQuery struct {
	GroupID string `form:"groupId" binding:"required,uuid"`
}

// SeedCategoriesRequest asks to seed the default catalog into a group
type SeedCategoriesRequest struct {
	GroupID string `json:"groupId" binding:"required,uuid"`
}

// List returns the categories of a group, ordered by name
func (h *CategoryHandler) List(c *gin.Context) {
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

	categories, err := h.service.List(c.Request.Context(), profileID, groupID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// Seed inserts any missing default categories into the group
func (h *CategoryHandler) Seed(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SeedCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	groupID := uuid.MustParse(req.GroupID)

	result, err := h.service.SeedDefaults(c.Request.Context(), profileID, groupID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("/seed", h.Seed)
	}
}
