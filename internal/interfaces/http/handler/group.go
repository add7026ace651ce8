package handler

import (
	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	"github.com/celengan/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles group listing and membership endpoints
type GroupHandler struct {
	BaseHandler
	service *budgetingapp.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(service *budgetingapp.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// List returns the groups the current identity belongs to, most recent first
func (h *GroupHandler) List(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	groups, err := h.service.ListForProfile(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, groups)
}

// Members returns the members of a group the identity belongs to
func (h *GroupHandler) Members(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}
	groupID := uuid.MustParse(req.ID)

	members, err := h.service.Members(c.Request.Context(), profileID, groupID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, members)
}

// RegisterRoutes registers group routes
func (h *GroupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	{
		groups.GET("", h.List)
		groups.GET("/:id/members", h.Members)
	}
}
