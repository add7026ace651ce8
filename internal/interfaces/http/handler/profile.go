package handler

import (
	identityapp "github.com/celengan/backend/internal/application/identity"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles the current-profile endpoints
type ProfileHandler struct {
	BaseHandler
	service *identityapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service *identityapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// SetActiveGroupRequest selects the profile's active group
type SetActiveGroupRequest struct {
	GroupID string `json:"groupId" binding:"required,uuid"`
}

// Me returns the current profile, creating it on first sight
func (h *ProfileHandler) Me(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.service.Me(c.Request.Context(), profileID, getEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// SetActiveGroup sets the profile's active group after a membership check
func (h *ProfileHandler) SetActiveGroup(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SetActiveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.service.SetActiveGroup(c.Request.Context(), profileID, uuid.MustParse(req.GroupID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"activeGroupId": req.GroupID})
}

// RegisterRoutes registers profile routes
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("/me", h.Me)
		profiles.PUT("/active-group", h.SetActiveGroup)
	}
}
