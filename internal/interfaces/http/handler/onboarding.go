package handler

import (
	onboardingapp "github.com/celengan/backend/internal/application/onboarding"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OnboardingHandler handles the first-run onboarding endpoints
type OnboardingHandler struct {
	BaseHandler
	service *onboardingapp.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler
func NewOnboardingHandler(service *onboardingapp.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// BudgetItemRequest is one budget line in the onboarding payload. Name and
// limit are not bound as required: items failing the name/limit filter are
// dropped downstream instead of rejecting the whole submission.
type BudgetItemRequest struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind" binding:"omitempty,oneof=income expense transfer"`
	LimitRupiah float64 `json:"limitRupiah"`
}

// CompleteOnboardingRequest is the onboarding submission payload
type CompleteOnboardingRequest struct {
	GroupName           string              `json:"groupName" binding:"required"`
	MonthlyIncomeRupiah *float64            `json:"monthlyIncomeRupiah" binding:"omitempty,gte=0"`
	BudgetItems         []BudgetItemRequest `json:"budgetItems" binding:"required,min=1,dive"`
}

// CheckOnboardingResponse reports whether the identity already has groups
type CheckOnboardingResponse struct {
	HasGroups bool `json:"hasGroups"`
}

// Complete runs the all-or-nothing onboarding workflow
func (h *OnboardingHandler) Complete(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items := make([]onboardingapp.BudgetItemInput, 0, len(req.BudgetItems))
	for _, item := range req.BudgetItems {
		items = append(items, onboardingapp.BudgetItemInput{
			Name:        item.Name,
			Kind:        item.Kind,
			LimitRupiah: item.LimitRupiah,
		})
	}

	if _, err := h.service.Complete(c.Request.Context(), profileID, getEmail(c), onboardingapp.CompleteInput{
		GroupName:           req.GroupName,
		MonthlyIncomeRupiah: req.MonthlyIncomeRupiah,
		BudgetItems:         items,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	// Clients discover the created group and budget through the listing
	// endpoints; the response carries no identifiers.
	h.Success(c, nil)
}

// Check reports whether the current identity already belongs to a group
func (h *OnboardingHandler) Check(c *gin.Context) {
	profileID, err := getProfileID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	hasGroups, err := h.service.HasGroups(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CheckOnboardingResponse{HasGroups: hasGroups})
}

// RegisterRoutes registers onboarding routes
func (h *OnboardingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	onboarding := rg.Group("/onboarding")
	{
		onboarding.POST("/complete", h.Complete)
		onboarding.GET("/check", h.Check)
	}
}
