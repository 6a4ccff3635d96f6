package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/skanos/backend/internal/apierror"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/service"
)

type OnboardingHandler struct {
	onboardingService service.OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// GetStatus handles GET /api/v1/onboarding/status
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.onboardingService.Status(c.Request.Context(), userID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to fetch onboarding status", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, status)
}

// UpdateGoals handles PUT /api/v1/onboarding/goals
func (h *OnboardingHandler) UpdateGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	if err := h.onboardingService.UpdateGoals(c.Request.Context(), userID, &req); err != nil {
		requestID := apierror.GetRequestID(c)

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrors := make([]apierror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fieldErrors = append(fieldErrors, apierror.FieldError{
					Field:   fe.Field(),
					Message: "failed " + fe.Tag() + " validation",
					Code:    fe.Tag(),
				})
			}
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
			return
		}

		logger.Ctx(c.Request.Context()).Error("failed to update goals", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
