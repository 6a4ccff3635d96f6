package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skanos/backend/internal/apierror"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/service"
)

// PillarsHandler serves the per-pillar dashboard payloads and the
// cross-pillar analytics view.
type PillarsHandler struct {
	healthService       service.HealthService
	wealthService       service.WealthService
	spiritualityService service.SpiritualityService
	analyticsService    service.AnalyticsService
}

// NewPillarsHandler creates a new pillars handler
func NewPillarsHandler(
	healthService service.HealthService,
	wealthService service.WealthService,
	spiritualityService service.SpiritualityService,
	analyticsService service.AnalyticsService,
) *PillarsHandler {
	return &PillarsHandler{
		healthService:       healthService,
		wealthService:       wealthService,
		spiritualityService: spiritualityService,
		analyticsService:    analyticsService,
	}
}

// GetHealthMetrics handles GET /api/v1/pillars/health/metrics
func (h *PillarsHandler) GetHealthMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := h.healthService.GetMetrics(c.Request.Context(), userID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to compute health metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetWealthMetrics handles GET /api/v1/pillars/wealth/metrics
func (h *PillarsHandler) GetWealthMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := h.wealthService.GetMetrics(c.Request.Context(), userID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to compute wealth metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetSpiritualityMetrics handles GET /api/v1/pillars/spirituality/metrics
func (h *PillarsHandler) GetSpiritualityMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := h.spiritualityService.GetMetrics(c.Request.Context(), userID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to compute spirituality metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetAnalytics handles GET /api/v1/analytics
// Query parameters: period (7d|30d, default 7d) and pillar (optional filter).
func (h *PillarsHandler) GetAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "7d")
	if period != "7d" && period != "30d" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"period must be 7d or 30d", "Unsupported period"))
		return
	}

	analytics, err := h.analyticsService.GetAnalytics(c.Request.Context(), userID, period, c.Query("pillar"))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to compute analytics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, analytics)
}
