package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skanos/backend/internal/apierror"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/service"
)

type CaptureHandler struct {
	captureService service.CaptureService
}

// NewCaptureHandler creates a new quick-capture handler
func NewCaptureHandler(captureService service.CaptureService) *CaptureHandler {
	return &CaptureHandler{
		captureService: captureService,
	}
}

// QuickCapture handles POST /api/v1/capture
func (h *CaptureHandler) QuickCapture(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.QuickCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Content is required"))
		return
	}

	note, err := h.captureService.Capture(c.Request.Context(), userID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to capture note", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetInbox handles GET /api/v1/capture/inbox
func (h *CaptureHandler) GetInbox(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := h.captureService.Inbox(c.Request.Context(), userID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to fetch inbox", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notes})
}
