package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skanos/backend/internal/apierror"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/service"
)

type MemoryHandler struct {
	memoryService service.MemoryService
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memoryService service.MemoryService) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
	}
}

// CreateMemory handles POST /api/v1/memories
func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	memory, err := h.memoryService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to create memory", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, memory)
}

// GetMemories handles GET /api/v1/memories
// An optional ?q= parameter switches to content search.
func (h *MemoryHandler) GetMemories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var memories []models.Memory
	var err error

	if query := c.Query("q"); query != "" {
		memories, err = h.memoryService.Search(c.Request.Context(), userID, query)
	} else {
		memories, err = h.memoryService.List(c.Request.Context(), userID, c.Query("type"))
	}
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to fetch memories", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": memories})
}
