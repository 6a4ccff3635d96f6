package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skanos/backend/internal/apierror"
	"github.com/skanos/backend/internal/logger"
	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
	"github.com/skanos/backend/internal/service"
)

type EntityHandler struct {
	entityService service.EntityService
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(entityService service.EntityService) *EntityHandler {
	return &EntityHandler{
		entityService: entityService,
	}
}

// CreateEntity handles POST /api/v1/entities
func (h *EntityHandler) CreateEntity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entity, err := h.entityService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to create entity", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, entity)
}

// GetEntities handles GET /api/v1/entities
func (h *EntityHandler) GetEntities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entities, err := h.entityService.List(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to list entities", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entities})
}

// GetEntity handles GET /api/v1/entities/:id
func (h *EntityHandler) GetEntity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	entity, err := h.entityService.Get(c.Request.Context(), userID, id)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Entity", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to fetch entity", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, entity)
}
