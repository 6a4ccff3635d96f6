package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
)

type entityService struct {
	entityRepo repository.EntityRepository
}

// NewEntityService creates a new entity service
func NewEntityService(entityRepo repository.EntityRepository) EntityService {
	return &entityService{entityRepo: entityRepo}
}

func (s *entityService) Create(ctx context.Context, userID string, req *models.CreateEntityRequest) (*models.Entity, error) {
	entity := &models.Entity{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Metadata:    req.Metadata,
	}

	created, err := s.entityRepo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}

	return created, nil
}

func (s *entityService) Get(ctx context.Context, userID, id string) (*models.Entity, error) {
	return s.entityRepo.GetByID(ctx, userID, id)
}

func (s *entityService) List(ctx context.Context, userID, entityType string) ([]models.Entity, error) {
	return s.entityRepo.GetByUserID(ctx, userID, entityType)
}
