package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
)

const defaultMemoryType = "episodic"

type memoryService struct {
	memoryRepo repository.MemoryRepository
}

// NewMemoryService creates a new memory service
func NewMemoryService(memoryRepo repository.MemoryRepository) MemoryService {
	return &memoryService{memoryRepo: memoryRepo}
}

func (s *memoryService) Create(ctx context.Context, userID string, req *models.CreateMemoryRequest) (*models.Memory, error) {
	memType := req.Type
	if memType == "" {
		memType = defaultMemoryType
	}

	memory := &models.Memory{
		ID:         uuid.NewString(),
		UserID:     userID,
		Content:    req.Content,
		Type:       memType,
		Importance: req.Importance,
		EntityID:   req.EntityID,
	}

	created, err := s.memoryRepo.Create(ctx, memory)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	return created, nil
}

func (s *memoryService) List(ctx context.Context, userID, memoryType string) ([]models.Memory, error) {
	return s.memoryRepo.GetByUserID(ctx, userID, memoryType)
}

func (s *memoryService) Search(ctx context.Context, userID, query string) ([]models.Memory, error) {
	return s.memoryRepo.Search(ctx, userID, query)
}
