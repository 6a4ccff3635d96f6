package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type memoryRepository struct {
	client *supabase.Client
}

// NewMemoryRepository creates a new memory repository
func NewMemoryRepository(client *supabase.Client) MemoryRepository {
	return &memoryRepository{client: client}
}

func (r *memoryRepository) Create(ctx context.Context, memory *models.Memory) (*models.Memory, error) {
	data := map[string]any{
		"id":         memory.ID,
		"user_id":    memory.UserID,
		"content":    memory.Content,
		"type":       memory.Type,
		"importance": memory.Importance,
	}

	if memory.EntityID != nil {
		data["entity_id"] = *memory.EntityID
	}

	body, err := r.client.Insert(ctx, "memories", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	var memories []models.Memory
	if err := json.Unmarshal(body, &memories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(memories) == 0 {
		return nil, fmt.Errorf("no memory returned")
	}

	return &memories[0], nil
}

func (r *memoryRepository) GetByUserID(ctx context.Context, userID, memoryType string) ([]models.Memory, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "importance.desc",
	}
	if memoryType != "" {
		query["type"] = fmt.Sprintf("eq.%s", memoryType)
	}

	body, err := r.client.Query(ctx, "memories", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get memories: %w", err)
	}

	var memories []models.Memory
	if err := json.Unmarshal(body, &memories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return memories, nil
}

func (r *memoryRepository) Search(ctx context.Context, userID, search string) ([]models.Memory, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"content": fmt.Sprintf("ilike.*%s*", search),
		"select":  "*",
		"order":   "importance.desc",
	}

	body, err := r.client.Query(ctx, "memories", query)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}

	var memories []models.Memory
	if err := json.Unmarshal(body, &memories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return memories, nil
}

func (r *memoryRepository) Count(ctx context.Context, userID string) (int64, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "id",
	}

	body, err := r.client.Query(ctx, "memories", query)
	if err != nil {
		return 0, fmt.Errorf("failed to count memories: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return int64(len(rows)), nil
}
