package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type entityRepository struct {
	client *supabase.Client
}

// NewEntityRepository creates a new entity repository
func NewEntityRepository(client *supabase.Client) EntityRepository {
	return &entityRepository{client: client}
}

func (r *entityRepository) Create(ctx context.Context, entity *models.Entity) (*models.Entity, error) {
	data := map[string]any{
		"id":      entity.ID,
		"user_id": entity.UserID,
		"name":    entity.Name,
		"type":    entity.Type,
	}

	if entity.Description != nil {
		data["description"] = *entity.Description
	}
	if len(entity.Metadata) > 0 {
		data["metadata"] = entity.Metadata
	} else {
		data["metadata"] = map[string]any{}
	}

	body, err := r.client.Insert(ctx, "entities", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}

	var entities []models.Entity
	if err := json.Unmarshal(body, &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entities) == 0 {
		return nil, fmt.Errorf("no entity returned")
	}

	return &entities[0], nil
}

func (r *entityRepository) GetByID(ctx context.Context, userID, id string) (*models.Entity, error) {
	query := map[string]any{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query(ctx, "entities", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	var entities []models.Entity
	if err := json.Unmarshal(body, &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entities) == 0 {
		return nil, fmt.Errorf("entity %s: %w", id, ErrNotFound)
	}

	return &entities[0], nil
}

func (r *entityRepository) GetByUserID(ctx context.Context, userID, entityType string) ([]models.Entity, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
	}
	if entityType != "" {
		query["type"] = fmt.Sprintf("eq.%s", entityType)
	}

	body, err := r.client.Query(ctx, "entities", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entities: %w", err)
	}

	var entities []models.Entity
	if err := json.Unmarshal(body, &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entities, nil
}

func (r *entityRepository) Count(ctx context.Context, userID string) (int64, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "id",
	}

	body, err := r.client.Query(ctx, "entities", query)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return int64(len(rows)), nil
}
