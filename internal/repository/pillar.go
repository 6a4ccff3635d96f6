package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type pillarRepository struct {
	client *supabase.Client
}

// NewPillarRepository creates a new pillar repository
func NewPillarRepository(client *supabase.Client) PillarRepository {
	return &pillarRepository{client: client}
}

func (r *pillarRepository) GetActiveByUserID(ctx context.Context, userID string) ([]models.Pillar, error) {
	query := map[string]any{
		"user_id":   fmt.Sprintf("eq.%s", userID),
		"is_active": "eq.true",
		"select":    "*",
		"order":     "position.asc",
	}

	body, err := r.client.Query(ctx, "pillars", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pillars: %w", err)
	}

	var pillars []models.Pillar
	if err := json.Unmarshal(body, &pillars); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return pillars, nil
}
