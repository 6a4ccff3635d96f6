package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type quickNoteRepository struct {
	client *supabase.Client
}

// NewQuickNoteRepository creates a new quick-note repository
func NewQuickNoteRepository(client *supabase.Client) QuickNoteRepository {
	return &quickNoteRepository{client: client}
}

func (r *quickNoteRepository) Create(ctx context.Context, note *models.QuickNote) (*models.QuickNote, error) {
	data := map[string]any{
		"id":        note.ID,
		"user_id":   note.UserID,
		"content":   note.Content,
		"processed": note.Processed,
	}

	body, err := r.client.Insert(ctx, "quick_notes", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create quick note: %w", err)
	}

	var notes []models.QuickNote
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("no quick note returned")
	}

	return &notes[0], nil
}

func (r *quickNoteRepository) GetUnprocessed(ctx context.Context, userID string, limit int) ([]models.QuickNote, error) {
	query := map[string]any{
		"user_id":   fmt.Sprintf("eq.%s", userID),
		"processed": "eq.false",
		"select":    "*",
		"order":     "created_at.desc",
		"limit":     limit,
	}

	body, err := r.client.Query(ctx, "quick_notes", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get quick notes: %w", err)
	}

	var notes []models.QuickNote
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return notes, nil
}
