package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type eventRepository struct {
	client *supabase.Client
}

// NewEventRepository creates a new event repository
func NewEventRepository(client *supabase.Client) EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	data := map[string]any{
		"id":       event.ID,
		"user_id":  event.UserID,
		"type":     event.Type,
		"title":    event.Title,
		"source":   event.Source,
		"priority": event.Priority,
		"status":   event.Status,
	}

	if event.Description != nil {
		data["description"] = *event.Description
	}
	// data column is NOT NULL; store an empty object when no payload
	if len(event.Data) > 0 {
		data["data"] = event.Data
	} else {
		data["data"] = map[string]any{}
	}

	body, err := r.client.Insert(ctx, "events", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no event returned")
	}

	return &events[0], nil
}

func (r *eventRepository) GetByID(ctx context.Context, userID, id string) (*models.Event, error) {
	query := map[string]any{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	return &events[0], nil
}

func (r *eventRepository) List(ctx context.Context, userID, eventType string, limit, offset int) ([]models.Event, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"status":  fmt.Sprintf("eq.%s", models.EventStatusActive),
		"select":  "*",
		"order":   "created_at.desc",
		"limit":   limit,
		"offset":  offset,
	}

	if eventType != "" {
		query["type"] = fmt.Sprintf("eq.%s", eventType)
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return events, nil
}

func (r *eventRepository) GetToday(ctx context.Context, userID string, limit int) ([]models.Event, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"status":  fmt.Sprintf("eq.%s", models.EventStatusActive),
		"and": fmt.Sprintf("(created_at.gte.%s,created_at.lt.%s)",
			dayStart.Format(time.RFC3339), dayEnd.Format(time.RFC3339)),
		"select": "*",
		"order":  "created_at.desc",
		"limit":  limit,
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's events: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return events, nil
}

func (r *eventRepository) GetActiveByTypes(ctx context.Context, userID string, types []string, since time.Time) ([]models.Event, error) {
	if len(types) == 0 {
		return []models.Event{}, nil
	}

	query := map[string]any{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"status":     fmt.Sprintf("eq.%s", models.EventStatusActive),
		"type":       fmt.Sprintf("in.(%s)", strings.Join(types, ",")),
		"created_at": fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"select":     "*",
		"order":      "created_at.desc",
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by types: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return events, nil
}

func (r *eventRepository) GetActiveSince(ctx context.Context, userID string, since time.Time) ([]models.Event, error) {
	query := map[string]any{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"status":     fmt.Sprintf("eq.%s", models.EventStatusActive),
		"created_at": fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"select":     "*",
		"order":      "created_at.desc",
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, userID, id string, fields map[string]any) (*models.Event, error) {
	filters := map[string]any{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	body, err := r.client.UpdateWhere(ctx, "events", filters, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	return &events[0], nil
}

func (r *eventRepository) SoftDelete(ctx context.Context, userID, id string) error {
	_, err := r.Update(ctx, userID, id, map[string]any{
		"status": models.EventStatusDeleted,
	})
	return err
}

func (r *eventRepository) CountActive(ctx context.Context, userID, eventType string) (int64, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"status":  fmt.Sprintf("eq.%s", models.EventStatusActive),
		"select":  "id",
	}
	if eventType != "" {
		query["type"] = fmt.Sprintf("eq.%s", eventType)
	}

	body, err := r.client.Query(ctx, "events", query)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return int64(len(rows)), nil
}
