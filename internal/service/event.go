package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
	"github.com/skanos/backend/internal/telemetry"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	todayLimit      = 20
)

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, userID string, req *models.CreateEventRequest) (*models.Event, error) {
	if err := ValidatePayload(req.Type, req.Data); err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = "web"
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Data:        req.Data,
		Source:      source,
		Priority:    req.Priority,
		Status:      models.EventStatusActive,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	telemetry.EventsCaptured.WithLabelValues(created.Type).Inc()

	return created, nil
}

func (s *eventService) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, userID, id)
}

func (s *eventService) List(ctx context.Context, userID, eventType string, page, limit int) (*models.EventList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	events, err := s.eventRepo.List(ctx, userID, eventType, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	total, err := s.eventRepo.CountActive(ctx, userID, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &models.EventList{
		Data: events,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *eventService) Today(ctx context.Context, userID string) ([]models.Event, error) {
	return s.eventRepo.GetToday(ctx, userID, todayLimit)
}

func (s *eventService) Update(ctx context.Context, userID, id string, req *models.UpdateEventRequest) (*models.Event, error) {
	fields := make(map[string]any)

	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}

	if req.Data != nil {
		// Validate against the effective type after this update.
		effectiveType := ""
		if req.Type != nil {
			effectiveType = *req.Type
		} else {
			existing, err := s.eventRepo.GetByID(ctx, userID, id)
			if err != nil {
				return nil, err
			}
			effectiveType = existing.Type
		}
		if err := ValidatePayload(effectiveType, req.Data); err != nil {
			return nil, err
		}
		fields["data"] = req.Data
	}

	if len(fields) == 0 {
		return s.eventRepo.GetByID(ctx, userID, id)
	}

	return s.eventRepo.Update(ctx, userID, id, fields)
}

func (s *eventService) Delete(ctx context.Context, userID, id string) error {
	return s.eventRepo.SoftDelete(ctx, userID, id)
}
