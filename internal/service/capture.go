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
	captureEventType = "quick_capture"
	inboxLimit       = 50
	previewLength    = 100
)

type captureService struct {
	noteRepo  repository.QuickNoteRepository
	eventRepo repository.EventRepository
}

// NewCaptureService creates a new quick-capture service
func NewCaptureService(noteRepo repository.QuickNoteRepository, eventRepo repository.EventRepository) CaptureService {
	return &captureService{noteRepo: noteRepo, eventRepo: eventRepo}
}

// Capture stores the raw note and appends a capture event to the user's
// timeline so the activity feed reflects it.
func (s *captureService) Capture(ctx context.Context, userID string, req *models.QuickCaptureRequest) (*models.QuickNote, error) {
	note := &models.QuickNote{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: req.Content,
	}

	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create quick note: %w", err)
	}

	desc := req.Content
	if len(desc) > previewLength {
		desc = desc[:previewLength] + "..."
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        captureEventType,
		Title:       "Quick Capture",
		Description: &desc,
		Data:        map[string]any{"originalContent": req.Content},
		Source:      "web",
		Status:      models.EventStatusActive,
	}

	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record capture event: %w", err)
	}

	telemetry.EventsCaptured.WithLabelValues(captureEventType).Inc()

	return created, nil
}

func (s *captureService) Inbox(ctx context.Context, userID string) ([]models.QuickNote, error) {
	return s.noteRepo.GetUnprocessed(ctx, userID, inboxLimit)
}
