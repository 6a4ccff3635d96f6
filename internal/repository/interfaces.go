package repository

import (
	"context"
	"errors"
	"time"

	"github.com/skanos/backend/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. Handlers map it to a 404.
var ErrNotFound = errors.New("record not found")

// EventRepository defines the interface for event data access. All reads
// are scoped to exactly one user; there are no cross-user queries.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, userID, id string) (*models.Event, error)
	List(ctx context.Context, userID, eventType string, limit, offset int) ([]models.Event, error)
	GetToday(ctx context.Context, userID string, limit int) ([]models.Event, error)
	GetActiveByTypes(ctx context.Context, userID string, types []string, since time.Time) ([]models.Event, error)
	GetActiveSince(ctx context.Context, userID string, since time.Time) ([]models.Event, error)
	Update(ctx context.Context, userID, id string, fields map[string]any) (*models.Event, error)
	SoftDelete(ctx context.Context, userID, id string) error
	CountActive(ctx context.Context, userID, eventType string) (int64, error)
}

// EntityRepository defines the interface for entity data access
type EntityRepository interface {
	Create(ctx context.Context, entity *models.Entity) (*models.Entity, error)
	GetByID(ctx context.Context, userID, id string) (*models.Entity, error)
	GetByUserID(ctx context.Context, userID, entityType string) ([]models.Entity, error)
	Count(ctx context.Context, userID string) (int64, error)
}

// MemoryRepository defines the interface for memory data access
type MemoryRepository interface {
	Create(ctx context.Context, memory *models.Memory) (*models.Memory, error)
	GetByUserID(ctx context.Context, userID, memoryType string) ([]models.Memory, error)
	Search(ctx context.Context, userID, query string) ([]models.Memory, error)
	Count(ctx context.Context, userID string) (int64, error)
}

// QuickNoteRepository defines the interface for quick-capture notes
type QuickNoteRepository interface {
	Create(ctx context.Context, note *models.QuickNote) (*models.QuickNote, error)
	GetUnprocessed(ctx context.Context, userID string, limit int) ([]models.QuickNote, error)
}

// UserRepository defines the interface for user and goal data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetOnboarding(ctx context.Context, userID string) (*models.OnboardingStatus, error)
	UpdateGoals(ctx context.Context, userID string, goals *models.UserGoals) error
}

// PillarRepository defines the interface for per-user pillar configuration
type PillarRepository interface {
	GetActiveByUserID(ctx context.Context, userID string) ([]models.Pillar, error)
}
