package service

import (
	"context"

	"github.com/skanos/backend/internal/models"
)

// EventService defines the business logic for event capture and CRUD
type EventService interface {
	Create(ctx context.Context, userID string, req *models.CreateEventRequest) (*models.Event, error)
	Get(ctx context.Context, userID, id string) (*models.Event, error)
	List(ctx context.Context, userID, eventType string, page, limit int) (*models.EventList, error)
	Today(ctx context.Context, userID string) ([]models.Event, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, userID, id string) error
}

// CaptureService defines the quick-capture inbox logic
type CaptureService interface {
	Capture(ctx context.Context, userID string, req *models.QuickCaptureRequest) (*models.QuickNote, error)
	Inbox(ctx context.Context, userID string) ([]models.QuickNote, error)
}

// EntityService defines entity CRUD logic
type EntityService interface {
	Create(ctx context.Context, userID string, req *models.CreateEntityRequest) (*models.Entity, error)
	Get(ctx context.Context, userID, id string) (*models.Entity, error)
	List(ctx context.Context, userID, entityType string) ([]models.Entity, error)
}

// MemoryService defines memory CRUD and search logic
type MemoryService interface {
	Create(ctx context.Context, userID string, req *models.CreateMemoryRequest) (*models.Memory, error)
	List(ctx context.Context, userID, memoryType string) ([]models.Memory, error)
	Search(ctx context.Context, userID, query string) ([]models.Memory, error)
}

// HealthService computes the health pillar dashboard payload
type HealthService interface {
	GetMetrics(ctx context.Context, userID string) (*models.HealthMetrics, error)
}

// WealthService computes the wealth pillar dashboard payload
type WealthService interface {
	GetMetrics(ctx context.Context, userID string) (*models.WealthMetrics, error)
}

// SpiritualityService computes the spirituality pillar dashboard payload
type SpiritualityService interface {
	GetMetrics(ctx context.Context, userID string) (*models.SpiritualityMetrics, error)
}

// AnalyticsService computes the cross-pillar activity payload
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID, period, pillarName string) (*models.Analytics, error)
}

// DashboardService assembles the landing-page summary
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*models.DashboardData, error)
}

// OnboardingService tracks onboarding progress and goal documents
type OnboardingService interface {
	Status(ctx context.Context, userID string) (*models.OnboardingStatus, error)
	UpdateGoals(ctx context.Context, userID string, req *models.UpdateGoalsRequest) error
}
