package service

import (
	"context"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
)

const dashboardEventLimit = 10

// defaultPillars is the built-in pillar set served before a user has
// customized their own.
var defaultPillars = []models.Pillar{
	{ID: "health", Name: "Health", Color: "#10b981", Icon: "heart", Position: 1, IsActive: true},
	{ID: "wealth", Name: "Wealth", Color: "#f59e0b", Icon: "trending-up", Position: 2, IsActive: true},
	{ID: "spirituality", Name: "Spirituality", Color: "#8b5cf6", Icon: "sun", Position: 3, IsActive: true},
	{ID: "knowledge", Name: "Knowledge", Color: "#3b82f6", Icon: "book", Position: 4, IsActive: true},
}

type dashboardService struct {
	eventRepo  repository.EventRepository
	entityRepo repository.EntityRepository
	memoryRepo repository.MemoryRepository
	pillarRepo repository.PillarRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	eventRepo repository.EventRepository,
	entityRepo repository.EntityRepository,
	memoryRepo repository.MemoryRepository,
	pillarRepo repository.PillarRepository,
) DashboardService {
	return &dashboardService{
		eventRepo:  eventRepo,
		entityRepo: entityRepo,
		memoryRepo: memoryRepo,
		pillarRepo: pillarRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*models.DashboardData, error) {
	todayEvents, err := s.eventRepo.GetToday(ctx, userID, dashboardEventLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's events: %w", err)
	}

	totalEvents, err := s.eventRepo.CountActive(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	entityCount, err := s.entityRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	memoryCount, err := s.memoryRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count memories: %w", err)
	}

	pillars, err := s.pillarRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pillars: %w", err)
	}
	if len(pillars) == 0 {
		pillars = defaultPillars
	}

	return &models.DashboardData{
		TodayEvents: todayEvents,
		QuickStats: models.QuickStats{
			TotalEvents:   totalEvents,
			EntitiesCount: entityCount,
			MemoriesCount: memoryCount,
		},
		Pillars: pillars,
	}, nil
}
