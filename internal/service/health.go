package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/pillar"
	"github.com/skanos/backend/internal/repository"
	"github.com/skanos/backend/internal/telemetry"
)

type healthService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

// NewHealthService creates a new health metrics service
func NewHealthService(eventRepo repository.EventRepository, userRepo repository.UserRepository) HealthService {
	return &healthService{eventRepo: eventRepo, userRepo: userRepo, now: time.Now}
}

// GetMetrics derives the health dashboard from the last 30 days of health
// events. Every figure comes from captured events; an empty window yields
// zeros with hasData=false.
func (s *healthService) GetMetrics(ctx context.Context, userID string) (*models.HealthMetrics, error) {
	telemetry.PillarRequests.WithLabelValues(pillar.Health).Inc()

	now := s.now().UTC()
	since := now.AddDate(0, 0, -pillar.StreakLookbackDays)

	events, err := s.eventRepo.GetActiveByTypes(ctx, userID, pillar.TypesForPillar(pillar.Health), since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch health events: %w", err)
	}

	goals, onboarded, err := fetchGoals(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	byDay := bucketByDay(events)

	weekly := make([]models.HealthDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayEvents := byDay[pillar.DayKey(day)]
		weekly = append(weekly, models.HealthDay{
			Name:    day.Format("Mon"),
			Sleep:   pillar.Latest(dayEvents, "sleep", 0, "sleep"),
			Steps:   pillar.Sum(dayEvents, "steps", "steps"),
			Energy:  pillar.Latest(dayEvents, "energy", 0, "energy"),
			Workout: pillar.Sum(dayEvents, "minutes", "workout"),
			Date:    pillar.DayKey(day),
		})
	}

	today := byDay[pillar.DayKey(now)]

	return &models.HealthMetrics{
		WeeklyData:    weekly,
		TodaySleep:    pillar.Latest(today, "sleep", 0, "sleep"),
		SleepGoal:     goals.SleepGoalOrDefault(),
		TodaySteps:    pillar.Sum(today, "steps", "steps"),
		StepGoal:      goals.StepGoalOrDefault(),
		CurrentWeight: pillar.Latest(events, "weight", 0, "weight"),
		TargetWeight:  goals.TargetWeightOrZero(),
		WorkoutStreak: pillar.CurrentStreak(pillar.FilterType(events, "workout"), now),
		EnergyLevel:   pillar.Latest(today, "energy", 0, "energy"),
		HasData:       len(events) > 0,
		IsOnboarded:   onboarded,
		DataSource:    "events",
		LastSync:      now.Format(time.RFC3339),
	}, nil
}

// bucketByDay groups events by UTC day, preserving the newest-first order
// within each bucket.
func bucketByDay(events []models.Event) map[string][]models.Event {
	byDay := make(map[string][]models.Event)
	for _, e := range events {
		key := pillar.DayKey(e.CreatedAt)
		byDay[key] = append(byDay[key], e)
	}
	return byDay
}

// fetchGoals loads the user's goals, treating a missing onboarding record
// as a not-yet-onboarded user rather than an error.
func fetchGoals(ctx context.Context, userRepo repository.UserRepository, userID string) (*models.UserGoals, bool, error) {
	status, err := userRepo.GetOnboarding(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch goals: %w", err)
	}
	return status.Goals, status.Completed, nil
}
