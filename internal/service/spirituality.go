package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/pillar"
	"github.com/skanos/backend/internal/repository"
	"github.com/skanos/backend/internal/telemetry"
)

type spiritualityService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

// NewSpiritualityService creates a new spirituality metrics service
func NewSpiritualityService(eventRepo repository.EventRepository, userRepo repository.UserRepository) SpiritualityService {
	return &spiritualityService{eventRepo: eventRepo, userRepo: userRepo, now: time.Now}
}

// GetMetrics derives the spirituality dashboard from the last 30 days of
// practice events. Streaks are computed over meditation sessions only.
func (s *spiritualityService) GetMetrics(ctx context.Context, userID string) (*models.SpiritualityMetrics, error) {
	telemetry.PillarRequests.WithLabelValues(pillar.Spirituality).Inc()

	now := s.now().UTC()
	since := now.AddDate(0, 0, -pillar.StreakLookbackDays)

	events, err := s.eventRepo.GetActiveByTypes(ctx, userID, pillar.TypesForPillar(pillar.Spirituality), since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spirituality events: %w", err)
	}

	goals, onboarded, err := fetchGoals(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	byDay := bucketByDay(events)

	weekly := make([]models.SpiritualityDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayEvents := byDay[pillar.DayKey(day)]
		weekly = append(weekly, models.SpiritualityDay{
			Name:        day.Format("Mon"),
			Meditation:  pillar.Sum(dayEvents, "minutes", "meditation"),
			Gratitude:   pillar.Count(dayEvents, "gratitude"),
			Journaling:  pillar.Sum(dayEvents, "minutes", "journaling"),
			Mindfulness: pillar.Latest(dayEvents, "rating", 0, "mindfulness"),
			Date:        pillar.DayKey(day),
		})
	}

	sessions := pillar.FilterType(events, "meditation")
	totalSessions := len(sessions)
	totalMinutes := pillar.Sum(events, "minutes", "meditation")

	avgSession := 0.0
	if totalSessions > 0 {
		avgSession = totalMinutes / float64(totalSessions)
	}

	today := byDay[pillar.DayKey(now)]

	return &models.SpiritualityMetrics{
		WeeklyData:       weekly,
		TodayMeditation:  pillar.Sum(today, "minutes", "meditation"),
		MeditationGoal:   goals.MeditationGoalOrDefault(),
		CurrentStreak:    pillar.CurrentStreak(sessions, now),
		LongestStreak:    pillar.LongestStreak(sessions),
		TotalSessions:    totalSessions,
		AverageSession:   avgSession,
		MindfulnessScore: pillar.Latest(events, "rating", 0, "mindfulness"),
		GratitudeEntries: pillar.Count(events, "gratitude"),
		JournalEntries:   pillar.Count(events, "journaling"),
		HasData:          len(events) > 0,
		IsOnboarded:      onboarded,
		DataSource:       "events",
		LastSync:         now.Format(time.RFC3339),
	}, nil
}
