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

const trendWindowDays = 7

type analyticsService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewAnalyticsService creates a new cross-pillar analytics service
func NewAnalyticsService(eventRepo repository.EventRepository) AnalyticsService {
	return &analyticsService{eventRepo: eventRepo, now: time.Now}
}

// GetAnalytics derives the activity chart and pillar distribution for the
// requested period ("7d" or "30d"), optionally narrowed to one pillar. The
// week-over-week trend always compares the last seven days to the seven
// before, regardless of period.
func (s *analyticsService) GetAnalytics(ctx context.Context, userID, period, pillarName string) (*models.Analytics, error) {
	telemetry.PillarRequests.WithLabelValues("analytics").Inc()

	days := 7
	if period == "30d" {
		days = 30
	}

	// Two trend windows need 14 days even when the chart shows 7.
	fetchDays := days
	if fetchDays < 2*trendWindowDays {
		fetchDays = 2 * trendWindowDays
	}

	now := s.now().UTC()
	events, err := s.eventRepo.GetActiveSince(ctx, userID, now.AddDate(0, 0, -fetchDays))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity events: %w", err)
	}

	if pillarName != "" {
		events = filterPillar(events, pillarName)
	}

	byDay := make(map[string]int)
	pillarActivity := make(map[string]int)
	for _, name := range pillar.Names() {
		pillarActivity[name] = 0
	}

	chartStart := now.AddDate(0, 0, -(days - 1))
	total := 0
	for _, e := range events {
		created := e.CreatedAt.UTC()
		if !created.Before(chartStart.Truncate(24 * time.Hour)) {
			byDay[pillar.DayKey(created)]++
			total++
			if p := pillar.ForType(e.Type); p != "" {
				pillarActivity[p]++
			}
		}
	}

	activity := make([]models.ActivityDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		name := day.Format("Mon")
		if days > 7 {
			name = day.Format("Jan 2")
		}
		activity = append(activity, models.ActivityDay{
			Name:  name,
			Value: byDay[pillar.DayKey(day)],
			Date:  pillar.DayKey(day),
		})
	}

	thisWeek := countBetween(events, now.AddDate(0, 0, -trendWindowDays), now.AddDate(0, 0, 1))
	lastWeek := countBetween(events, now.AddDate(0, 0, -2*trendWindowDays), now.AddDate(0, 0, -trendWindowDays))
	trend := pillar.Classify(float64(thisWeek), float64(lastWeek))

	return &models.Analytics{
		ActivityData:   activity,
		PillarActivity: pillarActivity,
		TotalEvents:    total,
		AverageDaily:   float64(total) / float64(days),
		Trends: models.AnalyticsTrend{
			WeeklyPercent: trend.Percent,
			Direction:     trend.Direction,
		},
		HasData:     len(events) > 0,
		LastUpdated: now.Format(time.RFC3339),
	}, nil
}

// filterPillar keeps only events whose type belongs to the named pillar.
func filterPillar(events []models.Event, pillarName string) []models.Event {
	var out []models.Event
	for _, e := range events {
		if pillar.ForType(e.Type) == pillarName {
			out = append(out, e)
		}
	}
	return out
}

// countBetween counts events created in [start, end).
func countBetween(events []models.Event, start, end time.Time) int {
	n := 0
	for _, e := range events {
		created := e.CreatedAt.UTC()
		if !created.Before(start) && created.Before(end) {
			n++
		}
	}
	return n
}
