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

const wealthWindowMonths = 6

type wealthService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

// NewWealthService creates a new wealth metrics service
func NewWealthService(eventRepo repository.EventRepository, userRepo repository.UserRepository) WealthService {
	return &wealthService{eventRepo: eventRepo, userRepo: userRepo, now: time.Now}
}

// GetMetrics derives the wealth dashboard from the last six months of
// financial events. Income and expenses are summed per month; net worth and
// investment value are point-in-time, taking the most recent reading at or
// before each month's end.
func (s *wealthService) GetMetrics(ctx context.Context, userID string) (*models.WealthMetrics, error) {
	telemetry.PillarRequests.WithLabelValues(pillar.Wealth).Inc()

	now := s.now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(wealthWindowMonths - 1), 0)

	events, err := s.eventRepo.GetActiveByTypes(ctx, userID, pillar.TypesForPillar(pillar.Wealth), windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wealth events: %w", err)
	}

	_, onboarded, err := fetchGoals(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	monthly := make([]models.WealthMonth, 0, wealthWindowMonths)
	for i := wealthWindowMonths - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		monthEvents := eventsBetween(events, monthStart, monthEnd)
		through := eventsBefore(events, monthEnd)

		monthly = append(monthly, models.WealthMonth{
			Month:       monthStart.Format("Jan"),
			NetWorth:    pillar.Latest(through, "value", 0, "net_worth"),
			Income:      pillar.Sum(monthEvents, "amount", "income"),
			Expenses:    pillar.Sum(monthEvents, "amount", "expense"),
			Investments: pillar.Latest(through, "value", 0, "investment"),
			Date:        pillar.MonthKey(monthStart),
		})
	}

	current := monthly[len(monthly)-1]
	previous := monthly[len(monthly)-2]

	savingsRate := 0.0
	if current.Income > 0 {
		savingsRate = (current.Income - current.Expenses) / current.Income * 100
	}

	trend := pillar.Classify(current.NetWorth, previous.NetWorth)

	return &models.WealthMetrics{
		MonthlyData:       monthly,
		CurrentNetWorth:   current.NetWorth,
		MonthlyIncome:     current.Income,
		MonthlyExpenses:   current.Expenses,
		InvestmentValue:   current.Investments,
		SavingsRate:       savingsRate,
		NetWorthChange:    trend.Percent,
		NetWorthDirection: trend.Direction,
		HasData:           len(events) > 0,
		IsOnboarded:       onboarded,
		DataSource:        "events",
		LastSync:          now.Format(time.RFC3339),
	}, nil
}

// eventsBetween returns events created in [start, end), preserving order.
func eventsBetween(events []models.Event, start, end time.Time) []models.Event {
	var out []models.Event
	for _, e := range events {
		if !e.CreatedAt.Before(start) && e.CreatedAt.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

// eventsBefore returns events created before end, preserving order.
func eventsBefore(events []models.Event, end time.Time) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.CreatedAt.Before(end) {
			out = append(out, e)
		}
	}
	return out
}
