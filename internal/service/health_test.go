package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanos/backend/internal/models"
)

func newHealthService(repo *fakeEventRepo, users *fakeUserRepo, now time.Time) HealthService {
	return &healthService{
		eventRepo: repo,
		userRepo:  users,
		now:       func() time.Time { return now },
	}
}

func TestHealthMetricsEmptyStore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := newHealthService(&fakeEventRepo{}, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.False(t, m.HasData)
	assert.False(t, m.IsOnboarded)
	assert.Equal(t, 0.0, m.TodaySleep)
	assert.Equal(t, 0, m.WorkoutStreak)
	assert.Len(t, m.WeeklyData, 7)
	// Defaults apply even before goals are configured.
	assert.Equal(t, models.DefaultSleepGoal, m.SleepGoal)
	assert.Equal(t, models.DefaultStepGoal, m.StepGoal)
}

func TestHealthMetricsDerivedFromEvents(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}

	// Two step events today are additive; two sleep readings keep the latest.
	seedEvent(repo, "s1", "steps", now.Add(-5*time.Hour), map[string]any{"steps": 3000.0})
	seedEvent(repo, "s2", "steps", now.Add(-2*time.Hour), map[string]any{"steps": 5000.0})
	seedEvent(repo, "sl1", "sleep", now.Add(-6*time.Hour), map[string]any{"sleep": 6.0})
	seedEvent(repo, "sl2", "sleep", now.Add(-1*time.Hour), map[string]any{"sleep": 7.5})
	seedEvent(repo, "w1", "weight", now.AddDate(0, 0, -3), map[string]any{"weight": 80.0})
	seedEvent(repo, "w2", "weight", now.AddDate(0, 0, -1), map[string]any{"weight": 79.2})

	svc := newHealthService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, m.HasData)
	assert.Equal(t, 8000.0, m.TodaySteps)
	assert.Equal(t, 7.5, m.TodaySleep)
	assert.Equal(t, 79.2, m.CurrentWeight)
}

func TestHealthWorkoutStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	for i := 0; i < 3; i++ {
		seedEvent(repo, string(rune('a'+i)), "workout", now.AddDate(0, 0, -i), map[string]any{"minutes": 30.0})
	}
	// An older run separated by a gap does not extend the current streak.
	seedEvent(repo, "old", "workout", now.AddDate(0, 0, -5), map[string]any{"minutes": 30.0})

	svc := newHealthService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 3, m.WorkoutStreak)
}

func TestHealthMetricsUsesConfiguredGoals(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{onboarding: &models.OnboardingStatus{
		Completed: true,
		Goals: &models.UserGoals{
			Health: &models.HealthGoals{SleepGoal: 9, StepGoal: 12000, TargetWeight: 75},
		},
	}}

	svc := newHealthService(&fakeEventRepo{}, users, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, m.IsOnboarded)
	assert.Equal(t, 9.0, m.SleepGoal)
	assert.Equal(t, 12000.0, m.StepGoal)
	assert.Equal(t, 75.0, m.TargetWeight)
}

func TestHealthWeeklyDataCoversSevenDaysOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "s1", "steps", now.AddDate(0, 0, -6), map[string]any{"steps": 1000.0})

	svc := newHealthService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, m.WeeklyData, 7)
	assert.Equal(t, "2026-03-09", m.WeeklyData[0].Date)
	assert.Equal(t, "2026-03-15", m.WeeklyData[6].Date)
	assert.Equal(t, 1000.0, m.WeeklyData[0].Steps)
	assert.Equal(t, 0.0, m.WeeklyData[6].Steps)
}
