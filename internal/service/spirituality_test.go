package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanos/backend/internal/models"
)

func newSpiritualityService(repo *fakeEventRepo, users *fakeUserRepo, now time.Time) SpiritualityService {
	return &spiritualityService{
		eventRepo: repo,
		userRepo:  users,
		now:       func() time.Time { return now },
	}
}

func TestSpiritualityEmptyStore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := newSpiritualityService(&fakeEventRepo{}, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.False(t, m.HasData)
	assert.Equal(t, 0, m.CurrentStreak)
	assert.Equal(t, 0, m.LongestStreak)
	assert.Equal(t, 0, m.TotalSessions)
	assert.Equal(t, 0.0, m.AverageSession)
	assert.Equal(t, models.DefaultMeditationGoal, m.MeditationGoal)
}

func TestSpiritualityStreakFromConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	// Three consecutive days of meditation, today included.
	for i := 0; i < 3; i++ {
		seedEvent(repo, string(rune('a'+i)), "meditation", now.AddDate(0, 0, -i), map[string]any{"minutes": 15.0})
	}

	svc := newSpiritualityService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.True(t, m.HasData)
	assert.Equal(t, 3, m.CurrentStreak)
	assert.Equal(t, 3, m.LongestStreak)
	assert.Equal(t, 3, m.TotalSessions)
	assert.Equal(t, 15.0, m.AverageSession)
	assert.Equal(t, 15.0, m.TodayMeditation)
}

func TestSpiritualityStreakBreaksWithoutToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "meditation", now.AddDate(0, 0, -1), map[string]any{"minutes": 15.0})
	seedEvent(repo, "b", "meditation", now.AddDate(0, 0, -2), map[string]any{"minutes": 15.0})

	svc := newSpiritualityService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 0, m.CurrentStreak)
	assert.Equal(t, 2, m.LongestStreak)
}

func TestSpiritualityStreakIgnoresOtherPracticeTypes(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "meditation", now, map[string]any{"minutes": 10.0})
	seedEvent(repo, "b", "gratitude", now.AddDate(0, 0, -1), nil)
	seedEvent(repo, "c", "meditation", now.AddDate(0, 0, -2), map[string]any{"minutes": 10.0})

	svc := newSpiritualityService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	// Gratitude on the gap day does not bridge the meditation streak.
	assert.Equal(t, 1, m.CurrentStreak)
	assert.Equal(t, 1, m.GratitudeEntries)
}

func TestSpiritualityCounters(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "meditation", now, map[string]any{"minutes": 10.0})
	seedEvent(repo, "b", "meditation", now.Add(-3*time.Hour), map[string]any{"minutes": 30.0})
	seedEvent(repo, "c", "journaling", now, map[string]any{"minutes": 5.0})
	seedEvent(repo, "d", "mindfulness", now, map[string]any{"rating": 8.0})

	svc := newSpiritualityService(repo, &fakeUserRepo{}, now)

	m, err := svc.GetMetrics(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 2, m.TotalSessions)
	assert.Equal(t, 20.0, m.AverageSession)
	assert.Equal(t, 40.0, m.TodayMeditation)
	assert.Equal(t, 1, m.JournalEntries)
	assert.Equal(t, 8.0, m.MindfulnessScore)
}
