package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanos/backend/internal/pillar"
)

func newAnalyticsService(repo *fakeEventRepo, now time.Time) AnalyticsService {
	return &analyticsService{
		eventRepo: repo,
		now:       func() time.Time { return now },
	}
}

func TestAnalyticsEmptyStore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := newAnalyticsService(&fakeEventRepo{}, now)

	a, err := svc.GetAnalytics(context.Background(), testUserID, "7d", "")
	require.NoError(t, err)

	assert.False(t, a.HasData)
	assert.Equal(t, 0, a.TotalEvents)
	assert.Len(t, a.ActivityData, 7)
	assert.Equal(t, pillar.DirectionNeutral, a.Trends.Direction)
	// Every pillar appears in the distribution even when empty.
	assert.Contains(t, a.PillarActivity, pillar.Health)
	assert.Contains(t, a.PillarActivity, pillar.Knowledge)
}

func TestAnalyticsCountsAndBuckets(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "workout", now.Add(-1*time.Hour), nil)
	seedEvent(repo, "b", "meditation", now.Add(-2*time.Hour), nil)
	seedEvent(repo, "c", "income", now.AddDate(0, 0, -1), nil)

	svc := newAnalyticsService(repo, now)

	a, err := svc.GetAnalytics(context.Background(), testUserID, "7d", "")
	require.NoError(t, err)

	assert.True(t, a.HasData)
	assert.Equal(t, 3, a.TotalEvents)
	assert.Equal(t, 1, a.PillarActivity[pillar.Health])
	assert.Equal(t, 1, a.PillarActivity[pillar.Spirituality])
	assert.Equal(t, 1, a.PillarActivity[pillar.Wealth])
	assert.Equal(t, 0, a.PillarActivity[pillar.Knowledge])

	last := a.ActivityData[len(a.ActivityData)-1]
	assert.Equal(t, "2026-03-15", last.Date)
	assert.Equal(t, 2, last.Value)
}

func TestAnalyticsPillarFilter(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "workout", now.Add(-1*time.Hour), nil)
	seedEvent(repo, "b", "meditation", now.Add(-2*time.Hour), nil)

	svc := newAnalyticsService(repo, now)

	a, err := svc.GetAnalytics(context.Background(), testUserID, "7d", pillar.Health)
	require.NoError(t, err)

	assert.Equal(t, 1, a.TotalEvents)
	assert.Equal(t, 1, a.PillarActivity[pillar.Health])
	assert.Equal(t, 0, a.PillarActivity[pillar.Spirituality])
}

func TestAnalyticsThirtyDayPeriod(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	seedEvent(repo, "a", "workout", now.AddDate(0, 0, -20), nil)

	svc := newAnalyticsService(repo, now)

	a, err := svc.GetAnalytics(context.Background(), testUserID, "30d", "")
	require.NoError(t, err)

	assert.Len(t, a.ActivityData, 30)
	assert.Equal(t, 1, a.TotalEvents)
	assert.InDelta(t, 1.0/30.0, a.AverageDaily, 1e-9)
}

func TestAnalyticsWeekOverWeekTrend(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{}
	// Ten events this week against five the week before.
	for i := 0; i < 10; i++ {
		seedEvent(repo, "tw"+string(rune('a'+i)), "workout", now.Add(-time.Duration(i+1)*time.Hour), nil)
	}
	for i := 0; i < 5; i++ {
		seedEvent(repo, "lw"+string(rune('a'+i)), "workout", now.AddDate(0, 0, -8).Add(-time.Duration(i)*time.Hour), nil)
	}

	svc := newAnalyticsService(repo, now)

	a, err := svc.GetAnalytics(context.Background(), testUserID, "7d", "")
	require.NoError(t, err)

	assert.Equal(t, pillar.DirectionUp, a.Trends.Direction)
	assert.Equal(t, 100.0, a.Trends.WeeklyPercent)
}
