package pillar

import (
	"sort"
	"time"

	"github.com/skanos/backend/internal/models"
)

// StreakLookbackDays bounds how far back CurrentStreak walks. Streaks
// longer than the window are reported at the window length.
const StreakLookbackDays = 30

// DayKey returns the UTC calendar-day bucket key for a timestamp.
// All day bucketing in the engine is UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// MonthKey returns the UTC calendar-month bucket key for a timestamp.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// eventDays collects the distinct UTC days that have at least one event.
func eventDays(events []models.Event) map[string]bool {
	days := make(map[string]bool, len(events))
	for _, e := range events {
		days[DayKey(e.CreatedAt)] = true
	}
	return days
}

// CurrentStreak computes the consecutive-day streak ending at asOf.
// It walks backward one day at a time starting at asOf inclusive and
// stops at the first day without an event. A day with no event at asOf
// means the streak is 0: no partial credit and no grace period, even
// when yesterday had activity. The walk is bounded to
// StreakLookbackDays.
func CurrentStreak(events []models.Event, asOf time.Time) int {
	days := eventDays(events)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	day := asOf.UTC()
	for i := 0; i < StreakLookbackDays; i++ {
		if !days[DayKey(day)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak computes the maximal run of calendar-consecutive days
// containing at least one event. A second event on the same day leaves
// the run unchanged; a gap of more than one day closes the run and
// starts a new one of length 1. A run still open at the end of the
// sequence counts.
func LongestStreak(events []models.Event) int {
	daySet := eventDays(events)
	if len(daySet) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daySet))
	for key := range daySet {
		t, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		gap := int(days[i].Sub(days[i-1]).Hours() / 24)
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
