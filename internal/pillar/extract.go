package pillar

import (
	"encoding/json"

	"github.com/skanos/backend/internal/models"
)

// Metric extraction over event payloads. An event "matches" a key when
// the key is defined in its data map, even when the value is zero: a
// missing key means no data was recorded, a zero means an explicit zero,
// and the two must stay distinguishable. Non-numeric values under a
// metric key count as present with value 0; write-time payload
// validation keeps known event types from producing them.

// Latest returns the value of key from the first matching event. The
// input is expected in created_at-descending order, so the first match
// is the most recent one. Use for point-in-time metrics (weight, net
// worth). filterType restricts matching to one event type; "" matches
// all. Returns def when nothing matches.
func Latest(events []models.Event, key string, def float64, filterType string) float64 {
	for _, e := range events {
		if filterType != "" && e.Type != filterType {
			continue
		}
		if v, ok := e.Data[key]; ok {
			n, _ := toNumber(v)
			return n
		}
	}
	return def
}

// Sum adds the value of key across all matching events. Use for
// additive metrics (income, workout minutes, steps). Events without the
// key contribute nothing.
func Sum(events []models.Event, key string, filterType string) float64 {
	var total float64
	for _, e := range events {
		if filterType != "" && e.Type != filterType {
			continue
		}
		if v, ok := e.Data[key]; ok {
			n, _ := toNumber(v)
			total += n
		}
	}
	return total
}

// Count returns the number of events of the given type; "" counts all.
func Count(events []models.Event, filterType string) int {
	if filterType == "" {
		return len(events)
	}
	n := 0
	for _, e := range events {
		if e.Type == filterType {
			n++
		}
	}
	return n
}

// FilterType returns the subset of events with the given type,
// preserving order.
func FilterType(events []models.Event, eventType string) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// toNumber coerces the numeric shapes a decoded JSON payload can carry.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
