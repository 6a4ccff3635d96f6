package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPayload marks a payload that failed schema validation.
// Handlers map it to a 422.
var ErrInvalidPayload = errors.New("invalid event payload")

// Per-type payload schemas for the event types the pillar taxonomy
// knows about. Keys map to whether the key is required. Validating at
// write time keeps metric keys numeric, so the read path never sees a
// "defined but wrong type" value for a known event type. Types outside
// the schema table are open-ended and pass through unvalidated.
var payloadSchemas = map[string]map[string]bool{
	"sleep":       {"sleep": true},
	"steps":       {"steps": true},
	"workout":     {"minutes": true},
	"weight":      {"weight": true},
	"energy":      {"energy": true},
	"water":       {"liters": false},
	"income":      {"amount": true},
	"expense":     {"amount": true},
	"purchase":    {"amount": false},
	"investment":  {"value": true},
	"net_worth":   {"value": true},
	"meditation":  {"minutes": true},
	"journaling":  {"minutes": false},
	"mindfulness": {"rating": true},
	"mood":        {"mood": false},
}

// ValidatePayload checks an event payload against the schema for its
// type. Required keys must be present; any schema key that is present
// must carry a numeric value. An explicit zero is valid.
func ValidatePayload(eventType string, data map[string]any) error {
	schema, known := payloadSchemas[eventType]
	if !known {
		return nil
	}

	for key, required := range schema {
		v, ok := data[key]
		if !ok {
			if required {
				return fmt.Errorf("%w: event type %q requires numeric key %q in data", ErrInvalidPayload, eventType, key)
			}
			continue
		}
		if !isNumeric(v) {
			return fmt.Errorf("%w: event type %q key %q must be numeric, got %T", ErrInvalidPayload, eventType, key, v)
		}
	}

	return nil
}

func isNumeric(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	default:
		return false
	}
}
