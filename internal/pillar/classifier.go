// Package pillar implements the event-derived metrics engine: the
// pillar/event-type taxonomy, metric extraction from event payloads,
// calendar streak calculation, and window-over-window trend
// classification. Everything here is a pure function over an in-memory
// event slice; the package holds no state and never writes.
package pillar

// Pillar names. The storage layer imposes no taxonomy on event types;
// this mapping is the only place types are grouped into life domains.
const (
	Health       = "health"
	Wealth       = "wealth"
	Spirituality = "spirituality"
	Knowledge    = "knowledge"
)

var pillarTypes = map[string][]string{
	Health:       {"workout", "sleep", "steps", "weight", "energy", "meal", "water"},
	Wealth:       {"income", "expense", "investment", "net_worth", "purchase"},
	Spirituality: {"meditation", "gratitude", "journaling", "prayer", "mindfulness", "mood"},
	Knowledge:    {"reading", "learning", "course", "note"},
}

// typeToPillar is the reverse lookup, built once at init
var typeToPillar = func() map[string]string {
	m := make(map[string]string)
	for p, types := range pillarTypes {
		for _, t := range types {
			m[t] = p
		}
	}
	return m
}()

// Names returns all known pillar names in display order
func Names() []string {
	return []string{Health, Wealth, Spirituality, Knowledge}
}

// TypesForPillar returns the event types belonging to a pillar. Unknown
// pillars yield an empty slice, never an error.
func TypesForPillar(pillar string) []string {
	types, ok := pillarTypes[pillar]
	if !ok {
		return []string{}
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// ForType returns the pillar an event type belongs to, or "" when the
// type is outside the taxonomy.
func ForType(eventType string) string {
	return typeToPillar[eventType]
}
