package pillar

// Trend directions
const (
	DirectionUp      = "up"
	DirectionDown    = "down"
	DirectionNeutral = "neutral"
)

// noiseBandPercent is the dead zone around zero: movements within ±5%
// read as neutral rather than signal.
const noiseBandPercent = 5.0

// Trend is a signed percentage change between two adjacent windows plus
// a coarse direction classification.
type Trend struct {
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction"`
}

// Classify compares an aggregate between the current and previous
// window. A previous value of 0 reports 0% neutral instead of a
// division error or an infinite change.
func Classify(current, previous float64) Trend {
	if previous == 0 {
		return Trend{Percent: 0, Direction: DirectionNeutral}
	}

	percent := (current - previous) / previous * 100

	direction := DirectionNeutral
	if percent > noiseBandPercent {
		direction = DirectionUp
	} else if percent < -noiseBandPercent {
		direction = DirectionDown
	}

	return Trend{Percent: percent, Direction: direction}
}
