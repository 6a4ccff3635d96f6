package pillar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUp(t *testing.T) {
	tr := Classify(110, 100)

	assert.InDelta(t, 10.0, tr.Percent, 0.001)
	assert.Equal(t, DirectionUp, tr.Direction)
}

func TestClassifyInsideNoiseBand(t *testing.T) {
	tr := Classify(102, 100)

	assert.InDelta(t, 2.0, tr.Percent, 0.001)
	assert.Equal(t, DirectionNeutral, tr.Direction)
}

func TestClassifyDown(t *testing.T) {
	tr := Classify(80, 100)

	assert.InDelta(t, -20.0, tr.Percent, 0.001)
	assert.Equal(t, DirectionDown, tr.Direction)
}

func TestClassifyZeroPrevious(t *testing.T) {
	tr := Classify(50, 0)

	assert.Equal(t, 0.0, tr.Percent)
	assert.Equal(t, DirectionNeutral, tr.Direction)
}

func TestClassifyBandEdges(t *testing.T) {
	// Exactly ±5% is still neutral; the band is a strict inequality.
	assert.Equal(t, DirectionNeutral, Classify(105, 100).Direction)
	assert.Equal(t, DirectionNeutral, Classify(95, 100).Direction)
	assert.Equal(t, DirectionUp, Classify(106, 100).Direction)
	assert.Equal(t, DirectionDown, Classify(94, 100).Direction)
}
