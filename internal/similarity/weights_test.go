package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-6)
}

func TestNormalized(t *testing.T) {
	w := Weights{EventType: 3, Season: 1, PriceRange: 4}
	n := w.Normalized()
	assert.InDelta(t, 1.0, n.Sum(), 1e-6)
	assert.InDelta(t, 0.375, n.EventType, 1e-6)
	// The receiver is untouched.
	assert.Equal(t, 3.0, w.EventType)
}

func TestNormalizedZeroVector(t *testing.T) {
	var w Weights
	assert.Equal(t, w, w.Normalized())
}

func TestMapRoundTrip(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, w, FromMap(w.Map()))
}

func TestDimensionsCoverMap(t *testing.T) {
	m := DefaultWeights().Map()
	assert.Len(t, m, len(Dimensions))
	for _, dim := range Dimensions {
		if _, ok := m[dim]; !ok {
			t.Errorf("dimension %q missing from Map()", dim)
		}
	}
}
