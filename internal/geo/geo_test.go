package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	assert.Zero(t, Distance(-34.6037, -58.3816, -34.6037, -58.3816))
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(-34.6037, -58.3816, -34.6083, -58.3712)
	d2 := Distance(-34.6083, -58.3712, -34.6037, -58.3816)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKnownValues(t *testing.T) {
	// Один градус широты ~ 111.19 км
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)

	// Обелиск -> Каса Росада, около 1 км
	d = Distance(-34.6037, -58.3816, -34.6083, -58.3712)
	assert.Greater(t, d, 900.0)
	assert.Less(t, d, 1300.0)
}

func TestDistanceMonotonic(t *testing.T) {
	// Для малых смещений расстояние растет вместе с разносом координат
	base := 0.0
	prev := -1.0
	for _, delta := range []float64{0.0001, 0.0005, 0.001, 0.005, 0.01} {
		d := Distance(base, base, base+delta, base+delta)
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestAdmits(t *testing.T) {
	assert.True(t, Admits(0, DefaultRadiusMeters))
	assert.True(t, Admits(49.9, DefaultRadiusMeters))
	assert.True(t, Admits(50, DefaultRadiusMeters))
	assert.False(t, Admits(50.1, DefaultRadiusMeters))
	assert.False(t, Admits(1000, DefaultRadiusMeters))
}
