package simulation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/models"
	"market-backdrop/src/simulation"
)

func TestToY_Endpoints(t *testing.T) {
	assert.Equal(t, 600.0, simulation.ToY(90, 90, 110, 110, 600))
	assert.InDelta(t, 110.0, simulation.ToY(110, 90, 110, 110, 600), 1e-6)
	assert.InDelta(t, 355.0, simulation.ToY(100, 90, 110, 110, 600), 1e-6)
}

// TestToY_Monotonic checks higher prices never map lower on screen.
func TestToY_Monotonic(t *testing.T) {
	prev := math.Inf(1)
	for p := 80.0; p <= 120; p += 0.25 {
		y := simulation.ToY(p, 85, 115, 110, 600)
		require.LessOrEqual(t, y, prev, "price %v", p)
		prev = y
	}
}

func TestToY_DegenerateRange(t *testing.T) {
	y := simulation.ToY(100, 100, 100, 110, 600)
	assert.False(t, math.IsNaN(y) || math.IsInf(y, 0))
	assert.Equal(t, 600.0, y)
}

func TestVisibleRange(t *testing.T) {
	bars := []models.MBar{
		{Open: 100, High: 102, Low: 99, Close: 101},
		{Open: 101, High: 105, Low: 100, Close: 104},
		{Open: 104, High: 104.5, Low: 97, Close: 98},
	}
	minP, maxP := simulation.VisibleRange(bars)
	assert.Equal(t, 97.0, minP)
	assert.Equal(t, 105.0, maxP)

	minP, maxP = simulation.VisibleRange(nil)
	assert.Zero(t, minP)
	assert.Zero(t, maxP)
}
