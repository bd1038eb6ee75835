package simulation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/simulation"
)

//----------------------------------------------------------------------------//
// Normal
//----------------------------------------------------------------------------//

// TestNormal_Moments checks the Box-Muller output is roughly standard normal.
func TestNormal_Moments(t *testing.T) {
	rng := simulation.NewSeededRandom(7)
	const n = 50000

	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := simulation.Normal(rng)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite deviate at %d", i)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0, mean, 0.03)
	assert.InDelta(t, 1, variance, 0.05)
}

// zeroRandom always returns 0, the edge that would break log(u) without 1-U.
type zeroRandom struct{}

func (zeroRandom) Float64() float64 { return 0 }

func TestNormal_ZeroUniformIsFinite(t *testing.T) {
	v := simulation.Normal(zeroRandom{})
	assert.Equal(t, 0.0, v)
}

//----------------------------------------------------------------------------//
// Generator
//----------------------------------------------------------------------------//

// TestNextBar_Invariants verifies OHLC ordering and open-to-previous-close chaining.
func TestNextBar_Invariants(t *testing.T) {
	g := simulation.NewGenerator(simulation.NewSeededRandom(42), 100, 1.2)

	prevClose := 100.0
	for i := 0; i < 10000; i++ {
		b := g.NextBar()
		require.Equal(t, prevClose, b.Open, "bar %d must open at previous close", i)
		require.GreaterOrEqual(t, b.High, math.Max(b.Open, b.Close), "bar %d high", i)
		require.LessOrEqual(t, b.Low, math.Min(b.Open, b.Close), "bar %d low", i)
		require.Equal(t, b.Close, g.Price())
		prevClose = b.Close
	}
}

func TestGenerator_Reset(t *testing.T) {
	g := simulation.NewGenerator(simulation.NewSeededRandom(1), 100, 1.2)
	for i := 0; i < 50; i++ {
		g.NextBar()
	}
	g.Reset()
	assert.Equal(t, 100.0, g.Price())
	assert.Equal(t, 100.0, g.NextBar().Open)
}

func TestGenerator_ZeroVolatilityIsFlat(t *testing.T) {
	g := simulation.NewGenerator(simulation.NewSeededRandom(3), 50, 0)
	b := g.NextBar()
	assert.Equal(t, 50.0, b.Open)
	assert.Equal(t, 50.0, b.Close)
	assert.Equal(t, 50.0, b.High)
	assert.Equal(t, 50.0, b.Low)
}

func TestSeededRandom_Reproducible(t *testing.T) {
	a, b := simulation.NewSeededRandom(99), simulation.NewSeededRandom(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
