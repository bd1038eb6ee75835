package simulation

import (
	crand "crypto/rand"
	"math"
	"math/rand/v2"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// -----------------------------------------------------------------------------
// Random streams
// -----------------------------------------------------------------------------

// NewRandom returns a ChaCha8 stream seeded from the OS entropy source.
func NewRandom() interfaces.IRandom {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededRandom returns a reproducible PCG stream.
func NewSeededRandom(seed uint64) interfaces.IRandom {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// -----------------------------------------------------------------------------

// Normal draws a standard normal deviate with the Box-Muller transform.
// Both uniforms are taken as 1-U so the logarithm never sees zero.
func Normal(r interfaces.IRandom) float64 {
	u := 1 - r.Float64()
	v := 1 - r.Float64()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// -----------------------------------------------------------------------------
// Generator
// -----------------------------------------------------------------------------

// Generator produces successive bars from a running price cursor.
type Generator struct {
	rng        interfaces.IRandom
	baseline   float64
	volatility float64
	price      float64
}

// NewGenerator creates a generator positioned at the baseline price.
func NewGenerator(rng interfaces.IRandom, baseline, volatility float64) *Generator {
	return &Generator{
		rng:        rng,
		baseline:   baseline,
		volatility: volatility,
		price:      baseline,
	}
}

// -----------------------------------------------------------------------------

// NextBar opens at the current price, closes one Gaussian step away and
// widens the wicks by two further half-normal draws. The cursor moves to close.
func (g *Generator) NextBar() models.MBar {
	open := g.price
	close := open + Normal(g.rng)*g.volatility
	high := math.Max(open, close) + math.Abs(Normal(g.rng))*g.volatility
	low := math.Min(open, close) - math.Abs(Normal(g.rng))*g.volatility
	g.price = close

	return models.MBar{Open: open, High: high, Low: low, Close: close}
}

// -----------------------------------------------------------------------------

// Price returns the running price cursor.
func (g *Generator) Price() float64 {
	return g.price
}

// Reset moves the price cursor back to the baseline.
func (g *Generator) Reset() {
	g.price = g.baseline
}
