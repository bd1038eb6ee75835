package interfaces

// -----------------------------------------------------------------------------
// IRandom is the injectable uniform random stream used by every simulation.
// -----------------------------------------------------------------------------

type IRandom interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}
