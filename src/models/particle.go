package models

// MParticle is one short-lived FX particle.
// Life runs from 1 down to 0; the particle is culled at or below 0.
type MParticle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Life   float64 `json:"life"`
	Radius float64 `json:"r"`
}

// MPointer is the sampled pointer position and its per-frame delta.
type MPointer struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}
