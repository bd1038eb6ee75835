package simulation

import (
	"math"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// -----------------------------------------------------------------------------
// ParticleSystem
// -----------------------------------------------------------------------------

// ParticleSystem holds the cursor FX particles in insertion order, oldest first.
type ParticleSystem struct {
	cfg       models.MFXConfig
	rng       interfaces.IRandom
	particles []models.MParticle
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(cfg models.MFXConfig, rng interfaces.IRandom) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]models.MParticle, 0, max(cfg.ParticleCap, 0)+max(cfg.MaxSpawn, 0)),
	}
}

// -----------------------------------------------------------------------------

// SpawnCount is clamp(floor(min(speed, speedCap)/2), minSpawn, maxSpawn).
func SpawnCount(cfg models.MFXConfig, vx, vy float64) int {
	speed := math.Min(cfg.SpeedCap, math.Hypot(vx, vy))
	if math.IsNaN(speed) {
		speed = 0
	}
	n := int(math.Floor(speed / 2))
	if n < cfg.MinSpawn {
		n = cfg.MinSpawn
	}
	if n > cfg.MaxSpawn {
		n = cfg.MaxSpawn
	}
	return n
}

// -----------------------------------------------------------------------------

// Spawn emits particles around the pointer. Each inherits a small share of
// the pointer velocity plus Gaussian jitter, so the cloud drifts along the
// motion vector without tracing it. The oldest particles are dropped once
// the population exceeds the cap.
func (ps *ParticleSystem) Spawn(pointer models.MPointer) int {
	n := SpawnCount(ps.cfg, pointer.VX, pointer.VY)
	for i := 0; i < n; i++ {
		ps.particles = append(ps.particles, models.MParticle{
			X:      pointer.X + Normal(ps.rng)*ps.cfg.Spread,
			Y:      pointer.Y + Normal(ps.rng)*ps.cfg.Spread,
			VX:     Normal(ps.rng)*ps.cfg.Jitter + pointer.VX*ps.cfg.Inherit,
			VY:     Normal(ps.rng)*ps.cfg.Jitter + pointer.VY*ps.cfg.Inherit,
			Life:   1,
			Radius: 1.2 + ps.rng.Float64()*2.2,
		})
	}

	if over := len(ps.particles) - max(ps.cfg.ParticleCap, 0); over > 0 {
		kept := copy(ps.particles, ps.particles[over:])
		ps.particles = ps.particles[:kept]
	}
	return n
}

// -----------------------------------------------------------------------------

// Step ages every particle by dt seconds and culls the expired ones.
// Survivors move by one frame of velocity and are damped; order is preserved.
func (ps *ParticleSystem) Step(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	decay := ps.cfg.DecayRate * dt
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life -= decay
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VX *= ps.cfg.Damping
		p.VY *= ps.cfg.Damping
		alive = append(alive, p)
	}
	ps.particles = alive
}

// -----------------------------------------------------------------------------

// Len returns the live population.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles exposes the live particles, oldest first. The slice is only
// valid until the next Spawn or Step.
func (ps *ParticleSystem) Particles() []models.MParticle {
	return ps.particles
}

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
