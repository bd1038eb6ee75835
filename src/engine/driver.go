package engine

import (
	"time"

	"market-backdrop/src/helpers"
	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// State is the frame driver lifecycle state.
type State int

const (
	// StateIdle means no frame has been scheduled yet.
	StateIdle State = iota
	// StateRunning means frames are being produced. There is no way back.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// DefaultMaxDt bounds the simulated step after a stall (e.g. a backgrounded tab).
const DefaultMaxDt = 50 * time.Millisecond

// -----------------------------------------------------------------------------
// Driver
// -----------------------------------------------------------------------------

// Driver turns timestamps into clamped steps and runs one scene frame per tick:
// the scene updates first, then draws market and fx in that order.
type Driver struct {
	scene  interfaces.IScene
	market interfaces.ISurface
	fx     interfaces.ISurface
	maxDt  time.Duration

	state  State
	last   time.Duration
	frames uint64
}

// NewDriver wires a scene to its two layers. A missing layer is a
// precondition violation reported as a SurfaceError.
func NewDriver(scene interfaces.IScene, market, fx interfaces.ISurface, maxDt time.Duration) (*Driver, error) {
	if market == nil {
		return nil, helpers.NewSurfaceError(models.LayerMarket, helpers.ErrNoSurface)
	}
	if fx == nil {
		return nil, helpers.NewSurfaceError(models.LayerFX, helpers.ErrNoSurface)
	}
	if scene == nil {
		return nil, &helpers.ConfigurationError{BackdropError: helpers.BackdropError{Message: "driver needs a scene"}}
	}
	if maxDt <= 0 {
		maxDt = DefaultMaxDt
	}
	return &Driver{scene: scene, market: market, fx: fx, maxDt: maxDt}, nil
}

// -----------------------------------------------------------------------------

// ClampDt bounds an elapsed interval to [0, maxDt].
func ClampDt(elapsed, maxDt time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxDt {
		return maxDt
	}
	return elapsed
}

// -----------------------------------------------------------------------------

// Start moves Idle to Running with now as the reference timestamp.
// It reports false if the driver was already running.
func (d *Driver) Start(now time.Duration) bool {
	if d.state == StateRunning {
		return false
	}
	d.state = StateRunning
	d.last = now
	return true
}

// -----------------------------------------------------------------------------

// Tick runs one frame for timestamp now and returns the clamped step.
// Before Start it does nothing and returns 0.
func (d *Driver) Tick(now time.Duration) time.Duration {
	if d.state != StateRunning {
		return 0
	}

	dt := ClampDt(now-d.last, d.maxDt)
	d.last = now

	d.scene.Update(dt.Seconds())
	d.scene.Draw(d.market, d.fx)
	d.frames++
	return dt
}

// -----------------------------------------------------------------------------

func (d *Driver) State() State             { return d.state }
func (d *Driver) Frames() uint64           { return d.frames }
func (d *Driver) Scene() interfaces.IScene { return d.scene }
func (d *Driver) MaxDt() time.Duration     { return d.maxDt }
