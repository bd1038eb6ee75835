package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/helpers"
	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
)

// recordingScene logs every call it receives.
type recordingScene struct {
	calls []string
	dts   []float64
}

func (r *recordingScene) Mode() string              { return "test" }
func (r *recordingScene) Reset(models.MViewport)    { r.calls = append(r.calls, "reset") }
func (r *recordingScene) PointerMoved(x, y float64) { r.calls = append(r.calls, "pointer") }
func (r *recordingScene) Draw(market, fx interfaces.ISurface) {
	r.calls = append(r.calls, "draw")
	market.FillRect(0, 0, 1, 1)
	fx.FillRect(0, 0, 1, 1)
}
func (r *recordingScene) Update(dt float64) {
	r.calls = append(r.calls, "update")
	r.dts = append(r.dts, dt)
}

func TestNewDriver_MissingSurface(t *testing.T) {
	sc := &recordingScene{}

	_, err := NewDriver(sc, nil, render.NewDisplayList(), 0)
	var surfErr *helpers.SurfaceError
	require.True(t, errors.As(err, &surfErr))
	assert.True(t, errors.Is(err, helpers.ErrNoSurface))
	assert.Contains(t, err.Error(), models.LayerMarket)

	_, err = NewDriver(sc, render.NewDisplayList(), nil, 0)
	require.True(t, errors.As(err, &surfErr))
	assert.Contains(t, err.Error(), models.LayerFX)

	d, err := NewDriver(sc, render.NewDisplayList(), render.NewDisplayList(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDt, d.MaxDt())
}

func TestClampDt(t *testing.T) {
	maxDt := 50 * time.Millisecond
	assert.Equal(t, time.Duration(0), ClampDt(-time.Second, maxDt))
	assert.Equal(t, 16*time.Millisecond, ClampDt(16*time.Millisecond, maxDt))
	assert.Equal(t, maxDt, ClampDt(500*time.Millisecond, maxDt))
}

func TestDriver_StateMachine(t *testing.T) {
	sc := &recordingScene{}
	d, err := NewDriver(sc, render.NewDisplayList(), render.NewDisplayList(), DefaultMaxDt)
	require.NoError(t, err)

	assert.Equal(t, StateIdle, d.State())
	assert.Equal(t, "idle", d.State().String())
	assert.Zero(t, d.Tick(time.Second), "idle drivers do not tick")
	assert.Empty(t, sc.calls)

	require.True(t, d.Start(time.Second))
	assert.False(t, d.Start(2*time.Second), "Idle to Running happens once")
	assert.Equal(t, "running", d.State().String())

	// A 500 ms stall is clamped to 50 ms.
	dt := d.Tick(1500 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, dt)

	dt = d.Tick(1516 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, dt)

	assert.Equal(t, []string{"update", "draw", "update", "draw"}, sc.calls)
	assert.InDeltaSlice(t, []float64{0.05, 0.016}, sc.dts, 1e-12)
	assert.Equal(t, uint64(2), d.Frames())
}

// TestDriver_SameSeedSameBars checks that two drivers fed the same
// timestamps and seed end up with identical bar windows.
func TestDriver_SameSeedSameBars(t *testing.T) {
	cfg := models.DefaultConfig()
	vp := models.MViewport{Width: 640, Height: 360}

	run := func() []models.MBar {
		sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(99), vp)
		d, err := NewDriver(sc, render.NewDisplayList(), render.NewDisplayList(), DefaultMaxDt)
		require.NoError(t, err)
		d.Start(0)
		for i := 1; i <= 240; i++ {
			d.Tick(time.Duration(i) * 17 * time.Millisecond)
		}
		return sc.Bars().Bars()
	}

	assert.Equal(t, run(), run())
}
