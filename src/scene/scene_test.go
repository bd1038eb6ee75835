package scene_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/helpers"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
	"market-backdrop/src/scene"
	"market-backdrop/src/simulation"
)

var testViewport = models.MViewport{Width: 800, Height: 600, PixelRatio: 1}

func count(ops []models.MDrawOp, code string) int {
	n := 0
	for _, op := range ops {
		if op.Op == code {
			n++
		}
	}
	return n
}

func TestNewScene_Modes(t *testing.T) {
	cfg := models.DefaultConfig()

	sc, err := scene.NewScene(&cfg, "", simulation.NewSeededRandom(1), testViewport)
	require.NoError(t, err)
	assert.Equal(t, models.ModeCandles, sc.Mode(), "empty mode falls back to the configured one")

	sc, err = scene.NewScene(&cfg, models.ModeTrend, simulation.NewSeededRandom(1), testViewport)
	require.NoError(t, err)
	assert.Equal(t, models.ModeTrend, sc.Mode())

	_, err = scene.NewScene(&cfg, "heatmap", simulation.NewSeededRandom(1), testViewport)
	var cfgErr *helpers.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "heatmap")
}

//----------------------------------------------------------------------------//
// CandleScene
//----------------------------------------------------------------------------//

func TestCandleScene_DrawOrder(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(2), testViewport)
	market, fx := render.NewDisplayList(), render.NewDisplayList()

	sc.Update(1.0 / 60)
	sc.Draw(market, fx)

	ops := market.Ops()
	require.NotEmpty(t, ops)
	// wash: clear, gradient, full rect
	assert.Equal(t, models.OpClear, ops[0].Op)
	assert.Equal(t, []float64{0, 0, 800, 600}, ops[0].Args)
	assert.Equal(t, models.OpLinear, ops[1].Op)
	assert.Equal(t, models.OpFillRect, ops[2].Op)
	// grid next, then bars: two rects (glow + body) per bar
	assert.Equal(t, models.OpSave, ops[3].Op)
	assert.Equal(t, 1+2*sc.Bars().Len(), count(ops, models.OpFillRect))
	assert.Equal(t, count(ops, models.OpSave), count(ops, models.OpRestore))
}

// TestCandleScene_TwoFillsPerParticle checks the fx layer: one trail rect,
// then two rects per live particle.
func TestCandleScene_TwoFillsPerParticle(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(3), testViewport)
	market, fx := render.NewDisplayList(), render.NewDisplayList()

	sc.PointerMoved(420, 300) // 20px from the centre
	sc.Update(1.0 / 60)
	sc.Draw(market, fx)

	require.Equal(t, 10, sc.Particles().Len())
	assert.Equal(t, models.MPointer{X: 420, Y: 300, VX: 20}, sc.Pointer())

	ops := fx.Ops()
	assert.Zero(t, count(ops, models.OpClear), "fx layer fades instead of clearing")
	assert.Equal(t, 1+2*10, count(ops, models.OpFillRect))
	assert.Equal(t, 1, count(ops, models.OpRadial))
	assert.Equal(t, models.OpFillColor, ops[0].Op)
	assert.Equal(t, render.TrailInk, *ops[0].Color)
}

func TestCandleScene_UpdateAdvancesBarsBeforeParticles(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(4), testViewport)

	sc.Update(0.3) // 18px: one slot
	assert.InDelta(t, 2.0, sc.Bars().Cursor(), 1e-9)
	assert.Equal(t, 2, sc.Particles().Len())
}

func TestCandleScene_Reset(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := scene.NewCandleScene(&cfg, simulation.NewSeededRandom(5), testViewport)
	sc.PointerMoved(10, 10)
	sc.Update(0.01)
	require.Positive(t, sc.Particles().Len())

	vp := models.MViewport{Width: 100, Height: 80}
	sc.Reset(vp)
	assert.Equal(t, vp.Normalized(), sc.Viewport())
	assert.Equal(t, 22, sc.Bars().Len())
	assert.Zero(t, sc.Particles().Len())
	assert.Equal(t, models.MPointer{X: 50, Y: 40}, sc.Pointer())
}

//----------------------------------------------------------------------------//
// TrendScene
//----------------------------------------------------------------------------//

func TestTrendScene_Draw(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := scene.NewTrendScene(&cfg, simulation.NewSeededRandom(6), testViewport)
	market, fx := render.NewDisplayList(), render.NewDisplayList()

	sc.PointerMoved(1, 1)
	sc.Update(1.0 / 60)
	sc.Draw(market, fx)

	ops := fx.Ops()
	assert.Equal(t, models.OpClear, ops[0].Op)
	assert.Equal(t, cfg.Trend.Sparkles, count(ops, models.OpFillRect))

	grid := int(800/cfg.Candles.GridStep) + 1 + int(600/cfg.Candles.GridStep) + 1
	assert.Equal(t, grid+2*cfg.Trend.Lines, count(market.Ops(), models.OpStroke))
	assert.Len(t, sc.Field().Lines(), cfg.Trend.Lines)
}
