package scene

import (
	"math"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
	"market-backdrop/src/simulation"
)

// CandleScene is the scrolling candlestick chart with the cursor FX overlay.
type CandleScene struct {
	candles  models.MCandleConfig
	fx       models.MFXConfig
	viewport models.MViewport

	bars      *simulation.BarBuffer
	particles *simulation.ParticleSystem
	pointer   *simulation.PointerTracker
}

var _ interfaces.IScene = (*CandleScene)(nil)

// NewCandleScene creates the scene filled for the viewport.
func NewCandleScene(cfg *models.MConfig, rng interfaces.IRandom, viewport models.MViewport) *CandleScene {
	viewport = viewport.Normalized()
	return &CandleScene{
		candles:   cfg.Candles,
		fx:        cfg.FX,
		viewport:  viewport,
		bars:      simulation.NewBarBuffer(cfg.Candles, rng, viewport.Width),
		particles: simulation.NewParticleSystem(cfg.FX, rng),
		pointer:   simulation.NewPointerTracker(viewport),
	}
}

func (c *CandleScene) Mode() string { return models.ModeCandles }

// Reset regenerates the bar window for the new width and drops the FX state.
func (c *CandleScene) Reset(viewport models.MViewport) {
	c.viewport = viewport.Normalized()
	c.bars.Reset(c.viewport.Width)
	c.particles.Clear()
	c.pointer.Center(c.viewport)
}

func (c *CandleScene) PointerMoved(x, y float64) {
	c.pointer.Move(x, y)
}

// Update scrolls the bars first, then spawns and steps particles.
func (c *CandleScene) Update(dt float64) {
	c.bars.Advance(dt)
	c.particles.Spawn(c.pointer.Sample())
	c.particles.Step(dt)
}

func (c *CandleScene) Draw(market, fx interfaces.ISurface) {
	drawWash(market, c.viewport)
	drawGrid(market, c.viewport, c.candles.GridStep)
	c.drawBars(market)

	c.drawFX(fx)
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

func (c *CandleScene) Bars() *simulation.BarBuffer           { return c.bars }
func (c *CandleScene) Particles() *simulation.ParticleSystem { return c.particles }
func (c *CandleScene) Pointer() models.MPointer              { return c.pointer.State() }
func (c *CandleScene) Viewport() models.MViewport            { return c.viewport }

// -----------------------------------------------------------------------------
// Market layer
// -----------------------------------------------------------------------------

func (c *CandleScene) drawBars(s interfaces.ISurface) {
	bars := c.bars.Bars()
	minP, maxP := simulation.VisibleRange(bars)
	top := c.candles.TopInset
	bottom := c.viewport.Height - c.candles.BottomInset
	slot := c.bars.SlotWidth()
	w := c.candles.BarWidth

	for i, b := range bars {
		x := float64(i)*slot - c.bars.Cursor() + c.candles.LeftInset

		yo := simulation.ToY(b.Open, minP, maxP, top, bottom)
		yc := simulation.ToY(b.Close, minP, maxP, top, bottom)
		yh := simulation.ToY(b.High, minP, maxP, top, bottom)
		yl := simulation.ToY(b.Low, minP, maxP, top, bottom)

		bodyTop := math.Min(yo, yc)
		bodyH := math.Max(c.candles.MinBody, math.Max(yo, yc)-bodyTop)

		col := render.Down
		if b.IsUp() {
			col = render.Up
		}

		s.Save()

		// wick
		s.SetAlpha(0.9)
		s.SetStrokeColor(col)
		s.SetLineWidth(2)
		s.BeginPath()
		s.MoveTo(x+w/2, yh)
		s.LineTo(x+w/2, yl)
		s.Stroke()

		// glow
		s.SetAlpha(0.35)
		s.SetFillColor(render.Glow(col))
		s.FillRect(x-2, bodyTop-2, w+4, bodyH+4)

		// body
		s.SetAlpha(0.95)
		s.SetFillColor(col)
		s.FillRect(x, bodyTop, w, bodyH)

		s.Restore()
	}
}

// -----------------------------------------------------------------------------
// FX layer
// -----------------------------------------------------------------------------

// drawFX never clears: a translucent wash fades the previous frames into trails.
func (c *CandleScene) drawFX(s interfaces.ISurface) {
	vp := c.viewport
	p := c.pointer.State()

	s.SetFillColor(render.TrailInk)
	s.FillRect(0, 0, vp.Width, vp.Height)

	// cursor bloom
	r := c.fx.BloomRadius
	s.SetFillRadialGradient(p.X, p.Y, 0, p.X, p.Y, r, render.BloomStops())
	s.BeginPath()
	s.Arc(p.X, p.Y, r, 0, 2*math.Pi)
	s.Fill()

	// Two fills per particle give the layered glow.
	for _, pt := range c.particles.Particles() {
		s.SetFillColor(render.Cyan.WithAlpha(0.35 * pt.Life))
		s.FillRect(pt.X, pt.Y, pt.Radius, pt.Radius)

		s.SetFillColor(render.Violet.WithAlpha(0.22 * pt.Life))
		s.FillRect(pt.X+1, pt.Y+1, pt.Radius*0.8, pt.Radius*0.8)
	}

	c.drawCrosshair(s, p)
}

func (c *CandleScene) drawCrosshair(s interfaces.ISurface, p models.MPointer) {
	s.Save()
	s.SetAlpha(0.45)
	s.SetStrokeColor(render.Ink)
	s.SetLineWidth(1)

	s.BeginPath()
	s.Arc(p.X, p.Y, 10, 0, 2*math.Pi)
	s.Stroke()

	s.BeginPath()
	s.MoveTo(p.X-18, p.Y)
	s.LineTo(p.X-6, p.Y)
	s.MoveTo(p.X+6, p.Y)
	s.LineTo(p.X+18, p.Y)
	s.MoveTo(p.X, p.Y-18)
	s.LineTo(p.X, p.Y-6)
	s.MoveTo(p.X, p.Y+6)
	s.LineTo(p.X, p.Y+18)
	s.Stroke()

	s.Restore()
}
