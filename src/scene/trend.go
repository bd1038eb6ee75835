package scene

import (
	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
	"market-backdrop/src/simulation"
)

// TrendScene is the lighter variant: drifting trend lines plus sparkles.
type TrendScene struct {
	gridStep float64
	viewport models.MViewport
	field    *simulation.TrendField
}

var _ interfaces.IScene = (*TrendScene)(nil)

func NewTrendScene(cfg *models.MConfig, rng interfaces.IRandom, viewport models.MViewport) *TrendScene {
	viewport = viewport.Normalized()
	return &TrendScene{
		gridStep: cfg.Candles.GridStep,
		viewport: viewport,
		field:    simulation.NewTrendField(cfg.Trend, rng, render.TrendColors(), viewport),
	}
}

func (t *TrendScene) Mode() string { return models.ModeTrend }

func (t *TrendScene) Reset(viewport models.MViewport) {
	t.viewport = viewport.Normalized()
	t.field.Reset(t.viewport)
}

// PointerMoved is ignored; trend lines do not react to the cursor.
func (t *TrendScene) PointerMoved(x, y float64) {}

func (t *TrendScene) Update(dt float64) {
	t.field.Tick(dt)
}

func (t *TrendScene) Draw(market, fx interfaces.ISurface) {
	drawWash(market, t.viewport)
	drawGrid(market, t.viewport, t.gridStep)
	for _, l := range t.field.Lines() {
		t.drawLine(market, l)
	}

	fx.Clear(0, 0, t.viewport.Width, t.viewport.Height)
	fx.Save()
	fx.SetAlpha(0.55)
	fx.SetFillColor(render.Ink)
	for _, p := range t.field.Sparkles() {
		fx.FillRect(p.X, p.Y, 1, 1)
	}
	fx.Restore()
}

// Field exposes the underlying lines.
func (t *TrendScene) Field() *simulation.TrendField { return t.field }

func (t *TrendScene) drawLine(s interfaces.ISurface, l models.MTrendLine) {
	pts := t.field.Points(l)
	if len(pts) < 2 {
		return
	}
	tracePath := func() {
		s.BeginPath()
		s.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			s.LineTo(p.X, p.Y)
		}
	}

	s.Save()
	s.SetStrokeColor(l.Color)

	// halo
	s.SetAlpha(0.12)
	s.SetLineWidth(4)
	tracePath()
	s.Stroke()

	s.SetAlpha(0.6)
	s.SetLineWidth(1.5)
	tracePath()
	s.Stroke()

	s.Restore()
}
