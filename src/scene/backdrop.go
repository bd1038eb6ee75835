package scene

import (
	"fmt"

	"market-backdrop/src/helpers"
	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/render"
)

// NewScene builds the scene for a mode. An empty mode selects cfg.Mode.
func NewScene(cfg *models.MConfig, mode string, rng interfaces.IRandom, viewport models.MViewport) (interfaces.IScene, error) {
	if mode == "" {
		mode = cfg.Mode
	}
	switch mode {
	case models.ModeCandles:
		return NewCandleScene(cfg, rng, viewport), nil
	case models.ModeTrend:
		return NewTrendScene(cfg, rng, viewport), nil
	default:
		return nil, &helpers.ConfigurationError{BackdropError: helpers.BackdropError{
			Message: fmt.Sprintf("unknown scene mode %q", mode),
		}}
	}
}

// -----------------------------------------------------------------------------
// Shared background layers
// -----------------------------------------------------------------------------

// drawWash clears the layer and paints the diagonal tint.
func drawWash(s interfaces.ISurface, vp models.MViewport) {
	s.Clear(0, 0, vp.Width, vp.Height)
	s.SetFillLinearGradient(0, 0, vp.Width, vp.Height, render.WashStops())
	s.FillRect(0, 0, vp.Width, vp.Height)
}

// drawGrid strokes faint guide lines every step pixels.
func drawGrid(s interfaces.ISurface, vp models.MViewport, step float64) {
	if step <= 0 {
		return
	}
	s.Save()
	s.SetAlpha(0.12)
	s.SetStrokeColor(render.Ink)
	s.SetLineWidth(1)

	for x := 0.0; x <= vp.Width; x += step {
		s.BeginPath()
		s.MoveTo(x, 0)
		s.LineTo(x, vp.Height)
		s.Stroke()
	}
	for y := 0.0; y <= vp.Height; y += step {
		s.BeginPath()
		s.MoveTo(0, y)
		s.LineTo(vp.Width, y)
		s.Stroke()
	}
	s.Restore()
}
