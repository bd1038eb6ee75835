package simulation

import (
	"math"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// PolicyDriftOnWrap names the trend line refresh policy: samples are built
// once per reset and only the line origin drifts when the scroll wraps.
const PolicyDriftOnWrap = "drift-on-wrap"

// Point is a screen position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// -----------------------------------------------------------------------------
// TrendField
// -----------------------------------------------------------------------------

// TrendField owns the drifting polylines of the trend mode.
type TrendField struct {
	cfg      models.MTrendConfig
	rng      interfaces.IRandom
	colors   []models.MColor
	viewport models.MViewport
	lines    []models.MTrendLine
}

// NewTrendField creates the lines for the viewport. Line i takes colors[i % len(colors)].
func NewTrendField(cfg models.MTrendConfig, rng interfaces.IRandom, colors []models.MColor, viewport models.MViewport) *TrendField {
	f := &TrendField{cfg: cfg, rng: rng, colors: colors}
	f.Reset(viewport)
	return f
}

// -----------------------------------------------------------------------------

// GenerateSamples builds a zero-mean Gaussian random walk of n points.
func GenerateSamples(rng interfaces.IRandom, n int, volatility float64) []float64 {
	if n <= 0 {
		return nil
	}
	samples := make([]float64, n)
	level, sum := 0.0, 0.0
	for i := range samples {
		level += Normal(rng) * volatility
		samples[i] = level
		sum += level
	}
	mean := sum / float64(n)
	for i := range samples {
		samples[i] -= mean
	}
	return samples
}

// -----------------------------------------------------------------------------

// Band returns the vertical range the line origins stay within.
func (f *TrendField) Band() (top, bottom float64) {
	return f.viewport.Height * 0.2, f.viewport.Height * 0.8
}

// sampleCount covers the viewport plus the wrap bound on both sides.
func (f *TrendField) sampleCount() int {
	if f.cfg.SampleStep <= 0 {
		return 0
	}
	return int(math.Ceil((f.viewport.Width+2*f.cfg.WrapBound)/f.cfg.SampleStep)) + 1
}

// -----------------------------------------------------------------------------

// Reset regenerates every line for a new viewport.
func (f *TrendField) Reset(viewport models.MViewport) {
	f.viewport = viewport.Normalized()
	top, bottom := f.Band()
	n := f.sampleCount()

	f.lines = make([]models.MTrendLine, 0, f.cfg.Lines)
	for i := 0; i < f.cfg.Lines; i++ {
		var color models.MColor
		if len(f.colors) > 0 {
			color = f.colors[i%len(f.colors)]
		}
		slot := (float64(i) + 0.5) / float64(f.cfg.Lines)
		f.lines = append(f.lines, models.MTrendLine{
			Color:     color,
			Speed:     f.cfg.MinSpeed + f.rng.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed),
			Amplitude: 0.6 + f.rng.Float64()*0.8,
			Offset:    -f.cfg.WrapBound + f.rng.Float64()*2*f.cfg.WrapBound,
			OriginY:   clamp(top+slot*(bottom-top)+Normal(f.rng)*f.cfg.Drift*0.5, top, bottom),
			Samples:   GenerateSamples(f.rng, n, f.cfg.Volatility),
		})
	}
}

// -----------------------------------------------------------------------------

// Tick scrolls each line by speed*dt. A line whose offset passes the wrap
// bound jumps back to -bound and its origin takes one Gaussian drift step.
// Samples are left untouched. It returns the number of lines that wrapped.
func (f *TrendField) Tick(dt float64) int {
	if !(dt > 0) {
		return 0
	}
	top, bottom := f.Band()

	wrapped := 0
	for i := range f.lines {
		l := &f.lines[i]
		l.Offset += l.Speed * dt
		if l.Offset > f.cfg.WrapBound {
			l.Offset = -f.cfg.WrapBound
			l.OriginY = clamp(l.OriginY+Normal(f.rng)*f.cfg.Drift, top, bottom)
			wrapped++
		}
	}
	return wrapped
}

// -----------------------------------------------------------------------------

// Points projects a line's samples to screen space for the current offset.
func (f *TrendField) Points(l models.MTrendLine) []Point {
	pts := make([]Point, len(l.Samples))
	for i, s := range l.Samples {
		pts[i] = Point{
			X: float64(i)*f.cfg.SampleStep + l.Offset - f.cfg.WrapBound,
			Y: l.OriginY + s*l.Amplitude,
		}
	}
	return pts
}

// Sparkles draws fresh uniform positions; nothing is kept between frames.
func (f *TrendField) Sparkles() []Point {
	pts := make([]Point, f.cfg.Sparkles)
	for i := range pts {
		pts[i] = Point{
			X: f.rng.Float64() * f.viewport.Width,
			Y: f.rng.Float64() * f.viewport.Height,
		}
	}
	return pts
}

// Lines exposes the current lines.
func (f *TrendField) Lines() []models.MTrendLine {
	return f.lines
}

// Policy names how the field refreshes its content.
func (f *TrendField) Policy() string {
	return PolicyDriftOnWrap
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
