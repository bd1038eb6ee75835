package models

// Hard bounds applied to every viewport, whatever its source.
const (
	MaxViewportSide = 16384
	MaxPixelRatio   = 4
)

// MViewport describes the drawing area in CSS pixels.
type MViewport struct {
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	PixelRatio float64 `yaml:"pixel_ratio" json:"dpr"`
}

// MViewportLimit is the configured ceiling for client supplied viewports.
type MViewportLimit struct {
	MaxWidth  float64 `yaml:"max_width" json:"max_width"`
	MaxHeight float64 `yaml:"max_height" json:"max_height"`
}

// Normalized returns a copy with negative or NaN sizes clamped to zero,
// sizes above MaxViewportSide (including +Inf) clamped to it and the pixel
// ratio kept within [1, MaxPixelRatio].
func (v MViewport) Normalized() MViewport {
	v.Width = clampSide(v.Width, MaxViewportSide)
	v.Height = clampSide(v.Height, MaxViewportSide)
	if !(v.PixelRatio >= 1) {
		v.PixelRatio = 1
	}
	if v.PixelRatio > MaxPixelRatio {
		v.PixelRatio = MaxPixelRatio
	}
	return v
}

// Within normalizes v and caps it at limit. Unset limit fields fall back
// to MaxViewportSide.
func (v MViewport) Within(limit MViewportLimit) MViewport {
	v = v.Normalized()
	if limit.MaxWidth > 0 {
		v.Width = clampSide(v.Width, limit.MaxWidth)
	}
	if limit.MaxHeight > 0 {
		v.Height = clampSide(v.Height, limit.MaxHeight)
	}
	return v
}

func clampSide(x, limit float64) float64 {
	if !(x >= 0) {
		return 0
	}
	if x > limit {
		return limit
	}
	return x
}
