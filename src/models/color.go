package models

import "fmt"

// MColor is an sRGB color with straight alpha in [0,1].
type MColor struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// MColorStop is one gradient stop.
type MColorStop struct {
	Offset float64 `json:"o"`
	Color  MColor  `json:"c"`
}

// RGBA builds a color.
func RGBA(r, g, b uint8, a float64) MColor {
	return MColor{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the same hue at a different alpha.
func (c MColor) WithAlpha(a float64) MColor {
	c.A = a
	return c
}

// CSS formats the color for canvas and CSS consumers.
func (c MColor) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// RGB formats the opaque part of the color.
func (c MColor) RGB() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func formatAlpha(a float64) string {
	if a <= 0 {
		return "0"
	}
	if a >= 1 {
		return "1"
	}
	return fmt.Sprintf("%.3g", a)
}
