package render

import "market-backdrop/src/models"

// Neon palette shared by both scenes.
var (
	Ink      = models.RGBA(234, 240, 255, 1)
	Up       = models.RGBA(34, 197, 94, 1)
	Down     = models.RGBA(239, 68, 68, 1)
	Cyan     = models.RGBA(34, 211, 238, 1)
	Violet   = models.RGBA(124, 58, 237, 1)
	Rose     = models.RGBA(251, 113, 133, 1)
	TrailInk = models.RGBA(5, 4, 10, 0.12)
)

// Glow returns the translucent halo used around a candle body.
func Glow(c models.MColor) models.MColor {
	return c.WithAlpha(0.35)
}

// WashStops is the diagonal background gradient of the market layer.
func WashStops() []models.MColorStop {
	return []models.MColorStop{
		{Offset: 0, Color: Violet.WithAlpha(0.06)},
		{Offset: 0.5, Color: Cyan.WithAlpha(0.05)},
		{Offset: 1, Color: Rose.WithAlpha(0.04)},
	}
}

// BloomStops is the radial gradient painted under the cursor.
func BloomStops() []models.MColorStop {
	return []models.MColorStop{
		{Offset: 0, Color: Cyan.WithAlpha(0.22)},
		{Offset: 0.5, Color: Violet.WithAlpha(0.14)},
		{Offset: 1, Color: Rose.WithAlpha(0)},
	}
}

// TrendColors cycles through the trend line hues.
func TrendColors() []models.MColor {
	return []models.MColor{Cyan, Violet, Rose, Up}
}
