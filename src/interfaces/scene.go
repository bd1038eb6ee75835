package interfaces

import "market-backdrop/src/models"

// -----------------------------------------------------------------------------
// IScene is one animated backdrop variant driven by the frame driver.
// -----------------------------------------------------------------------------

type IScene interface {
	// Mode returns the scene mode name (candles | trend).
	Mode() string

	// -----------------------------------------------------------------------------

	// Reset rebuilds all state sized to the viewport.
	Reset(viewport models.MViewport)

	// -----------------------------------------------------------------------------

	// PointerMoved records a raw pointer position for the next frame.
	PointerMoved(x, y float64)

	// -----------------------------------------------------------------------------

	// Update advances the simulation by dt seconds.
	Update(dt float64)

	// -----------------------------------------------------------------------------

	// Draw renders the current state. market is the background layer and fx
	// the overlay; fx is never cleared by the candle scene so trails persist.
	Draw(market, fx ISurface)
}
