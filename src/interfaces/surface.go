package interfaces

import "market-backdrop/src/models"

// -----------------------------------------------------------------------------
// ISurface is the 2D drawing capability the scenes render onto.
// It mirrors the immediate-mode canvas call set so recorded frames can be
// replayed verbatim in a browser.
// -----------------------------------------------------------------------------

type ISurface interface {
	// Clear erases a rectangle to fully transparent.
	Clear(x, y, w, h float64)

	// FillRect fills a rectangle with the current fill style.
	FillRect(x, y, w, h float64)

	// -----------------------------------------------------------------------------
	// Path building

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)

	// Stroke outlines the current path with the stroke style and line width.
	Stroke()

	// Fill fills the current path with the fill style.
	Fill()

	// -----------------------------------------------------------------------------
	// Style state

	SetFillColor(c models.MColor)
	SetFillLinearGradient(x0, y0, x1, y1 float64, stops []models.MColorStop)
	SetFillRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops []models.MColorStop)
	SetStrokeColor(c models.MColor)
	SetLineWidth(w float64)
	SetAlpha(a float64)

	// Save pushes the style state; Restore pops it.
	Save()
	Restore()
}
