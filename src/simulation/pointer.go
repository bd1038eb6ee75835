package simulation

import "market-backdrop/src/models"

// PointerTracker turns raw pointer-move events into a per-frame sample.
// Velocity is the positional delta between two consecutive samples, so a
// resting pointer reads as zero velocity on the next frame.
type PointerTracker struct {
	rawX, rawY float64
	state      models.MPointer
}

// NewPointerTracker starts the pointer at the viewport centre.
func NewPointerTracker(viewport models.MViewport) *PointerTracker {
	p := &PointerTracker{}
	p.Center(viewport)
	return p
}

// Center moves the pointer to the middle of the viewport and zeroes velocity.
func (p *PointerTracker) Center(viewport models.MViewport) {
	p.rawX, p.rawY = viewport.Width/2, viewport.Height/2
	p.state = models.MPointer{X: p.rawX, Y: p.rawY}
}

// Move records the latest raw position. Only the last move before a sample counts.
func (p *PointerTracker) Move(x, y float64) {
	p.rawX, p.rawY = x, y
}

// Sample takes the frame's pointer reading.
func (p *PointerTracker) Sample() models.MPointer {
	p.state = models.MPointer{
		X:  p.rawX,
		Y:  p.rawY,
		VX: p.rawX - p.state.X,
		VY: p.rawY - p.state.Y,
	}
	return p.state
}

// State returns the last sample without taking a new one.
func (p *PointerTracker) State() models.MPointer {
	return p.state
}
