package simulation

import (
	"math"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
	"market-backdrop/src/utils"
)

// PolicyRegenerateOnEvict names the candle refresh policy: every bar that
// scrolls out is replaced by a freshly generated one.
const PolicyRegenerateOnEvict = "regenerate-on-evict"

// AdvanceResult lists the bars that left and entered the buffer during one
// Advance call. Both slices always have the same length.
type AdvanceResult struct {
	Evicted  []models.MBar
	Appended []models.MBar
}

// Shifts returns how many slots the buffer scrolled.
func (r AdvanceResult) Shifts() int {
	return len(r.Appended)
}

// -----------------------------------------------------------------------------
// BarBuffer
// -----------------------------------------------------------------------------

// BarBuffer is the fixed-length window of candles scrolling right to left.
type BarBuffer struct {
	cfg       models.MCandleConfig
	generator *Generator
	ring      *utils.RingBuffer
	cursor    float64
}

// NewBarBuffer creates a buffer sized for viewportWidth and fills it.
func NewBarBuffer(cfg models.MCandleConfig, rng interfaces.IRandom, viewportWidth float64) *BarBuffer {
	b := &BarBuffer{
		cfg:       cfg,
		generator: NewGenerator(rng, cfg.BasePrice, cfg.Volatility),
		ring:      utils.NewRingBuffer(1),
	}
	b.Reset(viewportWidth)
	return b
}

// -----------------------------------------------------------------------------

// Capacity returns ceil((width + margin) / slotWidth), never less than 1.
func Capacity(cfg models.MCandleConfig, viewportWidth float64) int {
	slot := cfg.SlotWidth()
	if slot <= 0 {
		return 1
	}
	if viewportWidth < 0 || math.IsNaN(viewportWidth) {
		viewportWidth = 0
	}
	n := int(math.Ceil((viewportWidth + cfg.Margin) / slot))
	if n < 1 {
		n = 1
	}
	return n
}

// -----------------------------------------------------------------------------

// Reset rewinds the price to the baseline, resizes the window for the new
// viewport width and regenerates every bar.
func (b *BarBuffer) Reset(viewportWidth float64) {
	b.generator.Reset()
	b.cursor = 0

	b.ring.Clear()
	b.ring.Resize(Capacity(b.cfg, viewportWidth))
	for b.ring.Size() < b.ring.Capacity() {
		b.ring.Append(b.generator.NextBar())
	}
}

// -----------------------------------------------------------------------------

// Advance scrolls by dt seconds. Each time the cursor crosses one slot width
// the oldest bar is evicted and a new one appended; a large dt may shift
// several slots in one call. Shifts beyond the window length are skipped
// since their bars would never be seen. Negative or NaN dt does not scroll.
func (b *BarBuffer) Advance(dt float64) AdvanceResult {
	var res AdvanceResult
	slot := b.cfg.SlotWidth()
	if !(dt > 0) || slot <= 0 {
		return res
	}

	b.cursor += dt * b.cfg.ScrollRate
	if math.IsInf(b.cursor, 0) || math.IsNaN(b.cursor) {
		b.cursor = 0
		return res
	}
	if b.cursor < slot {
		return res
	}

	shifts := math.Floor(b.cursor / slot)
	b.cursor = math.Mod(b.cursor, slot)
	if shifts > float64(b.ring.Size()) {
		shifts = float64(b.ring.Size())
	}

	n := int(shifts)
	res.Evicted = make([]models.MBar, 0, n)
	res.Appended = make([]models.MBar, 0, n)
	for i := 0; i < n; i++ {
		bar := b.generator.NextBar()
		if evicted, ok := b.ring.Append(bar); ok {
			res.Evicted = append(res.Evicted, evicted)
		}
		res.Appended = append(res.Appended, bar)
	}
	return res
}

// -----------------------------------------------------------------------------

// Cursor returns the sub-slot scroll offset in pixels.
func (b *BarBuffer) Cursor() float64 {
	return b.cursor
}

// SlotWidth returns bar width plus gap.
func (b *BarBuffer) SlotWidth() float64 {
	return b.cfg.SlotWidth()
}

// Len returns the number of bars in the window.
func (b *BarBuffer) Len() int {
	return b.ring.Size()
}

// At returns the i-th bar from the left edge.
func (b *BarBuffer) At(i int) models.MBar {
	return b.ring.At(i)
}

// Bars returns a copy of the window, oldest first.
func (b *BarBuffer) Bars() []models.MBar {
	return b.ring.GetAll()
}

// Price returns the close of the newest bar.
func (b *BarBuffer) Price() float64 {
	return b.generator.Price()
}

// Policy names how this buffer refreshes its content.
func (b *BarBuffer) Policy() string {
	return PolicyRegenerateOnEvict
}
