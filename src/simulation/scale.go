package simulation

import (
	"math"

	"market-backdrop/src/models"
)

// rangeEpsilon keeps ToY finite when every visible bar has the same price.
const rangeEpsilon = 1e-9

// ToY maps a price onto the vertical band [top, bottom] in screen
// coordinates: minPrice lands on bottom, maxPrice (almost) on top.
func ToY(price, minPrice, maxPrice, top, bottom float64) float64 {
	t := (price - minPrice) / (maxPrice - minPrice + rangeEpsilon)
	return bottom - t*(bottom-top)
}

// VisibleRange scans bars for the lowest low and highest high.
// An empty slice yields (0, 0).
func VisibleRange(bars []models.MBar) (minPrice, maxPrice float64) {
	if len(bars) == 0 {
		return 0, 0
	}
	minPrice, maxPrice = math.Inf(1), math.Inf(-1)
	for _, b := range bars {
		minPrice = math.Min(minPrice, b.Low)
		maxPrice = math.Max(maxPrice, b.High)
	}
	return minPrice, maxPrice
}
