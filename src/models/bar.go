package models

// MBar is one OHLC price sample rendered as a candlestick.
// High >= max(Open, Close) and Low <= min(Open, Close) always hold.
type MBar struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// IsUp reports whether the bar closed at or above its open.
func (b MBar) IsUp() bool {
	return b.Close >= b.Open
}
