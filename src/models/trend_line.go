package models

// MTrendLine is one drifting polyline of the trend mode.
// Samples are generated on reset and reused until the next reset.
type MTrendLine struct {
	Color     MColor    `json:"color"`
	Speed     float64   `json:"speed"`
	Amplitude float64   `json:"amplitude"`
	Offset    float64   `json:"offset"`
	OriginY   float64   `json:"origin_y"`
	Samples   []float64 `json:"samples"`
}
