package models

// Draw op codes carried in MDrawOp.Op.
const (
	OpClear       = "clear"
	OpFillRect    = "fillRect"
	OpBeginPath   = "begin"
	OpMoveTo      = "moveTo"
	OpLineTo      = "lineTo"
	OpStroke      = "stroke"
	OpArc         = "arc"
	OpFill        = "fill"
	OpFillColor   = "fillColor"
	OpLinear      = "linear"
	OpRadial      = "radial"
	OpStrokeColor = "strokeColor"
	OpLineWidth   = "lineWidth"
	OpAlpha       = "alpha"
	OpSave        = "save"
	OpRestore     = "restore"
)

// Layer names.
const (
	LayerMarket = "market"
	LayerFX     = "fx"
)

// MDrawOp is one recorded surface call.
type MDrawOp struct {
	Op    string       `json:"op"`
	Args  []float64    `json:"a,omitempty"`
	Color *MColor      `json:"c,omitempty"`
	Stops []MColorStop `json:"s,omitempty"`
}

// MFrame is one rendered frame pushed to a browser session.
type MFrame struct {
	Type     string               `json:"type"` // FRAME | RESET
	Session  string               `json:"session"`
	Seq      uint64               `json:"seq"`
	Mode     string               `json:"mode"`
	DtMs     float64              `json:"dt_ms"`
	Viewport MViewport            `json:"viewport"`
	Layers   map[string][]MDrawOp `json:"layers"`
}

// MClientCommand is a message sent by the browser.
type MClientCommand struct {
	Command    string  `json:"command"` // pointer | resize
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PixelRatio float64 `json:"dpr"`
}
