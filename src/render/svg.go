package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// -----------------------------------------------------------------------------
// SVGSurface
// -----------------------------------------------------------------------------

type svgState struct {
	fill      models.MColor
	fillRef   string // gradient id, overrides fill when set
	stroke    models.MColor
	lineWidth float64
	alpha     float64
}

// SVGSurface renders surface calls into a standalone SVG document.
// A Clear covering the whole canvas discards what the current layer has
// drawn so far; partial clears cannot be expressed in SVG and are ignored.
type SVGSurface struct {
	width, height float64

	background *models.MColor
	defs       bytes.Buffer
	layers     bytes.Buffer // finished layers, below body
	body       bytes.Buffer
	gradN      int

	state svgState
	stack []svgState

	path       strings.Builder
	hasCurrent bool
}

var _ interfaces.ISurface = (*SVGSurface)(nil)

// NewSVGSurface creates a surface of the given size in CSS pixels.
func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{
		width:  width,
		height: height,
		state:  svgState{fill: models.RGBA(0, 0, 0, 1), stroke: models.RGBA(0, 0, 0, 1), lineWidth: 1, alpha: 1},
	}
}

// -----------------------------------------------------------------------------

// Bytes returns the complete document.
func (s *SVGSurface) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<svg xmlns='http://www.w3.org/2000/svg' width='%s' height='%s' viewBox='0 0 %s %s'>",
		num(s.width), num(s.height), num(s.width), num(s.height))
	if s.defs.Len() > 0 {
		b.WriteString("<defs>")
		b.Write(s.defs.Bytes())
		b.WriteString("</defs>")
	}
	if s.background != nil {
		fmt.Fprintf(&b, "<rect width='100%%' height='100%%' fill='%s' fill-opacity='%s'/>",
			s.background.RGB(), num(s.background.A))
	}
	b.Write(s.layers.Bytes())
	b.Write(s.body.Bytes())
	b.WriteString("</svg>")
	return b.Bytes()
}

// SetBackground paints c beneath every layer. Clears do not remove it.
func (s *SVGSurface) SetBackground(c models.MColor) {
	s.background = &c
}

// NextLayer freezes what was drawn so far; later clears only affect the
// new layer, like stacked canvases.
func (s *SVGSurface) NextLayer() {
	s.layers.Write(s.body.Bytes())
	s.body.Reset()
}

// -----------------------------------------------------------------------------

func (s *SVGSurface) Clear(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.body.Reset()
	}
}

func (s *SVGSurface) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	fmt.Fprintf(&s.body, "<rect x='%s' y='%s' width='%s' height='%s' %s/>",
		num(x), num(y), num(w), num(h), s.fillAttrs())
}

// -----------------------------------------------------------------------------
// Paths

func (s *SVGSurface) BeginPath() {
	s.path.Reset()
	s.hasCurrent = false
}

func (s *SVGSurface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%s %s", num(x), num(y))
	s.hasCurrent = true
}

func (s *SVGSurface) LineTo(x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, "L%s %s", num(x), num(y))
}

// Arc follows canvas semantics: clockwise from startAngle to endAngle,
// joined to the current point by a straight line.
func (s *SVGSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	if radius <= 0 {
		return
	}
	sx, sy := x+radius*math.Cos(startAngle), y+radius*math.Sin(startAngle)
	if s.hasCurrent {
		s.LineTo(sx, sy)
	} else {
		s.MoveTo(sx, sy)
	}

	sweep := endAngle - startAngle
	r := num(radius)
	if sweep >= 2*math.Pi {
		mx, my := x-radius*math.Cos(startAngle), y-radius*math.Sin(startAngle)
		fmt.Fprintf(&s.path, "A%s %s 0 0 1 %s %s", r, r, num(mx), num(my))
		fmt.Fprintf(&s.path, "A%s %s 0 0 1 %s %s", r, r, num(sx), num(sy))
		return
	}
	if sweep <= 0 {
		return
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ex, ey := x+radius*math.Cos(endAngle), y+radius*math.Sin(endAngle)
	fmt.Fprintf(&s.path, "A%s %s 0 %d 1 %s %s", r, r, large, num(ex), num(ey))
}

func (s *SVGSurface) Stroke() {
	if s.path.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, "<path d='%s' fill='none' stroke='%s' stroke-opacity='%s' stroke-width='%s'/>",
		s.path.String(), s.state.stroke.RGB(), num(s.state.alpha*s.state.stroke.A), num(s.state.lineWidth))
}

func (s *SVGSurface) Fill() {
	if s.path.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, "<path d='%s' %s/>", s.path.String(), s.fillAttrs())
}

// -----------------------------------------------------------------------------
// Style state

func (s *SVGSurface) SetFillColor(c models.MColor) {
	s.state.fill = c
	s.state.fillRef = ""
}

func (s *SVGSurface) SetStrokeColor(c models.MColor) { s.state.stroke = c }
func (s *SVGSurface) SetLineWidth(w float64)         { s.state.lineWidth = w }
func (s *SVGSurface) SetAlpha(a float64)             { s.state.alpha = math.Max(0, math.Min(1, a)) }

func (s *SVGSurface) SetFillLinearGradient(x0, y0, x1, y1 float64, stops []models.MColorStop) {
	id := s.nextGradientID()
	fmt.Fprintf(&s.defs, "<linearGradient id='%s' gradientUnits='userSpaceOnUse' x1='%s' y1='%s' x2='%s' y2='%s'>",
		id, num(x0), num(y0), num(x1), num(y1))
	writeStops(&s.defs, stops)
	s.defs.WriteString("</linearGradient>")
	s.state.fillRef = id
}

// SetFillRadialGradient maps the inner circle to the SVG focal point; a
// non-zero inner radius is not representable and is dropped.
func (s *SVGSurface) SetFillRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops []models.MColorStop) {
	id := s.nextGradientID()
	fmt.Fprintf(&s.defs, "<radialGradient id='%s' gradientUnits='userSpaceOnUse' cx='%s' cy='%s' r='%s' fx='%s' fy='%s'>",
		id, num(x1), num(y1), num(r1), num(x0), num(y0))
	writeStops(&s.defs, stops)
	s.defs.WriteString("</radialGradient>")
	s.state.fillRef = id
}

func (s *SVGSurface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *SVGSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// -----------------------------------------------------------------------------
// Helpers

func (s *SVGSurface) nextGradientID() string {
	s.gradN++
	return fmt.Sprintf("g%d", s.gradN)
}

func (s *SVGSurface) fillAttrs() string {
	if s.state.fillRef != "" {
		return fmt.Sprintf("fill='url(#%s)' fill-opacity='%s'", s.state.fillRef, num(s.state.alpha))
	}
	return fmt.Sprintf("fill='%s' fill-opacity='%s'", s.state.fill.RGB(), num(s.state.alpha*s.state.fill.A))
}

func writeStops(b *bytes.Buffer, stops []models.MColorStop) {
	for _, st := range stops {
		fmt.Fprintf(b, "<stop offset='%s' stop-color='%s' stop-opacity='%s'/>",
			num(st.Offset), st.Color.RGB(), num(st.Color.A))
	}
}

// num prints a coordinate with two decimals and no trailing zeros.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
