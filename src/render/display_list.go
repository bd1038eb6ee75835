package render

import (
	"market-backdrop/src/interfaces"
	"market-backdrop/src/models"
)

// -----------------------------------------------------------------------------
// DisplayList
// -----------------------------------------------------------------------------

// DisplayList is a surface that records every call as a models.MDrawOp so
// a browser can replay it onto a real canvas.
type DisplayList struct {
	ops []models.MDrawOp
}

var _ interfaces.ISurface = (*DisplayList)(nil)

// NewDisplayList creates an empty recording.
func NewDisplayList() *DisplayList {
	return &DisplayList{ops: make([]models.MDrawOp, 0, 256)}
}

// -----------------------------------------------------------------------------

// Take returns the recorded ops and starts a new recording.
func (d *DisplayList) Take() []models.MDrawOp {
	ops := d.ops
	d.ops = make([]models.MDrawOp, 0, cap(ops))
	return ops
}

// Ops returns the ops recorded so far.
func (d *DisplayList) Ops() []models.MDrawOp {
	return d.ops
}

// Len returns the number of recorded ops.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Reset drops the recording.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

func (d *DisplayList) push(op string, args ...float64) {
	d.ops = append(d.ops, models.MDrawOp{Op: op, Args: args})
}

// -----------------------------------------------------------------------------
// interfaces.ISurface
// -----------------------------------------------------------------------------

func (d *DisplayList) Clear(x, y, w, h float64)    { d.push(models.OpClear, x, y, w, h) }
func (d *DisplayList) FillRect(x, y, w, h float64) { d.push(models.OpFillRect, x, y, w, h) }
func (d *DisplayList) BeginPath()                  { d.push(models.OpBeginPath) }
func (d *DisplayList) MoveTo(x, y float64)         { d.push(models.OpMoveTo, x, y) }
func (d *DisplayList) LineTo(x, y float64)         { d.push(models.OpLineTo, x, y) }
func (d *DisplayList) Stroke()                     { d.push(models.OpStroke) }
func (d *DisplayList) Fill()                       { d.push(models.OpFill) }
func (d *DisplayList) SetLineWidth(w float64)      { d.push(models.OpLineWidth, w) }
func (d *DisplayList) SetAlpha(a float64)          { d.push(models.OpAlpha, a) }
func (d *DisplayList) Save()                       { d.push(models.OpSave) }
func (d *DisplayList) Restore()                    { d.push(models.OpRestore) }

func (d *DisplayList) Arc(x, y, radius, startAngle, endAngle float64) {
	d.push(models.OpArc, x, y, radius, startAngle, endAngle)
}

func (d *DisplayList) SetFillColor(c models.MColor) {
	d.ops = append(d.ops, models.MDrawOp{Op: models.OpFillColor, Color: &c})
}

func (d *DisplayList) SetStrokeColor(c models.MColor) {
	d.ops = append(d.ops, models.MDrawOp{Op: models.OpStrokeColor, Color: &c})
}

func (d *DisplayList) SetFillLinearGradient(x0, y0, x1, y1 float64, stops []models.MColorStop) {
	d.ops = append(d.ops, models.MDrawOp{
		Op:    models.OpLinear,
		Args:  []float64{x0, y0, x1, y1},
		Stops: append([]models.MColorStop(nil), stops...),
	})
}

func (d *DisplayList) SetFillRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops []models.MColorStop) {
	d.ops = append(d.ops, models.MDrawOp{
		Op:    models.OpRadial,
		Args:  []float64{x0, y0, r0, x1, y1, r1},
		Stops: append([]models.MColorStop(nil), stops...),
	})
}

// -----------------------------------------------------------------------------
// Replay
// -----------------------------------------------------------------------------

// Replay issues ops against another surface. Ops with an unknown code or a
// short argument list are skipped; the count of skipped ops is returned.
func Replay(ops []models.MDrawOp, s interfaces.ISurface) int {
	skipped := 0
	for _, op := range ops {
		if !replayOne(op, s) {
			skipped++
		}
	}
	return skipped
}

func replayOne(op models.MDrawOp, s interfaces.ISurface) bool {
	a := op.Args
	need := func(n int) bool { return len(a) >= n }

	switch op.Op {
	case models.OpClear:
		if !need(4) {
			return false
		}
		s.Clear(a[0], a[1], a[2], a[3])
	case models.OpFillRect:
		if !need(4) {
			return false
		}
		s.FillRect(a[0], a[1], a[2], a[3])
	case models.OpBeginPath:
		s.BeginPath()
	case models.OpMoveTo:
		if !need(2) {
			return false
		}
		s.MoveTo(a[0], a[1])
	case models.OpLineTo:
		if !need(2) {
			return false
		}
		s.LineTo(a[0], a[1])
	case models.OpArc:
		if !need(5) {
			return false
		}
		s.Arc(a[0], a[1], a[2], a[3], a[4])
	case models.OpStroke:
		s.Stroke()
	case models.OpFill:
		s.Fill()
	case models.OpFillColor:
		if op.Color == nil {
			return false
		}
		s.SetFillColor(*op.Color)
	case models.OpStrokeColor:
		if op.Color == nil {
			return false
		}
		s.SetStrokeColor(*op.Color)
	case models.OpLinear:
		if !need(4) {
			return false
		}
		s.SetFillLinearGradient(a[0], a[1], a[2], a[3], op.Stops)
	case models.OpRadial:
		if !need(6) {
			return false
		}
		s.SetFillRadialGradient(a[0], a[1], a[2], a[3], a[4], a[5], op.Stops)
	case models.OpLineWidth:
		if !need(1) {
			return false
		}
		s.SetLineWidth(a[0])
	case models.OpAlpha:
		if !need(1) {
			return false
		}
		s.SetAlpha(a[0])
	case models.OpSave:
		s.Save()
	case models.OpRestore:
		s.Restore()
	default:
		return false
	}
	return true
}
