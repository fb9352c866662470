package viz

import "math"

// Window maps a rectangle of the real plane onto a canvas. Unlike raw
// canvas coordinates, y points up.
type Window struct {
	c                      *Canvas
	xmin, xmax, ymin, ymax float64
}

// NewWindow fits [xmin, xmax] x [ymin, ymax] onto c. Degenerate ranges
// are widened so projection never divides by zero.
func NewWindow(c *Canvas, xmin, xmax, ymin, ymax float64) *Window {
	if !(xmax > xmin) {
		xmin, xmax = xmin-1, xmin+1
	}
	if !(ymax > ymin) {
		ymin, ymax = ymin-1, ymin+1
	}
	return &Window{c: c, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
}

// FitCurve samples f across [xmin, xmax] and picks a y range that covers
// it with a little headroom. The x axis always stays in view; roots live
// there.
func FitCurve(c *Canvas, xmin, xmax float64, f func(float64) float64) *Window {
	cols := c.Width * 2
	lo, hi := 0.0, 0.0
	for i := 0; i < cols; i++ {
		x := xmin + (xmax-xmin)*float64(i)/float64(cols-1)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	pad := (hi - lo) * 0.08
	if pad == 0 {
		pad = 1
	}
	return NewWindow(c, xmin, xmax, lo-pad, hi+pad)
}

func (w *Window) pixel(x, y float64) (int, int) {
	cols, rows := w.c.Width*2, w.c.Height*4
	px := int(math.Round((x - w.xmin) / (w.xmax - w.xmin) * float64(cols-1)))
	py := int(math.Round((w.ymax - y) / (w.ymax - w.ymin) * float64(rows-1)))
	return px, py
}

// visible bounds the projected y so line rasterization stays cheap even
// when the curve shoots far outside the window.
func (w *Window) visible(y float64) bool {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	span := w.ymax - w.ymin
	return y > w.ymin-span && y < w.ymax+span
}

// Axes draws a dotted x axis and, when in range, y axis.
func (w *Window) Axes() {
	cols, rows := w.c.Width*2, w.c.Height*4
	if w.ymin <= 0 && 0 <= w.ymax {
		_, py := w.pixel(w.xmin, 0)
		for px := 0; px < cols; px += 2 {
			w.c.Set(px, py)
		}
	}
	if w.xmin <= 0 && 0 <= w.xmax {
		px, _ := w.pixel(0, w.ymin)
		for py := 0; py < rows; py += 2 {
			w.c.Set(px, py)
		}
	}
}

// Curve plots f with one sample per sub-pixel column, joining
// neighbours. Samples that leave the window break the line so poles do
// not smear across the canvas.
func (w *Window) Curve(f func(float64) float64) {
	cols := w.c.Width * 2
	connected := false
	var prevX, prevY int
	for i := 0; i < cols; i++ {
		x := w.xmin + (w.xmax-w.xmin)*float64(i)/float64(cols-1)
		y := f(x)
		if !w.visible(y) {
			connected = false
			continue
		}
		px, py := w.pixel(x, y)
		if connected {
			w.c.DrawLine(prevX, prevY, px, py)
		} else {
			w.c.Set(px, py)
		}
		prevX, prevY, connected = px, py, true
	}
}

// Segment draws the straight line between two real points.
func (w *Window) Segment(x0, y0, x1, y1 float64) {
	if !w.visible(y0) || !w.visible(y1) {
		return
	}
	px0, py0 := w.pixel(x0, y0)
	px1, py1 := w.pixel(x1, y1)
	w.c.DrawLine(px0, py0, px1, py1)
}

// Mark draws a small cross at a real point.
func (w *Window) Mark(x, y float64) {
	if !w.visible(y) {
		return
	}
	px, py := w.pixel(x, y)
	for d := -2; d <= 2; d++ {
		w.c.Set(px+d, py)
		w.c.Set(px, py+d)
	}
}

// Descent traces the correction path through the iterates: from each
// point on the curve to its successor on the axis, then back up to the
// curve, with a cross at every visited point.
func (w *Window) Descent(xs []float64, f func(float64) float64) {
	for i := 0; i+1 < len(xs); i++ {
		w.Segment(xs[i], f(xs[i]), xs[i+1], 0)
		w.Segment(xs[i+1], 0, xs[i+1], f(xs[i+1]))
	}
	for _, x := range xs {
		w.Mark(x, f(x))
	}
}
