// Package trace records solver iterates and condenses them into residual
// curves and convergence-order estimates.
package trace

import (
	"math"
	"sort"

	"github.com/san-kum/rootlab/scalar"
	"github.com/san-kum/rootlab/solve"
)

// Point is one recorded iterate. X and F are printable forms of the
// iterate and residual, so arbitrary-precision values reach disk
// unrounded; Log10 is the residual magnitude on a log10 scale, which stays
// finite far below the float64 underflow threshold.
type Point struct {
	Step  int     `json:"step"`
	X     string  `json:"x"`
	F     string  `json:"f"`
	Log10 float64 `json:"log10_abs_f"`
}

// Recorder collects the iterate trail of a solver run for any scalar
// backend.
type Recorder[T scalar.Real[T]] struct {
	points []Point
}

var _ solve.Observer[scalar.Float64] = (*Recorder[scalar.Float64])(nil)

func NewRecorder[T scalar.Real[T]]() *Recorder[T] {
	return &Recorder[T]{}
}

func (r *Recorder[T]) OnStep(k int, x, fx T) {
	r.points = append(r.points, Point{
		Step:  k,
		X:     x.String(),
		F:     fx.String(),
		Log10: scalar.Log10Abs(fx),
	})
}

// Points returns the recorded trail in step order.
func (r *Recorder[T]) Points() []Point { return r.points }

// Residuals returns the log10 residual column.
func (r *Recorder[T]) Residuals() []float64 {
	out := make([]float64, len(r.points))
	for i, p := range r.points {
		out[i] = p.Log10
	}
	return out
}

// Reset clears the recorder for reuse between runs.
func (r *Recorder[T]) Reset() { r.points = nil }

// Rates reports the ratios of successive log10 residual magnitudes. Pairs
// touching a non-finite or zero entry are skipped.
func Rates(points []Point) []float64 {
	var out []float64
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i].Log10, points[i+1].Log10
		if !finite(a) || !finite(b) || a == 0 {
			continue
		}
		out = append(out, b/a)
	}
	return out
}

// Summary condenses a recorded trail.
type Summary struct {
	Steps      int
	FinalX     string
	FinalF     string
	FinalLog10 float64
	Order      float64
}

// Summarize reduces a trail to its endpoint and a convergence-order
// estimate: the median log-residual ratio over the improving steps, where
// improving means the step gained at least one decimal digit. Steps
// bouncing along a precision floor do not count.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	last := points[len(points)-1]
	s := Summary{
		Steps:      last.Step,
		FinalX:     last.X,
		FinalF:     last.F,
		FinalLog10: last.Log10,
	}

	var improving []float64
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i].Log10, points[i+1].Log10
		if !finite(a) || !finite(b) || a == 0 || b > a-1 {
			continue
		}
		improving = append(improving, b/a)
	}
	if len(improving) > 0 {
		sort.Float64s(improving)
		s.Order = improving[len(improving)/2]
	}
	return s
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
