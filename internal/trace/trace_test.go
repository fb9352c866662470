package trace

import (
	"math"
	"testing"

	"github.com/san-kum/rootlab/scalar"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder[scalar.Float64]()

	rec.OnStep(0, scalar.Float64(1), scalar.Float64(-0.46))
	rec.OnStep(1, scalar.Float64(0.74), scalar.Float64(-0.0023))

	pts := rec.Points()
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].Step != 0 || pts[1].Step != 1 {
		t.Errorf("expected steps 0 and 1, got %d and %d", pts[0].Step, pts[1].Step)
	}
	if pts[0].X != "1" {
		t.Errorf("expected x '1', got %q", pts[0].X)
	}
	if math.Abs(pts[1].Log10-math.Log10(0.0023)) > 1e-12 {
		t.Errorf("expected log residual %v, got %v", math.Log10(0.0023), pts[1].Log10)
	}

	res := rec.Residuals()
	if len(res) != 2 || res[0] != pts[0].Log10 {
		t.Error("residual column does not match points")
	}

	rec.Reset()
	if len(rec.Points()) != 0 {
		t.Error("expected empty recorder after reset")
	}
}

func synthetic(logs []float64) []Point {
	pts := make([]Point, len(logs))
	for i, lg := range logs {
		pts[i] = Point{Step: i, Log10: lg}
	}
	return pts
}

func TestRates(t *testing.T) {
	pts := synthetic([]float64{-1, -3, -9, -27})

	rates := Rates(pts)
	if len(rates) != 3 {
		t.Fatalf("expected 3 rates, got %d", len(rates))
	}
	for _, r := range rates {
		if math.Abs(r-3) > 1e-12 {
			t.Errorf("expected rate 3, got %v", r)
		}
	}

	// Non-finite entries drop the pairs that touch them.
	pts = synthetic([]float64{-1, math.Inf(-1), -9})
	if got := Rates(pts); len(got) != 0 {
		t.Errorf("expected no rates, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", got)
	}

	pts := synthetic([]float64{-1, -3, -9, -27})
	pts[3].X = "0.739085"
	pts[3].F = "-1e-27"

	s := Summarize(pts)
	if s.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", s.Steps)
	}
	if s.FinalX != "0.739085" || s.FinalF != "-1e-27" {
		t.Errorf("expected endpoint strings, got %q %q", s.FinalX, s.FinalF)
	}
	if s.FinalLog10 != -27 {
		t.Errorf("expected final log -27, got %v", s.FinalLog10)
	}
	if math.Abs(s.Order-3) > 1e-12 {
		t.Errorf("expected order 3, got %v", s.Order)
	}
}

func TestSummarizeIgnoresFloor(t *testing.T) {
	// A float64 run: two clean cubic steps, then bouncing on the floor.
	pts := synthetic([]float64{-1, -3, -9, -15.9, -16.0, -15.9})

	s := Summarize(pts)
	if s.Order < 1.7 || s.Order > 3.1 {
		t.Errorf("expected a superlinear order estimate, got %v", s.Order)
	}
}
