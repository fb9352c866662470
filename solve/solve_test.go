package solve

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

type (
	f64 = scalar.Float64
	nf  = dual.Nested[scalar.Float64]
)

// lift embeds a plain constant at the nested instantiation.
func lift(v float64) nf {
	return dual.Const(dual.Const(f64(v)))
}

func quadratic(x nf) nf { // x^2 - 5x + 6, roots 2 and 3
	return x.Mul(x).Sub(x.FromInt(5).Mul(x)).Add(x.FromInt(6))
}

func dottie(x nf) nf { // cos(x) - x
	return x.Cos().Sub(x)
}

func TestCubicOneStepOnQuadratic(t *testing.T) {
	// The local quadratic model of a quadratic is the function itself, so a
	// single step lands on the exact nearer root.
	got, err := CubicNewton(quadratic, f64(0), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 2 {
		t.Errorf("expected nearer root 2, got %v", got.Float64())
	}

	got, err = CubicNewton(quadratic, f64(10), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 3 {
		t.Errorf("expected nearer root 3, got %v", got.Float64())
	}
}

func TestCubicOneStepOnLinearAndDoubleRoot(t *testing.T) {
	linear := func(x nf) nf { return x.FromInt(3).Mul(x).Sub(x.FromInt(6)) }
	got, err := CubicNewton(linear, f64(5), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 2 {
		t.Errorf("expected root 2, got %v", got.Float64())
	}

	double := func(x nf) nf { // (x-1)^2
		return x.Mul(x).Sub(x.FromInt(2).Mul(x)).Add(x.One())
	}
	got, err = CubicNewton(double, f64(4), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 1 {
		t.Errorf("expected double root 1, got %v", got.Float64())
	}
}

func TestZeroStepsReturnsStart(t *testing.T) {
	got, err := CubicNewton(dottie, f64(1.23), 0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 1.23 {
		t.Errorf("expected 1.23 back, got %v", got.Float64())
	}

	// Zero steps never probes f, even where f is undefined.
	recip := func(x nf) nf { return x.One().Div(x) }
	if _, err := CubicNewton(recip, f64(0), 0); err != nil {
		t.Errorf("expected no evaluation for zero steps, got %v", err)
	}
}

func TestNegativeStepCount(t *testing.T) {
	_, err := CubicNewton(dottie, f64(1), -1)
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestDivergenceError(t *testing.T) {
	rootless := func(x nf) nf { return x.Mul(x).Add(x.One()) } // x^2 + 1

	_, err := CubicNewton(rootless, f64(0), 3)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrDivergence) {
		t.Errorf("expected divergence, got %v", err)
	}

	var se *StepError[f64]
	if !errors.As(err, &se) {
		t.Fatalf("expected step error, got %v", err)
	}
	if se.Step != 0 {
		t.Errorf("expected failure at step 0, got %d", se.Step)
	}
}

func TestSingularError(t *testing.T) {
	cube := func(x nf) nf { return x.Mul(x).Mul(x) }

	// x = 0 is a triple root, yet value, slope and discriminant all vanish:
	// the run aborts rather than declaring victory.
	_, err := CubicNewton(cube, f64(0), 1)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected singular step, got %v", err)
	}
}

func TestNoEarlyExitAfterExactLanding(t *testing.T) {
	square := func(x nf) nf { return x.Mul(x) }

	// One step from 1 lands exactly on the root.
	got, err := CubicNewton(square, f64(1), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != 0 {
		t.Errorf("expected 0, got %v", got.Float64())
	}

	// A second step is still taken and fails there.
	_, err = CubicNewton(square, f64(1), 2)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("expected singular step, got %v", err)
	}
	var se *StepError[f64]
	if !errors.As(err, &se) {
		t.Fatalf("expected step error, got %v", err)
	}
	if se.Step != 1 {
		t.Errorf("expected failure at step 1, got %d", se.Step)
	}
}

func TestZeroSlopeTakesPositiveBranch(t *testing.T) {
	hill := func(x nf) nf { return x.One().Sub(x.Mul(x)) } // 1 - x^2

	// At x = 0 the slope vanishes with a positive discriminant; the square
	// root counts as positive and the step goes to the root at -1.
	got, err := CubicNewton(hill, f64(0), 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Float64() != -1 {
		t.Errorf("expected -1, got %v", got.Float64())
	}
}

func TestStepMatchesNewtonWhenCurvatureVanishes(t *testing.T) {
	for _, c := range []float64{1e-2, 1e-4, 1e-6} {
		f := func(x nf) nf { return x.Sub(lift(2)).Add(lift(c).Mul(x).Mul(x)) }

		cub, err := Cubic[f64]{}.Step(f, f64(0))
		if err != nil {
			t.Fatalf("cubic step failed: %v", err)
		}
		newt, err := Newton[f64]{}.Step(f, f64(0))
		if err != nil {
			t.Fatalf("newton step failed: %v", err)
		}

		if diff := math.Abs(cub.Float64() - newt.Float64()); diff > 5*c {
			t.Errorf("c=%g: steps differ by %g", c, diff)
		}
	}
}

func TestKnownRootsFloat64(t *testing.T) {
	tests := []struct {
		name  string
		f     dual.Func[nf]
		x0    float64
		steps int
		want  float64
	}{
		{"dottie", dottie, 1.0, 6, 0.7390851332151607},
		{
			"wallis",
			func(x nf) nf { return x.Mul(x).Mul(x).Sub(x.FromInt(2).Mul(x)).Sub(x.FromInt(5)) },
			2.0, 6, 2.0945514815423265,
		},
		{
			"sqrt2",
			func(x nf) nf { return x.Mul(x).Sub(x.FromInt(2)) },
			1.5, 5, math.Sqrt2,
		},
		{
			"lambert",
			func(x nf) nf { return x.Neg().Exp().Sub(x) },
			0.5, 6, 0.5671432904097838,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CubicNewton(tt.f, f64(tt.x0), tt.steps)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if math.Abs(got.Float64()-tt.want) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.want, got.Float64())
			}
		})
	}
}

func TestHalleyAndNewtonConverge(t *testing.T) {
	wallis := func(x nf) nf {
		return x.Mul(x).Mul(x).Sub(x.FromInt(2).Mul(x)).Sub(x.FromInt(5))
	}
	const want = 2.0945514815423265

	got, err := New[f64](Halley[f64]{}).Run(wallis, f64(2), 6)
	if err != nil {
		t.Fatalf("halley run failed: %v", err)
	}
	if math.Abs(got.Float64()-want) > 1e-12 {
		t.Errorf("halley: expected %v, got %v", want, got.Float64())
	}

	got, err = New[f64](Newton[f64]{}).Run(wallis, f64(2), 8)
	if err != nil {
		t.Fatalf("newton run failed: %v", err)
	}
	if math.Abs(got.Float64()-want) > 1e-12 {
		t.Errorf("newton: expected %v, got %v", want, got.Float64())
	}
}

func TestSteppersReportSingularSlope(t *testing.T) {
	square := func(x nf) nf { return x.Mul(x) }

	if _, err := (Newton[f64]{}).Step(square, f64(0)); !errors.Is(err, ErrSingular) {
		t.Errorf("newton: expected singular step, got %v", err)
	}

	cube := func(x nf) nf { return x.Mul(x).Mul(x) }
	if _, err := (Halley[f64]{}).Step(cube, f64(0)); !errors.Is(err, ErrSingular) {
		t.Errorf("halley: expected singular step, got %v", err)
	}
}

type recorder struct {
	ks []int
	xs []float64
	fs []float64
}

func (r *recorder) OnStep(k int, x, fx f64) {
	r.ks = append(r.ks, k)
	r.xs = append(r.xs, x.Float64())
	r.fs = append(r.fs, fx.Float64())
}

func TestObserverSeesEveryIterate(t *testing.T) {
	rec := &recorder{}
	s := New[f64](Cubic[f64]{})
	s.AddObserver(rec)

	got, err := s.Run(dottie, f64(1), 3)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(rec.ks) != 4 {
		t.Fatalf("expected 4 observations, got %d", len(rec.ks))
	}
	for i, k := range rec.ks {
		if k != i {
			t.Errorf("expected step index %d, got %d", i, k)
		}
	}
	if rec.xs[0] != 1 {
		t.Errorf("expected first iterate 1, got %v", rec.xs[0])
	}
	if rec.xs[3] != got.Float64() {
		t.Errorf("expected final iterate %v, got %v", got.Float64(), rec.xs[3])
	}
	if math.Abs(rec.fs[3]) >= math.Abs(rec.fs[0]) {
		t.Errorf("expected residual to shrink, got %v to %v", rec.fs[0], rec.fs[3])
	}
}

func TestObserverOnFailingRun(t *testing.T) {
	rootless := func(x nf) nf { return x.Mul(x).Add(x.One()) }

	rec := &recorder{}
	s := New[f64](Cubic[f64]{})
	s.AddObserver(rec)

	if _, err := s.Run(rootless, f64(0), 3); err == nil {
		t.Fatal("expected error, got nil")
	}

	// The starting point is reported before the failing step runs.
	if len(rec.ks) != 1 || rec.ks[0] != 0 {
		t.Errorf("expected the single observation k=0, got %v", rec.ks)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		st, err := Lookup[f64](name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if st.Name() != name {
			t.Errorf("expected stepper %q, got %q", name, st.Name())
		}
	}

	_, err := Lookup[f64]("bisection")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown method") {
		t.Errorf("expected unknown method error, got %v", err)
	}
}

func TestStepErrorMessage(t *testing.T) {
	err := &StepError[f64]{Step: 2, X: f64(1.5), Wrapped: ErrDivergence}

	if !strings.Contains(err.Error(), "step 2 at x = 1.5") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrDivergence) {
		t.Error("expected wrapped divergence to survive unwrapping")
	}
}
