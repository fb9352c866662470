package dual

import (
	"math"
	"testing"

	"github.com/san-kum/rootlab/scalar"
)

type f64 = scalar.Float64

func TestSeeds(t *testing.T) {
	v := Var(f64(2.5))
	if v.Value().Float64() != 2.5 || v.Deriv().Float64() != 1 {
		t.Errorf("expected (2.5, 1), got (%v, %v)", v.Value().Float64(), v.Deriv().Float64())
	}

	c := Const(f64(2.5))
	if c.Value().Float64() != 2.5 || c.Deriv().Float64() != 0 {
		t.Errorf("expected (2.5, 0), got (%v, %v)", c.Value().Float64(), c.Deriv().Float64())
	}
}

func TestProductRule(t *testing.T) {
	x := Var(f64(2))
	y := x.Mul(x.Add(x.FromInt(3))) // x^2 + 3x

	if y.Value().Float64() != 10 {
		t.Errorf("expected value 10, got %v", y.Value().Float64())
	}
	if y.Deriv().Float64() != 7 {
		t.Errorf("expected derivative 7, got %v", y.Deriv().Float64())
	}
}

func TestQuotientRule(t *testing.T) {
	x := Var(f64(2))
	y := x.One().Add(x.Mul(x)).Div(x) // (1+x^2)/x

	if y.Value().Float64() != 2.5 {
		t.Errorf("expected value 2.5, got %v", y.Value().Float64())
	}
	if y.Deriv().Float64() != 0.75 {
		t.Errorf("expected derivative 0.75, got %v", y.Deriv().Float64())
	}
}

func TestSqrtRule(t *testing.T) {
	x := Var(f64(4))
	y := x.Mul(x).Add(x.FromInt(9)).Sqrt() // sqrt(x^2+9)

	if y.Value().Float64() != 5 {
		t.Errorf("expected value 5, got %v", y.Value().Float64())
	}
	if y.Deriv().Float64() != 0.8 {
		t.Errorf("expected derivative 0.8, got %v", y.Deriv().Float64())
	}
}

func TestChainThroughElementary(t *testing.T) {
	x := Var(f64(0.9))

	y := x.Mul(x).Sin() // sin(x^2)
	xv := 0.9
	if got, want := y.Deriv().Float64(), (xv+xv)*math.Cos(xv*xv); math.Abs(got-want) > 1e-15 {
		t.Errorf("expected derivative %v, got %v", want, got)
	}

	z := x.Cos().Exp() // e^cos(x)
	if got, want := z.Deriv().Float64(), -math.Sin(xv)*math.Exp(math.Cos(xv)); math.Abs(got-want) > 1e-15 {
		t.Errorf("expected derivative %v, got %v", want, got)
	}
}

func TestCopySignFlipsDerivative(t *testing.T) {
	x := Var(f64(4))
	y := x.Mul(x).Sub(x.FromInt(9)) // {7, 8}

	flipped := y.CopySign(y.One().Neg())
	if flipped.Value().Float64() != -7 || flipped.Deriv().Float64() != -8 {
		t.Errorf("expected (-7, -8), got (%v, %v)", flipped.Value().Float64(), flipped.Deriv().Float64())
	}

	kept := y.CopySign(y.One())
	if kept.Value().Float64() != 7 || kept.Deriv().Float64() != 8 {
		t.Errorf("expected (7, 8), got (%v, %v)", kept.Value().Float64(), kept.Deriv().Float64())
	}

	// A zero donor counts as positive.
	pos := y.Neg().CopySign(y.Zero())
	if pos.Value().Float64() != 7 || pos.Deriv().Float64() != 8 {
		t.Errorf("expected (7, 8), got (%v, %v)", pos.Value().Float64(), pos.Deriv().Float64())
	}
}

func TestExactCancellation(t *testing.T) {
	x := Var(f64(2))
	y := x.Sub(x.FromInt(2))

	if !y.Value().IsZero() {
		t.Errorf("expected exactly zero value part, got %v", y.Value().Float64())
	}
	if y.Deriv().Float64() != 1 {
		t.Errorf("expected derivative 1, got %v", y.Deriv().Float64())
	}
}

func TestNestedLevelsStayDistinct(t *testing.T) {
	s := Var(Var(f64(3)))
	r := s.Mul(s) // x^2 at both levels

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"value", r.Value().Value().Float64(), 9},
		{"inner derivative", r.Value().Deriv().Float64(), 6},
		{"outer derivative", r.Deriv().Value().Float64(), 6},
		{"second derivative", r.Deriv().Deriv().Float64(), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestComparisonsUseValueParts(t *testing.T) {
	a := Var(f64(2))
	b := Const(f64(2))

	if a.Cmp(b) != 0 {
		t.Error("expected equal value parts to compare equal")
	}
	if a.Sign() != 1 || a.Neg().Sign() != -1 {
		t.Error("sign does not match value part")
	}

	if !a.Sub(a).IsZero() {
		t.Error("expected a-a to be the zero element")
	}
	if a.Sub(b).IsZero() {
		t.Error("expected a live derivative part to keep the number nonzero")
	}
}

func TestStringFormat(t *testing.T) {
	if got := Var(f64(1.5)).String(); got != "(1.5 + 1ε)" {
		t.Errorf("expected (1.5 + 1ε), got %s", got)
	}
}
