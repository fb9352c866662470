package solve

import (
	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// Cubic is the cubically convergent quadratic-model stepper. Each step
// takes exact value, first and second derivative from the dual oracles and
// moves to the nearer root of the local quadratic model:
//
//	D  = f'(x)^2 - 2*f(x)*f''(x)
//	x' = x - 2*f(x) / (f'(x) + copysign(sqrt(D), f'(x)))
//
// Matching the square root's sign to f'(x) keeps the denominator away from
// cancellation and reduces the formula to the plain Newton step as f''
// vanishes. When f'(x) is exactly zero the square root is taken positive.
type Cubic[T scalar.Real[T]] struct{}

func (Cubic[T]) Name() string { return "cubic" }

func (Cubic[T]) Step(f dual.Func[dual.Nested[T]], x T) (T, error) {
	var zero T
	fx, fx1, fx2, err := probe(f, x)
	if err != nil {
		return zero, err
	}
	two := x.FromInt(2)
	d := fx1.Mul(fx1).Sub(two.Mul(fx).Mul(fx2))
	if d.Sign() < 0 {
		return zero, ErrDivergence
	}
	den := fx1.Add(d.Sqrt().CopySign(fx1))
	if den.IsZero() {
		return zero, ErrSingular
	}
	return x.Sub(two.Mul(fx).Div(den)), nil
}
