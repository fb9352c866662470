package solve

import (
	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// Halley is the rational third-order stepper,
//
//	x' = x - 2*f(x)*f'(x) / (2*f'(x)^2 - f(x)*f''(x))
//
// the classic companion to [Cubic]'s irrational step. Both consume the same
// three oracles; they differ in how the quadratic model is inverted.
type Halley[T scalar.Real[T]] struct{}

func (Halley[T]) Name() string { return "halley" }

func (Halley[T]) Step(f dual.Func[dual.Nested[T]], x T) (T, error) {
	var zero T
	fx, fx1, fx2, err := probe(f, x)
	if err != nil {
		return zero, err
	}
	two := x.FromInt(2)
	den := two.Mul(fx1).Mul(fx1).Sub(fx.Mul(fx2))
	if den.IsZero() {
		return zero, ErrSingular
	}
	return x.Sub(two.Mul(fx).Mul(fx1).Div(den)), nil
}
