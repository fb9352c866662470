package solve

import (
	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// Newton is the ordinary first-order stepper, x' = x - f(x)/f'(x). It
// shares the [Stepper] shape with the higher-order methods but never
// evaluates the second derivative.
type Newton[T scalar.Real[T]] struct{}

func (Newton[T]) Name() string { return "newton" }

func (Newton[T]) Step(f dual.Func[dual.Nested[T]], x T) (T, error) {
	var zero T
	g := restrict(f)
	fx, err := dual.Eval(g, x)
	if err != nil {
		return zero, err
	}
	fx1, err := dual.Derivative(g, x)
	if err != nil {
		return zero, err
	}
	if fx1.IsZero() {
		return zero, ErrSingular
	}
	return x.Sub(fx.Div(fx1)), nil
}
