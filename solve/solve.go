package solve

import (
	"fmt"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// CubicNewton refines x0 for exactly the given number of steps with the
// [Cubic] stepper. Zero steps returns x0 untouched. On failure the result
// is the zero value of T and a *StepError locating the failing step.
func CubicNewton[T scalar.Real[T]](f dual.Func[dual.Nested[T]], x0 T, steps int) (T, error) {
	return New[T](Cubic[T]{}).Run(f, x0, steps)
}

// Solver runs a stepper for a fixed number of steps, feeding attached
// observers along the way. Not safe for concurrent use.
type Solver[T scalar.Real[T]] struct {
	stepper   Stepper[T]
	observers []Observer[T]
}

func New[T scalar.Real[T]](stepper Stepper[T]) *Solver[T] {
	return &Solver[T]{stepper: stepper}
}

// AddObserver attaches an observer to subsequent runs.
func (s *Solver[T]) AddObserver(o Observer[T]) {
	s.observers = append(s.observers, o)
}

// Run advances x0 for exactly steps iterations and returns the final
// iterate. Observers see (k, x_k, f(x_k)) for k = 0 through steps;
// producing the final point costs one extra function evaluation, which
// unobserved runs skip. Errors abort the run at the failing step: the
// returned value is the zero value of T and the error is a *StepError
// wrapping [ErrDivergence], [ErrSingular], or a dual-layer domain error.
func (s *Solver[T]) Run(f dual.Func[dual.Nested[T]], x0 T, steps int) (T, error) {
	var zero T
	if steps < 0 {
		return zero, fmt.Errorf("solve: negative step count %d", steps)
	}
	x := x0
	for k := 0; k < steps; k++ {
		if err := s.notify(k, f, x); err != nil {
			return zero, &StepError[T]{Step: k, X: x, Wrapped: err}
		}
		next, err := s.stepper.Step(f, x)
		if err != nil {
			return zero, &StepError[T]{Step: k, X: x, Wrapped: err}
		}
		x = next
	}
	if err := s.notify(steps, f, x); err != nil {
		return zero, &StepError[T]{Step: steps, X: x, Wrapped: err}
	}
	return x, nil
}

func (s *Solver[T]) notify(k int, f dual.Func[dual.Nested[T]], x T) error {
	if len(s.observers) == 0 {
		return nil
	}
	fx, err := dual.Eval(restrict(f), x)
	if err != nil {
		return err
	}
	for _, o := range s.observers {
		o.OnStep(k, x, fx)
	}
	return nil
}

// probe evaluates f, f' and f'' at x through the dual oracles. Value and
// first derivative go through the constant-lift restriction of the same
// nested instantiation the second derivative uses.
func probe[T scalar.Real[T]](f dual.Func[dual.Nested[T]], x T) (fx, fx1, fx2 T, err error) {
	g := restrict(f)
	if fx, err = dual.Eval(g, x); err != nil {
		return fx, fx1, fx2, err
	}
	if fx1, err = dual.Derivative(g, x); err != nil {
		return fx, fx1, fx2, err
	}
	fx2, err = dual.SecondDerivative(f, x)
	return fx, fx1, fx2, err
}

// restrict drops f one lifting level by pinning the outer perturbation of
// every input to zero.
func restrict[T scalar.Real[T]](f dual.Func[dual.Nested[T]]) dual.Func[dual.Number[T]] {
	return func(y dual.Number[T]) dual.Number[T] {
		return f(dual.Const(y)).Value()
	}
}

// Lookup returns the stepper registered under name.
func Lookup[T scalar.Real[T]](name string) (Stepper[T], error) {
	switch name {
	case "cubic":
		return Cubic[T]{}, nil
	case "newton":
		return Newton[T]{}, nil
	case "halley":
		return Halley[T]{}, nil
	}
	return nil, fmt.Errorf("unknown method: %s", name)
}

// Names lists the registered steppers.
func Names() []string {
	return []string{"cubic", "halley", "newton"}
}
