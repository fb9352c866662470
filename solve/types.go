package solve

import (
	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// Stepper produces the next iterate from the current one. The function is
// supplied at the nested dual instantiation so any stepper may take up to
// two derivatives; steppers hold no state and are safe for concurrent use.
type Stepper[T scalar.Real[T]] interface {
	Name() string
	Step(f dual.Func[dual.Nested[T]], x T) (T, error)
}

// Observer receives each iterate of an observed run. k counts from 0 (the
// starting point) through the final step; fx is the function value there.
type Observer[T scalar.Real[T]] interface {
	OnStep(k int, x, fx T)
}
