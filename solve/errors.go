package solve

import (
	"errors"
	"fmt"

	"github.com/san-kum/rootlab/scalar"
)

var (
	// ErrDivergence reports a negative discriminant: the local quadratic
	// model has no real root at the current iterate, which happens when the
	// iterate is far from any root of f.
	ErrDivergence = errors.New("solve: quadratic model has no real root (negative discriminant)")

	// ErrSingular reports a zero step denominator: the first derivative and
	// the sign-matched square root vanish together.
	ErrSingular = errors.New("solve: singular step (derivative and discriminant both zero)")
)

// StepError records the step index at which a run aborted and the iterate
// held on entry to that step. The iterate is diagnostic context, not a
// result: failed runs return no estimate.
type StepError[T scalar.Real[T]] struct {
	Step    int
	X       T
	Wrapped error
}

func (e *StepError[T]) Error() string {
	return fmt.Sprintf("step %d at x = %s: %v", e.Step, e.X.String(), e.Wrapped)
}

func (e *StepError[T]) Unwrap() error { return e.Wrapped }
