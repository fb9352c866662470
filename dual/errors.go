package dual

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the kind every domain violation wraps.
	ErrDomain = errors.New("dual: evaluation outside real domain")

	// ErrDivisionByZero reports division by a dual number whose value part
	// is exactly zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by a zero-valued dual", ErrDomain)

	// ErrNegativeSqrt reports a square root of a negative value part.
	ErrNegativeSqrt = fmt.Errorf("%w: square root of a negative value", ErrDomain)
)

// evalPanic marks a deliberate abort of a user-function evaluation, so
// catch never swallows an unrelated panic.
type evalPanic struct {
	err error
}

func raise(err error) {
	panic(evalPanic{err})
}

// catch converts an evalPanic unwinding through a public entry point into
// its returned error. Everything else keeps panicking.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	p, ok := r.(evalPanic)
	if !ok {
		panic(r)
	}
	*err = p.err
}
