package dual

import "github.com/san-kum/rootlab/scalar"

// Func is a scalar function written against the capability set, so a single
// generic body instantiates at plain scalars, dual numbers, or nested duals
// without edits.
type Func[T scalar.Real[T]] func(T) T

// Nested is the doubly-lifted number type used for second derivatives.
type Nested[T scalar.Real[T]] = Number[Number[T]]

// derivative is the uninsulated core: domain panics unwind through it to
// the catch of whichever public oracle started the evaluation.
func derivative[T scalar.Real[T]](f Func[Number[T]], x T) T {
	return f(Var(x)).dot
}

// Eval computes f(x) by evaluating f at a constant seed.
func Eval[T scalar.Real[T]](f Func[Number[T]], x T) (v T, err error) {
	defer catch(&err)
	return f(Const(x)).val, nil
}

// Derivative computes the exact first derivative f'(x).
func Derivative[T scalar.Real[T]](f Func[Number[T]], x T) (d T, err error) {
	defer catch(&err)
	return derivative(f, x), nil
}

// SecondDerivative computes the exact second derivative f''(x) by
// differentiating the auxiliary function y -> f'(y) with the same machinery
// one level up. f runs over [Nested] values; the inner and outer
// perturbation seeds stay separate through the type parameter alone.
func SecondDerivative[T scalar.Real[T]](f Func[Nested[T]], x T) (d2 T, err error) {
	defer catch(&err)
	df := func(y Number[T]) Number[T] { return derivative[Number[T]](f, y) }
	return derivative(df, x), nil
}
