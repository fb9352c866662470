// Package dual implements forward-mode automatic differentiation with dual
// numbers, nested once to reach exact second derivatives.
//
//   - [Number]: a value plus the coefficient of an infinitesimal
//     perturbation, propagated exactly through every operation
//   - [Func]: a scalar function written against the capability set in
//     package scalar, usable at any lifting depth
//   - [Derivative], [SecondDerivative], [Eval]: the derivative oracles
//
// Derivatives are exact to the precision of the underlying scalar: nothing
// is truncated or finite-differenced. Second derivatives come from running
// the first-derivative machinery over a scalar type that is itself a dual
// number ([Nested]), with the two perturbation levels separated purely by
// the type parameter.
//
// # Example
//
//	f := func(x dual.Number[scalar.Float64]) dual.Number[scalar.Float64] {
//		return x.Sin().Sub(x.Mul(x))
//	}
//	d, _ := dual.Derivative(f, scalar.Float64(0.5)) // cos(0.5) - 1.0
//
// Domain violations inside a user function (dividing by a zero-valued dual,
// square root of a negative value) surface as errors wrapping [ErrDomain]
// from the oracle that ran the evaluation.
package dual
