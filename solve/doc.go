// Package solve implements derivative-based root finding for scalar
// functions, built on the exact oracles in package dual.
//
//   - [Cubic]: cubically convergent quadratic-model step (the default)
//   - [Newton]: ordinary first-order step
//   - [Halley]: rational third-order step
//   - [Solver]: runs a stepper for a fixed number of steps with observers
//   - [CubicNewton]: one-call entry point for the cubic method
//
// A run executes exactly the requested number of steps: there is no
// internal convergence check, tolerance, or early exit. Callers judge
// |f(x)| afterward and choose their own remedy when a run fails with
// [ErrDivergence] or [ErrSingular].
//
// # Example
//
//	f := func(x dual.Nested[scalar.Float64]) dual.Nested[scalar.Float64] {
//		return x.Cos().Sub(x)
//	}
//	root, err := solve.CubicNewton(f, scalar.Float64(1), 5)
//
// # Thread Safety
//
// Steppers are stateless and safe for concurrent use. Solver instances are
// NOT thread-safe; give each goroutine its own, or use the package-level
// entry points, which are pure.
package solve
