// Package scalar defines the numeric capability set shared by every layer
// of the root-finding engine.
//
// The engine never depends on a concrete number type. Anything implementing
// [Real] over itself can flow through the differentiation and iteration
// layers:
//
//   - [Float64]: fixed-precision backend with IEEE 754 semantics
//   - [Big]: arbitrary-precision backend over math/big.Float
//
// Precision for [Big] values is an explicit constructor argument and travels
// with each value; there is no package-level precision setting.
//
// # Choosing a backend
//
// Float64 is the default for interactive use. Big exists to observe
// convergence behavior past the ~16 significant digits float64 offers:
//
//	x0, _ := scalar.ParseBig("1.0", 2048)
//	root, _ := solve.CubicNewton(f, x0, 8)
package scalar
