package scalar

import "math"

// Real is the capability set a number type must implement to participate in
// differentiation and root finding. The type parameter is the implementing
// type itself, so arithmetic stays closed over one concrete type.
//
// Implementations must be immutable: every operation returns a new value and
// never modifies its receiver or arguments. Identities and integer constants
// are derived from a receiver so they carry its precision.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	Sqrt() T
	// CopySign returns the magnitude of the receiver with the sign of the
	// argument. A zero argument counts as positive.
	CopySign(T) T
	Sin() T
	Cos() T
	Exp() T

	Cmp(T) int
	Sign() int
	IsZero() bool

	// Zero and One return the additive and multiplicative identities at the
	// receiver's precision.
	Zero() T
	One() T
	// FromInt returns the given integer at the receiver's precision.
	FromInt(int64) T

	Float64() float64
	String() string
}

// Abs returns the absolute value of x.
func Abs[T Real[T]](x T) T {
	return x.CopySign(x.One())
}

// Log10Abs returns log10(|x|), or -Inf for zero. Types that can represent
// magnitudes outside the float64 range provide their own exact method;
// everything else goes through a float64 conversion.
func Log10Abs[T Real[T]](x T) float64 {
	if w, ok := any(x).(interface{ Log10Abs() float64 }); ok {
		return w.Log10Abs()
	}
	return math.Log10(math.Abs(x.Float64()))
}
