package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// Float64 adapts float64 to the [Real] capability set. IEEE 754 semantics
// are preserved as-is: division by zero yields ±Inf and Sqrt of a negative
// value yields NaN at this level. The dual-number layer performs its own
// domain checks before reaching these operations.
type Float64 float64

// ParseFloat64 parses a decimal literal.
func ParseFloat64(s string) (Float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("scalar: cannot parse %q as a real number", s)
	}
	return Float64(v), nil
}

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }
func (a Float64) Neg() Float64 { return -a }

func (a Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(a))) }
func (a Float64) Sin() Float64 { return Float64(math.Sin(float64(a))) }
func (a Float64) Cos() Float64 { return Float64(math.Cos(float64(a))) }
func (a Float64) Exp() Float64 { return Float64(math.Exp(float64(a))) }

// CopySign follows the package convention that a zero donor counts as
// positive, so a negative-zero s does not flip the sign the way
// math.Copysign would.
func (a Float64) CopySign(s Float64) Float64 {
	if (a < 0) == (s < 0) {
		return a
	}
	return -a
}

func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Float64) Sign() int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

func (a Float64) IsZero() bool { return a == 0 }

func (a Float64) Zero() Float64 { return 0 }
func (a Float64) One() Float64 { return 1 }
func (a Float64) FromInt(n int64) Float64 { return Float64(n) }

func (a Float64) Float64() float64 { return float64(a) }

func (a Float64) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}
