package scalar

import (
	"fmt"
	"math"
	"math/big"
)

// Big adapts math/big.Float to the [Real] capability set. Every value is
// constructed at an explicit precision (mantissa bits) and operations never
// modify their operands; results carry the larger precision of the two.
//
// Construct values through [ParseBig], [BigFromFloat], or the FromInt /
// Zero / One methods of an existing value. The zero value of the struct is
// not usable.
type Big struct {
	x *big.Float
}

// ParseBig parses a decimal literal at the given precision in bits.
func ParseBig(s string, prec uint) (Big, error) {
	if prec == 0 {
		return Big{}, fmt.Errorf("scalar: precision must be at least 1 bit")
	}
	f, ok := new(big.Float).SetPrec(prec).SetString(s)
	if !ok {
		return Big{}, fmt.Errorf("scalar: cannot parse %q as a real number", s)
	}
	return Big{f}, nil
}

// BigFromFloat converts a float64 to the given precision in bits.
func BigFromFloat(v float64, prec uint) Big {
	return Big{new(big.Float).SetPrec(prec).SetFloat64(v)}
}

// Prec reports the precision of the value in mantissa bits.
func (a Big) Prec() uint { return a.x.Prec() }

func (a Big) resultPrec(b Big) uint {
	p := a.x.Prec()
	if q := b.x.Prec(); q > p {
		p = q
	}
	return p
}

func (a Big) Add(b Big) Big {
	return Big{new(big.Float).SetPrec(a.resultPrec(b)).Add(a.x, b.x)}
}

func (a Big) Sub(b Big) Big {
	return Big{new(big.Float).SetPrec(a.resultPrec(b)).Sub(a.x, b.x)}
}

func (a Big) Mul(b Big) Big {
	return Big{new(big.Float).SetPrec(a.resultPrec(b)).Mul(a.x, b.x)}
}

// Div divides by b. As with big.Float, a zero divisor yields ±Inf and 0/0
// panics; callers in the dual layer check the divisor first.
func (a Big) Div(b Big) Big {
	return Big{new(big.Float).SetPrec(a.resultPrec(b)).Quo(a.x, b.x)}
}

func (a Big) Neg() Big {
	return Big{new(big.Float).SetPrec(a.x.Prec()).Neg(a.x)}
}

// Sqrt keeps big.Float semantics: a negative operand panics with ErrNaN.
// The dual layer rejects negative radicands before calling this.
func (a Big) Sqrt() Big {
	return Big{new(big.Float).SetPrec(a.x.Prec()).Sqrt(a.x)}
}

func (a Big) CopySign(s Big) Big {
	if (a.x.Sign() < 0) == (s.x.Sign() < 0) {
		return a
	}
	return a.Neg()
}

func (a Big) Sin() Big { return Big{bigSin(a.x, a.x.Prec())} }
func (a Big) Cos() Big { return Big{bigCos(a.x, a.x.Prec())} }
func (a Big) Exp() Big { return Big{bigExp(a.x, a.x.Prec())} }

func (a Big) Cmp(b Big) int { return a.x.Cmp(b.x) }
func (a Big) Sign() int     { return a.x.Sign() }
func (a Big) IsZero() bool  { return a.x.Sign() == 0 }

func (a Big) Zero() Big { return Big{new(big.Float).SetPrec(a.x.Prec())} }
func (a Big) One() Big  { return a.FromInt(1) }

func (a Big) FromInt(n int64) Big {
	return Big{new(big.Float).SetPrec(a.x.Prec()).SetInt64(n)}
}

func (a Big) Float64() float64 {
	v, _ := a.x.Float64()
	return v
}

func (a Big) String() string { return a.x.Text('g', -1) }

// Log10Abs returns log10(|a|) from the mantissa/exponent decomposition, so
// magnitudes far outside the float64 range stay measurable. Zero yields -Inf.
func (a Big) Log10Abs() float64 {
	if a.x.Sign() == 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	exp := a.x.MantExp(mant)
	m, _ := mant.Float64()
	return math.Log10(math.Abs(m)) + float64(exp)*math.Log10(2)
}
