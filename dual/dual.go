package dual

import "github.com/san-kum/rootlab/scalar"

// Number is a dual number over T: a value together with the coefficient of
// an infinitesimal perturbation of the independent variable. Evaluating a
// function at Var(x) leaves f(x) in the value part and f'(x) in the
// derivative part.
//
// Number is immutable with value semantics and satisfies
// scalar.Real[Number[T]] over itself, so it nests: Number[Number[T]] tracks
// two independent perturbation levels.
type Number[T scalar.Real[T]] struct {
	val, dot T
}

var (
	_ scalar.Real[Number[scalar.Float64]] = Number[scalar.Float64]{}
	_ scalar.Real[Nested[scalar.Float64]] = Nested[scalar.Float64]{}
)

// Const lifts a constant: the perturbation coefficient is zero.
func Const[T scalar.Real[T]](x T) Number[T] {
	return Number[T]{val: x, dot: x.Zero()}
}

// Var seeds the independent variable: the perturbation coefficient is one.
func Var[T scalar.Real[T]](x T) Number[T] {
	return Number[T]{val: x, dot: x.One()}
}

// Value returns the function-value part.
func (a Number[T]) Value() T { return a.val }

// Deriv returns the derivative part.
func (a Number[T]) Deriv() T { return a.dot }

func (a Number[T]) Add(b Number[T]) Number[T] {
	return Number[T]{val: a.val.Add(b.val), dot: a.dot.Add(b.dot)}
}

func (a Number[T]) Sub(b Number[T]) Number[T] {
	return Number[T]{val: a.val.Sub(b.val), dot: a.dot.Sub(b.dot)}
}

// Mul applies the product rule.
func (a Number[T]) Mul(b Number[T]) Number[T] {
	return Number[T]{
		val: a.val.Mul(b.val),
		dot: a.dot.Mul(b.val).Add(a.val.Mul(b.dot)),
	}
}

// Div applies the quotient rule. A divisor whose value part is exactly zero
// is a domain violation; at nested depth the value-part check repeats level
// by level until it bottoms out at the base scalar.
func (a Number[T]) Div(b Number[T]) Number[T] {
	if b.val.IsZero() {
		raise(ErrDivisionByZero)
	}
	q := a.val.Div(b.val)
	return Number[T]{
		val: q,
		dot: a.dot.Sub(q.Mul(b.dot)).Div(b.val),
	}
}

func (a Number[T]) Neg() Number[T] {
	return Number[T]{val: a.val.Neg(), dot: a.dot.Neg()}
}

// Sqrt propagates sqrt(a)' = a' / (2*sqrt(a)). A negative value part is a
// domain violation. At an exactly-zero value part the derivative's divisor
// is zero: if a perturbation actually flows through the node this is
// reported as the division violation it is, while a constant operand
// passes through untouched.
func (a Number[T]) Sqrt() Number[T] {
	if a.val.Sign() < 0 {
		raise(ErrNegativeSqrt)
	}
	s := a.val.Sqrt()
	if s.IsZero() {
		if a.dot.IsZero() {
			return Number[T]{val: s, dot: a.dot}
		}
		raise(ErrDivisionByZero)
	}
	return Number[T]{val: s, dot: a.dot.Div(s.FromInt(2).Mul(s))}
}

// CopySign gives the value part the sign of s's value part; when that
// flips the number, the derivative flips with it. A zero donor counts as
// positive.
func (a Number[T]) CopySign(s Number[T]) Number[T] {
	if (a.val.Sign() < 0) == (s.val.Sign() < 0) {
		return a
	}
	return a.Neg()
}

func (a Number[T]) Sin() Number[T] {
	return Number[T]{val: a.val.Sin(), dot: a.dot.Mul(a.val.Cos())}
}

func (a Number[T]) Cos() Number[T] {
	return Number[T]{val: a.val.Cos(), dot: a.dot.Mul(a.val.Sin()).Neg()}
}

func (a Number[T]) Exp() Number[T] {
	e := a.val.Exp()
	return Number[T]{val: e, dot: a.dot.Mul(e)}
}

// Cmp compares value parts.
func (a Number[T]) Cmp(b Number[T]) int { return a.val.Cmp(b.val) }

// Sign reports the sign of the value part.
func (a Number[T]) Sign() int { return a.val.Sign() }

// IsZero reports whether the number is exactly the additive identity.
func (a Number[T]) IsZero() bool { return a.val.IsZero() && a.dot.IsZero() }

func (a Number[T]) Zero() Number[T] {
	z := a.val.Zero()
	return Number[T]{val: z, dot: z}
}

func (a Number[T]) One() Number[T] {
	return Number[T]{val: a.val.One(), dot: a.val.Zero()}
}

func (a Number[T]) FromInt(n int64) Number[T] {
	return Number[T]{val: a.val.FromInt(n), dot: a.val.Zero()}
}

// Float64 approximates the value part.
func (a Number[T]) Float64() float64 { return a.val.Float64() }

func (a Number[T]) String() string {
	return "(" + a.val.String() + " + " + a.dot.String() + "ε)"
}
