// Package funcs is the built-in catalog of test functions. Each body is
// written once against the scalar capability set, so a single definition
// instantiates at plain scalars for evaluation, dual numbers for
// derivatives, or nested duals for the solver.
package funcs

import (
	"fmt"
	"math"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
)

// Entry describes a catalog function: the analytic form and the
// conventional starting point used when the caller does not supply one.
type Entry struct {
	Name string
	Desc string
	X0   string
}

var catalog = []Entry{
	{"dottie", "cos(x) - x", "1.0"},
	{"expfix", "exp(-x) - x", "0.5"},
	{"kepler", "x - (4/5)*sin(x) - 1/2", "0.5"},
	{"loggrow", "exp(x) - 2", "1.0"},
	{"sqrt2", "x^2 - 2", "1.5"},
	{"wallis", "x^3 - 2x - 5", "2.0"},
}

// Catalog lists the built-in functions in name order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry registered under name.
func Find(name string) (Entry, error) {
	for _, e := range catalog {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown function: %s", name)
}

// Names lists the registered function names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Family describes a one-parameter family of functions. Param names the
// parameter, Lo and Hi give its conventional sweep range.
type Family struct {
	Name   string
	Desc   string
	Param  string
	Lo, Hi float64
	X0     string
}

var families = []Family{
	{"kepler", "x - e*sin(x) - 1/2", "e", 0, 0.95, "0.5"},
	{"sqrtc", "x^2 - c", "c", 1, 4, "1.5"},
}

// Families lists the built-in function families in name order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// FindFamily returns the family registered under name.
func FindFamily(name string) (Family, error) {
	for _, f := range families {
		if f.Name == name {
			return f, nil
		}
	}
	return Family{}, fmt.Errorf("unknown family: %s", name)
}

// LookupFamily returns the family body registered under name with its
// parameter fixed at p.
func LookupFamily[T scalar.Real[T]](name string, p float64) (dual.Func[T], error) {
	switch name {
	case "kepler":
		return func(x T) T {
			ecc := lift(x, p)
			mean := x.One().Div(x.FromInt(2))
			return x.Sub(ecc.Mul(x.Sin())).Sub(mean)
		}, nil
	case "sqrtc":
		return func(x T) T { return x.Mul(x).Sub(lift(x, p)) }, nil
	}
	return nil, fmt.Errorf("unknown family: %s", name)
}

// lift converts a float64 parameter to T exactly. A float64 is m * 2^e
// with m an integer below 2^53, so the conversion is one exact integer
// construction and a chain of exact power-of-two scalings.
func lift[T scalar.Real[T]](like T, v float64) T {
	frac, exp := math.Frexp(v)
	m := int64(frac * (1 << 53))
	exp -= 53

	t := like.FromInt(m)
	for exp > 0 {
		k := min(exp, 62)
		t = t.Mul(like.FromInt(int64(1) << k))
		exp -= k
	}
	for exp < 0 {
		k := min(-exp, 62)
		t = t.Div(like.FromInt(int64(1) << k))
		exp += k
	}
	return t
}

// Lookup returns the body registered under name at whichever instantiation
// the caller asks for.
func Lookup[T scalar.Real[T]](name string) (dual.Func[T], error) {
	switch name {
	case "dottie":
		return func(x T) T { return x.Cos().Sub(x) }, nil
	case "expfix":
		return func(x T) T { return x.Neg().Exp().Sub(x) }, nil
	case "kepler":
		return func(x T) T {
			ecc := x.FromInt(4).Div(x.FromInt(5))
			mean := x.One().Div(x.FromInt(2))
			return x.Sub(ecc.Mul(x.Sin())).Sub(mean)
		}, nil
	case "loggrow":
		return func(x T) T { return x.Exp().Sub(x.FromInt(2)) }, nil
	case "sqrt2":
		return func(x T) T { return x.Mul(x).Sub(x.FromInt(2)) }, nil
	case "wallis":
		return func(x T) T { return x.Mul(x).Mul(x).Sub(x.FromInt(2).Mul(x)).Sub(x.FromInt(5)) }, nil
	}
	return nil, fmt.Errorf("unknown function: %s", name)
}
