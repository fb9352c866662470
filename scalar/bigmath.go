package scalar

import (
	"math/big"
	"sync"
)

// guardBits is the extra working precision carried through series
// evaluation before rounding back to the requested precision.
const guardBits = 64

// bigExp computes e**x at prec bits. x is scaled into (-1/2, 1/2) by
// repeated halving, the Maclaurin series is summed there, and the result is
// squared back up, with one extra working bit per squaring.
func bigExp(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return new(big.Float).SetPrec(prec).SetInt64(1)
	}
	shifts := 0
	if e := x.MantExp(nil); e >= 0 {
		shifts = e + 1
	}
	work := prec + guardBits + uint(shifts)
	r := new(big.Float).SetPrec(work).Set(x)
	if shifts > 0 {
		r.SetMantExp(r, -shifts)
	}

	sum := new(big.Float).SetPrec(work).SetInt64(1)
	term := new(big.Float).SetPrec(work).SetInt64(1)
	den := new(big.Float).SetPrec(work)
	for i := int64(1); i < 4*int64(work); i++ {
		term.Mul(term, r)
		term.Quo(term, den.SetInt64(i))
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < -int(work) {
			break
		}
	}
	for ; shifts > 0; shifts-- {
		sum.Mul(sum, sum)
	}
	return new(big.Float).SetPrec(prec).Set(sum)
}

func bigSin(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return new(big.Float).SetPrec(prec)
	}
	r, quad, work := reduceQuadrant(x, prec)
	var v *big.Float
	switch quad {
	case 0:
		v = sinSeries(r, work)
	case 1:
		v = cosSeries(r, work)
	case 2:
		v = sinSeries(r, work)
		v.Neg(v)
	default:
		v = cosSeries(r, work)
		v.Neg(v)
	}
	return new(big.Float).SetPrec(prec).Set(v)
}

func bigCos(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return new(big.Float).SetPrec(prec).SetInt64(1)
	}
	r, quad, work := reduceQuadrant(x, prec)
	var v *big.Float
	switch quad {
	case 0:
		v = cosSeries(r, work)
	case 1:
		v = sinSeries(r, work)
		v.Neg(v)
	case 2:
		v = cosSeries(r, work)
		v.Neg(v)
	default:
		v = sinSeries(r, work)
	}
	return new(big.Float).SetPrec(prec).Set(v)
}

// reduceQuadrant folds x into r with |r| <= π/4 plus the quadrant index of
// the nearest multiple of π/2. Working precision grows with the exponent of
// x so the subtraction keeps prec significant bits.
func reduceQuadrant(x *big.Float, prec uint) (*big.Float, int, uint) {
	work := prec + guardBits
	if e := x.MantExp(nil); e > 0 {
		work += uint(e)
	}
	halfPi := new(big.Float).SetPrec(work).Quo(pi(work), new(big.Float).SetPrec(work).SetInt64(2))

	q := new(big.Float).SetPrec(work).Quo(x, halfPi)
	q.Add(q, new(big.Float).SetPrec(work).SetFloat64(0.5))
	n, _ := q.Int(nil)
	if q.Sign() < 0 && !q.IsInt() {
		n.Sub(n, big.NewInt(1))
	}

	r := new(big.Float).SetPrec(work).SetInt(n)
	r.Mul(r, halfPi)
	r.Sub(x, r)
	quad := int(new(big.Int).Mod(n, big.NewInt(4)).Int64())
	return r, quad, work
}

func sinSeries(r *big.Float, work uint) *big.Float {
	sum := new(big.Float).SetPrec(work).Set(r)
	term := new(big.Float).SetPrec(work).Set(r)
	negSq := new(big.Float).SetPrec(work).Mul(r, r)
	negSq.Neg(negSq)
	den := new(big.Float).SetPrec(work)
	for i := int64(1); i < 4*int64(work); i++ {
		term.Mul(term, negSq)
		term.Quo(term, den.SetInt64((2*i)*(2*i+1)))
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < -int(work) {
			break
		}
	}
	return sum
}

func cosSeries(r *big.Float, work uint) *big.Float {
	sum := new(big.Float).SetPrec(work).SetInt64(1)
	term := new(big.Float).SetPrec(work).SetInt64(1)
	negSq := new(big.Float).SetPrec(work).Mul(r, r)
	negSq.Neg(negSq)
	den := new(big.Float).SetPrec(work)
	for i := int64(1); i < 4*int64(work); i++ {
		term.Mul(term, negSq)
		term.Quo(term, den.SetInt64((2*i-1)*(2*i)))
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < -int(work) {
			break
		}
	}
	return sum
}

var (
	piMu     sync.RWMutex
	piByPrec = map[uint]*big.Float{}
)

// pi returns π at the given precision via the Machin formula
// π = 16·arctan(1/5) − 4·arctan(1/239). Results are cached per precision
// and shared; callers must treat them as read-only.
func pi(prec uint) *big.Float {
	piMu.RLock()
	v, ok := piByPrec[prec]
	piMu.RUnlock()
	if ok {
		return v
	}

	work := prec + guardBits
	v = new(big.Float).SetPrec(work).SetInt64(16)
	v.Mul(v, atanRecip(5, work))
	t := new(big.Float).SetPrec(work).SetInt64(4)
	t.Mul(t, atanRecip(239, work))
	v.Sub(v, t)
	v = new(big.Float).SetPrec(prec).Set(v)

	piMu.Lock()
	piByPrec[prec] = v
	piMu.Unlock()
	return v
}

// atanRecip evaluates arctan(1/k) by its Maclaurin series.
func atanRecip(k int64, work uint) *big.Float {
	inv := new(big.Float).SetPrec(work).SetInt64(1)
	inv.Quo(inv, new(big.Float).SetPrec(work).SetInt64(k))
	negSq := new(big.Float).SetPrec(work).Mul(inv, inv)
	negSq.Neg(negSq)

	sum := new(big.Float).SetPrec(work).Set(inv)
	term := new(big.Float).SetPrec(work).Set(inv)
	contrib := new(big.Float).SetPrec(work)
	den := new(big.Float).SetPrec(work)
	for i := int64(1); i < 4*int64(work); i++ {
		term.Mul(term, negSq)
		contrib.Quo(term, den.SetInt64(2*i+1))
		sum.Add(sum, contrib)
		if contrib.Sign() == 0 || contrib.MantExp(nil) < -int(work) {
			break
		}
	}
	return sum
}
