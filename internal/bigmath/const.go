// Package bigmath evaluates elementary and special functions on math/big floats.
//
// Every function takes the target precision in bits and returns a new value
// rounded to that precision. Internally the work is done with guard bits,
// so the results are accurate to about one unit in the last place of prec.
// The arguments are never modified.
package bigmath

import (
	"math/big"
	"sync"
)

const (
	// guard is the number of extra bits used by intermediate computations.
	guard = 32

	// euler is the Euler-Mascheroni constant, good for about 230 bits.
	euler = "0.5772156649015328606065120900824024310421593359399235988057672348848677"
	// EulerPrec is the maximum precision of Euler.
	EulerPrec = 230
)

type constant struct {
	mu      sync.Mutex
	prec    uint
	v       *big.Float
	compute func(prec uint) *big.Float
}

func (c *constant) get(prec uint) *big.Float {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.v == nil || c.prec < prec {
		// grow in steps to avoid recomputing for every slightly larger request.
		p := prec + prec/2 + guard
		c.v, c.prec = c.compute(p), p
	}
	return newFloat(prec).Set(c.v)
}

var (
	piConst  = constant{compute: computePi}
	ln2Const = constant{compute: computeLn2}
)

// Pi returns π rounded to prec bits.
func Pi(prec uint) *big.Float {
	return piConst.get(prec)
}

// Ln2 returns ln(2) rounded to prec bits.
func Ln2(prec uint) *big.Float {
	return ln2Const.get(prec)
}

// Euler returns the Euler-Mascheroni constant γ rounded to min(prec, EulerPrec) bits.
func Euler(prec uint) *big.Float {
	if prec > EulerPrec {
		prec = EulerPrec
	}
	g, _, err := big.ParseFloat(euler, 10, prec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return g
}

// computePi uses Machin's formula: π = 16·atan(1/5) - 4·atan(1/239).
func computePi(prec uint) *big.Float {
	wp := prec + guard
	a := arctanInv(5, wp, true)
	a.SetMantExp(a, 4)
	b := arctanInv(239, wp, true)
	b.SetMantExp(b, 2)
	return newFloat(prec).Sub(a, b)
}

// computeLn2 uses ln(2) = 2·atanh(1/3).
func computeLn2(prec uint) *big.Float {
	wp := prec + guard
	a := arctanInv(3, wp, false)
	a.SetMantExp(a, 1)
	return newFloat(prec).Set(a)
}

// arctanInv computes atan(1/n), or atanh(1/n) if alternating is false.
func arctanInv(n int64, prec uint, alternating bool) *big.Float {
	pw := newFloat(prec).SetInt64(1)
	pw.Quo(pw, intFloat(n, prec))
	n2 := intFloat(n*n, prec)
	sum := newFloat(prec).Set(pw)
	term := newFloat(prec)
	for k := int64(1); ; k++ {
		pw.Quo(pw, n2)
		term.Quo(pw, intFloat(2*k+1, prec))
		if alternating && k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if negligible(term, sum, prec) {
			return sum
		}
	}
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func intFloat(v int64, prec uint) *big.Float {
	return newFloat(prec).SetInt64(v)
}

// exponent returns e such that x = m·2^e, 0.5 <= |m| < 1.
func exponent(x *big.Float) int {
	return x.MantExp(nil)
}

// negligible reports whether t does not affect sum at prec bits.
func negligible(t, sum *big.Float, prec uint) bool {
	if t.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}
	return exponent(t) < exponent(sum)-int(prec)-1
}

// nearestInt rounds x to the nearest integer, ties away from zero.
func nearestInt(x *big.Float) *big.Int {
	h := newFloat(x.Prec() + 2).SetFloat64(0.5)
	if x.Sign() < 0 {
		h.Neg(h)
	}
	h.Add(h, x)
	i, _ := h.Int(nil)
	return i
}
