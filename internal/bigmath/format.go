package bigmath

import (
	"math/big"
)

// Format describes a binary floating-point format.
type Format struct {
	// Prec is the number of significand bits, including the leading one.
	Prec uint
	// MinExp is the exponent of the smallest normal number, 2^MinExp.
	MinExp int
	// MaxExp is the exponent of the largest finite binade, [2^MaxExp, 2^(MaxExp+1)).
	MaxExp int
}

var (
	// Binary32 is the IEEE-754 single precision format.
	Binary32 = Format{Prec: 24, MinExp: -126, MaxExp: 127}
	// Binary64 is the IEEE-754 double precision format.
	Binary64 = Format{Prec: 53, MinExp: -1022, MaxExp: 1023}
	// X87 is the x87 80-bit extended precision format.
	X87 = Format{Prec: 64, MinExp: -16382, MaxExp: 16383}
)

// Max returns the largest finite value of the format.
func (f Format) Max() *big.Float {
	// (2 - 2^(1-prec)) · 2^MaxExp
	m := newFloat(f.Prec).SetInt64(1)
	m.SetMantExp(m, int(f.Prec))
	m.Sub(m, intFloat(1, f.Prec))
	return m.SetMantExp(m, f.MaxExp-int(f.Prec)+1)
}

// SmallestNonzero returns the smallest positive subnormal value.
func (f Format) SmallestNonzero() *big.Float {
	m := newFloat(f.Prec).SetInt64(1)
	return m.SetMantExp(m, f.MinExp-int(f.Prec)+1)
}

// Status describes the side effects of rounding to a format.
type Status struct {
	Acc big.Accuracy
	// Overflow is set if the rounded result exceeded the largest finite value.
	Overflow bool
	// Tiny is set if the result is below the normal range before rounding.
	Tiny bool
}

// Inexact reports whether the rounded value differs from the argument.
func (s Status) Inexact() bool {
	return s.Acc != big.Exact
}

// Round rounds x to the format using mode, including gradual underflow
// and overflow to infinity or to the largest finite value, depending on the mode.
// Infinities and zeros are returned unchanged.
func Round(x *big.Float, f Format, mode big.RoundingMode) (*big.Float, Status) {
	if x.Sign() == 0 || x.IsInf() {
		return new(big.Float).SetPrec(f.Prec).Set(x), Status{Acc: big.Exact}
	}
	neg := x.Signbit()
	e := exponent(x) - 1 // x = 1.m × 2^e
	var status Status
	if e < f.MinExp {
		status.Tiny = true
		p := int(f.Prec) - (f.MinExp - e)
		if p <= 0 {
			return roundBelowSubnormal(x, f, mode, p)
		}
		z := new(big.Float).SetMode(mode).SetPrec(uint(p)).Set(x)
		status.Acc = z.Acc()
		return z.SetPrec(f.Prec).SetMode(big.ToNearestEven), status
	}
	z := new(big.Float).SetMode(mode).SetPrec(f.Prec).Set(x)
	status.Acc = z.Acc()
	z.SetMode(big.ToNearestEven)
	if exponent(z)-1 > f.MaxExp {
		status.Overflow = true
		if overflowsToInf(neg, mode) {
			z.SetInf(neg)
		} else {
			z = f.Max()
			if neg {
				z.Neg(z)
			}
		}
		status.Acc = big.Accuracy(z.Cmp(x)) // a value outside the format is never exact
		if status.Acc == 0 {
			status.Acc = big.Below
		}
	}
	return z, status
}

// roundBelowSubnormal handles values with less than one bit of subnormal precision.
// They round to zero or to the smallest subnormal.
func roundBelowSubnormal(x *big.Float, f Format, mode big.RoundingMode, p int) (*big.Float, Status) {
	neg := x.Signbit()
	minSub := f.SmallestNonzero()
	up := false
	switch mode {
	case big.ToNearestEven, big.ToNearestAway:
		if p == 0 {
			// x is in [minSub/2, minSub): a tie goes to even (zero) unless away.
			half := new(big.Float).SetMantExp(minSub, -1)
			c := new(big.Float).Abs(x).Cmp(half)
			up = c > 0 || c == 0 && mode == big.ToNearestAway
		}
	case big.AwayFromZero:
		up = true
	case big.ToPositiveInf:
		up = !neg
	case big.ToNegativeInf:
		up = neg
	}
	z := new(big.Float).SetPrec(f.Prec)
	if up {
		z.Set(minSub)
	}
	if neg {
		z.Neg(z)
	}
	acc := big.Below
	if z.Cmp(x) > 0 {
		acc = big.Above
	}
	return z, Status{Acc: acc, Tiny: true}
}

func overflowsToInf(neg bool, mode big.RoundingMode) bool {
	switch mode {
	case big.ToZero:
		return false
	case big.ToPositiveInf:
		return !neg
	case big.ToNegativeInf:
		return neg
	}
	return true
}
