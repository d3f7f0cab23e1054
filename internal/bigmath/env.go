package bigmath

import (
	"math/big"

	"github.com/avdva/libm/fenv"
)

// Mode returns the big.Float rounding mode of an environment rounding mode.
func Mode(m fenv.RoundingMode) big.RoundingMode {
	switch m {
	case fenv.TowardZero:
		return big.ToZero
	case fenv.Upward:
		return big.ToPositiveInf
	case fenv.Downward:
		return big.ToNegativeInf
	}
	return big.ToNearestEven
}

// Flags returns the exceptions a rounding with the given status raises.
// Underflow is raised for tiny inexact results only.
func Flags(s Status) fenv.Except {
	var ex fenv.Except
	if s.Inexact() {
		ex |= fenv.Inexact
		if s.Tiny {
			ex |= fenv.Underflow
		}
	}
	if s.Overflow {
		ex |= fenv.Overflow | fenv.Inexact
	}
	return ex
}

// Sticky appends a sticky bit below the last bit of z if inexact is set.
// z must be the truncation of some exact value v to z.Prec() bits.
// The result rounds to any format with fewer than z.Prec() bits exactly as v would.
func Sticky(z *big.Float, inexact bool) *big.Float {
	if !inexact || z.Sign() == 0 || z.IsInf() {
		return z
	}
	p := z.Prec()
	t := newFloat(2).SetInt64(int64(z.Sign()))
	t.SetMantExp(t, exponent(z)-int(p)-2)
	return newFloat(p+1).Add(z, t)
}

// RoundInt rounds x to an integer using mode and reports whether x was an integer.
// A zero result keeps the sign of x.
func RoundInt(x *big.Float, mode big.RoundingMode) (*big.Float, bool) {
	if x.IsInf() || x.IsInt() {
		return new(big.Float).Set(x), true
	}
	t, _ := x.Int(nil) // toward zero
	away := false
	switch mode {
	case big.ToNearestEven, big.ToNearestAway:
		frac := new(big.Float).Sub(x, new(big.Float).SetInt(t))
		c := frac.Abs(frac).Cmp(big.NewFloat(0.5))
		away = c > 0 || c == 0 && (mode == big.ToNearestAway || t.Bit(0) == 1)
	case big.AwayFromZero:
		away = true
	case big.ToPositiveInf:
		away = x.Sign() > 0
	case big.ToNegativeInf:
		away = x.Sign() < 0
	}
	if away {
		t.Add(t, big.NewInt(int64(x.Sign())))
	}
	p := x.Prec()
	if p < 64 {
		p = 64
	}
	z := newFloat(p).SetInt(t)
	if z.Sign() == 0 && x.Signbit() {
		z.Neg(z)
	}
	return z, false
}
