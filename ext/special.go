// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"github.com/avdva/libm/internal/bigmath"
)

// gammaOverflow is a bound above which Γ(x) overflows the format.
var gammaOverflow = FromInt64(1800)

// Tgamma returns the gamma function of x.
// Tgamma(±0) = ±Inf, Tgamma(x) = NaN for negative integers and -Inf.
func Tgamma(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 1):
		return x
	case IsInf(x, -1):
		return NaN()
	case x.IsZero():
		return signed(Inf(1), x.Signbit())
	case x.Signbit() && isInt(x):
		return NaN()
	case cmp(x, gammaOverflow) > 0:
		return Inf(1)
	}
	lg, sign := bigmath.Lgamma(x.toBig(), workPrec+32)
	z := bigmath.Exp(lg, workPrec)
	if sign < 0 {
		z.Neg(z)
	}
	return round(nil, z)
}

// Lgamma returns the natural logarithm and the sign (-1 or +1) of Gamma(x).
// At the poles Lgamma returns +Inf: Lgamma(-0) has sign -1,
// Lgamma(+0) and Lgamma of negative integers have sign +1.
func Lgamma(x Float80) (lgamma Float80, sign int) {
	switch {
	case IsNaN(x):
		return quiet(x), 1
	case IsInf(x, 0):
		return Inf(1), 1
	case x.IsZero():
		if x.Signbit() {
			return Inf(1), -1
		}
		return Inf(1), 1
	case isInt(x):
		if x.Signbit() {
			return Inf(1), 1
		}
		if two := FromInt64(2); x.Eq(one) || x.Eq(two) {
			return Float80{}, 1
		}
	}
	lg, sign := bigmath.Lgamma(x.toBig(), workPrec)
	return round(nil, lg), sign
}

// LgammaR is the same as Lgamma.
func LgammaR(x Float80) (Float80, int) {
	return Lgamma(x)
}

// Gamma returns the logarithm of |Gamma(x)|, as the BSD gamma function does.
func Gamma(x Float80) Float80 {
	lg, _ := Lgamma(x)
	return lg
}

// GammaR is the same as Lgamma.
func GammaR(x Float80) (Float80, int) {
	return Lgamma(x)
}

// Erf returns the error function of x.
func Erf(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return signed(one, x.Signbit())
	}
	return eval(bigmath.Erf, x)
}

// Erfc returns the complementary error function of x.
func Erfc(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 1):
		return Float80{}
	case IsInf(x, -1):
		return FromInt64(2)
	}
	return eval(bigmath.Erfc, x)
}

// J0 returns the order-zero Bessel function of the first kind.
func J0(x Float80) Float80 {
	return Jn(0, x)
}

// J1 returns the order-one Bessel function of the first kind.
func J1(x Float80) Float80 {
	return Jn(1, x)
}

// Jn returns the order-n Bessel function of the first kind.
func Jn(n int, x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	// J(-n, x) = (-1)^n J(n, x), J(n, -x) = (-1)^n J(n, x)
	odd := n&1 != 0
	neg := odd && (n < 0) != x.Signbit()
	if n < 0 {
		n = -n
	}
	switch {
	case IsInf(x, 0):
		return signed(Float80{}, neg)
	case x.IsZero():
		if n == 0 {
			return one
		}
		return signed(Float80{}, neg)
	}
	z := bigmath.Jn(n, x.Abs().toBig(), workPrec)
	if neg {
		z.Neg(z)
	}
	return round(nil, z)
}

// Y0 returns the order-zero Bessel function of the second kind.
func Y0(x Float80) Float80 {
	return Yn(0, x)
}

// Y1 returns the order-one Bessel function of the second kind.
func Y1(x Float80) Float80 {
	return Yn(1, x)
}

// Yn returns the order-n Bessel function of the second kind.
// Yn(n, 0) = -Inf, Yn(n, x < 0) = NaN.
func Yn(n int, x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	// Y(-n, x) = (-1)^n Y(n, x)
	neg := n < 0 && n&1 != 0
	if n < 0 {
		n = -n
	}
	switch {
	case x.IsZero():
		return signed(Inf(1), !neg)
	case x.Signbit():
		return NaN()
	case IsInf(x, 1):
		return Float80{}
	}
	z := bigmath.Yn(n, x.toBig(), workPrec)
	if neg {
		z.Neg(z)
	}
	return round(nil, z)
}
