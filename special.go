// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
)

// Tgamma returns the Gamma function of x.
// Tgamma(±0) = ±Inf, Tgamma(-Inf) = NaN, Tgamma(x) = NaN for a negative integer x.
func Tgamma[T Float](x T) T {
	return T(math.Gamma(float64(x)))
}

// Lgamma returns the natural logarithm and sign (-1 or +1) of Gamma(x).
//
//	Lgamma(+0) = +Inf, 1
//	Lgamma(-0) = +Inf, -1
//	Lgamma(±Inf) = +Inf, 1
//	Lgamma(x) = +Inf, 1 for a negative integer x
func Lgamma[T Float](x T) (lg T, sign int) {
	l, s := lgamma(float64(x))
	return T(l), s
}

func lgamma(x float64) (float64, int) {
	switch {
	case x == 0:
		if math.Signbit(x) {
			return math.Inf(1), -1
		}
		return math.Inf(1), 1
	case math.IsInf(x, 0):
		return math.Inf(1), 1
	}
	return math.Lgamma(x)
}

// LgammaR is the same as Lgamma.
func LgammaR[T Float](x T) (lgamma T, sign int) {
	return Lgamma(x)
}

// Gamma returns the natural logarithm of |Gamma(x)|.
// It is the traditional alias of Lgamma without the sign.
func Gamma[T Float](x T) T {
	l, _ := Lgamma(x)
	return l
}

// GammaR is the same as Lgamma.
func GammaR[T Float](x T) (lgamma T, sign int) {
	return Lgamma(x)
}

// Erf returns the error function of x.
func Erf[T Float](x T) T {
	return T(math.Erf(float64(x)))
}

// Erfc returns the complementary error function of x.
func Erfc[T Float](x T) T {
	return T(math.Erfc(float64(x)))
}

// J0 returns the order-zero Bessel function of the first kind.
func J0[T Float](x T) T {
	return T(math.J0(float64(x)))
}

// J1 returns the order-one Bessel function of the first kind.
func J1[T Float](x T) T {
	return T(math.J1(float64(x)))
}

// Jn returns the order-n Bessel function of the first kind.
func Jn[T Float](n int, x T) T {
	return T(math.Jn(n, float64(x)))
}

// Y0 returns the order-zero Bessel function of the second kind.
// Y0(0) = -Inf, Y0(x < 0) = NaN.
func Y0[T Float](x T) T {
	return T(math.Y0(float64(x)))
}

// Y1 returns the order-one Bessel function of the second kind.
func Y1[T Float](x T) T {
	return T(math.Y1(float64(x)))
}

// Yn returns the order-n Bessel function of the second kind.
// Yn(n, 0) = -Inf for n >= 0 or n even, +Inf for a negative odd n. Yn(n, x < 0) = NaN.
func Yn[T Float](n int, x T) T {
	return T(math.Yn(n, float64(x)))
}
