// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"

	"github.com/avdva/libm/fenv"
)

// int64 range bounds, both exact in float32 and float64.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// Trunc returns the integral part of x, keeping the sign of zero.
func Trunc[T Float](x T) T {
	f := formatOf[T]()
	_, exp, _ := fields(x)
	if exp == int(f.expMask()) {
		if IsNaN(x) {
			return quiet(x)
		}
		return x
	}
	e := exp - f.bias
	switch {
	case e < 0:
		return withSign(T(0), Signbit(x))
	case e >= int(f.fracBits):
		return x
	}
	return fromBits[T](bitsOf(x) &^ (f.fracMask() >> uint(e)))
}

func isOdd[T Float](t T) bool {
	return math.Mod(float64(t), 2) != 0
}

// roundMode rounds x to an integral value using mode.
func roundMode[T Float](x T, mode fenv.RoundingMode) T {
	t := Trunc(x)
	d := x - t
	if d == 0 || d != d {
		return t
	}
	var away bool
	switch mode {
	case fenv.Upward:
		away = x > 0
	case fenv.Downward:
		away = x < 0
	case fenv.TowardZero:
	default:
		a := T(math.Abs(float64(d)))
		away = a > 0.5 || a == 0.5 && isOdd(t)
	}
	if !away {
		return t
	}
	if x < 0 {
		return t - 1
	}
	return t + 1
}

// Rint rounds x to an integral value using env's mode.
// It raises Inexact if the result differs from x.
func Rint[T Float](env *fenv.Env, x T) T {
	if IsSignaling(x) {
		env.Raise(fenv.Invalid)
	}
	r := roundMode(x, env.Round())
	if r != x && !IsNaN(x) {
		env.Raise(fenv.Inexact)
	}
	return r
}

// Nearbyint rounds x to an integral value using env's mode.
// It never raises exceptions.
func Nearbyint[T Float](env *fenv.Env, x T) T {
	return roundMode(x, env.Round())
}

// toInt64 converts an integral r to int64 raising Invalid if it is out of range.
func toInt64[T Float](env *fenv.Env, r T) int64 {
	if !IsFinite(r) || float64(r) < minInt64Float || float64(r) >= maxInt64Float {
		env.Raise(fenv.Invalid)
		return math.MinInt64
	}
	return int64(r)
}

// Lrint rounds x to an integer using env's mode.
// NaNs, infinities and results out of the int64 range raise Invalid and return math.MinInt64.
// Otherwise Inexact is raised if the result differs from x.
func Lrint[T Float](env *fenv.Env, x T) int64 {
	r := roundMode(x, env.Round())
	i := toInt64(env, r)
	if r != x && IsFinite(x) && i != math.MinInt64 {
		env.Raise(fenv.Inexact)
	}
	return i
}

// Llrint is the same as Lrint.
func Llrint[T Float](env *fenv.Env, x T) int64 {
	return Lrint(env, x)
}

// Round rounds x to the nearest integral value, with halfway cases away from zero.
// It ignores the rounding mode.
func Round[T Float](x T) T {
	t := Trunc(x)
	if d := T(math.Abs(float64(x - t))); d >= 0.5 {
		if x < 0 {
			return t - 1
		}
		return t + 1
	}
	return t
}

// Lround is like Round, but returns an int64.
// NaNs, infinities and values out of range return math.MinInt64.
func Lround[T Float](x T) int64 {
	return toInt64(nil, Round(x))
}

// Llround is the same as Lround.
func Llround[T Float](x T) int64 {
	return Lround(x)
}

// RoundEven rounds x to the nearest integral value, with halfway cases to even.
func RoundEven[T Float](x T) T {
	return roundMode(x, fenv.ToNearest)
}

// Ceil returns the least integral value greater than or equal to x.
// Ceil(-0.5) = -0.
func Ceil[T Float](x T) T {
	t := Trunc(x)
	if x > 0 && t != x {
		return t + 1
	}
	return t
}

// Floor returns the greatest integral value less than or equal to x.
// Floor(0.5) = +0.
func Floor[T Float](x T) T {
	t := Trunc(x)
	if x < 0 && t != x {
		return t - 1
	}
	return t
}

// Modf returns the integral and fractional parts of x, both with the sign of x.
// Modf(±Inf) = ±Inf, ±0.
func Modf[T Float](x T) (i, frac T) {
	switch {
	case IsNaN(x):
		q := quiet(x)
		return q, q
	case IsInf(x, 0):
		return x, withSign(T(0), Signbit(x))
	}
	i = Trunc(x)
	frac = x - i
	if frac == 0 {
		frac = withSign(T(0), Signbit(x))
	}
	return i, frac
}
