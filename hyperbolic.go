// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
)

// ln(2*MaxFloat64), the last argument of Sinh and Cosh that does not overflow.
const hypOverflow = 710.4758600739439

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T {
	return T(sinh(float64(x)))
}

func sinh(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	h := math.Copysign(0.5, x)
	ax := math.Abs(x)
	switch {
	case ax < 22:
		if ax < 0x1p-28 {
			return x
		}
		t := expm1(ax)
		if ax < 1 {
			return h * (2*t - t*t/(t+1))
		}
		return h * (t + t/(t+1))
	case ax < expOverflow:
		return h * exp(ax)
	case ax <= hypOverflow:
		w := exp(0.5 * ax)
		return h * w * w
	}
	return math.Copysign(math.Inf(1), x)
}

// Cosh returns the hyperbolic cosine of x.
// Cosh(±0) = 1, Cosh(±Inf) = +Inf.
func Cosh[T Float](x T) T {
	return T(cosh(float64(x)))
}

func cosh(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	switch {
	case ax < 0.5*math.Ln2:
		t := expm1(ax)
		w := 1 + t
		if ax < 0x1p-55 {
			return w
		}
		return 1 + (t*t)/(w+w)
	case ax < 22:
		t := exp(ax)
		return 0.5*t + 0.5/t
	case ax < expOverflow:
		return 0.5 * exp(ax)
	case ax <= hypOverflow:
		w := exp(0.5 * ax)
		return 0.5 * w * w
	}
	return math.Inf(1)
}

// Tanh returns the hyperbolic tangent of x.
// Tanh(±Inf) = ±1.
func Tanh[T Float](x T) T {
	return T(tanh(float64(x)))
}

func tanh(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	z := 1.0
	switch {
	case ax < 0x1p-55:
		return x
	case ax >= 22:
	case ax >= 1:
		t := expm1(2 * ax)
		z = 1 - 2/(t+2)
	default:
		t := expm1(-2 * ax)
		z = -t / (t + 2)
	}
	return math.Copysign(z, x)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Float](x T) T {
	return T(asinh(float64(x)))
}

func asinh(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	ax := math.Abs(x)
	var w float64
	switch {
	case ax < 0x1p-28:
		return x
	case ax > 0x1p28:
		w = log(ax) + math.Ln2
	case ax > 2:
		w = log(2*ax + 1/(math.Sqrt(ax*ax+1)+ax))
	default:
		t := ax * ax
		w = log1p(ax + t/(1+math.Sqrt(1+t)))
	}
	return math.Copysign(w, x)
}

// Acosh returns the inverse hyperbolic cosine of x.
// Acosh(1) = +0, Acosh(x < 1) = NaN.
func Acosh[T Float](x T) T {
	return T(acosh(float64(x)))
}

func acosh(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < 1:
		return math.NaN()
	case x == 1:
		return 0
	case x >= 0x1p28:
		if math.IsInf(x, 1) {
			return x
		}
		return log(x) + math.Ln2
	case x > 2:
		return log(2*x - 1/(x+math.Sqrt(x*x-1)))
	}
	t := x - 1
	return log1p(t + math.Sqrt(2*t+t*t))
}

// Atanh returns the inverse hyperbolic tangent of x.
// Atanh(±1) = ±Inf, Atanh(|x| > 1) = NaN.
func Atanh[T Float](x T) T {
	return T(atanh(float64(x)))
}

func atanh(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	var t float64
	switch {
	case ax > 1:
		return math.NaN()
	case ax == 1:
		return math.Copysign(math.Inf(1), x)
	case ax < 0x1p-28:
		return x
	case ax < 0.5:
		t = ax + ax
		t = 0.5 * log1p(t+t*ax/(1-ax))
	default:
		t = 0.5 * log1p((ax+ax)/(1-ax))
	}
	return math.Copysign(t, x)
}
