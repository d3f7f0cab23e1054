// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"math"
	"math/big"

	"github.com/avdva/libm/internal/bigmath"
)

// workPrec is the precision transcendental functions are evaluated with
// before the final rounding to nearest.
const workPrec = 2 * mantBits

var one = Float80{se: expBias, m: intBit}

func eval(f func(*big.Float, uint) *big.Float, x Float80) Float80 {
	return round(nil, f(x.toBig(), workPrec))
}

// piTimes returns ±π*num/den.
func piTimes(num, den int64, neg bool) Float80 {
	z := bigmath.Pi(workPrec)
	z.Mul(z, big.NewFloat(float64(num)))
	z.Quo(z, big.NewFloat(float64(den)))
	if neg {
		z.Neg(z)
	}
	return round(nil, z)
}

// large reports whether |x| >= 2^15, where exp(x) is out of range.
func (x Float80) large() bool {
	return x.biased() >= expBias+15
}

// Sin returns the sine of x.
func Sin(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return NaN()
	}
	return eval(bigmath.Sin, x)
}

// Cos returns the cosine of x.
func Cos(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return NaN()
	}
	return eval(bigmath.Cos, x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x Float80) (sin, cos Float80) {
	switch {
	case IsNaN(x):
		return quiet(x), quiet(x)
	case IsInf(x, 0):
		return NaN(), NaN()
	}
	s, c := bigmath.SinCos(x.toBig(), workPrec)
	return round(nil, s), round(nil, c)
}

// Tan returns the tangent of x.
func Tan(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return NaN()
	}
	return eval(bigmath.Tan, x)
}

// Asin returns the arcsine of x, NaN if |x| > 1.
func Asin(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case cmp(x.Abs(), one) > 0:
		return NaN()
	}
	return eval(bigmath.Asin, x)
}

// Acos returns the arccosine of x, NaN if |x| > 1.
func Acos(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case cmp(x.Abs(), one) > 0:
		return NaN()
	}
	return eval(bigmath.Acos, x)
}

// Atan returns the arctangent of x.
func Atan(x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	return eval(bigmath.Atan, x)
}

// Atan2 returns the arctangent of y/x, using the signs of both to determine the quadrant.
func Atan2(y, x Float80) Float80 {
	if r, ok := nanResult(nil, y, x); ok {
		return r
	}
	neg := y.Signbit()
	switch {
	case y.IsZero():
		if x.Signbit() {
			return piTimes(1, 1, neg)
		}
		return y
	case IsInf(x, 1):
		if IsInf(y, 0) {
			return piTimes(1, 4, neg)
		}
		return signed(Float80{}, neg)
	case IsInf(x, -1):
		if IsInf(y, 0) {
			return piTimes(3, 4, neg)
		}
		return piTimes(1, 1, neg)
	case IsInf(y, 0):
		return piTimes(1, 2, neg)
	}
	return round(nil, bigmath.Atan2(y.toBig(), x.toBig(), workPrec))
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return x
	case x.large():
		return signed(Inf(1), x.Signbit())
	}
	return eval(bigmath.Sinh, x)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0), x.large():
		return Inf(1)
	}
	return eval(bigmath.Cosh, x)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return signed(one, x.Signbit())
	}
	return eval(bigmath.Tanh, x)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 0):
		return x
	}
	return eval(bigmath.Asinh, x)
}

// Acosh returns the inverse hyperbolic cosine of x, NaN if x < 1.
func Acosh(x Float80) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case cmp(x, one) < 0:
		return NaN()
	case IsInf(x, 1):
		return x
	}
	return eval(bigmath.Acosh, x)
}

// Atanh returns the inverse hyperbolic tangent of x.
// Atanh(±1) = ±Inf, Atanh(x) = NaN if |x| > 1.
func Atanh(x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	switch c := cmp(x.Abs(), one); {
	case c > 0:
		return NaN()
	case c == 0:
		return signed(Inf(1), x.Signbit())
	}
	return eval(bigmath.Atanh, x)
}

// expLike handles the special values of exponential functions:
// they overflow for large positive arguments and round to low for large negative ones.
func expLike(x, low Float80, f func(*big.Float, uint) *big.Float) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case IsInf(x, 1):
		return x
	case IsInf(x, -1):
		return low
	case x.large():
		if x.Signbit() {
			return low
		}
		return Inf(1)
	}
	return eval(f, x)
}

// Exp returns e^x.
func Exp(x Float80) Float80 {
	return expLike(x, Float80{}, bigmath.Exp)
}

// Exp2 returns 2^x.
func Exp2(x Float80) Float80 {
	return expLike(x, Float80{}, bigmath.Exp2)
}

// Exp10 returns 10^x.
func Exp10(x Float80) Float80 {
	return expLike(x, Float80{}, bigmath.Exp10)
}

// Expm1 returns e^x - 1, accurate for small x.
func Expm1(x Float80) Float80 {
	return expLike(x, one.Neg(), bigmath.Expm1)
}

// logLike handles the special values of logarithms of x > 0.
func logLike(x Float80, f func(*big.Float, uint) *big.Float) Float80 {
	switch {
	case IsNaN(x):
		return quiet(x)
	case x.IsZero():
		return Inf(-1)
	case x.Signbit():
		return NaN()
	case IsInf(x, 1):
		return x
	}
	return eval(f, x)
}

// Log returns the natural logarithm of x.
// Log(±0) = -Inf, Log(x < 0) = NaN.
func Log(x Float80) Float80 {
	return logLike(x, bigmath.Log)
}

// Log2 returns the binary logarithm of x.
func Log2(x Float80) Float80 {
	return logLike(x, bigmath.Log2)
}

// Log10 returns the decimal logarithm of x.
func Log10(x Float80) Float80 {
	return logLike(x, bigmath.Log10)
}

// Log1p returns the natural logarithm of 1+x, accurate for small x.
// Log1p(-1) = -Inf, Log1p(x < -1) = NaN.
func Log1p(x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	switch c := cmp(x, one.Neg()); {
	case c == 0:
		return Inf(-1)
	case c < 0:
		return NaN()
	case IsInf(x, 1), x.IsZero():
		return x
	}
	return eval(bigmath.Log1p, x)
}

// Pow returns x^y, with the special cases of C99 Annex F:
//	Pow(1, y) = 1 for any y, Pow(x, ±0) = 1 for any x
//	Pow(-1, ±Inf) = 1
//	Pow(±0, y) = ±Inf for an odd integer y < 0, +Inf for other y < 0
//	Pow(±0, y) = ±0 for an odd integer y > 0, +0 for other y > 0
//	Pow(x, y) = NaN for a finite x < 0 and a finite non-integer y
func Pow(x, y Float80) Float80 {
	if x.Eq(one) || y.IsZero() {
		return one
	}
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	yOdd := IsFinite(y) && isOddInt(y)
	switch {
	case x.IsZero():
		if y.Signbit() {
			return signed(Inf(1), yOdd && x.Signbit())
		}
		return signed(Float80{}, yOdd && x.Signbit())
	case IsInf(y, 0):
		c := cmp(x.Abs(), one)
		switch {
		case c == 0:
			return one
		case (c > 0) != y.Signbit():
			return Inf(1)
		}
		return Float80{}
	case IsInf(x, 0):
		neg := x.Signbit() && yOdd
		if y.Signbit() {
			return signed(Float80{}, neg)
		}
		return signed(Inf(1), neg)
	case x.Signbit() && !isInt(y):
		return NaN()
	}
	neg := x.Signbit() && yOdd
	// out of range results are detected in advance to keep the evaluation cheap.
	l2 := float64(Ilogb(x)) + math.Log2(Significand(x.Abs()).Float64())
	switch est := y.Float64() * l2; {
	case est > 2*(maxExp+1):
		return signed(Inf(1), neg)
	case est < 2*(minExp-mantBits):
		return signed(Float80{}, neg)
	}
	z := bigmath.Pow(x.toBig(), y.toBig(), workPrec)
	if neg {
		z.Neg(z)
	}
	return round(nil, z)
}

// Cbrt returns the cube root of x.
func Cbrt(x Float80) Float80 {
	if IsNaN(x) {
		return quiet(x)
	}
	return eval(bigmath.Cbrt, x)
}

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
// Hypot(±Inf, y) = +Inf even if y is NaN.
func Hypot(x, y Float80) Float80 {
	if IsInf(x, 0) || IsInf(y, 0) {
		return Inf(1)
	}
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	return round(nil, bigmath.Hypot(x.toBig(), y.toBig(), workPrec))
}
