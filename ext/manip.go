// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/avdva/libm/internal/mathutil"
)

const (
	// ILogB0 is returned by Ilogb for zeros.
	ILogB0 = math.MinInt32
	// ILogBNaN is returned by Ilogb for NaNs.
	ILogBNaN = math.MinInt32

	// maxScale bounds the exponent adjustments of Scalbn.
	// Any larger shift overflows or underflows every value.
	maxScale = 1 << 16
)

// normalized returns the significand with the integer bit set
// and the unbiased exponent of a finite non-zero x: |x| = m/2^63 * 2^e.
func (x Float80) normalized() (m uint64, e int) {
	m, e = x.parts()
	lz := bits.LeadingZeros64(m)
	return m << lz, e + 63 - lz
}

// Frexp breaks x into a fraction in [0.5, 1) and a power of two, so that x = frac * 2^exp.
// Zeros, infinities and NaNs are returned with exp 0.
func Frexp(x Float80) (frac Float80, exp int) {
	if !IsFinite(x) || x.IsZero() {
		if IsNaN(x) {
			x = quiet(x)
		}
		return x, 0
	}
	m, e := x.normalized()
	return Float80{se: x.se&signBit | (expBias - 1), m: m}, e + 1
}

// Ldexp returns frac * 2^exp.
func Ldexp(frac Float80, exp int) Float80 {
	return Scalbn(frac, exp)
}

// Scalbn returns x * 2^n rounded to nearest.
// Results out of range overflow to a signed infinity or underflow to a signed zero.
func Scalbn(x Float80, n int) Float80 {
	if !IsFinite(x) || x.IsZero() {
		if IsNaN(x) {
			return quiet(x)
		}
		return x
	}
	n = mathutil.ClampInt(n, -maxScale, maxScale)
	z := x.toBig()
	return round(nil, z.SetMantExp(z, n))
}

// Scalbln is like Scalbn with an int64 exponent.
func Scalbln(x Float80, n int64) Float80 {
	if n > maxScale {
		n = maxScale
	} else if n < -maxScale {
		n = -maxScale
	}
	return Scalbn(x, int(n))
}

// Scalb returns x * 2^n for an integral n.
// A non-integral n gives NaN.
func Scalb(x, n Float80) Float80 {
	if r, ok := nanResult(nil, x, n); ok {
		return r
	}
	switch {
	case IsInf(n, 1):
		if x.IsZero() {
			return NaN()
		}
		return signed(Inf(1), x.Signbit())
	case IsInf(n, -1):
		if IsInf(x, 0) {
			return NaN()
		}
		return signed(Float80{}, x.Signbit())
	case !isInt(n):
		return NaN()
	}
	i, _ := n.toBig().Int64()
	return Scalbln(x, i)
}

// Ilogb returns the unbiased exponent of x.
// Ilogb(±0) = ILogB0, Ilogb(NaN) = ILogBNaN, Ilogb(±Inf) = math.MaxInt32.
func Ilogb(x Float80) int {
	switch Classify(x) {
	case ClassZero:
		return ILogB0
	case ClassNaN:
		return ILogBNaN
	case ClassInfinite:
		return math.MaxInt32
	}
	_, e := x.normalized()
	return e
}

// Logb returns the unbiased exponent of x as a floating-point value.
// Logb(±0) = -Inf, Logb(±Inf) = +Inf.
func Logb(x Float80) Float80 {
	switch Classify(x) {
	case ClassZero:
		return Inf(-1)
	case ClassNaN:
		return quiet(x)
	case ClassInfinite:
		return Inf(1)
	}
	return FromInt64(int64(Ilogb(x)))
}

// Significand returns the mantissa of x in [1, 2).
func Significand(x Float80) Float80 {
	if !IsFinite(x) || x.IsZero() {
		return Scalbn(x, 0)
	}
	return Scalbn(x, -Ilogb(x))
}

// Nextafter returns the next representable value after x towards y.
func Nextafter(x, y Float80) Float80 {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	switch c := cmp(x, y); {
	case c == 0:
		return y
	case x.IsZero():
		return signed(SmallestNonzero, c > 0)
	case (c < 0) != x.Signbit():
		return nextUp(x)
	default:
		return nextDown(x)
	}
}

// Nexttoward is the same as Nextafter.
func Nexttoward(x, y Float80) Float80 {
	return Nextafter(x, y)
}

// nextUp increases the magnitude of a finite non-zero x by one ulp.
func nextUp(x Float80) Float80 {
	e := x.biased()
	if e == 0 && x.m&intBit != 0 {
		e = 1 // pseudo-denormal
	}
	m := x.m + 1
	switch {
	case m == 0:
		m = intBit
		e++
	case e == 0 && m == intBit:
		e = 1
	}
	if e == expMask {
		m = intBit
	}
	return Float80{se: x.se&signBit | uint16(e), m: m}
}

// nextDown decreases the magnitude of a finite non-zero x by one ulp.
func nextDown(x Float80) Float80 {
	e := x.biased()
	if e == expMask {
		return signed(MaxFloat80, x.Signbit())
	}
	m := x.m
	if e == 0 && m&intBit != 0 {
		e = 1 // pseudo-denormal
	}
	switch {
	case e > 0 && m == intBit:
		if e == 1 {
			e, m = 0, intBit-1
		} else {
			e, m = e-1, math.MaxUint64
		}
	default:
		m--
	}
	return Float80{se: x.se&signBit | uint16(e), m: m}
}

// Copysign returns x with the sign of y.
func Copysign(x, y Float80) Float80 {
	return signed(x, y.Signbit())
}

// Fabs returns |x|.
func Fabs(x Float80) Float80 {
	return x.Abs()
}

// Fmax returns the larger of x and y.
// A NaN argument is ignored if the other one is a number, +0 is larger than -0.
func Fmax(x, y Float80) Float80 {
	switch {
	case IsNaN(x):
		if IsNaN(y) {
			return quiet(x)
		}
		return y
	case IsNaN(y):
		return x
	case x.IsZero() && y.IsZero():
		if x.Signbit() {
			return y
		}
		return x
	case cmp(x, y) >= 0:
		return x
	}
	return y
}

// Fmin returns the smaller of x and y.
// A NaN argument is ignored if the other one is a number, -0 is smaller than +0.
func Fmin(x, y Float80) Float80 {
	switch {
	case IsNaN(x):
		if IsNaN(y) {
			return quiet(x)
		}
		return y
	case IsNaN(y):
		return x
	case x.IsZero() && y.IsZero():
		if x.Signbit() {
			return x
		}
		return y
	case cmp(x, y) <= 0:
		return x
	}
	return y
}

// Fdim returns the positive difference x - y if x > y, +0 otherwise.
func Fdim(x, y Float80) Float80 {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	if cmp(x, y) <= 0 {
		return Float80{}
	}
	return Sub(nil, x, y)
}

// Nan returns a quiet NaN with a payload parsed from tag.
// The tag is a decimal, octal or hex number as accepted by strconv.ParseUint with base 0.
// An empty or invalid tag gives the default NaN.
func Nan(tag string) Float80 {
	p, err := strconv.ParseUint(tag, 0, 64)
	if err != nil {
		return NaN()
	}
	return Float80{se: expMask, m: intBit | quietBit | p&(quietBit-1)}
}
