// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/avdva/libm/ext"
	"github.com/avdva/libm/internal/mathutil"
)

const (
	// ILogB0 is returned by Ilogb for zeros.
	ILogB0 = ext.ILogB0
	// ILogBNaN is returned by Ilogb for NaNs.
	ILogBNaN = ext.ILogBNaN

	// maxScale bounds the exponent adjustments of Scalbln.
	maxScale = 1 << 16
)

// Frexp breaks x into a fraction in [0.5, 1) and a power of two, so that x = frac * 2^exp.
// Zeros, infinities and NaNs are returned with exp 0.
func Frexp[T Float](x T) (frac T, exp int) {
	switch Classify(x) {
	case ClassNaN:
		return quiet(x), 0
	case ClassZero, ClassInfinite:
		return x, 0
	}
	exp = Ilogb(x) + 1
	return Scalbn(x, -exp), exp
}

// Ldexp returns frac * 2^exp.
func Ldexp[T Float](frac T, exp int) T {
	return Scalbn(frac, exp)
}

// Scalbn returns x * 2^n rounded once to nearest.
// Results out of range overflow to a signed infinity or underflow to a signed zero.
func Scalbn[T Float](x T, n int) T {
	if IsNaN(x) {
		return quiet(x)
	}
	if is32[T]() {
		// every float32 scaled by 2^±400 is exact in float64.
		return T(scalbn64(float64(x), mathutil.ClampInt(n, -400, 400)))
	}
	return T(scalbn64(float64(x), n))
}

func scalbn64(y float64, n int) float64 {
	switch {
	case n > 1023:
		y *= 0x1p1023
		n -= 1023
		if n > 1023 {
			y *= 0x1p1023
			n -= 1023
			if n > 1023 {
				n = 1023
			}
		}
	case n < -1022:
		// scale in two steps keeping 53 bits above the subnormal range,
		// so that the result is rounded only once.
		y *= 0x1p-1022 * 0x1p53
		n += 1022 - 53
		if n < -1022 {
			y *= 0x1p-1022 * 0x1p53
			n += 1022 - 53
			if n < -1022 {
				n = -1022
			}
		}
	}
	return y * math.Float64frombits(uint64(0x3ff+n)<<52)
}

// Scalbln is like Scalbn with an int64 exponent.
func Scalbln[T Float](x T, n int64) T {
	if n > maxScale {
		n = maxScale
	} else if n < -maxScale {
		n = -maxScale
	}
	return Scalbn(x, int(n))
}

// Scalb returns x * 2^n for an integral n.
// A non-integral n gives NaN.
func Scalb[T Float](x, n T) T {
	if r, ok := nanResult(nil, x, n); ok {
		return r
	}
	switch {
	case IsInf(n, 1):
		if x == 0 {
			return nan[T]()
		}
		return withSign(inf[T](1), Signbit(x))
	case IsInf(n, -1):
		if IsInf(x, 0) {
			return nan[T]()
		}
		return withSign(T(0), Signbit(x))
	case Trunc(n) != n:
		return nan[T]()
	}
	if n > maxScale {
		n = maxScale
	} else if n < -maxScale {
		n = -maxScale
	}
	return Scalbn(x, int(n))
}

// Ilogb returns the unbiased exponent of x.
// Ilogb(±0) = ILogB0, Ilogb(NaN) = ILogBNaN, Ilogb(±Inf) = math.MaxInt32.
func Ilogb[T Float](x T) int {
	f := formatOf[T]()
	switch Classify(x) {
	case ClassZero:
		return ILogB0
	case ClassNaN:
		return ILogBNaN
	case ClassInfinite:
		return math.MaxInt32
	case ClassSubnormal:
		_, _, frac := fields(x)
		return f.minExp() - int(f.fracBits) + bits.Len64(frac) - 1
	}
	_, exp, _ := fields(x)
	return exp - f.bias
}

// Logb returns the unbiased exponent of x as a floating-point value.
// Logb(±0) = -Inf, Logb(±Inf) = +Inf.
func Logb[T Float](x T) T {
	switch Classify(x) {
	case ClassZero:
		return inf[T](-1)
	case ClassNaN:
		return quiet(x)
	case ClassInfinite:
		return inf[T](1)
	}
	return T(Ilogb(x))
}

// Significand returns the mantissa of x in [1, 2).
func Significand[T Float](x T) T {
	switch Classify(x) {
	case ClassNaN:
		return quiet(x)
	case ClassZero, ClassInfinite:
		return x
	}
	return Scalbn(x, -Ilogb(x))
}

// Nextafter returns the next representable value after x towards y.
func Nextafter[T Float](x, y T) T {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	switch {
	case x == y:
		return y
	case x == 0:
		return withSign(fromBits[T](1), y < 0)
	case (y > x) == (x > 0):
		return fromBits[T](bitsOf(x) + 1)
	}
	return fromBits[T](bitsOf(x) - 1)
}

// Nexttoward returns the next representable value after x towards the extended value y.
func Nexttoward[T Float](x T, y ext.Float80) T {
	if IsNaN(x) {
		return quiet(x)
	}
	if ext.IsNaN(y) {
		return T(y.Float64())
	}
	xe := ext.FromFloat64(float64(x))
	switch c := xe.Cmp(y); {
	case c == 0:
		return withSign(x, y.Signbit())
	case x == 0:
		return withSign(fromBits[T](1), c > 0)
	case (c < 0) == (x > 0):
		return fromBits[T](bitsOf(x) + 1)
	}
	return fromBits[T](bitsOf(x) - 1)
}

// Copysign returns x with the sign of y.
func Copysign[T Float](x, y T) T {
	return withSign(x, Signbit(y))
}

// Fabs returns |x|.
func Fabs[T Float](x T) T {
	return withSign(x, false)
}

// Fmax returns the larger of x and y.
// A NaN argument is ignored if the other one is a number, +0 is larger than -0.
func Fmax[T Float](x, y T) T {
	switch {
	case IsNaN(x):
		if IsNaN(y) {
			return quiet(x)
		}
		return y
	case IsNaN(y):
		return x
	case x == 0 && y == 0:
		if Signbit(x) {
			return y
		}
		return x
	case x >= y:
		return x
	}
	return y
}

// Fmin returns the smaller of x and y.
// A NaN argument is ignored if the other one is a number, -0 is smaller than +0.
func Fmin[T Float](x, y T) T {
	switch {
	case IsNaN(x):
		if IsNaN(y) {
			return quiet(x)
		}
		return y
	case IsNaN(y):
		return x
	case x == 0 && y == 0:
		if Signbit(x) {
			return x
		}
		return y
	case x <= y:
		return x
	}
	return y
}

// Fdim returns the positive difference x - y if x > y, +0 otherwise.
func Fdim[T Float](x, y T) T {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	if x <= y {
		return 0
	}
	return x - y
}

// Fma returns x * y + z computed with a single rounding.
func Fma[T Float](x, y, z T) T {
	if !is32[T]() {
		return T(math.FMA(float64(x), float64(y), float64(z)))
	}
	// the product of two float32 values is exact in float64.
	p := float64(x) * float64(y)
	s, e := mathutil.TwoSum(p, float64(z))
	if e == 0 || !IsFinite(s) {
		return T(s)
	}
	// round to odd, so that the final rounding to float32 is the only one.
	b := math.Float64bits(s)
	if (e < 0) != (s < 0) {
		b--
	}
	return T(math.Float64frombits(b | 1))
}

// Nan returns a quiet NaN with a payload parsed from tag.
// The tag is a decimal, octal or hex number as accepted by strconv.ParseUint with base 0.
// An empty or invalid tag gives the default NaN.
func Nan[T Float](tag string) T {
	p, err := strconv.ParseUint(tag, 0, 64)
	if err != nil {
		return nan[T]()
	}
	f := formatOf[T]()
	return fromBits[T](bitsOf(nan[T]()) | p&(f.quietBit()-1))
}
