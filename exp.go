// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"

	"github.com/avdva/libm/internal/mathutil"
)

const (
	ln2Hi  = 6.93147180369123816490e-01 // high 32 bits of ln2
	ln2Lo  = 1.90821492927058770002e-10
	invLn2 = 1.44269504088896338700e+00

	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02

	exp2Overflow  = 1.0239999999999999e+03
	exp2Underflow = -1.0740e+03

	// remez polynomial for (r*(e^r+1)/(e^r-1) - 2) on [0, 0.34658].
	expP1 = 1.66666666666666019037e-01
	expP2 = -2.77777777770155933842e-03
	expP3 = 6.61375632143793436117e-05
	expP4 = -1.65339022054652515390e-06
	expP5 = 4.13813679705723846039e-08
)

// Exp returns e^x.
// Exp(+Inf) = +Inf, Exp(-Inf) = 0. Large arguments overflow to +Inf,
// very small ones underflow to 0.
func Exp[T Float](x T) T {
	return T(exp(float64(x)))
}

func exp(x float64) float64 {
	const nearZero = 0x1p-28
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	case x > expOverflow:
		return math.Inf(1)
	case x < expUnderflow:
		return 0
	case -nearZero < x && x < nearZero:
		return 1 + x
	}
	var k int
	switch {
	case x < 0:
		k = int(invLn2*x - 0.5)
	case x > 0:
		k = int(invLn2*x + 0.5)
	}
	hi := x - float64(k)*ln2Hi
	lo := float64(k) * ln2Lo
	return expmulti(hi, lo, k)
}

// expmulti returns e^r * 2^k, where r = hi - lo and |r| <= ln2/2.
func expmulti(hi, lo float64, k int) float64 {
	r := hi - lo
	t := r * r
	c := r - t*(expP1+t*(expP2+t*(expP3+t*(expP4+t*expP5))))
	y := 1 - ((lo - (r*c)/(2-c)) - hi)
	return scalbn64(y, k)
}

// Exp2 returns 2^x. Integral arguments give exact powers of two.
func Exp2[T Float](x T) T {
	return T(exp2(float64(x)))
}

func exp2(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	case x > exp2Overflow:
		return math.Inf(1)
	case x < exp2Underflow:
		return 0
	}
	var k int
	switch {
	case x > 0:
		k = int(x + 0.5)
	case x < 0:
		k = int(x - 0.5)
	}
	t := x - float64(k)
	return expmulti(t*ln2Hi, -t*ln2Lo, k)
}

// maxExactPow10 is the largest k such that 10^k is exact in both uint64 and float64.
const maxExactPow10 = 19

// Exp10 returns 10^x. Exp10 of an integer up to 19 in magnitude is exact or correctly rounded.
func Exp10[T Float](x T) T {
	return T(exp10(float64(x)))
}

func exp10(x float64) float64 {
	const log2of10 = 3.32192809488736234787031942948939
	n, y := Modf(x)
	if !(math.Abs(n) <= maxExactPow10) {
		return pow(10, x)
	}
	k := int(n)
	p := float64(mathutil.Pow10(mathutil.AbsInt(k)))
	r := 1.0
	if y != 0 {
		r = exp2(log2of10 * y)
	}
	if k < 0 {
		return r / p
	}
	return r * p
}

// Expm1 returns e^x - 1, accurate for x near zero.
// Expm1(-Inf) = -1.
func Expm1[T Float](x T) T {
	return T(expm1(float64(x)))
}

func expm1(x float64) float64 {
	const (
		ln2X56    = 3.88162421113569373274e+01
		ln2HalfX3 = 1.03972077083991796413e+00
		ln2Half   = 3.46573590279972654709e-01
		tiny      = 0x1p-54

		q1 = -3.33333333333331316428e-02
		q2 = 1.58730158725481460165e-03
		q3 = -7.93650757867487942473e-05
		q4 = 4.00821782732936239552e-06
		q5 = -2.01099218183624371326e-07
	)
	switch {
	case math.IsInf(x, 1) || math.IsNaN(x):
		return x
	case math.IsInf(x, -1):
		return -1
	}
	absx, neg := x, false
	if x < 0 {
		absx, neg = -x, true
	}
	if absx >= ln2X56 {
		if neg {
			return -1
		}
		if absx >= expOverflow {
			return math.Inf(1)
		}
	}
	var c float64
	var k int
	switch {
	case absx > ln2Half:
		var hi, lo float64
		if absx < ln2HalfX3 {
			if !neg {
				hi, lo, k = x-ln2Hi, ln2Lo, 1
			} else {
				hi, lo, k = x+ln2Hi, -ln2Lo, -1
			}
		} else {
			if !neg {
				k = int(invLn2*x + 0.5)
			} else {
				k = int(invLn2*x - 0.5)
			}
			t := float64(k)
			hi = x - t*ln2Hi
			lo = t * ln2Lo
		}
		x = hi - lo
		c = (hi - x) - lo
	case absx < tiny:
		return x
	}
	hfx := 0.5 * x
	hxs := x * hfx
	r1 := 1 + hxs*(q1+hxs*(q2+hxs*(q3+hxs*(q4+hxs*q5))))
	t := 3 - r1*hfx
	e := hxs * ((r1 - t) / (6.0 - x*t))
	if k == 0 {
		return x - (x*e - hxs)
	}
	e = x*(e-c) - c
	e -= hxs
	switch {
	case k == -1:
		return 0.5*(x-e) - 0.5
	case k == 1:
		if x < -0.25 {
			return -2 * (e - (x + 0.5))
		}
		return 1 + 2*(x-e)
	case k <= -2 || k > 56:
		y := 1 - (e - x)
		if k == 1024 {
			y = y * 2 * 0x1p1023
		} else {
			y = math.Float64frombits(math.Float64bits(y) + uint64(k)<<52)
		}
		return y - 1
	case k < 20:
		t := math.Float64frombits(0x3ff0000000000000 - (0x20000000000000 >> uint(k))) // 1 - 2^-k
		y := t - (e - x)
		return math.Float64frombits(math.Float64bits(y) + uint64(k)<<52)
	}
	t = math.Float64frombits(uint64(0x3ff-k) << 52) // 2^-k
	y := x - (e + t)
	y++
	return math.Float64frombits(math.Float64bits(y) + uint64(k)<<52)
}
