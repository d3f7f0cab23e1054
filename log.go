// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"

	"github.com/avdva/libm/internal/mathutil"
)

const (
	logL1 = 6.666666666666735130e-01
	logL2 = 3.999999999940941908e-01
	logL3 = 2.857142874366239149e-01
	logL4 = 2.222219843214978396e-01
	logL5 = 1.818357216161805012e-01
	logL6 = 1.531383769920937332e-01
	logL7 = 1.479819860511658591e-01

	// 2/3 as a double-double.
	twoThirdsHi = 6.66666666666666629659e-01
	twoThirdsLo = 3.70074341541718826227e-17
)

var (
	// ln2 and ln10 as double-double numbers.
	ln2DD  = newDD(mathutil.FastTwoSum(ln2Hi, ln2Lo))
	ln10DD = newDD(logDD(10))
)

type dd struct {
	hi, lo float64
}

func newDD(hi, lo float64) dd {
	return dd{hi: hi, lo: lo}
}

// div returns (hi + lo) / d rounded to a float64.
func (d dd) div(hi, lo float64) float64 {
	q := hi / d.hi
	p, pe := mathutil.TwoProd(q, d.hi)
	r := ((hi - p) - pe + lo) - q*d.lo
	return q + r/d.hi
}

// Log returns the natural logarithm of x.
// Log(±0) = -Inf, Log(x < 0) = NaN, Log(+Inf) = +Inf.
func Log[T Float](x T) T {
	return T(log(float64(x)))
}

func log(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	f1, ki := Frexp(x)
	if f1 < math.Sqrt2/2 {
		f1 *= 2
		ki--
	}
	f := f1 - 1
	k := float64(ki)
	s := f / (2 + f)
	s2 := s * s
	s4 := s2 * s2
	t1 := s2 * (logL1 + s4*(logL3+s4*(logL5+s4*logL7)))
	t2 := s4 * (logL2 + s4*(logL4+s4*logL6))
	R := t1 + t2
	hfsq := 0.5 * f * f
	return k*ln2Hi - ((hfsq - (s*(hfsq+R) + k*ln2Lo)) - f)
}

// logDD returns ln(x) for a finite positive x as a double-double number
// accurate to about 2^-70 relative.
func logDD(x float64) (hi, lo float64) {
	m, k := Frexp(x)
	if m < math.Sqrt2/2 {
		m *= 2
		k--
	}
	// s = (m-1)/(m+1), ln(m) = 2*atanh(s).
	num := m - 1
	dh, dl := mathutil.TwoSum(m, 1)
	sh := num / dh
	p, pe := mathutil.TwoProd(sh, dh)
	sl := (((num - p) - pe) - sh*dl) / dh
	s2h, s2l := mathutil.MulDD(sh, sl, sh, sl)
	s3h, s3l := mathutil.MulDD(s2h, s2l, sh, sl)
	th, tl := mathutil.MulDD(s3h, s3l, twoThirdsHi, twoThirdsLo)
	z := s2h
	tail := s3h * z * (2.0/5 + z*(2.0/7+z*(2.0/9+z*(2.0/11+z*(2.0/13+z*(2.0/15+z*(2.0/17+
		z*(2.0/19+z*(2.0/21+z*(2.0/23+z*(2.0/25+z*(2.0/27))))))))))))
	hi, lo = mathutil.AddDD(2*sh, 2*sl, th, tl)
	hi, lo = mathutil.AddDD(hi, lo, tail, 0)
	fk := float64(k)
	return mathutil.AddDD(fk*ln2Hi, fk*ln2Lo, hi, lo)
}

// Log2 returns the binary logarithm of x. Exact powers of two give exact results.
func Log2[T Float](x T) T {
	return T(log2(float64(x)))
}

func log2(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	if frac, exp := Frexp(x); frac == 0.5 {
		return float64(exp - 1)
	}
	return ln2DD.div(logDD(x))
}

// Log10 returns the decimal logarithm of x.
func Log10[T Float](x T) T {
	return T(log10(float64(x)))
}

func log10(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	if x == 1 {
		return 0
	}
	return ln10DD.div(logDD(x))
}

// Log1p returns ln(1 + x), accurate for x near zero.
// Log1p(-1) = -Inf, Log1p(x < -1) = NaN.
func Log1p[T Float](x T) T {
	return T(log1p(float64(x)))
}

func log1p(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < -1:
		return math.NaN()
	case x == -1:
		return math.Inf(-1)
	case math.Abs(x) < 0x1p-54:
		return x
	}
	uh, ul := mathutil.TwoSum(1, x)
	hi, lo := logDD(uh)
	return hi + (lo + ul/uh)
}
