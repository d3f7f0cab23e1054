// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
)

// significand returns the integer significand of a finite non-zero x
// and its effective biased exponent: |x| = m * 2^(e - bias - fracBits).
func significand[T Float](x T) (m uint64, e int) {
	f := formatOf[T]()
	_, e, m = fields(x)
	if e == 0 {
		return m, 1
	}
	return m | 1<<f.fracBits, e
}

// remBits returns |x| mod |y| and the low 31 bits of the truncated quotient
// for finite non-zero x and y.
func remBits[T Float](x, y T) (r T, q uint64) {
	f := formatOf[T]()
	mx, ex := significand(x)
	my, ey := significand(y)
	if ex < ey {
		return withSign(x, false), 0
	}
	q = mx / my
	mx %= my
	// mx < my < 2^53, so a shift by 10 never overflows.
	for d := ex - ey; d > 0; {
		k := d
		if k > 10 {
			k = 10
		}
		mx <<= uint(k)
		q = (q<<uint(k) | mx/my) & math.MaxInt32
		mx %= my
		d -= k
	}
	return T(math.Ldexp(float64(mx), ey-f.bias-int(f.fracBits))), q & math.MaxInt32
}

// Fmod returns x - n*y, where n is x/y truncated toward zero.
// The result is exact and has the sign of x.
// Fmod(±Inf, y) and Fmod(x, 0) are NaN. Fmod(x, ±Inf) = x for a finite x.
func Fmod[T Float](x, y T) T {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	switch {
	case IsInf(x, 0) || y == 0:
		return nan[T]()
	case IsInf(y, 0) || x == 0:
		return x
	}
	r, _ := remBits(x, y)
	return withSign(r, Signbit(x))
}

// Remquo returns the IEEE remainder of x/y and the low 31 bits of the quotient
// rounded to nearest even, with the sign of x/y.
func Remquo[T Float](x, y T) (rem T, quo int) {
	if r, ok := nanResult(nil, x, y); ok {
		return r, 0
	}
	switch {
	case IsInf(x, 0) || y == 0:
		return nan[T](), 0
	case IsInf(y, 0) || x == 0:
		return x, 0
	}
	f := formatOf[T]()
	r, q := remBits(x, y)
	ay := withSign(y, false)
	var up bool
	if tiny := fromBits[T](2 << f.fracBits); ay < tiny {
		// 0.5*ay may round, r+r can not overflow.
		r2 := r + r
		up = r2 > ay || r2 == ay && q&1 == 1
	} else {
		h := ay / 2
		up = r > h || r == h && q&1 == 1
	}
	neg := Signbit(x)
	if up {
		// ay/2 < r < ay, the difference is exact.
		r = ay - r
		neg = !neg
		q = (q + 1) & math.MaxInt32
	}
	quo = int(q)
	if Signbit(x) != Signbit(y) {
		quo = -quo
	}
	return withSign(r, neg), quo
}

// Remainder returns the IEEE remainder of x/y: x - n*y, where n is x/y rounded to nearest even.
// The magnitude of the result is not greater than |y|/2.
func Remainder[T Float](x, y T) T {
	r, _ := Remquo(x, y)
	return r
}

// Drem is the same as Remainder.
func Drem[T Float](x, y T) T {
	return Remainder(x, y)
}
