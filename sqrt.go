// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"

	"github.com/avdva/libm/internal/mathutil"
)

// Sqrt returns the square root of x.
// Sqrt(-0) = -0, Sqrt(x < 0) = NaN.
// The result is correctly rounded for both float32 and float64.
func Sqrt[T Float](x T) T {
	if IsNaN(x) {
		return quiet(x)
	}
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[T Float](x T) T {
	return T(cbrt(float64(x)))
}

func cbrt(x float64) float64 {
	const (
		b1 = 715094163 // (1023 - 1023/3 - 0.03306235651) * 2^20
		b2 = 696219795 // (1023 - 1023/3 - 54/3 - 0.03306235651) * 2^20

		p0 = 1.87595182427177009643
		p1 = -1.88497979543377169875
		p2 = 1.621429720105354466140
		p3 = -0.758397934778766047437
		p4 = 0.145996192886612446982
	)
	b := math.Float64bits(x)
	sign := b & (1 << 63)
	hx := uint32(b>>32) & 0x7fffffff
	var t float64
	switch {
	case hx >= 0x7ff00000:
		return x + x
	case hx < 0x00100000:
		if x == 0 {
			return x
		}
		t = x * 0x1p54
		hx = uint32(math.Float64bits(t)>>32) & 0x7fffffff
		t = math.Float64frombits(sign | uint64(hx/3+b2)<<32)
	default:
		t = math.Float64frombits(sign | uint64(hx/3+b1)<<32)
	}
	// about 23 bits.
	r := (t * t) * (t / x)
	t = t * ((p0 + r*(p1+r*p2)) + ((r*r)*r)*(p3+r*p4))
	// round away from zero to 23 bits, so that t*t is exact.
	t = math.Float64frombits((math.Float64bits(t) + 0x80000000) & 0xffffffffc0000000)
	// one Newton step to 53 bits.
	s := t * t
	r = x / s
	w := t + t
	r = (r - t) / (w + r)
	return t + t*r
}

// Hypot returns Sqrt(x*x + y*y) without undue overflow or underflow.
// Hypot(±Inf, y) = +Inf even if y is NaN.
func Hypot[T Float](x, y T) T {
	return T(hypot(float64(x), float64(y)))
}

func hypot(x, y float64) float64 {
	switch {
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return math.Inf(1)
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	}
	a, b := math.Abs(x), math.Abs(y)
	if a < b {
		a, b = b, a
	}
	switch {
	case b == 0:
		return a
	case a > b*0x1p60:
		return a + b
	}
	scale := 1.0
	switch {
	case a > 0x1p500:
		a, b, scale = a*0x1p-600, b*0x1p-600, 0x1p600
	case a < 0x1p-500:
		a, b, scale = a*0x1p600, b*0x1p600, 0x1p-600
	}
	ah, al := mathutil.TwoProd(a, a)
	bh, bl := mathutil.TwoProd(b, b)
	sh, sl := mathutil.TwoSum(ah, bh)
	sl += al + bl
	r := math.Sqrt(sh)
	// correct r with the residual of the double-double sum of squares.
	ph, pl := mathutil.TwoProd(r, r)
	d := ((sh - ph) - pl) + sl
	return (r + d/(2*r)) * scale
}
