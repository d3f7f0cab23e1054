// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"

	"github.com/avdva/libm/internal/mathutil"
)

const (
	// largest |y| handled by repeated squaring.
	powIntMax = 64
	// |y*ln(x)| below which no partial product of the repeated squaring
	// overflows or loses bits to underflow.
	powIntRange = 600
)

// Pow returns x**y.
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y, even NaN
//	Pow(x, 1) = x
//	Pow(NaN, y) = NaN, Pow(x, NaN) = NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer, and for y = -Inf
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer, and for y = +Inf
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1, +0 for |x| < 1
//	Pow(x, -Inf) = +0 for |x| > 1, +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0, +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow[T Float](x, y T) T {
	return T(pow(float64(x), float64(y)))
}

func isOddInt(y float64) bool {
	if math.Abs(y) >= 1<<53 {
		return false
	}
	i, f := Modf(y)
	return f == 0 && int64(i)&1 == 1
}

func pow(x, y float64) float64 {
	switch {
	case y == 0 || x == 1:
		return 1
	case y == 1:
		return x
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case x == 0:
		switch {
		case y < 0:
			if isOddInt(y) {
				return math.Copysign(math.Inf(1), x)
			}
			return math.Inf(1)
		case isOddInt(y):
			return x
		}
		return 0
	case math.IsInf(y, 0):
		switch {
		case x == -1:
			return 1
		case (math.Abs(x) < 1) == math.IsInf(y, 1):
			return 0
		}
		return math.Inf(1)
	case math.IsInf(x, 0):
		if math.IsInf(x, -1) {
			return pow(1/x, -y)
		}
		if y < 0 {
			return 0
		}
		return math.Inf(1)
	case y == 0.5:
		return math.Sqrt(x)
	case y == 2:
		return x * x
	case y == -1:
		return 1 / x
	}
	ax, neg := x, false
	if x < 0 {
		if Trunc(y) != y {
			return math.NaN()
		}
		ax, neg = -x, isOddInt(y)
	}
	lh, ll := logDD(ax)
	zh, zl := mathutil.MulDF(lh, ll, y)
	var r float64
	switch {
	case zh > 1000:
		r = math.Inf(1)
	case zh < -1000:
		r = 0
	case math.Abs(y) <= powIntMax && math.Abs(zh) < powIntRange && Trunc(y) == y:
		return powInt(x, int(y))
	default:
		k := int(RoundEven(zh * invLn2))
		fk := float64(k)
		r = expmulti(zh-fk*ln2Hi, fk*ln2Lo-zl, k)
	}
	if neg {
		return -r
	}
	return r
}

// powInt returns x**n by repeated squaring in double-double arithmetic.
// The result must be far from overflow and underflow.
func powInt(x float64, n int) float64 {
	inv := n < 0
	if inv {
		n = -n
	}
	rh, rl := 1.0, 0.0
	bh, bl := x, 0.0
	for {
		if n&1 == 1 {
			rh, rl = mathutil.MulDD(rh, rl, bh, bl)
		}
		n >>= 1
		if n == 0 {
			break
		}
		bh, bl = mathutil.MulDD(bh, bl, bh, bl)
	}
	if !inv {
		return rh + rl
	}
	q := 1 / rh
	p, pe := mathutil.TwoProd(q, rh)
	return q + (((1-p)-pe)-q*rl)/rh
}
