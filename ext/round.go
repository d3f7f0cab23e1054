// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"math"
	"math/big"

	"github.com/avdva/libm/fenv"
	"github.com/avdva/libm/internal/bigmath"
)

// roundInt rounds x to an integral value using mode.
// NaNs are quieted, infinities and zeros are returned as is.
func roundInt(x Float80, mode big.RoundingMode) (r Float80, exact bool) {
	if IsNaN(x) {
		return quiet(x), true
	}
	if !IsFinite(x) || x.IsZero() || x.biased() >= expBias+63 {
		return x, true
	}
	z, exact := bigmath.RoundInt(x.toBig(), mode)
	return encode(z), exact
}

// Rint rounds x to an integral value using env's mode.
// It raises Inexact if the result differs from x.
func Rint(env *fenv.Env, x Float80) Float80 {
	if IsSignaling(x) {
		env.Raise(fenv.Invalid)
	}
	r, exact := roundInt(x, bigmath.Mode(env.Round()))
	if !exact {
		env.Raise(fenv.Inexact)
	}
	return r
}

// Nearbyint rounds x to an integral value using env's mode.
// It never raises exceptions.
func Nearbyint(env *fenv.Env, x Float80) Float80 {
	r, _ := roundInt(x, bigmath.Mode(env.Round()))
	return r
}

// toInt64 converts an integral r to int64 raising Invalid if it is out of range.
func toInt64(env *fenv.Env, r Float80) int64 {
	if !IsFinite(r) {
		env.Raise(fenv.Invalid)
		return math.MinInt64
	}
	i, acc := r.toBig().Int64()
	if acc != big.Exact {
		env.Raise(fenv.Invalid)
		return math.MinInt64
	}
	return i
}

// Lrint rounds x to an integer using env's mode.
// NaNs, infinities and results out of the int64 range raise Invalid and return math.MinInt64.
// Otherwise Inexact is raised if the result differs from x.
func Lrint(env *fenv.Env, x Float80) int64 {
	r, exact := roundInt(x, bigmath.Mode(env.Round()))
	i := toInt64(env, r)
	if !exact && i != math.MinInt64 {
		env.Raise(fenv.Inexact)
	}
	return i
}

// Llrint is the same as Lrint.
func Llrint(env *fenv.Env, x Float80) int64 {
	return Lrint(env, x)
}

// Round rounds x to the nearest integral value, with halfway cases away from zero.
func Round(x Float80) Float80 {
	r, _ := roundInt(x, big.ToNearestAway)
	return r
}

// Lround is like Round, but returns an int64.
// NaNs, infinities and values out of range return math.MinInt64.
func Lround(x Float80) int64 {
	return toInt64(nil, Round(x))
}

// Llround is the same as Lround.
func Llround(x Float80) int64 {
	return Lround(x)
}

// RoundEven rounds x to the nearest integral value, with halfway cases to even.
func RoundEven(x Float80) Float80 {
	r, _ := roundInt(x, big.ToNearestEven)
	return r
}

// Trunc returns the integral part of x.
func Trunc(x Float80) Float80 {
	r, _ := roundInt(x, big.ToZero)
	return r
}

// Ceil returns the least integral value greater than or equal to x.
func Ceil(x Float80) Float80 {
	r, _ := roundInt(x, big.ToPositiveInf)
	return r
}

// Floor returns the greatest integral value less than or equal to x.
func Floor(x Float80) Float80 {
	r, _ := roundInt(x, big.ToNegativeInf)
	return r
}

// Modf returns the integral and fractional parts of x, both with the sign of x.
// Modf(±Inf) = ±Inf, ±0.
func Modf(x Float80) (i, frac Float80) {
	switch {
	case IsNaN(x):
		q := quiet(x)
		return q, q
	case IsInf(x, 0):
		return x, signed(Float80{}, x.Signbit())
	}
	i = Trunc(x)
	f := new(big.Float).SetPrec(mantBits).Sub(x.toBig(), i.toBig())
	if f.Sign() == 0 {
		return i, signed(Float80{}, x.Signbit())
	}
	return i, encode(f)
}

// parts returns an integer significand and an exponent, so that a finite x = ±m * 2^e.
func (x Float80) parts() (m uint64, e int) {
	e = x.biased()
	if e == 0 {
		e = 1
	}
	return x.m, e - expBias - 63
}

// divide computes the truncated integer quotient and the remainder of |x| / |y|
// for finite non-zero values. The remainder is r * 2^e, |y| is b * 2^e.
func divide(x, y Float80) (q, r, b *big.Int, e int) {
	mx, ex := x.parts()
	my, ey := y.parts()
	e = ex
	if ey < e {
		e = ey
	}
	a := new(big.Int).SetUint64(mx)
	a.Lsh(a, uint(ex-e))
	b = new(big.Int).SetUint64(my)
	b.Lsh(b, uint(ey-e))
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	return q, r, b, e
}

func fromIntExp(neg bool, r *big.Int, e int) Float80 {
	if r.Sign() == 0 {
		return signed(Float80{}, neg)
	}
	z := new(big.Float).SetInt(r)
	z.SetMantExp(z, e)
	if neg {
		z.Neg(z)
	}
	return encode(z)
}

// Fmod returns x - n*y, where n is x/y truncated toward zero.
// The result is exact and has the sign of x.
// Fmod(±Inf, y) and Fmod(x, 0) are NaN. Fmod(x, ±Inf) = x for a finite x.
func Fmod(x, y Float80) Float80 {
	if r, ok := nanResult(nil, x, y); ok {
		return r
	}
	switch {
	case IsInf(x, 0) || y.IsZero():
		return NaN()
	case IsInf(y, 0) || x.IsZero():
		return x
	}
	_, r, _, e := divide(x, y)
	return fromIntExp(x.Signbit(), r, e)
}

// Remquo returns the IEEE remainder of x/y and the low 31 bits of the quotient
// rounded to nearest even, with the sign of x/y.
func Remquo(x, y Float80) (rem Float80, quo int) {
	if r, ok := nanResult(nil, x, y); ok {
		return r, 0
	}
	switch {
	case IsInf(x, 0) || y.IsZero():
		return NaN(), 0
	case IsInf(y, 0) || x.IsZero():
		return x, 0
	}
	q, r, b, e := divide(x, y)
	// round the quotient to nearest even.
	r2 := new(big.Int).Lsh(r, 1)
	if c := r2.Cmp(b); c > 0 || c == 0 && q.Bit(0) == 1 {
		r.Sub(r, b)
		q.Add(q, big.NewInt(1))
	}
	neg := x.Signbit()
	if r.Sign() < 0 {
		neg = !neg
		r.Neg(r)
	}
	quo = int(new(big.Int).And(q, big.NewInt(math.MaxInt32)).Int64())
	if x.Signbit() != y.Signbit() {
		quo = -quo
	}
	return fromIntExp(neg, r, e), quo
}

// Remainder returns the IEEE remainder of x/y: x - n*y, where n is x/y rounded to nearest even.
func Remainder(x, y Float80) Float80 {
	r, _ := Remquo(x, y)
	return r
}

// Drem is the same as Remainder.
func Drem(x, y Float80) Float80 {
	return Remainder(x, y)
}
