// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"math/big"

	"github.com/avdva/libm/fenv"
	"github.com/avdva/libm/internal/bigmath"
)

// workBits is the precision of truncated intermediate results.
// It leaves room for a sticky bit above the 64 bits of the format.
const workBits = 4 * mantBits

// truncated returns a zero value of workBits precision rounding toward zero.
func truncated() *big.Float {
	return new(big.Float).SetPrec(workBits).SetMode(big.ToZero)
}

// zeroSum returns an exact zero sum as IEEE defines it:
// the sum of like-signed zeros keeps their sign, otherwise it depends on the mode.
func zeroSum(env *fenv.Env, likeZeros, neg bool) Float80 {
	if likeZeros {
		return signed(Float80{}, neg)
	}
	if env.Round() == fenv.Downward {
		return Float80{se: signBit}
	}
	return Float80{}
}

// Add returns x + y rounded using env's mode.
func Add(env *fenv.Env, x, y Float80) Float80 {
	if r, ok := nanResult(env, x, y); ok {
		return r
	}
	switch {
	case IsInf(x, 0) && IsInf(y, 0) && x.Signbit() != y.Signbit():
		return invalid(env)
	case IsInf(x, 0):
		return x
	case IsInf(y, 0):
		return y
	}
	z := truncated().Add(x.toBig(), y.toBig())
	if z.Sign() == 0 {
		return zeroSum(env, x.IsZero() && y.IsZero() && x.Signbit() == y.Signbit(), x.Signbit())
	}
	return round(env, bigmath.Sticky(z, z.Acc() != big.Exact))
}

// Sub returns x - y rounded using env's mode.
func Sub(env *fenv.Env, x, y Float80) Float80 {
	if r, ok := nanResult(env, x, y); ok {
		return r
	}
	return Add(env, x, y.Neg())
}

// Mul returns x * y rounded using env's mode.
func Mul(env *fenv.Env, x, y Float80) Float80 {
	if r, ok := nanResult(env, x, y); ok {
		return r
	}
	neg := x.Signbit() != y.Signbit()
	switch {
	case IsInf(x, 0) && y.IsZero(), x.IsZero() && IsInf(y, 0):
		return invalid(env)
	case IsInf(x, 0) || IsInf(y, 0):
		return signed(Inf(1), neg)
	}
	// the product of two 64-bit significands is exact in 128 bits.
	z := new(big.Float).SetPrec(2*mantBits).Mul(x.toBig(), y.toBig())
	return round(env, z)
}

// Div returns x / y rounded using env's mode.
func Div(env *fenv.Env, x, y Float80) Float80 {
	if r, ok := nanResult(env, x, y); ok {
		return r
	}
	neg := x.Signbit() != y.Signbit()
	switch {
	case IsInf(x, 0) && IsInf(y, 0), x.IsZero() && y.IsZero():
		return invalid(env)
	case IsInf(x, 0):
		return signed(Inf(1), neg)
	case IsInf(y, 0):
		return signed(Float80{}, neg)
	case y.IsZero():
		env.Raise(fenv.DivByZero)
		return signed(Inf(1), neg)
	}
	z := truncated().Quo(x.toBig(), y.toBig())
	return round(env, bigmath.Sticky(z, z.Acc() != big.Exact))
}

// Sqrt returns the square root of x rounded using env's mode.
func Sqrt(env *fenv.Env, x Float80) Float80 {
	if r, ok := nanResult(env, x); ok {
		return r
	}
	switch {
	case x.IsZero():
		return x
	case x.Signbit():
		return invalid(env)
	case IsInf(x, 1):
		return x
	}
	a := x.toBig()
	z := truncated().Sqrt(a)
	sq := new(big.Float).SetPrec(2 * workBits).Mul(z, z)
	return round(env, bigmath.Sticky(z, sq.Cmp(a) != 0))
}

// Fma returns x * y + z computed with a single rounding using env's mode.
func Fma(env *fenv.Env, x, y, z Float80) Float80 {
	if r, ok := nanResult(env, x, y, z); ok {
		return r
	}
	neg := x.Signbit() != y.Signbit()
	switch {
	case IsInf(x, 0) && y.IsZero(), x.IsZero() && IsInf(y, 0):
		return invalid(env)
	case IsInf(x, 0) || IsInf(y, 0):
		if IsInf(z, 0) && z.Signbit() != neg {
			return invalid(env)
		}
		return signed(Inf(1), neg)
	case IsInf(z, 0):
		return z
	}
	p := new(big.Float).SetPrec(2*mantBits).Mul(x.toBig(), y.toBig())
	s := truncated().Add(p, z.toBig())
	if s.Sign() == 0 {
		return zeroSum(env, p.Sign() == 0 && z.IsZero() && p.Signbit() == z.Signbit(), z.Signbit())
	}
	return round(env, bigmath.Sticky(s, s.Acc() != big.Exact))
}

func signed(x Float80, neg bool) Float80 {
	if neg {
		x.se |= signBit
	} else {
		x.se &^= signBit
	}
	return x
}

// Add returns x + y rounded to nearest.
func (x Float80) Add(y Float80) Float80 {
	return Add(nil, x, y)
}

// Sub returns x - y rounded to nearest.
func (x Float80) Sub(y Float80) Float80 {
	return Sub(nil, x, y)
}

// Mul returns x * y rounded to nearest.
func (x Float80) Mul(y Float80) Float80 {
	return Mul(nil, x, y)
}

// Div returns x / y rounded to nearest.
func (x Float80) Div(y Float80) Float80 {
	return Div(nil, x, y)
}
