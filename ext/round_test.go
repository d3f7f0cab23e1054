// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/libm/fenv"
)

func TestRint(t *testing.T) {
	a := assert.New(t)
	modes := []fenv.RoundingMode{fenv.ToNearest, fenv.Upward, fenv.Downward, fenv.TowardZero}
	tests := []struct {
		x   float64
		res [4]float64
	}{
		{2.5, [4]float64{2, 3, 2, 2}},
		{-2.5, [4]float64{-2, -2, -3, -2}},
		{3.5, [4]float64{4, 4, 3, 3}},
		{0.25, [4]float64{0, 1, 0, 0}},
		{-0.25, [4]float64{math.Copysign(0, -1), math.Copysign(0, -1), -1, math.Copysign(0, -1)}},
		{1234, [4]float64{1234, 1234, 1234, 1234}},
		{1234.01, [4]float64{1234, 1235, 1234, 1234}},
		{1 << 62, [4]float64{1 << 62, 1 << 62, 1 << 62, 1 << 62}},
	}
	for i, test := range tests {
		for j, mode := range modes {
			t.Run(fmt.Sprintf("%d/%s", i, mode), func(t *testing.T) {
				env := fenv.New()
				require.NoError(t, env.SetRound(mode))
				x := FromFloat64(test.x)
				expected := FromFloat64(test.res[j])
				a.Equal(expected, Rint(env, x))
				if test.x == math.Trunc(test.x) {
					a.Equal(fenv.Except(0), env.Test(fenv.AllExcept))
				} else {
					a.Equal(fenv.Inexact, env.Test(fenv.AllExcept))
				}
				env.Clear(fenv.AllExcept)
				a.Equal(expected, Nearbyint(env, x))
				a.Equal(fenv.Except(0), env.Test(fenv.AllExcept))
			})
		}
	}
	env := fenv.New()
	a.Equal(Float80{}, Rint(env, SmallestNonzero))
	a.Equal(fenv.Inexact, env.Test(fenv.AllExcept))
	a.Equal(MaxFloat80, Rint(env, MaxFloat80))
	a.Equal(Inf(-1), Rint(env, Inf(-1)))
	env.Clear(fenv.AllExcept)
	a.True(IsNaN(Rint(env, FromBits(0x7fff, intBit|1))))
	a.Equal(fenv.Invalid, env.Test(fenv.AllExcept))
	restore, err := env.WithRound(fenv.Upward)
	require.NoError(t, err)
	defer restore()
	a.Equal(one, Rint(env, SmallestNonzero))
	a.Equal(Float80{se: signBit}, Rint(env, SmallestNonzero.Neg()))
}

func TestLrint(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x     Float80
		mode  fenv.RoundingMode
		res   int64
		flags fenv.Except
	}{
		{FromFloat64(2.5), fenv.ToNearest, 2, fenv.Inexact},
		{FromFloat64(2.5), fenv.Upward, 3, fenv.Inexact},
		{FromFloat64(-2.5), fenv.Downward, -3, fenv.Inexact},
		{FromInt64(-17), fenv.ToNearest, -17, 0},
		{FromInt64(math.MaxInt64), fenv.ToNearest, math.MaxInt64, 0},
		{FromInt64(math.MinInt64), fenv.ToNearest, math.MinInt64, 0},
		{FromFloat64(1e30), fenv.ToNearest, math.MinInt64, fenv.Invalid},
		{MustFromString("9223372036854775807.5"), fenv.Upward, math.MinInt64, fenv.Invalid},
		{NaN(), fenv.ToNearest, math.MinInt64, fenv.Invalid},
		{Inf(1), fenv.ToNearest, math.MinInt64, fenv.Invalid},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			env := fenv.New()
			require.NoError(t, env.SetRound(test.mode))
			a.Equal(test.res, Lrint(env, test.x))
			a.Equal(test.flags, env.Test(fenv.AllExcept))
			env.Clear(fenv.AllExcept)
			a.Equal(test.res, Llrint(env, test.x))
			a.Equal(test.flags, env.Test(fenv.AllExcept))
		})
	}
}

func TestRoundingFunctions(t *testing.T) {
	a := assert.New(t)
	negZero := math.Copysign(0, -1)
	tests := []struct {
		x                                  float64
		round, roundEven, trunc, ceil, floor float64
	}{
		{0.5, 1, 0, 0, 1, 0},
		{-0.5, -1, negZero, negZero, negZero, -1},
		{1.5, 2, 2, 1, 2, 1},
		{2.5, 3, 2, 2, 3, 2},
		{-1.7, -2, -2, -1, -1, -2},
		{0.49999999999999994, 0, 0, 0, 1, 0},
		{42, 42, 42, 42, 42, 42},
		{negZero, negZero, negZero, negZero, negZero, negZero},
		{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := FromFloat64(test.x)
			a.Equal(FromFloat64(test.round), Round(x))
			a.Equal(FromFloat64(test.roundEven), RoundEven(x))
			a.Equal(FromFloat64(test.trunc), Trunc(x))
			a.Equal(FromFloat64(test.ceil), Ceil(x))
			a.Equal(FromFloat64(test.floor), Floor(x))
		})
	}
	a.Equal(int64(-3), Lround(FromFloat64(-2.5)))
	a.Equal(int64(3), Llround(FromFloat64(2.5)))
	a.Equal(int64(math.MinInt64), Lround(NaN()))
	a.Equal(int64(math.MinInt64), Lround(FromFloat64(1e19)))
	a.True(IsNaN(Floor(NaN())))
}

func TestModf(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, i, frac Float80
	}{
		{FromFloat64(-3.5), FromInt64(-3), FromFloat64(-0.5)},
		{FromFloat64(2.25), FromInt64(2), FromFloat64(0.25)},
		{FromInt64(-2), FromInt64(-2), Float80{se: signBit}},
		{Inf(1), Inf(1), Float80{}},
		{Inf(-1), Inf(-1), Float80{se: signBit}},
		{SmallestNonzero, Float80{}, SmallestNonzero},
		{MaxFloat80, MaxFloat80, Float80{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			ip, frac := Modf(test.x)
			a.Equal(test.i, ip)
			a.Equal(test.frac, frac)
		})
	}
}

func TestRemainders(t *testing.T) {
	a := assert.New(t)
	negZero := Float80{se: signBit}
	f := FromFloat64
	tests := []struct {
		x, y      Float80
		fmod, rem Float80
		quo       int
	}{
		{f(12), f(10), f(2), f(2), 1},
		{f(13), f(4), f(1), f(1), 3},
		{f(-13), f(4), f(-1), f(-1), -3},
		{f(13), f(-4), f(1), f(1), -3},
		{f(14), f(4), f(2), f(-2), 4},
		{f(5), f(2), f(1), f(1), 2},
		{f(7), f(2), f(1), f(-1), 4},
		{f(-7), f(3), f(-1), f(-1), -2},
		{f(6), f(3), Float80{}, Float80{}, 2},
		{f(-6), f(3), negZero, negZero, -2},
		{f(5.5), f(2), f(1.5), f(-0.5), 3},
		{negZero, f(1), negZero, negZero, 0},
		{f(3), Inf(1), f(3), f(3), 0},
		{MaxFloat80, f(3), Float80{}, Float80{}, 0},
		{SmallestNonzero, one, SmallestNonzero, SmallestNonzero, 0},
		{one, SmallestNonzero, Float80{}, Float80{}, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.fmod, Fmod(test.x, test.y), "fmod")
			a.Equal(test.rem, Remainder(test.x, test.y), "remainder")
			a.Equal(test.rem, Drem(test.x, test.y), "drem")
			rem, quo := Remquo(test.x, test.y)
			a.Equal(test.rem, rem)
			if test.quo != 0 {
				a.Equal(test.quo, quo)
			}
		})
	}
	for _, args := range [][2]Float80{{Inf(1), one}, {one, Float80{}}, {NaN(), one}, {one, NaN()}} {
		a.True(IsNaN(Fmod(args[0], args[1])))
		a.True(IsNaN(Remainder(args[0], args[1])))
	}
	// the quotient is reduced to its low 31 bits.
	_, quo := Remquo(Scalbn(one, 40).Add(FromInt64(5)), one)
	a.Equal(5, quo)
}

func BenchmarkFmod(b *testing.B) {
	x, y := MaxFloat80, FromFloat64(0.3)
	for i := 0; i < b.N; i++ {
		Fmod(x, y)
	}
}
