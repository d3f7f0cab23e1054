// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/libm/fenv"
)

var negZero = math.Copysign(0, -1)

func modes() []fenv.RoundingMode {
	return []fenv.RoundingMode{fenv.ToNearest, fenv.TowardZero, fenv.Upward, fenv.Downward}
}

func TestRint(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   float64
		res [4]float64 // per mode, in the order of modes()
	}{
		{1234.01, [4]float64{1234, 1234, 1235, 1234}},
		{-1234.01, [4]float64{-1234, -1234, -1234, -1235}},
		{1234, [4]float64{1234, 1234, 1234, 1234}},
		{2.5, [4]float64{2, 2, 3, 2}},
		{3.5, [4]float64{4, 3, 4, 3}},
		{-2.5, [4]float64{-2, -2, -2, -3}},
		{0.25, [4]float64{0, 0, 1, 0}},
		{-0.25, [4]float64{negZero, negZero, negZero, -1}},
		{0x1p51 + 0.5, [4]float64{0x1p51, 0x1p51, 0x1p51 + 1, 0x1p51}},
		{math.SmallestNonzeroFloat64, [4]float64{0, 0, 1, 0}},
		{math.Inf(-1), [4]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)}},
	}
	for i, test := range tests {
		for j, mode := range modes() {
			t.Run(fmt.Sprintf("%d/%s", i, mode), func(t *testing.T) {
				env := fenv.New()
				require.NoError(t, env.SetRound(mode))
				r := Rint(env, test.x)
				a.Equal(math.Float64bits(test.res[j]), math.Float64bits(r), "%v != %v", test.res[j], r)
				if r != test.x {
					a.Equal(fenv.Inexact, env.Test(fenv.AllExcept))
				} else {
					a.Zero(env.Test(fenv.AllExcept))
				}
				r = Nearbyint(env, test.x)
				a.Equal(math.Float64bits(test.res[j]), math.Float64bits(r))
				a.Zero(env.Test(fenv.Invalid))
			})
		}
	}
}

func TestRintInexactLaw(t *testing.T) {
	a := assert.New(t)
	env := fenv.New()
	a.Equal(1234.0, Rint(env, 1234.0))
	a.Zero(env.Test(fenv.Inexact))
	a.Equal(1234.0, Rint(env, 1234.01))
	a.Equal(fenv.Inexact, env.Test(fenv.Inexact))

	env.Clear(fenv.AllExcept)
	a.Equal(1234.0, Nearbyint(env, 1234.01))
	a.Equal(float32(1234), Nearbyint(env, float32(1234.01)))
	a.Zero(env.Test(fenv.AllExcept))

	a.Equal(float32(1235), Rint(nil, float32(1234.75)))
	snan := math.Float64frombits(0x7ff0000000000001)
	a.True(math.IsNaN(Rint(env, snan)))
	a.Equal(fenv.Invalid, env.Test(fenv.AllExcept))
}

func TestModeIndependent(t *testing.T) {
	a := assert.New(t)
	for _, mode := range modes() {
		env := fenv.New()
		restore, err := env.WithRound(mode)
		require.NoError(t, err)
		a.Equal(1.0, Round(0.5), "%s", mode)
		a.Equal(-1.0, Round(-0.5), "%s", mode)
		a.Equal(2.0, Round(1.5), "%s", mode)
		a.Equal(2.0, RoundEven(2.5), "%s", mode)
		a.Equal(1234.0, Trunc(1234.99), "%s", mode)
		restore()
		a.Equal(fenv.ToNearest, env.Round())
	}
}

func TestRoundingFunctions(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x                                     float64
		trunc, floor, ceil, round, roundEven float64
	}{
		{0, 0, 0, 0, 0, 0},
		{negZero, negZero, negZero, negZero, negZero, negZero},
		{0.5, 0, 0, 1, 1, 0},
		{-0.5, negZero, -1, negZero, -1, negZero},
		{1.5, 1, 1, 2, 2, 2},
		{-2.5, -2, -3, -2, -3, -2},
		{0.49999999999999994, 0, 0, 1, 0, 0},
		{math.SmallestNonzeroFloat64, 0, 0, 1, 0, 0},
		{0x1p52 + 1, 0x1p52 + 1, 0x1p52 + 1, 0x1p52 + 1, 0x1p52 + 1, 0x1p52 + 1},
		{1e300, 1e300, 1e300, 1e300, 1e300, 1e300},
		{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	eq := func(want, got float64) {
		a.Equal(math.Float64bits(want), math.Float64bits(got), "%v != %v", want, got)
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			eq(test.trunc, Trunc(test.x))
			eq(test.floor, Floor(test.x))
			eq(test.ceil, Ceil(test.x))
			eq(test.round, Round(test.x))
			eq(test.roundEven, RoundEven(test.x))
			a.Equal(math.Trunc(test.x), Trunc(test.x))
			a.Equal(math.Floor(test.x), Floor(test.x))
			a.Equal(math.Ceil(test.x), Ceil(test.x))
			a.Equal(float32(math.Floor(float64(float32(test.x)))), Floor(float32(test.x)))
		})
	}
	for _, f := range []func(float64) float64{Trunc[float64], Floor[float64], Ceil[float64], Round[float64], RoundEven[float64]} {
		a.True(math.IsNaN(f(math.NaN())))
	}
	a.Equal(float32(-3), Round(float32(-2.5)))
	a.Equal(float32(8388609), Trunc(float32(8388609)))
}

func TestLrint(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x     float64
		mode  fenv.RoundingMode
		res   int64
		flags fenv.Except
	}{
		{1234.01, fenv.ToNearest, 1234, fenv.Inexact},
		{1234.01, fenv.Upward, 1235, fenv.Inexact},
		{-1234.01, fenv.TowardZero, -1234, fenv.Inexact},
		{2.5, fenv.ToNearest, 2, fenv.Inexact},
		{1234, fenv.Downward, 1234, 0},
		{-0x1p63, fenv.ToNearest, math.MinInt64, 0},
		{0x1p63, fenv.ToNearest, math.MinInt64, fenv.Invalid},
		{math.NaN(), fenv.ToNearest, math.MinInt64, fenv.Invalid},
		{math.Inf(1), fenv.ToNearest, math.MinInt64, fenv.Invalid},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			env := fenv.New()
			require.NoError(t, env.SetRound(test.mode))
			a.Equal(test.res, Lrint(env, test.x))
			a.Equal(test.flags, env.Test(fenv.AllExcept))
			env.Clear(fenv.AllExcept)
			a.Equal(test.res, Llrint(env, test.x))
		})
	}
	a.Equal(int64(3), Lrint(nil, float32(2.5)+0.25))
}

func TestLround(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(1), Lround(0.5))
	a.Equal(int64(-1), Lround(-0.5))
	a.Equal(int64(3), Llround(2.5))
	a.Equal(int64(math.MinInt64), Lround(math.NaN()))
	a.Equal(int64(math.MinInt64), Lround(1e19))
	a.Equal(int64(math.MaxInt64-1023), Lround(float64(math.MaxInt64-1023)))
	a.Equal(int64(-4), Lround(float32(-3.5)))
}

func TestModf(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, i, frac float64
	}{
		{1.5, 1, 0.5},
		{-1.5, -1, -0.5},
		{2, 2, 0},
		{-2, -2, negZero},
		{negZero, negZero, negZero},
		{0.25, 0, 0.25},
		{-0.25, negZero, -0.25},
		{math.Inf(1), math.Inf(1), 0},
		{math.Inf(-1), math.Inf(-1), negZero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			ip, frac := Modf(test.x)
			a.Equal(math.Float64bits(test.i), math.Float64bits(ip))
			a.Equal(math.Float64bits(test.frac), math.Float64bits(frac))
			if IsFinite(test.x) {
				a.Equal(test.x, ip+frac)
				a.Equal(Signbit(test.x), Signbit(ip))
				a.Equal(Signbit(test.x), Signbit(frac))
			}
		})
	}
	ip, frac := Modf(math.NaN())
	a.True(math.IsNaN(ip))
	a.True(math.IsNaN(frac))
	ip32, frac32 := Modf(float32(-3.75))
	a.Equal(float32(-3), ip32)
	a.Equal(float32(-0.75), frac32)
}

func BenchmarkRint(b *testing.B) {
	env := fenv.New()
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += Rint(env, float64(i)+0.5)
	}
	if sum < 0 {
		b.Fatal(sum)
	}
}
