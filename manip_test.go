// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/libm/ext"
)

func TestFrexp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, frac float64
		exp     int
	}{
		{8, 0.5, 4},
		{-3, -0.75, 2},
		{1, 0.5, 1},
		{math.SmallestNonzeroFloat64, 0.5, -1073},
		{0x1p-1022, 0.5, -1021},
		{math.MaxFloat64, math.Nextafter(1, 0), 1024},
		{0, 0, 0},
		{negZero, negZero, 0},
		{math.Inf(-1), math.Inf(-1), 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			frac, exp := Frexp(test.x)
			a.Equal(math.Float64bits(test.frac), math.Float64bits(frac))
			a.Equal(test.exp, exp)
			mfrac, mexp := math.Frexp(test.x)
			a.Equal(mfrac, frac)
			a.Equal(mexp, exp)
		})
	}
	frac, exp := Frexp(math.NaN())
	a.True(math.IsNaN(frac))
	a.Zero(exp)
	frac32, exp32 := Frexp(float32(math.SmallestNonzeroFloat32))
	a.Equal(float32(0.5), frac32)
	a.Equal(-148, exp32)
}

func TestFrexpRoundTrip(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		x := math.Float64frombits(r.Uint64())
		if !IsFinite(x) || x == 0 {
			continue
		}
		frac, exp := Frexp(x)
		a.True(math.Abs(frac) >= 0.5 && math.Abs(frac) < 1, "%v", frac)
		if !a.Equal(x, Scalbn(frac, exp), "%v", x) {
			break
		}
		a.Equal(x, Ldexp(frac, exp))

		x32 := math.Float32frombits(r.Uint32())
		if !IsFinite(x32) || x32 == 0 {
			continue
		}
		frac32, exp32 := Frexp(x32)
		a.Equal(x32, Scalbn(frac32, exp32), "%v", x32)
	}
}

func TestScalbn(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   float64
		n   int
		res float64
	}{
		{1, 10, 1024},
		{1.5, -1074, 0x1p-1073},
		{1, -1075, 0},
		{0x1.0000000000001p0, -1075, math.SmallestNonzeroFloat64},
		{-1, -1076, negZero},
		{1, 1024, math.Inf(1)},
		{-1, 1 << 20, math.Inf(-1)},
		{math.SmallestNonzeroFloat64, 2097, 0x1p1023},
		{math.MaxFloat64, -2098, math.SmallestNonzeroFloat64},
		{math.MaxFloat64, math.MinInt, 0},
		{negZero, 100, negZero},
		{math.Inf(1), -5000, math.Inf(1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Scalbn(test.x, test.n)
			a.Equal(math.Float64bits(test.res), math.Float64bits(res), "%v != %v", test.res, res)
			a.Equal(math.Float64bits(math.Ldexp(test.x, test.n)), math.Float64bits(res))
		})
	}
	a.Equal(float32(0x1p-148), Scalbn(float32(1.5), -149))
	a.Equal(float32(math.Inf(1)), Scalbn(float32(1), 128))
	a.Equal(float32(0x1p127), Scalbn(float32(math.SmallestNonzeroFloat32), 276))
	a.Equal(float32(math.Inf(1)), Scalbn(float32(1), math.MaxInt))
	a.Equal(math.Inf(1), Scalbln(1.0, 1<<40))
	a.Equal(0.0, Scalbln(1.0, -1<<40))
}

func TestScalb(t *testing.T) {
	a := assert.New(t)
	a.Equal(12.0, Scalb(3.0, 2))
	a.Equal(0.75, Scalb(3.0, -2))
	a.True(math.IsNaN(Scalb(3.0, 0.5)))
	a.True(math.IsNaN(Scalb(0.0, math.Inf(1))))
	a.True(math.IsNaN(Scalb(math.Inf(1), math.Inf(-1))))
	a.Equal(math.Inf(-1), Scalb(-1.0, math.Inf(1)))
	a.Equal(negZero, Scalb(-1.0, math.Inf(-1)))
	a.True(math.Signbit(Scalb(-1.0, math.Inf(-1))))
	a.Equal(math.Inf(1), Scalb(1.0, 1e10))
	a.Equal(float32(48), Scalb(float32(3), 4))
}

func TestIlogb(t *testing.T) {
	a := assert.New(t)
	a.Equal(ILogB0, Ilogb(0.0))
	a.Equal(ILogB0, Ilogb(negZero))
	a.Equal(ILogBNaN, Ilogb(math.NaN()))
	a.Equal(math.MaxInt32, Ilogb(math.Inf(-1)))
	a.Equal(0, Ilogb(1.0))
	a.Equal(3, Ilogb(-8.5))
	a.Equal(-1022, Ilogb(0x1p-1022))
	a.Equal(-1074, Ilogb(math.SmallestNonzeroFloat64))
	a.Equal(-1023, Ilogb(0x1.8p-1023))
	a.Equal(1023, Ilogb(math.MaxFloat64))
	a.Equal(-149, Ilogb(float32(math.SmallestNonzeroFloat32)))
	a.Equal(127, Ilogb(float32(math.MaxFloat32)))
	a.Equal(ILogB0, Ilogb(float32(0)))

	a.Equal(math.Inf(-1), Logb(negZero))
	a.Equal(math.Inf(1), Logb(math.Inf(-1)))
	a.Equal(3.0, Logb(8.0))
	a.Equal(-1074.0, Logb(math.SmallestNonzeroFloat64))
	a.True(math.IsNaN(Logb(math.NaN())))
	a.Equal(float32(-149), Logb(float32(math.SmallestNonzeroFloat32)))

	a.Equal(1.53125, Significand(12.25))
	a.Equal(float32(1.53125), Significand(float32(12.25)))
	a.Equal(1.0, Significand(math.SmallestNonzeroFloat64))
	a.Equal(negZero, Significand(negZero))
	a.Equal(math.Inf(1), Significand(math.Inf(1)))
}

func TestNextafter(t *testing.T) {
	a := assert.New(t)
	a.Less(Nextafter(1.0, 0), 1.0)
	a.Less(Nextafter(float32(1), 0), float32(1))
	a.Equal(0x1.0000000000001p0, Nextafter(1.0, 2))
	a.Equal(-math.SmallestNonzeroFloat64, Nextafter(0.0, -1))
	a.Equal(math.SmallestNonzeroFloat64, Nextafter(negZero, 1))
	a.Equal(math.Inf(1), Nextafter(math.MaxFloat64, math.Inf(1)))
	a.Equal(math.MaxFloat64, Nextafter(math.Inf(1), 0))
	a.Equal(0x1p-1022, Nextafter(0x1.ffffffffffffep-1023, 1))
	a.True(math.Signbit(Nextafter(0.0, negZero)))
	a.True(math.IsNaN(Nextafter(1.0, math.NaN())))

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x, y := randFloat(r, -1074, 1023), randFloat(r, -1074, 1023)
		a.Equal(math.Nextafter(x, y), Nextafter(x, y))
		a.Equal(math.Nextafter32(float32(x), float32(y)), Nextafter(float32(x), float32(y)))
	}
}

func TestNexttoward(t *testing.T) {
	a := assert.New(t)
	a.Equal(math.Nextafter32(1, 2), Nexttoward(float32(1), ext.FromFloat64(2)))
	// 1 + 2^-63 is above 1 only in extended precision.
	a.Equal(0x1.0000000000001p0, Nexttoward(1.0, ext.FromBits(0x3fff, 0x8000000000000001)))
	a.Equal(math.Nextafter(1, 0), Nexttoward(1.0, ext.FromBits(0x3ffe, 0xffffffffffffffff)))
	a.Equal(float32(-math.SmallestNonzeroFloat32), Nexttoward(float32(0), ext.Inf(-1)))
	a.True(math.Signbit(Nexttoward(0.0, ext.FromBits(0x8000, 0))))
	a.Equal(2.0, Nexttoward(2.0, ext.FromInt64(2)))
	a.True(math.IsNaN(Nexttoward(1.0, ext.NaN())))
	a.True(IsNaN(Nexttoward(float32(math.NaN()), ext.FromInt64(1))))
}

func TestMinMax(t *testing.T) {
	a := assert.New(t)
	nan := math.NaN()
	a.Equal(12.0, Fmax(12.0, nan))
	a.Equal(12.0, Fmax(nan, 12.0))
	a.Equal(12.0, Fmin(12.0, nan))
	a.Equal(12.0, Fmin(nan, 12.0))
	a.True(math.IsNaN(Fmax(nan, nan)))
	a.True(math.IsNaN(Fmin(nan, nan)))
	a.Equal(float32(12), Fmax(float32(12), float32(nan)))
	a.False(math.Signbit(Fmax(negZero, 0)))
	a.False(math.Signbit(Fmax(0, negZero)))
	a.True(math.Signbit(Fmin(0, negZero)))
	a.True(math.Signbit(Fmin(negZero, 0)))
	a.Equal(3.0, Fmax(-1.0, 3))
	a.Equal(-1.0, Fmin(-1.0, 3))

	a.Equal(2.0, Fdim(5.0, 3))
	a.Equal(0.0, Fdim(3.0, 5))
	a.False(math.Signbit(Fdim(negZero, 0)))
	a.True(math.IsNaN(Fdim(nan, 1)))
	a.Equal(math.Inf(1), Fdim(math.MaxFloat64, -math.MaxFloat64))

	a.Equal(-3.0, Copysign(3.0, negZero))
	a.Equal(3.0, Copysign(-3.0, math.Inf(1)))
	a.True(math.Signbit(Copysign(nan, -1)))
	a.Equal(float32(3), Fabs(float32(-3)))
	a.False(math.Signbit(Fabs(negZero)))
}

func TestFma(t *testing.T) {
	a := assert.New(t)
	a.Equal(10.0, Fma(2.0, 3, 4))
	a.Equal(float32(10), Fma(float32(2), 3, 4))
	a.Equal(math.FMA(0.1, 10, -1), Fma(0.1, 10, -1))

	// x*y+z is just above the midpoint between 1 and its float32 successor,
	// rounding the float64 sum first would produce 1.
	x, y, z := float32(1+0x1p-23), float32(1-0x1p-24), float32(0x1p-47+0x1p-70)
	a.Equal(float32(1+0x1p-23), Fma(x, y, z))
	a.NotEqual(float32(1+0x1p-23), float32(float64(x)*float64(y)+float64(z)))

	inf32 := float32(math.Inf(1))
	a.True(IsNaN(Fma(inf32, 0, 1)))
	a.True(IsNaN(Fma(inf32, 1, -inf32)))
	a.Equal(-inf32, Fma(float32(1e30), 1e30, -inf32))
	a.Equal(inf32, Fma(float32(3e38), 10, 0))
	a.True(Signbit(Fma(float32(negZero), 1, float32(negZero))))
	a.False(Signbit(Fma(float32(1), 1, -1)))

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		x := float32(randFloat(r, -60, 40))
		y := float32(randFloat(r, -60, 40))
		z := float32(randFloat(r, -150, 60))
		a.Equal(fma32(x, y, z), Fma(x, y, z), "fma(%g, %g, %g)", x, y, z)
	}
}

// fma32 computes x*y+z exactly and rounds it to float32.
func fma32(x, y, z float32) float32 {
	p := new(big.Float).SetPrec(200).Mul(big.NewFloat(float64(x)), big.NewFloat(float64(y)))
	s := new(big.Float).SetPrec(600).Add(p, big.NewFloat(float64(z)))
	f, _ := s.Float32()
	return f
}

func TestNan(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0x7ff8000000000123), math.Float64bits(Nan[float64]("0x123")))
	a.Equal(uint64(0x7ff8000000000000), math.Float64bits(Nan[float64]("")))
	a.Equal(uint32(0x7fc00005), math.Float32bits(Nan[float32]("5")))
	a.Equal(uint32(0x7fc00000), math.Float32bits(Nan[float32]("junk")))
	a.False(IsSignaling(Nan[float64]("0")))
}

func BenchmarkScalbn(b *testing.B) {
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += Scalbn(1.5, -1074+i&2047)
	}
	if sum < 0 {
		b.Fatal(sum)
	}
}

func BenchmarkFma32(b *testing.B) {
	var sum float32
	for i := 0; i < b.N; i++ {
		sum += Fma(float32(i), 1.5, 0.25)
	}
	if sum < 0 {
		b.Fatal(sum)
	}
}
