// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
	"math/big"

	"github.com/avdva/libm/internal/bigmath"
)

const (
	// pi/2 in three pieces, 33 bits each, and the tails.
	pio2a   = 1.57079632673412561417e+00
	pio2at  = 6.07710050650619224932e-11
	pio2b   = 6.07710050630396597660e-11
	pio2bt  = 2.02226624879595063154e-21
	pio2c   = 2.02226624871116645580e-21
	pio2ct  = 8.47842766036889956997e-32
	invPio2 = 6.36619772367581382433e-01

	// |x| at which the Cody-Waite reduction loses accuracy: 2^20 * pi/2.
	reduceThreshold = 0x1p20 * math.Pi / 2

	// bits of the big reduction. Enough for the closest approach of a float64 to a multiple of pi/2.
	reducePrec = 200

	sinS1 = -1.66666666666666324348e-01
	sinS2 = 8.33333333332248946124e-03
	sinS3 = -1.98412698298579493134e-04
	sinS4 = 2.75573137070700676789e-06
	sinS5 = -2.50507602534068634195e-08
	sinS6 = 1.58969099521155010221e-10

	cosC1 = 4.16666666666666019037e-02
	cosC2 = -1.38888888888741095749e-03
	cosC3 = 2.48015872894767294178e-05
	cosC4 = -2.75573143513906633035e-07
	cosC5 = 2.08757232129817482790e-09
	cosC6 = -1.13596475577881948265e-11
)

func biasedExp(x float64) int {
	return int(math.Float64bits(x)>>52) & 0x7ff
}

// remPio2 returns n and y0 + y1 = x - n*pi/2 with |y0 + y1| <= pi/4 (approximately) for a finite x.
func remPio2(x float64) (n int, y0, y1 float64) {
	if math.Abs(x) >= reduceThreshold {
		return remPio2Big(x)
	}
	fn := RoundEven(x * invPio2)
	n = int(fn)
	r := x - fn*pio2a
	w := fn * pio2at
	y0 = r - w
	j := biasedExp(x)
	if j-biasedExp(y0) > 16 {
		// cancellation, use the second piece.
		t := r
		w = fn * pio2b
		r = t - w
		w = fn*pio2bt - ((t - r) - w)
		y0 = r - w
		if j-biasedExp(y0) > 49 {
			t = r
			w = fn * pio2c
			r = t - w
			w = fn*pio2ct - ((t - r) - w)
			y0 = r - w
		}
	}
	y1 = (r - y0) - w
	return n, y0, y1
}

func remPio2Big(x float64) (n int, y0, y1 float64) {
	r, q := bigmath.RemPio2(new(big.Float).SetFloat64(x), reducePrec)
	y0, _ = r.Float64()
	y1, _ = r.Sub(r, new(big.Float).SetFloat64(y0)).Float64()
	return q, y0, y1
}

// kernelSin returns sin(x + y) for |x| <= pi/4, y is the tail of x.
// If iy is false, y is assumed to be 0.
func kernelSin(x, y float64, iy bool) float64 {
	z := x * x
	w := z * z
	r := sinS2 + z*(sinS3+z*sinS4) + z*w*(sinS5+z*sinS6)
	v := z * x
	if !iy {
		return x + v*(sinS1+z*r)
	}
	return x - ((z*(0.5*y-v*r) - y) - v*sinS1)
}

// kernelCos returns cos(x + y) for |x| <= pi/4, y is the tail of x.
func kernelCos(x, y float64) float64 {
	z := x * x
	w := z * z
	r := z*(cosC1+z*(cosC2+z*cosC3)) + w*w*(cosC4+z*(cosC5+z*cosC6))
	hz := 0.5 * z
	w = 1 - hz
	return w + (((1 - w) - hz) + (z*r - x*y))
}

// Sin returns the sine of the radian argument x.
// Sin(±0) = ±0, Sin(±Inf) = NaN.
func Sin[T Float](x T) T {
	return T(sin(float64(x)))
}

func sin(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case math.Abs(x) <= math.Pi/4:
		if math.Abs(x) < 0x1p-27 {
			return x
		}
		return kernelSin(x, 0, false)
	}
	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelSin(y0, y1, true)
	case 1:
		return kernelCos(y0, y1)
	case 2:
		return -kernelSin(y0, y1, true)
	}
	return -kernelCos(y0, y1)
}

// Cos returns the cosine of the radian argument x.
// Cos(±Inf) = NaN.
func Cos[T Float](x T) T {
	return T(cos(float64(x)))
}

func cos(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case math.Abs(x) <= math.Pi/4:
		if math.Abs(x) < 0x1p-27 {
			return 1
		}
		return kernelCos(x, 0)
	}
	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelCos(y0, y1)
	case 1:
		return -kernelSin(y0, y1, true)
	case 2:
		return -kernelCos(y0, y1)
	}
	return kernelSin(y0, y1, true)
}

// Sincos returns Sin(x), Cos(x) with a single argument reduction.
func Sincos[T Float](x T) (sin, cos T) {
	s, c := sincos(float64(x))
	return T(s), T(c)
}

func sincos(x float64) (s, c float64) {
	switch {
	case math.IsNaN(x):
		return x, x
	case math.IsInf(x, 0):
		return math.NaN(), math.NaN()
	case math.Abs(x) <= math.Pi/4:
		if math.Abs(x) < 0x1p-27 {
			return x, 1
		}
		return kernelSin(x, 0, false), kernelCos(x, 0)
	}
	n, y0, y1 := remPio2(x)
	s, c = kernelSin(y0, y1, true), kernelCos(y0, y1)
	switch n & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	return s, c
}

// Tan returns the tangent of the radian argument x.
// Tan(±0) = ±0, Tan(±Inf) = NaN.
func Tan[T Float](x T) T {
	return T(tan(float64(x)))
}

func tan(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case math.Abs(x) < 0x1p-27:
		return x
	}
	s, c := sincos(x)
	return s / c
}
