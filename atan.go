// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"math"
)

const (
	piHi   = 3.14159265358979311600e+00
	piLo   = 1.2246467991473531772e-16
	pio2Hi = 1.57079632679489655800e+00
	pio2Lo = 6.12323399573676603587e-17
	pio4Hi = 7.85398163397448278999e-01
)

var (
	// atan(0.5), atan(1), atan(1.5) and atan(inf), high and low parts.
	atanHi = [...]float64{
		4.63647609000806093515e-01,
		7.85398163397448278999e-01,
		9.82793723247329054082e-01,
		1.57079632679489655800e+00,
	}
	atanLo = [...]float64{
		2.26987774529616870924e-17,
		3.06161699786838301793e-17,
		1.39033110312309984516e-17,
		6.12323399573676603587e-17,
	}
	atanT = [...]float64{
		3.33333333333329318027e-01,
		-1.99999999998764832476e-01,
		1.42857142725034663711e-01,
		-1.11111104054623557880e-01,
		9.09088713343650656196e-02,
		-7.69187620504482999495e-02,
		6.66107313738753120669e-02,
		-5.83357013379057348645e-02,
		4.97687799461593236017e-02,
		-3.65315727442169155270e-02,
		1.62858201153657823623e-02,
	}
)

// Atan returns the arctangent of x in radians.
// Atan(±0) = ±0, Atan(±Inf) = ±Pi/2.
func Atan[T Float](x T) T {
	return T(atan(float64(x)))
}

func atan(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	if ax >= 0x1p66 {
		return math.Copysign(atanHi[3]+atanLo[3], x)
	}
	id := -1
	switch {
	case ax < 0.4375:
		if ax < 0x1p-27 {
			return x
		}
	case ax < 0.6875:
		id, ax = 0, (2*ax-1)/(2+ax)
	case ax < 1.1875:
		id, ax = 1, (ax-1)/(ax+1)
	case ax < 2.4375:
		id, ax = 2, (ax-1.5)/(1+1.5*ax)
	default:
		id, ax = 3, -1/ax
	}
	z := ax * ax
	w := z * z
	s1 := z * (atanT[0] + w*(atanT[2]+w*(atanT[4]+w*(atanT[6]+w*(atanT[8]+w*atanT[10])))))
	s2 := w * (atanT[1] + w*(atanT[3]+w*(atanT[5]+w*(atanT[7]+w*atanT[9]))))
	if id < 0 {
		return x - x*(s1+s2)
	}
	z = atanHi[id] - ((ax*(s1+s2) - atanLo[id]) - ax)
	return math.Copysign(z, x)
}

// Atan2 returns the arctangent of y/x, using the signs of both to determine the quadrant.
//
//	Atan2(±0, x>=0 or +0) = ±0
//	Atan2(±0, x<=-0) = ±Pi
//	Atan2(y>0, ±0) = +Pi/2, Atan2(y<0, ±0) = -Pi/2
//	Atan2(±Inf, +Inf) = ±Pi/4, Atan2(±Inf, -Inf) = ±3Pi/4
//	Atan2(y, +Inf) = ±0, Atan2(y>0, -Inf) = +Pi, Atan2(y<0, -Inf) = -Pi
//	Atan2(±Inf, x) = ±Pi/2
func Atan2[T Float](y, x T) T {
	return T(atan2(float64(y), float64(x)))
}

func atan2(y, x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return x + y
	case x == 1:
		return atan(y)
	}
	var m int
	if math.Signbit(y) {
		m |= 1
	}
	if math.Signbit(x) {
		m |= 2
	}
	switch {
	case y == 0:
		switch m {
		case 0, 1:
			return y
		case 2:
			return piHi
		}
		return -piHi
	case x == 0:
		return math.Copysign(pio2Hi, y)
	case math.IsInf(x, 0):
		if math.IsInf(y, 0) {
			return [...]float64{pio4Hi, -pio4Hi, 3 * pio4Hi, -3 * pio4Hi}[m]
		}
		return [...]float64{0, math.Copysign(0, -1), piHi, -piHi}[m]
	case math.IsInf(y, 0):
		return math.Copysign(pio2Hi, y)
	}
	var z float64
	switch k := Ilogb(y) - Ilogb(x); {
	case k > 60:
		// |y/x| > 2^60
		z = pio2Hi + 0.5*piLo
		m &= 1
	case x < 0 && k < -60:
		z = 0
	default:
		z = atan(math.Abs(y / x))
	}
	switch m {
	case 0:
		return z
	case 1:
		return -z
	case 2:
		return piHi - (z - piLo)
	}
	return (z - piLo) - piHi
}

// asinR returns the rational approximation of (asin(x) - x) / x^3 at t = x^2.
func asinR(t float64) float64 {
	const (
		pS0 = 1.66666666666666657415e-01
		pS1 = -3.25565818622400915405e-01
		pS2 = 2.01212532134862925881e-01
		pS3 = -4.00555345006794114027e-02
		pS4 = 7.91534994289814532176e-04
		pS5 = 3.47933107596021167570e-05
		qS1 = -2.40339491173441421878e+00
		qS2 = 2.02094576023350569471e+00
		qS3 = -6.88283971605453293030e-01
		qS4 = 7.70381505559019352791e-02
	)
	p := t * (pS0 + t*(pS1+t*(pS2+t*(pS3+t*(pS4+t*pS5)))))
	q := 1 + t*(qS1+t*(qS2+t*(qS3+t*qS4)))
	return p / q
}

// high32 returns x with the low 32 bits cleared.
func high32(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ 0xffffffff)
}

// Asin returns the arcsine of x in radians.
// Asin(±0) = ±0, Asin(|x| > 1) = NaN.
func Asin[T Float](x T) T {
	return T(asin(float64(x)))
}

func asin(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	switch {
	case ax == 1:
		return x*pio2Hi + x*pio2Lo
	case ax > 1:
		return math.NaN()
	case ax < 0.5:
		if ax < 0x1p-26 {
			return x
		}
		return x + x*asinR(x*x)
	}
	t := (1 - ax) * 0.5
	r := asinR(t)
	s := math.Sqrt(t)
	if ax >= 0.975 {
		t = pio2Hi - (2*(s+s*r) - pio2Lo)
	} else {
		w := high32(s)
		c := (t - w*w) / (s + w)
		p := 2*s*r - (pio2Lo - 2*c)
		q := pio4Hi - 2*w
		t = pio4Hi - (p - q)
	}
	return math.Copysign(t, x)
}

// Acos returns the arccosine of x in radians.
// Acos(1) = +0, Acos(|x| > 1) = NaN.
func Acos[T Float](x T) T {
	return T(acos(float64(x)))
}

func acos(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	switch {
	case x == 1:
		return 0
	case x == -1:
		return piHi + 2*pio2Lo
	case ax > 1:
		return math.NaN()
	case ax < 0.5:
		if ax <= 0x1p-57 {
			return pio2Hi + pio2Lo
		}
		return pio2Hi - (x - (pio2Lo - x*asinR(x*x)))
	case x < 0:
		z := (1 + x) * 0.5
		s := math.Sqrt(z)
		w := asinR(z)*s - pio2Lo
		return piHi - 2*(s+w)
	}
	z := (1 - x) * 0.5
	s := math.Sqrt(z)
	df := high32(s)
	c := (z - df*df) / (s + df)
	w := asinR(z)*s + c
	return 2 * (df + w)
}
