// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import "github.com/avdva/libm/ext"

// Class is the category of a floating-point value.
type Class = ext.Class

// Categories returned by Classify. The values match FP_NAN..FP_NORMAL of C.
const (
	ClassNaN       = ext.ClassNaN
	ClassInfinite  = ext.ClassInfinite
	ClassZero      = ext.ClassZero
	ClassSubnormal = ext.ClassSubnormal
	ClassNormal    = ext.ClassNormal
)

// Classify returns the category of x.
// It only inspects the bits of x.
func Classify[T Float](x T) Class {
	_, exp, frac := fields(x)
	switch {
	case exp == int(formatOf[T]().expMask()):
		if frac == 0 {
			return ClassInfinite
		}
		return ClassNaN
	case exp == 0:
		if frac == 0 {
			return ClassZero
		}
		return ClassSubnormal
	}
	return ClassNormal
}

// IsFinite reports whether x is zero, subnormal or normal.
func IsFinite[T Float](x T) bool {
	_, exp, _ := fields(x)
	return exp != int(formatOf[T]().expMask())
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf[T Float](x T, sign int) bool {
	if Classify(x) != ClassInfinite {
		return false
	}
	return sign == 0 || sign > 0 && !Signbit(x) || sign < 0 && Signbit(x)
}

// IsNaN reports whether x is a NaN with any payload.
func IsNaN[T Float](x T) bool {
	return Classify(x) == ClassNaN
}

// IsNormal reports whether x is normal.
func IsNormal[T Float](x T) bool {
	return Classify(x) == ClassNormal
}

// IsSignaling reports whether x is a signaling NaN.
func IsSignaling[T Float](x T) bool {
	return IsNaN(x) && bitsOf(x)&formatOf[T]().quietBit() == 0
}

// Signbit reports whether the sign bit of x is set.
// It distinguishes -0 from +0 and works for NaNs.
func Signbit[T Float](x T) bool {
	neg, _, _ := fields(x)
	return neg
}

// IsUnordered reports whether x or y is a NaN.
func IsUnordered[T Float](x, y T) bool {
	return IsNaN(x) || IsNaN(y)
}

// IsGreater reports whether x > y without raising exceptions on NaNs.
func IsGreater[T Float](x, y T) bool {
	return !IsUnordered(x, y) && x > y
}

// IsGreaterEqual reports whether x >= y without raising exceptions on NaNs.
func IsGreaterEqual[T Float](x, y T) bool {
	return !IsUnordered(x, y) && x >= y
}

// IsLess reports whether x < y without raising exceptions on NaNs.
func IsLess[T Float](x, y T) bool {
	return !IsUnordered(x, y) && x < y
}

// IsLessEqual reports whether x <= y without raising exceptions on NaNs.
func IsLessEqual[T Float](x, y T) bool {
	return !IsUnordered(x, y) && x <= y
}

// IsLessGreater reports whether x < y or x > y without raising exceptions on NaNs.
func IsLessGreater[T Float](x, y T) bool {
	return !IsUnordered(x, y) && x != y
}
