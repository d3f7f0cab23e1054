// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

// Class is the category of a floating-point value.
// The values match FP_NAN..FP_NORMAL of C.
type Class int

const (
	ClassNaN Class = iota
	ClassInfinite
	ClassZero
	ClassSubnormal
	ClassNormal
)

var classNames = [...]string{"nan", "infinite", "zero", "subnormal", "normal"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Classify returns the category of x.
// Pseudo-infinities, pseudo-NaNs and unnormals are invalid encodings
// on modern x87 units and classify as NaN.
// Pseudo-denormals (zero exponent with the integer bit set) are normal.
func Classify(x Float80) Class {
	e := x.biased()
	switch {
	case e == expMask:
		if x.m == intBit {
			return ClassInfinite
		}
		return ClassNaN
	case e == 0:
		switch {
		case x.m == 0:
			return ClassZero
		case x.m&intBit != 0:
			return ClassNormal
		}
		return ClassSubnormal
	case x.m&intBit == 0:
		return ClassNaN
	}
	return ClassNormal
}

// IsFinite reports whether x is zero, subnormal or normal.
func IsFinite(x Float80) bool {
	c := Classify(x)
	return c != ClassNaN && c != ClassInfinite
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf(x Float80, sign int) bool {
	if Classify(x) != ClassInfinite {
		return false
	}
	return sign == 0 || sign > 0 && !x.Signbit() || sign < 0 && x.Signbit()
}

// IsNaN reports whether x is a NaN or an invalid encoding.
func IsNaN(x Float80) bool {
	return Classify(x) == ClassNaN
}

// IsNormal reports whether x is normal.
func IsNormal(x Float80) bool {
	return Classify(x) == ClassNormal
}

// IsSignaling reports whether x is a signaling NaN.
func IsSignaling(x Float80) bool {
	return x.biased() == expMask && x.m&intBit != 0 && x.m&quietBit == 0 && x.m&(quietBit-1) != 0
}

// Signbit reports whether the sign bit of x is set.
func (x Float80) Signbit() bool {
	return x.se&signBit != 0
}

// Signbit reports whether the sign bit of x is set.
func Signbit(x Float80) bool {
	return x.Signbit()
}

// cmp compares two non-NaN values.
func cmp(x, y Float80) int {
	return x.toBig().Cmp(y.toBig())
}

// IsUnordered reports whether x or y is a NaN.
func IsUnordered(x, y Float80) bool {
	return IsNaN(x) || IsNaN(y)
}

// IsGreater reports whether x > y without raising exceptions on NaNs.
func IsGreater(x, y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) > 0
}

// IsGreaterEqual reports whether x >= y without raising exceptions on NaNs.
func IsGreaterEqual(x, y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) >= 0
}

// IsLess reports whether x < y without raising exceptions on NaNs.
func IsLess(x, y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) < 0
}

// IsLessEqual reports whether x <= y without raising exceptions on NaNs.
func IsLessEqual(x, y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) <= 0
}

// IsLessGreater reports whether x < y or x > y without raising exceptions on NaNs.
func IsLessGreater(x, y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) != 0
}

// Cmp compares x and y.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
// Zeros of both signs are equal. NaNs are unordered, Cmp returns 0 for them.
func (x Float80) Cmp(y Float80) int {
	if IsUnordered(x, y) {
		return 0
	}
	return cmp(x, y)
}

// Eq reports whether x == y in the IEEE sense: NaNs are never equal, +0 == -0.
func (x Float80) Eq(y Float80) bool {
	return !IsUnordered(x, y) && cmp(x, y) == 0
}

// Neg returns -x.
func (x Float80) Neg() Float80 {
	x.se ^= signBit
	return x
}

// Abs returns |x|.
func (x Float80) Abs() Float80 {
	x.se &^= signBit
	return x
}

// IsZero reports whether x is ±0.
func (x Float80) IsZero() bool {
	return Classify(x) == ClassZero
}

// isInt reports whether a finite x is an integer.
func isInt(x Float80) bool {
	return x.toBig().IsInt()
}

// isOddInt reports whether a finite x is an odd integer.
func isOddInt(x Float80) bool {
	z := x.toBig()
	if !z.IsInt() {
		return false
	}
	i, _ := z.Int(nil)
	return i.Bit(0) == 1
}
