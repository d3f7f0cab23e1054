// Package mathutil contains integer and floating-point helpers shared by the libm packages:
// decimal digit counting, branchless integer ops and error-free float64 transformations.
package mathutil

import (
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	// HasFMA is true if math.FMA compiles to a single hardware instruction.
	// Without it math.FMA is emulated in software, and TwoProd uses Dekker's product instead.
	HasFMA = detectFMA()
)

func detectFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	}
	return false
}

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// DecimalLenInt64 returns the length of the decimal representation of 'value', including the sign.
func DecimalLenInt64(value int64) int {
	result := 0
	if value < 0 {
		result++
	}
	return result + DecimalDigits(uint64(AbsInt64(value)))
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// TwoSum returns s = fl(a+b) and the exact rounding error e, so that a+b == s+e.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := float64(s - a)
	e = (a - float64(s-bb)) + (b - bb)
	return s, e
}

// FastTwoSum is TwoSum for |a| >= |b|.
func FastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - float64(s-a)
	return s, e
}

// TwoProd returns p = fl(a*b) and the exact rounding error e, so that a*b == p+e,
// unless the product underflows.
func TwoProd(a, b float64) (p, e float64) {
	p = a * b
	if HasFMA {
		return p, math.FMA(a, b, -p)
	}
	return p, dekkerErr(a, b, p)
}

func dekkerErr(a, b, p float64) float64 {
	ah, al := Split(a)
	bh, bl := Split(b)
	return float64(float64(float64(float64(ah*bh)-p)+float64(ah*bl))+float64(al*bh)) + float64(al*bl)
}

// Split splits a into two non-overlapping 26-bit halves, a == hi+lo.
func Split(a float64) (hi, lo float64) {
	const splitter = 1<<27 + 1
	c := float64(splitter * a)
	hi = c - float64(c-a)
	return hi, a - hi
}

// MulDD multiplies two double-double numbers.
func MulDD(ah, al, bh, bl float64) (hi, lo float64) {
	p, e := TwoProd(ah, bh)
	e += ah*bl + al*bh
	return FastTwoSum(p, e)
}

// AddDD adds two double-double numbers.
func AddDD(ah, al, bh, bl float64) (hi, lo float64) {
	s, e := TwoSum(ah, bh)
	e += al + bl
	return FastTwoSum(s, e)
}

// MulDF multiplies a double-double number by a float64.
func MulDF(ah, al, b float64) (hi, lo float64) {
	p, e := TwoProd(ah, b)
	e += al * b
	return FastTwoSum(p, e)
}
