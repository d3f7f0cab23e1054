// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package libm implements the C math library for float32 and float64:
// classification, rounding and remainder operations, and elementary and special functions.
//
// All functions are generic over Float. A float32 argument is evaluated
// with the float64 kernel and rounded once.
// Operations that depend on the rounding mode or raise exceptions take a *fenv.Env.
// A nil Env rounds to nearest and discards exceptions.
//
// The 80-bit extended precision versions live in package ext.
package libm

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/avdva/libm/fenv"
)

// Float is a floating-point type supported by the package.
type Float interface {
	constraints.Float
}

// format describes an IEEE-754 binary interchange format.
type format struct {
	fracBits uint
	expBits  uint
	bias     int
}

var (
	binary32 = format{fracBits: 23, expBits: 8, bias: 127}
	binary64 = format{fracBits: 52, expBits: 11, bias: 1023}
)

func (f *format) expMask() uint64 {
	return 1<<f.expBits - 1
}

func (f *format) fracMask() uint64 {
	return 1<<f.fracBits - 1
}

func (f *format) signBit() uint64 {
	return 1 << (f.fracBits + f.expBits)
}

func (f *format) quietBit() uint64 {
	return 1 << (f.fracBits - 1)
}

// minExp is the exponent of the smallest normal value.
func (f *format) minExp() int {
	return 1 - f.bias
}

func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func formatOf[T Float]() *format {
	if is32[T]() {
		return &binary32
	}
	return &binary64
}

// bitsOf returns the IEEE bit pattern of x.
func bitsOf[T Float](x T) uint64 {
	if is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// fromBits returns the value with the IEEE bit pattern b.
func fromBits[T Float](b uint64) T {
	if is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// fields splits x into the sign, the biased exponent and the fraction.
func fields[T Float](x T) (neg bool, exp int, frac uint64) {
	f := formatOf[T]()
	b := bitsOf(x)
	return b&f.signBit() != 0, int(b >> f.fracBits & f.expMask()), b & f.fracMask()
}

// quiet returns a NaN x with the quiet bit set.
func quiet[T Float](x T) T {
	return fromBits[T](bitsOf(x) | formatOf[T]().quietBit())
}

// nan returns the default quiet NaN.
func nan[T Float]() T {
	f := formatOf[T]()
	return fromBits[T](f.expMask()<<f.fracBits | f.quietBit())
}

func inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// withSign returns |x| with the sign bit set if neg.
func withSign[T Float](x T, neg bool) T {
	f := formatOf[T]()
	b := bitsOf(x) &^ f.signBit()
	if neg {
		b |= f.signBit()
	}
	return fromBits[T](b)
}

// maxFloat returns the largest finite value of T.
func maxFloat[T Float]() T {
	if is32[T]() {
		return math.MaxFloat32
	}
	m := math.MaxFloat64
	return T(m)
}

// nanResult returns the quieted first NaN among args.
// Signaling NaNs raise Invalid.
func nanResult[T Float](env *fenv.Env, args ...T) (T, bool) {
	var res T
	found := false
	for _, a := range args {
		if !IsNaN(a) {
			continue
		}
		if IsSignaling(a) {
			env.Raise(fenv.Invalid)
		}
		if !found {
			res, found = quiet(a), true
		}
	}
	return res, found
}
