// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ext implements the x87 80-bit extended precision format in software.
//
// A Float80 has a sign bit, a 15-bit biased exponent and a 64-bit significand
// with an explicit integer bit:
//
//	79 78            64 63 62                                               0
//	_|_______________|__|_|________________________________________________
//	seeeeeeeeeeeeeeeeeimmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Arithmetic is exact up to the final rounding, which honors the rounding
// mode of an *fenv.Env and raises its exception flags.
// Functions without an environment round to nearest and raise nothing.
package ext

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/libm/fenv"
	"github.com/avdva/libm/internal/bigmath"
	"github.com/avdva/libm/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as decimal strings, like `"1.5"`.
	JSONModeString = iota
	// JSONModeHex produces the bit pattern as a string, like `"0x3fffc000000000000000"`.
	JSONModeHex
	// JSONModeME marshals values with a binary mantissa and exponent, like `{"m":3,"e":-1}`.
	// Infinities and NaNs are marshaled as strings.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

const (
	mantBits = 64
	expBias  = 16383
	expMask  = 1<<15 - 1
	signBit  = 1 << 15
	intBit   = 1 << 63
	quietBit = 1 << 62

	minExp = 1 - expBias // exponent of SmallestNormal
	maxExp = expMask - 1 - expBias

	// hexLen is the number of hex digits in a bit pattern.
	hexLen = 20
)

var (
	// MaxFloat80 is the largest finite value.
	MaxFloat80 = Float80{se: expMask - 1, m: math.MaxUint64}
	// SmallestNormal is the smallest positive normal value, 2^-16382.
	SmallestNormal = Float80{se: 1, m: intBit}
	// SmallestNonzero is the smallest positive subnormal value, 2^-16445.
	SmallestNonzero = Float80{m: 1}

	jsonParts = []string{`{"m":`, `,"e":`, `}`}
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Float80 is an x87 extended precision value.
// The zero value is +0.
type Float80 struct {
	se uint16
	m  uint64
}

// FromBits returns a value with the given sign/exponent and significand words.
func FromBits(se uint16, m uint64) Float80 {
	return Float80{se: se, m: m}
}

// Bits returns the sign/exponent and significand words.
func (x Float80) Bits() (se uint16, m uint64) {
	return x.se, x.m
}

func (x Float80) biased() int {
	return int(x.se & expMask)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float80 {
	x := Float80{se: expMask, m: intBit}
	if sign < 0 {
		x.se |= signBit
	}
	return x
}

// NaN returns the default quiet NaN.
func NaN() Float80 {
	return Float80{se: expMask, m: intBit | quietBit}
}

// FromFloat64 returns the exact extended value of f.
// NaN payloads are kept.
func FromFloat64(f float64) Float80 {
	b := math.Float64bits(f)
	se := uint16(b>>63) << 15
	e := int(b>>52) & 0x7ff
	frac := b & (1<<52 - 1)
	switch e {
	case 0x7ff:
		return Float80{se: se | expMask, m: intBit | frac<<11}
	case 0:
		if frac == 0 {
			return Float80{se: se}
		}
		// subnormal doubles are normal here.
		lz := bits.LeadingZeros64(frac)
		return Float80{se: se | uint16(expBias+63-1074-lz), m: frac << lz}
	}
	return Float80{se: se | uint16(e-1023+expBias), m: intBit | frac<<11}
}

// FromFloat32 returns the exact extended value of f.
func FromFloat32(f float32) Float80 {
	return FromFloat64(float64(f))
}

// FromInt64 returns the exact extended value of i.
func FromInt64(i int64) Float80 {
	if i == 0 {
		return Float80{}
	}
	var se uint16
	u := uint64(i)
	if i < 0 {
		se = signBit
		u = -u
	}
	lz := bits.LeadingZeros64(u)
	return Float80{se: se | uint16(expBias+63-lz), m: u << lz}
}

// toBig returns the exact value of a non-NaN x.
func (x Float80) toBig() *big.Float {
	z := new(big.Float).SetPrec(mantBits)
	if x.biased() == expMask {
		return z.SetInf(x.Signbit())
	}
	e := x.biased()
	if e == 0 {
		e = 1
	}
	z.SetUint64(x.m)
	z.SetMantExp(z, e-expBias-63)
	if x.Signbit() {
		z.Neg(z)
	}
	return z
}

// encode packs z, which must be representable.
func encode(z *big.Float) Float80 {
	var se uint16
	if z.Signbit() {
		se = signBit
	}
	switch {
	case z.IsInf():
		return Float80{se: se | expMask, m: intBit}
	case z.Sign() == 0:
		return Float80{se: se}
	}
	e := exponent(z) - 1 // z = 1.f × 2^e
	shift, biased := 63-e, e+expBias
	if e < minExp {
		shift, biased = 63-minExp, 0
	}
	a := new(big.Float).Abs(z)
	a.SetMantExp(a, shift)
	m, _ := a.Uint64()
	return Float80{se: se | uint16(biased), m: m}
}

func exponent(z *big.Float) int {
	return z.MantExp(nil)
}

// round rounds z to the format using env's mode and raises the resulting flags.
func round(env *fenv.Env, z *big.Float) Float80 {
	r, status := bigmath.Round(z, bigmath.X87, bigmath.Mode(env.Round()))
	env.Raise(bigmath.Flags(status))
	return encode(r)
}

// quiet returns the quiet version of a NaN x.
// Unnormals and pseudo-NaNs become the default NaN.
func quiet(x Float80) Float80 {
	if x.biased() != expMask || x.m&intBit == 0 {
		return NaN()
	}
	x.m |= quietBit
	return x
}

// nanResult returns the quieted first NaN among args.
// Signaling NaNs and invalid encodings raise Invalid.
func nanResult(env *fenv.Env, args ...Float80) (Float80, bool) {
	var res Float80
	found := false
	for _, a := range args {
		if !IsNaN(a) {
			continue
		}
		if IsSignaling(a) || a.biased() != expMask || a.m&intBit == 0 {
			env.Raise(fenv.Invalid)
		}
		if !found {
			res, found = quiet(a), true
		}
	}
	return res, found
}

func invalid(env *fenv.Env) Float80 {
	env.Raise(fenv.Invalid)
	return NaN()
}

// FromString parses a string into a value.
// It accepts decimal and hexadecimal ("0x1.8p3") floating-point numbers,
// "inf", "infinity" and "nan" in any case with an optional sign,
// and bit patterns of exactly 20 hex digits ("0x3fff8000000000000000").
// Decimal values are rounded to nearest.
func FromString(s string) (Float80, error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return Float80{}, err
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
		offset++
	}
	var x Float80
	switch lower := strings.ToLower(s); {
	case lower == "inf" || lower == "infinity":
		x = Inf(1)
	case lower == "nan":
		x = NaN()
	case len(s) == 2+hexLen && (strings.HasPrefix(lower, "0x")) && strings.IndexAny(lower, ".p") < 0:
		se, err := strconv.ParseUint(s[2:6], 16, 16)
		if err == nil {
			var m uint64
			if m, err = strconv.ParseUint(s[6:], 16, 64); err == nil {
				x = Float80{se: uint16(se), m: m}
				break
			}
		}
		return Float80{}, fmt.Errorf("parsing failed: %w", err)
	default:
		if err := checkNumber(s); err != nil {
			var pe *posError
			if errors.As(err, &pe) {
				pe.pos += offset + 1 // +1 to start indices from 1.
				err = pe
			}
			return Float80{}, fmt.Errorf("parsing failed: %w", err)
		}
		z, _, err := big.ParseFloat(s, 0, 2*mantBits, big.ToNearestEven)
		if err != nil {
			return Float80{}, fmt.Errorf("parsing failed: %w", err)
		}
		x = round(nil, z)
	}
	if neg {
		x.se ^= signBit
	}
	return x, nil
}

// MustFromString is like FromString, but panics on errors.
func MustFromString(s string) Float80 {
	x, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

func prepareString(s string) (prepared string, offset int, err error) {
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	return s, offset, nil
}

// checkNumber validates the syntax of an unsigned decimal or hex float,
// so that errors can point at the offending symbol.
func checkNumber(s string) error {
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	start := 0
	if hex {
		start = 2
	}
	delimPos, expPos, digits := -1, -1, 0
	for i := start; i < len(s); i++ {
		r := s[i]
		switch {
		case '0' <= r && r <= '9',
			hex && expPos < 0 && ('a' <= r && r <= 'f' || 'A' <= r && r <= 'F'):
			digits++
		case r == '.':
			if delimPos >= 0 || expPos >= 0 {
				return newPosError("unexpected delimiter", i)
			}
			delimPos = i
		case !hex && (r == 'e' || r == 'E'), hex && (r == 'p' || r == 'P'):
			if expPos >= 0 || digits == 0 {
				return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
			}
			expPos = i
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
			if i+1 == len(s) {
				return newPosError("missing exponent", i)
			}
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return newPosError("no digits", len(s)-1)
	}
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (x Float80) MarshalJSON() ([]byte, error) {
	return x.toJSON(JSONMode), nil
}

func (x Float80) toJSON(mode int) []byte {
	switch mode {
	case JSONModeHex:
		return []byte(`"` + x.hexString() + `"`)
	case JSONModeME:
		if !IsFinite(x) || x.IsZero() {
			return x.toJSON(JSONModeString)
		}
		neg, m, e := x.mantExp()
		var builder strings.Builder
		builder.Grow(x.meLen())
		builder.WriteString(jsonParts[0])
		if neg {
			builder.WriteByte('-')
		}
		builder.WriteString(strconv.FormatUint(m, 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.Itoa(e))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		str := x.toJSON(JSONModeString)
		if !IsFinite(x) || x.IsZero() || len(str) <= x.meLen() {
			return str
		}
		return x.toJSON(JSONModeME)
	default: // marshal as a string
		return []byte(`"` + x.String() + `"`)
	}
}

// meLen returns the length of the mantissa/exponent json of a finite non-zero x.
func (x Float80) meLen() int {
	neg, m, e := x.mantExp()
	n := len(jsonParts[0]) + len(jsonParts[1]) + len(jsonParts[2])
	if neg {
		n++
	}
	return n + mathutil.DecimalDigits(m) + mathutil.DecimalLenInt64(int64(e))
}

// mantExp returns m and e, such that a finite x = ±m * 2^e and m is odd or zero.
func (x Float80) mantExp() (neg bool, m uint64, e int) {
	m = x.m
	e = x.biased()
	if e == 0 {
		e = 1
	}
	e -= expBias + 63
	if m == 0 {
		e = 0
	} else {
		tz := bits.TrailingZeros64(m)
		m >>= tz
		e += tz
	}
	return x.Signbit(), m, e
}

// UnmarshalJSON unmarshals a string or a mantissa/exponent object into a value.
func (x *Float80) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			M json.Number
			E int
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		m, ok := new(big.Int).SetString(d.M.String(), 10)
		if !ok {
			return fmt.Errorf("bad mantissa %q", d.M)
		}
		z := new(big.Float).SetInt(m)
		*x = round(nil, z.SetMantExp(z, d.E))
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*x = value
	}
	return nil
}

func (x Float80) hexString() string {
	return fmt.Sprintf("0x%04x%016x", x.se, x.m)
}

// GoString returns debug string representation.
func (x Float80) GoString() string {
	return x.String() + " {" + x.hexString() + "}"
}

// String returns the shortest decimal representation that parses back to x.
func (x Float80) String() string {
	switch {
	case IsNaN(x):
		return "NaN"
	case IsInf(x, 1):
		return "+Inf"
	case IsInf(x, -1):
		return "-Inf"
	}
	return x.toBig().Text('g', -1)
}

// Float64 returns x rounded to nearest double precision.
func (x Float80) Float64() float64 {
	return ToFloat64(nil, x)
}

// Float32 returns x rounded to nearest single precision.
func (x Float80) Float32() float32 {
	return ToFloat32(nil, x)
}

// Int64 returns x truncated toward zero.
// NaNs, infinities and values out of range return math.MinInt64.
func (x Float80) Int64() int64 {
	if !IsFinite(x) {
		return math.MinInt64
	}
	i, acc := x.toBig().Int64()
	if acc != big.Exact && x.Abs().Cmp(FromInt64(math.MinInt64).Abs()) >= 0 {
		return math.MinInt64
	}
	return i
}

// ToFloat64 rounds x to double precision using env's mode and raises its flags.
func ToFloat64(env *fenv.Env, x Float80) float64 {
	if IsNaN(x) {
		if IsSignaling(x) {
			env.Raise(fenv.Invalid)
		}
		q := quiet(x)
		b := uint64(q.se>>15)<<63 | 0x7ff<<52 | q.m<<1>>12
		return math.Float64frombits(b)
	}
	r, status := bigmath.Round(x.toBig(), bigmath.Binary64, bigmath.Mode(env.Round()))
	env.Raise(bigmath.Flags(status))
	f, _ := r.Float64()
	return f
}

// ToFloat32 rounds x to single precision using env's mode and raises its flags.
func ToFloat32(env *fenv.Env, x Float80) float32 {
	if IsNaN(x) {
		if IsSignaling(x) {
			env.Raise(fenv.Invalid)
		}
		q := quiet(x)
		b := uint32(q.se>>15)<<31 | 0xff<<23 | uint32(q.m<<1>>41)
		return math.Float32frombits(b)
	}
	r, status := bigmath.Round(x.toBig(), bigmath.Binary32, bigmath.Mode(env.Round()))
	env.Raise(bigmath.Flags(status))
	f, _ := r.Float32()
	return f
}
