package bigmath

import (
	"math"
	"math/big"
)

// maxExpArg bounds the arguments of Exp: the result exponent must fit an int32.
const maxExpArg = 1 << 30

// Exp returns e^x.
func Exp(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	switch {
	case x.IsInf():
		if x.Sign() > 0 {
			return z.SetInf(false)
		}
		return z
	case x.Sign() == 0:
		return z.SetInt64(1)
	}
	ex := exponent(x)
	if ex > 31 {
		if x.Sign() > 0 {
			return z.SetInf(false)
		}
		return z
	}
	wp := prec + guard
	if ex > 0 {
		wp += uint(ex)
	}
	// x = k·ln2 + r, |r| <= ln2/2
	ln2 := Ln2(wp + guard)
	k := nearestInt(newFloat(wp).Quo(x, ln2))
	r := newFloat(wp + guard).SetInt(k)
	r.Mul(r, ln2)
	r.Sub(x, r)

	const halvings = 10
	r.SetMantExp(r, -halvings)
	sum := expTaylor(r, wp)
	for i := 0; i < halvings; i++ {
		sum.Mul(sum, sum)
	}
	if !k.IsInt64() || k.Int64() > maxExpArg || k.Int64() < -maxExpArg {
		if k.Sign() > 0 {
			return z.SetInf(false)
		}
		return z
	}
	sum.SetMantExp(sum, int(k.Int64()))
	return z.Set(sum)
}

// expTaylor sums the exponential series for a small r.
func expTaylor(r *big.Float, prec uint) *big.Float {
	sum := newFloat(prec).SetInt64(1)
	term := newFloat(prec).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Mul(term, r)
		term.Quo(term, intFloat(k, prec))
		sum.Add(sum, term)
		if negligible(term, sum, prec) {
			return sum
		}
	}
}

// Expm1 returns e^x - 1.
func Expm1(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	if x.Sign() == 0 || tiny(x, prec) {
		return z.Set(x)
	}
	if x.IsInf() && x.Sign() < 0 {
		return z.SetInt64(-1)
	}
	wp := prec + guard + lostBits(x)
	e := Exp(x, wp)
	return z.Sub(e, intFloat(1, wp))
}

// Log returns ln(x) for x > 0.
func Log(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	if x.IsInf() {
		return z.SetInf(false)
	}
	wp := prec + guard
	m := new(big.Float)
	e := x.MantExp(m)
	if m.Cmp(big.NewFloat(math.Sqrt2/2)) < 0 {
		m.SetMantExp(m, 1)
		e--
	}
	// ln(m) = 2·atanh(s), s = (m-1)/(m+1), |s| <= 0.172
	num := newFloat(wp).Sub(m, intFloat(1, wp))
	den := newFloat(wp).Add(m, intFloat(1, wp))
	s := num.Quo(num, den)
	sum := atanhSeries(s, wp)
	sum.SetMantExp(sum, 1)
	if e != 0 {
		t := Ln2(wp + guard)
		t.Mul(t, intFloat(int64(e), wp+guard))
		sum.Add(sum, t)
	}
	return z.Set(sum)
}

// atanhSeries returns s + s³/3 + s⁵/5 + ...
func atanhSeries(s *big.Float, prec uint) *big.Float {
	sum := newFloat(prec).Set(s)
	if s.Sign() == 0 {
		return sum
	}
	s2 := newFloat(prec).Mul(s, s)
	pw := newFloat(prec).Set(s)
	term := newFloat(prec)
	for k := int64(1); ; k++ {
		pw.Mul(pw, s2)
		term.Quo(pw, intFloat(2*k+1, prec))
		sum.Add(sum, term)
		if negligible(term, sum, prec) {
			return sum
		}
	}
}

// Log1p returns ln(1+x) for x > -1.
func Log1p(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	// 1+x is computed exactly.
	p := x.Prec() + lostBits(x) + 2
	u := newFloat(p).Add(x, intFloat(1, p))
	return Log(u, prec)
}

// Log2 returns log2(x) for x > 0.
func Log2(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	l := Log(x, wp)
	return newFloat(prec).Quo(l, Ln2(wp))
}

// Log10 returns log10(x) for x > 0.
func Log10(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	l := Log(x, wp)
	return newFloat(prec).Quo(l, Log(intFloat(10, wp), wp))
}

// Exp2 returns 2^x.
func Exp2(x *big.Float, prec uint) *big.Float {
	ex := exponent(x)
	wp := prec + guard
	if ex > 0 {
		wp += uint(ex)
	}
	t := newFloat(wp).Mul(x, Ln2(wp))
	return Exp(t, prec)
}

// Exp10 returns 10^x.
func Exp10(x *big.Float, prec uint) *big.Float {
	ex := exponent(x)
	wp := prec + guard
	if ex > 0 {
		wp += uint(ex)
	}
	t := newFloat(wp).Mul(x, Log(intFloat(10, wp), wp))
	return Exp(t, prec)
}

// Pow returns |x|^y for finite non-zero x and finite y.
// Signs and special cases are the caller's business.
func Pow(x, y *big.Float, prec uint) *big.Float {
	ax := new(big.Float).Abs(x)
	wp := prec + guard
	l := Log(ax, wp+64)
	l.Mul(l, y)
	if ex := exponent(l); ex > 0 {
		wp += uint(ex)
		l = Log(ax, wp+64)
		l.Mul(l, y)
	}
	return Exp(l, prec)
}

// Sqrt returns the square root of x >= 0.
func Sqrt(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	if x.Sign() == 0 {
		return z.Set(x)
	}
	return z.Sqrt(x)
}

// Cbrt returns the cube root of x.
func Cbrt(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	if x.Sign() == 0 || x.IsInf() {
		return z.Set(x)
	}
	wp := prec + guard
	m := new(big.Float)
	e := x.MantExp(m)
	m.Abs(m)
	r := e % 3
	if r < 0 {
		r += 3
	}
	m.SetMantExp(m, r)
	e = (e - r) / 3
	mf, _ := m.Float64()
	y := newFloat(wp).SetFloat64(math.Cbrt(mf))
	y3 := newFloat(wp)
	t := newFloat(wp)
	// Newton: y -= (y³ - m) / (3y²)
	for i := 0; i < 3; i++ {
		y3.Mul(y, y)
		t.Mul(y3, intFloat(3, wp))
		y3.Mul(y3, y)
		y3.Sub(y3, m)
		t.Quo(y3, t)
		y.Sub(y, t)
	}
	y.SetMantExp(y, e)
	if x.Sign() < 0 {
		y.Neg(y)
	}
	return z.Set(y)
}

// Hypot returns sqrt(x²+y²).
func Hypot(x, y *big.Float, prec uint) *big.Float {
	wp := 2*(x.Prec()+y.Prec()) + prec + guard
	s := newFloat(wp).Mul(x, x)
	t := newFloat(wp).Mul(y, y)
	s.Add(s, t)
	return Sqrt(s, prec)
}

// RemPio2 returns r = x - k·π/2 with |r| <= π/4 computed with prec good bits,
// and k mod 4.
func RemPio2(x *big.Float, prec uint) (r *big.Float, quadrant int) {
	ex := exponent(x)
	wp := prec + 2*guard
	if ex > 0 {
		wp += uint(ex)
	}
	if x.Prec() > wp {
		wp = x.Prec() + guard
	}
	pio2 := Pi(wp)
	pio2.SetMantExp(pio2, -1)
	k := nearestInt(newFloat(wp).Quo(x, pio2))
	r = newFloat(wp).SetInt(k)
	r.Mul(r, pio2)
	r.Sub(x, r)
	q := new(big.Int).Mod(k, big.NewInt(4))
	return newFloat(prec).Set(r), int(q.Int64())
}

// SinCos returns sin(x) and cos(x) for a finite x.
func SinCos(x *big.Float, prec uint) (sin, cos *big.Float) {
	if x.Sign() == 0 {
		return newFloat(prec).Set(x), newFloat(prec).SetInt64(1)
	}
	wp := prec + guard
	r, q := RemPio2(x, wp)
	s, c := sinCosTaylor(r, wp)
	switch q {
	case 1:
		s, c = c, s.Neg(s)
	case 2:
		s.Neg(s)
		c.Neg(c)
	case 3:
		s, c = c.Neg(c), s
	}
	return newFloat(prec).Set(s), newFloat(prec).Set(c)
}

// Sin returns sin(x).
func Sin(x *big.Float, prec uint) *big.Float {
	s, _ := SinCos(x, prec)
	return s
}

// Cos returns cos(x).
func Cos(x *big.Float, prec uint) *big.Float {
	_, c := SinCos(x, prec)
	return c
}

// Tan returns tan(x).
func Tan(x *big.Float, prec uint) *big.Float {
	s, c := SinCos(x, prec+guard)
	return newFloat(prec).Quo(s, c)
}

// sinCosTaylor evaluates both series for |r| <= π/4.
func sinCosTaylor(r *big.Float, prec uint) (sin, cos *big.Float) {
	r2 := newFloat(prec).Mul(r, r)
	r2.Neg(r2)

	sin = newFloat(prec).Set(r)
	term := newFloat(prec).Set(r)
	for k := int64(1); r.Sign() != 0; k++ {
		term.Mul(term, r2)
		term.Quo(term, intFloat((2*k)*(2*k+1), prec))
		sin.Add(sin, term)
		if negligible(term, sin, prec) {
			break
		}
	}

	cos = newFloat(prec).SetInt64(1)
	term.SetInt64(1)
	for k := int64(1); r.Sign() != 0; k++ {
		term.Mul(term, r2)
		term.Quo(term, intFloat((2*k-1)*(2*k), prec))
		cos.Add(cos, term)
		if negligible(term, cos, prec) {
			break
		}
	}
	return sin, cos
}

// Atan returns atan(x).
func Atan(x *big.Float, prec uint) *big.Float {
	z := newFloat(prec)
	if x.Sign() == 0 || tiny(x, prec) {
		return z.Set(x)
	}
	wp := prec + guard
	if x.IsInf() {
		z.Set(Pi(wp))
		z.SetMantExp(z, -1)
		if x.Sign() < 0 {
			z.Neg(z)
		}
		return z
	}
	a := newFloat(wp).Abs(x)
	inv := a.Cmp(intFloat(1, wp)) > 0
	if inv {
		a.Quo(intFloat(1, wp), a)
	}
	// atan(a) = 2·atan(a / (1 + sqrt(1 + a²)))
	const halvings = 4
	t := newFloat(wp)
	one := intFloat(1, wp)
	for i := 0; i < halvings; i++ {
		t.Mul(a, a)
		t.Add(t, one)
		t.Sqrt(t)
		t.Add(t, one)
		a.Quo(a, t)
	}
	sum := newFloat(wp).Set(a)
	a2 := newFloat(wp).Mul(a, a)
	a2.Neg(a2)
	pw := newFloat(wp).Set(a)
	for k := int64(1); ; k++ {
		pw.Mul(pw, a2)
		t.Quo(pw, intFloat(2*k+1, wp))
		sum.Add(sum, t)
		if negligible(t, sum, wp) {
			break
		}
	}
	sum.SetMantExp(sum, halvings)
	if inv {
		pio2 := Pi(wp)
		pio2.SetMantExp(pio2, -1)
		sum.Sub(pio2, sum)
	}
	if x.Sign() < 0 {
		sum.Neg(sum)
	}
	return z.Set(sum)
}

// Asin returns asin(x) for |x| <= 1.
func Asin(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	ax := new(big.Float).Abs(x)
	if ax.Cmp(big.NewFloat(1)) == 0 {
		z := Pi(prec + 1)
		z.SetMantExp(z, -1)
		if x.Sign() < 0 {
			z.Neg(z)
		}
		return z.SetPrec(prec)
	}
	// asin(x) = atan(x / sqrt((1-x)(1+x)))
	one := intFloat(1, wp)
	d := newFloat(wp).Sub(one, ax)
	t := newFloat(wp).Add(one, ax)
	d.Mul(d, t)
	d.Sqrt(d)
	d.Quo(x, d)
	return Atan(d, prec)
}

// Acos returns acos(x) for |x| <= 1.
func Acos(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	if x.Cmp(big.NewFloat(-1)) == 0 {
		return Pi(prec)
	}
	// acos(x) = 2·atan(sqrt((1-x)/(1+x)))
	one := intFloat(1, wp)
	n := newFloat(wp).Sub(one, x)
	d := newFloat(wp).Add(one, x)
	n.Quo(n, d)
	n.Sqrt(n)
	z := Atan(n, wp)
	z.SetMantExp(z, 1)
	return newFloat(prec).Set(z)
}

// Atan2 returns atan(y/x) in the quadrant of (x, y) for finite arguments,
// not both zero.
func Atan2(y, x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	if x.Sign() == 0 {
		z := Pi(prec + 1)
		z.SetMantExp(z, -1)
		if y.Signbit() {
			z.Neg(z)
		}
		return z.SetPrec(prec)
	}
	q := newFloat(wp + x.Prec() + y.Prec()).Quo(y, x)
	q.Abs(q)
	z := Atan(q, wp)
	if x.Sign() < 0 {
		z.Sub(Pi(wp), z)
	}
	if y.Signbit() {
		z.Neg(z)
	}
	return newFloat(prec).Set(z)
}

// Sinh returns sinh(x) for a finite x.
func Sinh(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	wp := prec + guard + lostBits(x)
	e := Exp(x, wp)
	if e.IsInf() {
		return newFloat(prec).SetInf(false)
	}
	inv := newFloat(wp).Quo(intFloat(1, wp), e)
	e.Sub(e, inv)
	e.SetMantExp(e, -1)
	return newFloat(prec).Set(e)
}

// Cosh returns cosh(x) for a finite x.
func Cosh(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	e := Exp(new(big.Float).Abs(x), wp)
	if e.IsInf() {
		return newFloat(prec).SetInf(false)
	}
	inv := newFloat(wp).Quo(intFloat(1, wp), e)
	e.Add(e, inv)
	e.SetMantExp(e, -1)
	return newFloat(prec).Set(e)
}

// Tanh returns tanh(x) for a finite x.
func Tanh(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	if exponent(x) > 10 {
		return newFloat(prec).SetInt64(int64(x.Sign()))
	}
	// tanh(x) = expm1(2x) / (expm1(2x) + 2)
	wp := prec + guard
	t := newFloat(x.Prec()+1).Mul(x, intFloat(2, 2))
	t = Expm1(t, wp)
	d := newFloat(wp).Add(t, intFloat(2, wp))
	return newFloat(prec).Quo(t, d)
}

// Asinh returns asinh(x) for a finite x.
func Asinh(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	// asinh(|x|) = log1p(|x| + x²/(1 + sqrt(1 + x²)))
	wp := prec + guard + lostBits(x)
	ax := newFloat(wp).Abs(x)
	one := intFloat(1, wp)
	x2 := newFloat(wp).Mul(ax, ax)
	t := newFloat(wp).Add(x2, one)
	t.Sqrt(t)
	t.Add(t, one)
	t.Quo(x2, t)
	t.Add(t, ax)
	z := Log1p(t, prec)
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// Acosh returns acosh(x) for x >= 1.
func Acosh(x *big.Float, prec uint) *big.Float {
	// acosh(x) = log1p(t + sqrt(2t + t²)), t = x-1
	wp := prec + guard
	t := newFloat(x.Prec()+uint(exponent(x))+2).Sub(x, intFloat(1, 2))
	if t.Sign() == 0 {
		return newFloat(prec)
	}
	wp += lostBits(t)
	s := newFloat(wp).Mul(t, t)
	u := newFloat(wp).Mul(t, intFloat(2, 2))
	s.Add(s, u)
	s.Sqrt(s)
	s.Add(s, t)
	return Log1p(s, prec)
}

// Atanh returns atanh(x) for |x| < 1.
func Atanh(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 || tiny(x, prec) {
		return newFloat(prec).Set(x)
	}
	// atanh(x) = log1p(2x/(1-x)) / 2
	wp := prec + guard + lostBits(x)
	one := intFloat(1, wp)
	d := newFloat(wp).Sub(one, x)
	n := newFloat(wp).Mul(x, intFloat(2, 2))
	n.Quo(n, d)
	z := Log1p(n, prec+1)
	z.SetMantExp(z, -1)
	return z.SetPrec(prec)
}

// tiny reports whether |x| < 2^-(prec+8), where f(x) = x + O(x³) rounds to x.
func tiny(x *big.Float, prec uint) bool {
	return x.Sign() != 0 && !x.IsInf() && exponent(x) < -int(prec)-8
}

// lostBits estimates the cancellation when computing f(x) - f(0) for a small x.
func lostBits(x *big.Float) uint {
	if e := exponent(x); e < 0 {
		return uint(-e)
	}
	return 0
}
