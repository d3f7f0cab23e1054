package bigmath

import (
	"math"
	"math/big"
)

// Erf returns the error function of a finite x.
func Erf(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return newFloat(prec).Set(x)
	}
	wp := prec + guard
	a := newFloat(x.Prec()).Abs(x)
	af, _ := a.Float64()
	var z *big.Float
	switch {
	case af*af > float64(prec+2)*math.Ln2+8:
		// erfc(a) < 2^-(prec+2)
		z = intFloat(1, wp)
	case af < 10:
		z = erfSeries(a, wp+uint(2*af*af))
	default:
		z = erfcFraction(a, wp)
		z.Sub(intFloat(1, wp), z)
	}
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return newFloat(prec).Set(z)
}

// Erfc returns the complementary error function of a finite x.
func Erfc(x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	if x.Sign() <= 0 {
		z := Erf(new(big.Float).Neg(x), wp)
		return newFloat(prec).Add(z, intFloat(1, wp))
	}
	af, _ := x.Float64()
	if af < 10 {
		z := erfSeries(x, wp+uint(4*af*af))
		return newFloat(prec).Sub(intFloat(1, wp), z)
	}
	return newFloat(prec).Set(erfcFraction(x, wp))
}

// erfSeries sums erf(a) = 2/√π · Σ (-1)^n a^(2n+1) / (n!(2n+1)).
func erfSeries(a *big.Float, prec uint) *big.Float {
	a2 := newFloat(prec).Mul(a, a)
	a2.Neg(a2)
	pw := newFloat(prec).Set(a)
	sum := newFloat(prec).Set(a)
	term := newFloat(prec)
	af, _ := a2.Float64()
	for n := int64(1); ; n++ {
		pw.Mul(pw, a2)
		pw.Quo(pw, intFloat(n, prec))
		term.Quo(pw, intFloat(2*n+1, prec))
		sum.Add(sum, term)
		// the terms grow until n > a².
		if float64(n) > -af && negligible(term, sum, prec) {
			break
		}
	}
	return sum.Mul(sum, twoOverSqrtPi(prec))
}

// erfcFraction evaluates the continued fraction
// erfc(a) = e^(-a²)/√π · 1/(a + (1/2)/(a + 1/(a + (3/2)/(a + ...)))), good for a >= 10.
func erfcFraction(a *big.Float, prec uint) *big.Float {
	const depth = 400
	t := newFloat(prec).Set(a)
	k := newFloat(prec)
	for n := int64(depth); n >= 1; n-- {
		k.SetInt64(n)
		k.SetMantExp(k, -1)
		k.Quo(k, t)
		t.Add(a, k)
	}
	a2 := newFloat(prec).Mul(a, a)
	a2.Neg(a2)
	e := Exp(a2, prec)
	e.Quo(e, t)
	e.Quo(e, Sqrt(Pi(prec), prec))
	return e
}

func twoOverSqrtPi(prec uint) *big.Float {
	s := Sqrt(Pi(prec+guard), prec+guard)
	z := newFloat(prec).Quo(intFloat(2, prec), s)
	return z
}

// bernoulli holds B(2k) / (2k·(2k-1)) for k = 1..11 as fractions.
var bernoulli = [...][2]int64{
	{1, 12},
	{-1, 360},
	{1, 1260},
	{-1, 1680},
	{1, 1188},
	{-691, 360360},
	{1, 156},
	{-3617, 122400},
	{43867, 244188},
	{-174611, 125400},
	{77683, 5796},
}

// stirlingMin is the smallest argument of the asymptotic series.
const stirlingMin = 200

// Lgamma returns ln|Γ(x)| and the sign of Γ(x) for a finite x
// which is not a non-positive integer.
// The absolute error is about 2^-150 at best, regardless of prec.
func Lgamma(x *big.Float, prec uint) (lg *big.Float, sign int) {
	wp := prec + 3*guard
	if x.Sign() < 0 {
		return lgammaReflect(x, prec)
	}
	z := newFloat(wp).Set(x)
	var prod *big.Float
	if z.Cmp(intFloat(stirlingMin, wp)) < 0 {
		// Γ(x) = Γ(x+n) / (x(x+1)...(x+n-1))
		prod = newFloat(wp).Set(z)
		one := intFloat(1, wp)
		for z.Add(z, one); z.Cmp(intFloat(stirlingMin, wp)) < 0; z.Add(z, one) {
			prod.Mul(prod, z)
		}
	}
	lg = stirling(z, wp)
	if prod != nil {
		lg.Sub(lg, Log(prod, wp))
	}
	return newFloat(prec).Set(lg), 1
}

// stirling returns ln Γ(z) for z >= stirlingMin.
func stirling(z *big.Float, prec uint) *big.Float {
	// (z-1/2)·ln z - z + ln(2π)/2 + Σ B(2k) / (2k(2k-1)·z^(2k-1))
	lz := Log(z, prec)
	half := newFloat(prec).SetFloat64(0.5)
	res := newFloat(prec).Sub(z, half)
	res.Mul(res, lz)
	res.Sub(res, z)
	l2pi := Pi(prec)
	l2pi.SetMantExp(l2pi, 1)
	l2pi = Log(l2pi, prec)
	l2pi.SetMantExp(l2pi, -1)
	res.Add(res, l2pi)

	zinv := newFloat(prec).Quo(intFloat(1, prec), z)
	z2inv := newFloat(prec).Mul(zinv, zinv)
	pw := newFloat(prec).Set(zinv)
	term := newFloat(prec)
	for _, b := range bernoulli {
		term.Mul(pw, intFloat(b[0], prec))
		term.Quo(term, intFloat(b[1], prec))
		res.Add(res, term)
		pw.Mul(pw, z2inv)
	}
	return res
}

// lgammaReflect uses Γ(x)Γ(1-x) = π/sin(πx) for x < 0.
func lgammaReflect(x *big.Float, prec uint) (*big.Float, int) {
	wp := prec + 3*guard
	// t = x - 2·round(x/2), so that sin(πt) = sin(πx) and |πt| is small.
	t := newFloat(x.Prec() + 2).Set(x)
	t.SetMantExp(t, -1)
	k := nearestInt(t)
	t.SetInt(k)
	t.SetMantExp(t, 1)
	t.Sub(x, t)
	arg := newFloat(wp).Mul(t, Pi(wp))
	s := Sin(arg, wp)
	s.Abs(s)

	one := intFloat(1, wp)
	p := x.Prec() + 2
	if e := exponent(x); e > 0 {
		p += uint(e)
	} else {
		p += uint(-e)
	}
	y := newFloat(p).Sub(one, x)
	lg, _ := Lgamma(y, prec+guard)
	res := Log(Pi(wp), wp)
	res.Sub(res, Log(s, wp))
	res.Sub(res, lg)

	// Γ(x) < 0 iff floor(x) is odd.
	fl, acc := x.Int(nil)
	if acc == big.Above {
		fl.Sub(fl, big.NewInt(1))
	}
	sign := 1
	if fl.Bit(0) == 1 {
		sign = -1
	}
	return newFloat(prec).Set(res), sign
}

// besselAsymptotic is the smallest argument of the Hankel expansions.
const besselAsymptotic = 40

// Jn returns the Bessel function of the first kind of order n >= 0 at x > 0.
func Jn(n int, x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	xf, _ := x.Float64()
	if xf <= besselAsymptotic || float64(n) > xf {
		return newFloat(prec).Set(besselJSeries(n, x, wp+seriesLoss(xf)))
	}
	j0, _ := hankel(0, x, wp)
	if n == 0 {
		return newFloat(prec).Set(j0)
	}
	j1, _ := hankel(1, x, wp)
	return newFloat(prec).Set(forward(n, x, j0, j1, wp))
}

// Yn returns the Bessel function of the second kind of order n >= 0 at x > 0.
func Yn(n int, x *big.Float, prec uint) *big.Float {
	wp := prec + guard
	xf, _ := x.Float64()
	if xf <= besselAsymptotic {
		return newFloat(prec).Set(besselYSeries(n, x, wp+seriesLoss(xf)))
	}
	_, y0 := hankel(0, x, wp)
	if n == 0 {
		return newFloat(prec).Set(y0)
	}
	_, y1 := hankel(1, x, wp)
	return newFloat(prec).Set(forward(n, x, y0, y1, wp))
}

func seriesLoss(x float64) uint {
	return uint(1.5*x) + 16
}

// forward runs C(k+1) = 2k/x·C(k) - C(k-1) from (C0, C1) up to order n.
func forward(n int, x, c0, c1 *big.Float, prec uint) *big.Float {
	prev, cur := newFloat(prec).Set(c0), newFloat(prec).Set(c1)
	t := newFloat(prec)
	for k := 1; k < n; k++ {
		t.Quo(intFloat(int64(2*k), prec), x)
		t.Mul(t, cur)
		t.Sub(t, prev)
		prev, cur, t = cur, t, prev
	}
	return cur
}

// besselJSeries sums J_n(x) = Σ (-1)^k (x/2)^(2k+n) / (k!(n+k)!).
func besselJSeries(n int, x *big.Float, prec uint) *big.Float {
	h := newFloat(prec).Set(x)
	h.SetMantExp(h, -1)
	q := newFloat(prec).Mul(h, h)
	q.Neg(q)
	// first term: (x/2)^n / n!
	term := newFloat(prec).SetInt64(1)
	for k := 1; k <= n; k++ {
		term.Mul(term, h)
		term.Quo(term, intFloat(int64(k), prec))
	}
	sum := newFloat(prec).Set(term)
	qf, _ := q.Float64()
	for k := int64(1); ; k++ {
		term.Mul(term, q)
		term.Quo(term, intFloat(k*(int64(n)+k), prec))
		sum.Add(sum, term)
		if float64(k*k) > -qf && negligible(term, sum, prec) {
			return sum
		}
	}
}

// besselYSeries evaluates
// Y_n(x) = -(1/π)(x/2)^-n Σ_{k<n} (n-k-1)!/k! (x²/4)^k + (2/π)ln(x/2)J_n(x)
//          - (1/π)(x/2)^n Σ_k (ψ(k+1)+ψ(n+k+1)) (-x²/4)^k / (k!(n+k)!),
// with ψ(m+1) = -γ + H(m).
func besselYSeries(n int, x *big.Float, prec uint) *big.Float {
	h := newFloat(prec).Set(x)
	h.SetMantExp(h, -1)
	q := newFloat(prec).Mul(h, h)
	pi := Pi(prec)
	gamma := Euler(prec)

	// finite part
	finite := newFloat(prec)
	if n > 0 {
		fact := newFloat(prec).SetInt64(1) // (n-1)!
		for k := 2; k < n; k++ {
			fact.Mul(fact, intFloat(int64(k), prec))
		}
		term := newFloat(prec).Set(fact) // (n-k-1)!/k! · q^k
		finite.Set(term)
		for k := 1; k < n; k++ {
			term.Mul(term, q)
			term.Quo(term, intFloat(int64(k)*int64(n-k), prec))
			finite.Add(finite, term)
		}
		hn := newFloat(prec).SetInt64(1)
		for k := 0; k < n; k++ {
			hn.Mul(hn, h)
		}
		finite.Quo(finite, hn)
		finite.Neg(finite)
	}

	// logarithmic part
	lg := Log(h, prec)
	lg.Mul(lg, besselJSeries(n, x, prec))
	lg.SetMantExp(lg, 1)

	// power series: psi = ψ(k+1) + ψ(n+k+1)
	hk := newFloat(prec)  // H(k)
	hnk := newFloat(prec) // H(n+k)
	for k := 1; k <= n; k++ {
		hnk.Add(hnk, newFloat(prec).Quo(intFloat(1, prec), intFloat(int64(k), prec)))
	}
	g2 := newFloat(prec).Set(gamma)
	g2.SetMantExp(g2, 1)
	psi := newFloat(prec).Add(hk, hnk)
	psi.Sub(psi, g2)

	term := newFloat(prec).SetInt64(1) // (x/2)^n (-q)^k / (k!(n+k)!)
	for k := 1; k <= n; k++ {
		term.Mul(term, h)
		term.Quo(term, intFloat(int64(k), prec))
	}
	sum := newFloat(prec).Mul(term, psi)
	t := newFloat(prec)
	qf, _ := q.Float64()
	q.Neg(q)
	for k := int64(1); ; k++ {
		term.Mul(term, q)
		term.Quo(term, intFloat(k*(int64(n)+k), prec))
		hk.Add(hk, t.Quo(intFloat(1, prec), intFloat(k, prec)))
		hnk.Add(hnk, t.Quo(intFloat(1, prec), intFloat(int64(n)+k, prec)))
		psi.Add(hk, hnk)
		psi.Sub(psi, g2)
		t.Mul(term, psi)
		sum.Add(sum, t)
		if float64(k*k) > qf && negligible(t, sum, prec) {
			break
		}
	}

	res := newFloat(prec).Add(finite, lg)
	res.Sub(res, sum)
	return res.Quo(res, pi)
}

// hankel returns J_n(x) and Y_n(x) for n in {0, 1} from the asymptotic expansions
// J = sqrt(2/(πx))·(P·cos χ - Q·sin χ), Y = sqrt(2/(πx))·(P·sin χ + Q·cos χ),
// χ = x - (2n+1)π/4.
func hankel(n int, x *big.Float, prec uint) (j, y *big.Float) {
	mu := intFloat(int64(4*n*n), prec)
	p := newFloat(prec).SetInt64(1)
	q := newFloat(prec)
	a := newFloat(prec).SetInt64(1) // a_k / x^k
	t := newFloat(prec)
	prevExp := math.MaxInt32
	for k := int64(1); ; k++ {
		t.SetInt64((2*k - 1) * (2*k - 1))
		t.Sub(mu, t)
		a.Mul(a, t)
		a.Quo(a, intFloat(8*k, prec))
		a.Quo(a, x)
		if a.Sign() == 0 {
			break
		}
		e := exponent(a)
		if e > prevExp {
			break // the expansion started to diverge
		}
		prevExp = e
		switch k % 4 {
		case 0:
			p.Add(p, a)
		case 1:
			q.Add(q, a)
		case 2:
			p.Sub(p, a)
		case 3:
			q.Sub(q, a)
		}
		if e < -int(prec)-1 {
			break
		}
	}

	s, c := SinCos(x, prec)
	// for n = 0: cos χ = (c + s)/√2, sin χ = (s - c)/√2
	// for n = 1: cos χ = (s - c)/√2, sin χ = -(s + c)/√2
	cc := newFloat(prec).Add(c, s)
	ss := newFloat(prec).Sub(s, c)
	if n == 1 {
		cc, ss = ss, cc.Neg(cc)
	}
	// sqrt(2/(πx)) / √2 = 1/sqrt(πx)
	f := newFloat(prec).Mul(Pi(prec), x)
	f.Sqrt(f)
	f.Quo(intFloat(1, prec), f)

	j = newFloat(prec).Mul(p, cc)
	j.Sub(j, t.Mul(q, ss))
	j.Mul(j, f)
	y = newFloat(prec).Mul(p, ss)
	y.Add(y, t.Mul(q, cc))
	y.Mul(y, f)
	return j, y
}
