package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99999, 5},
		{100000, 6},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
	a.Equal(3, DecimalLenInt64(-12))
	a.Equal(20, DecimalLenInt64(math.MinInt64+1))
	a.Equal(uint64(1000), Pow10(3))
	a.Equal(uint64(0), Pow10(20))
}

func TestIntHelpers(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(-5))
	a.Equal(int64(7), AbsInt64(7))
	a.Equal(-3, ClampInt(-10, -3, 3))
	a.Equal(3, ClampInt(10, -3, 3))
	a.Equal(1, ClampInt(1, -3, 3))
	a.Equal(64, BinaryDigits(math.MaxUint64))
	a.Equal(0, BinaryDigits(0))
}

// exactSum returns a+b+c+d computed without rounding.
func exactSum(vals ...float64) *big.Float {
	sum := new(big.Float).SetPrec(4096)
	for _, v := range vals {
		sum.Add(sum, new(big.Float).SetFloat64(v))
	}
	return sum
}

func TestTwoSum(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b float64
	}{
		{1, 1e-20},
		{1e100, -1e-100},
		{0.1, 0.2},
		{math.MaxFloat64 / 2, 1},
		{-3, 3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, e := TwoSum(test.a, test.b)
			a.Equal(s, test.a+test.b)
			a.Zero(exactSum(test.a, test.b).Cmp(exactSum(s, e)))
			if math.Abs(test.a) >= math.Abs(test.b) {
				fs, fe := FastTwoSum(test.a, test.b)
				a.Equal(s, fs)
				a.Equal(e, fe)
			}
		})
	}
}

func TestTwoProd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b float64
	}{
		{0.1, 0.1},
		{1.0000001, 3.3333333},
		{math.Pi, math.E},
		{-1e150, 7e-151},
		{3, 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			exact := new(big.Float).SetPrec(256).Mul(new(big.Float).SetFloat64(test.a), new(big.Float).SetFloat64(test.b))
			p, e := TwoProd(test.a, test.b)
			a.Zero(exact.Cmp(exactSum(p, e)))
			a.Equal(e, dekkerErr(test.a, test.b, p))
		})
	}
}

func TestSplit(t *testing.T) {
	a := assert.New(t)
	for _, v := range []float64{math.Pi, 1.0 / 3, 12345.6789, -math.SmallestNonzeroFloat64 * (1 << 60)} {
		hi, lo := Split(v)
		a.Equal(v, hi+lo)
		frac, _ := math.Frexp(hi)
		a.True(math.Float64bits(frac)&(1<<26-1) == 0, "%v", hi)
	}
}

func TestDoubleDouble(t *testing.T) {
	a := assert.New(t)
	// (1/3 as dd) * 3 == 1 with an error well below 2^-100.
	th := 1.0 / 3
	tl := math.FMA(-3, th, 1) / 3
	h, l := MulDF(th, tl, 3)
	a.Equal(1.0, h)
	a.InDelta(0, l, 1e-30)

	h, l = MulDD(th, tl, 3, 0)
	a.Equal(1.0, h)
	a.InDelta(0, l, 1e-30)

	h, l = AddDD(1, 1e-20, -1, 1e-25)
	a.InEpsilon(1.00001e-20, h+l, 1e-15)
}

func BenchmarkTwoProd(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		_, e := TwoProd(float64(i)+0.1, 1.0/3)
		dummy += e
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}

func BenchmarkDekker(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		x := float64(i) + 0.1
		dummy += dekkerErr(x, 1.0/3, x*(1.0/3))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}
