// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/libm/internal/mathdata"
)

var dataFuncs = map[string]func(Float80) Float80{
	"sin": Sin, "cos": Cos, "tan": Tan,
	"asin": Asin, "acos": Acos, "atan": Atan,
	"exp": Exp, "exp2": Exp2, "exp10": Exp10, "expm1": Expm1,
	"log": Log, "log2": Log2, "log10": Log10, "log1p": Log1p,
	"cbrt": Cbrt, "tgamma": Tgamma,
	"sqrt": func(x Float80) Float80 { return Sqrt(nil, x) },
}

// closeTo reports whether got is within ulp units in the last place of want.
// Zeros, infinities and NaNs must match exactly.
func closeTo(want, got Float80, ulp float64) bool {
	switch {
	case IsNaN(want):
		return IsNaN(got)
	case !IsFinite(want) || want.IsZero():
		return want == got
	case !IsFinite(got):
		return false
	}
	tol := Scalbn(FromFloat64(ulp), Ilogb(want)-63)
	return Fabs(Sub(nil, got, want)).Cmp(tol) <= 0
}

func TestTables(t *testing.T) {
	tables, err := mathdata.LoadAll(os.DirFS("../testdata"), "*.yaml")
	require.NoError(t, err)
	tables = mathdata.Select(tables, mathdata.Float80)
	require.NotEmpty(t, tables)
	for _, table := range tables {
		for i, c := range table.Cases {
			t.Run(fmt.Sprintf("%d/%s", i, c.Fn), func(t *testing.T) {
				a := assert.New(t)
				f, ok := dataFuncs[c.Fn]
				if !a.True(ok, "unknown function %s", c.Fn) {
					return
				}
				a.Len(c.Args, 0)
				x, err := FromString(c.In[0])
				require.NoError(t, err)
				want, err := FromString(c.Out)
				require.NoError(t, err)
				got := f(x)
				a.True(closeTo(want, got, table.ULP), "%s(%v): %v != %v", c.Fn, x, want, got)
			})
		}
	}
}

func TestCloseTo(t *testing.T) {
	a := assert.New(t)
	a.True(closeTo(one, one, 0))
	a.True(closeTo(one, Nextafter(one, Inf(1)), 1))
	a.False(closeTo(one, Nextafter(Nextafter(one, Inf(1)), Inf(1)), 1))
	a.False(closeTo(Float80{}, Float80{se: signBit}, 1))
	a.True(closeTo(NaN(), Nan("1"), 0))
	a.False(closeTo(Inf(1), MaxFloat80, 1))
}
