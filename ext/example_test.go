// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ext_test

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/libm/ext"
	"github.com/avdva/libm/fenv"
)

func ExampleFloat80() {
	x := ext.MustFromString("0.1")
	fmt.Printf("%#v\n", x)
	fmt.Println(ext.Classify(x), ext.Classify(ext.SmallestNonzero))

	env := fenv.New()
	third := ext.Div(env, ext.FromInt64(1), ext.FromInt64(3))
	fmt.Println(third.Float64(), env.Test(fenv.AllExcept) == fenv.Inexact)

	for _, mode := range []fenv.RoundingMode{fenv.ToNearest, fenv.Upward} {
		restore, _ := env.WithRound(mode)
		fmt.Println(mode, ext.Rint(env, ext.FromFloat64(2.5)))
		restore()
	}

	ext.JSONMode = ext.JSONModeHex
	data, _ := json.Marshal(ext.FromFloat64(1.5))
	fmt.Println(string(data))
	ext.JSONMode = ext.JSONModeCompact

	// Output:
	// 0.1 {0x3ffbcccccccccccccccd}
	// normal subnormal
	// 0.3333333333333333 true
	// to-nearest 2
	// upward 3
	// "0x3fffc000000000000000"
}

func ExampleRemquo() {
	rem, quo := ext.Remquo(ext.FromInt64(13), ext.FromInt64(4))
	fmt.Println(rem, quo)
	fmt.Println(ext.Fmod(ext.FromInt64(12), ext.FromInt64(10)))
	fmt.Println(ext.Significand(ext.FromFloat64(12.25)))
	// Output:
	// 1 3
	// 2
	// 1.53125
}
