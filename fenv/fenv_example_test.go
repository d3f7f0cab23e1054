// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fenv

import "fmt"

func ExampleEnv() {
	env := New()
	func() {
		defer env.Guard()()
		if err := env.SetRound(Upward); err != nil {
			panic(err)
		}
		env.Raise(Inexact)
		fmt.Printf("inside: mode = %v, flags = %v\n", env.Round(), env.Test(AllExcept))
	}()
	fmt.Printf("outside: mode = %v, flags = %v\n", env.Round(), env.Test(AllExcept))
	// Output:
	// inside: mode = upward, flags = inexact
	// outside: mode = to-nearest, flags = none
}
