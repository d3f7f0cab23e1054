// Copyright 2020 Aleksandr Demakin. All rights reserved.

package libm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/libm/ext"
	"github.com/avdva/libm/fenv"
)

// TestConcurrentEnvs runs the same computations in parallel goroutines,
// each with its own environment, and checks that modes and flags do not leak.
func TestConcurrentEnvs(t *testing.T) {
	a := assert.New(t)
	want := map[fenv.RoundingMode]struct {
		f64 float64
		f32 float32
		i   int64
		x80 ext.Float80
	}{
		fenv.ToNearest:  {2, -2, 3, ext.FromInt64(2)},
		fenv.TowardZero: {2, -2, 2, ext.FromInt64(2)},
		fenv.Upward:     {3, -2, 3, ext.FromInt64(3)},
		fenv.Downward:   {2, -3, 2, ext.FromInt64(2)},
	}
	rounding := modes()
	envs := make([]*fenv.Env, len(rounding))
	var g errgroup.Group
	for i, m := range rounding {
		i, m := i, m
		envs[i] = fenv.New()
		g.Go(func() error {
			env := envs[i]
			if err := env.SetRound(m); err != nil {
				return err
			}
			w := want[m]
			for j := 0; j < 500; j++ {
				if r := Rint(env, 2.5); r != w.f64 {
					return fmt.Errorf("%v: rint(2.5) = %v, want %v", m, r, w.f64)
				}
				if r := Rint(env, float32(-2.25)); r != w.f32 {
					return fmt.Errorf("%v: rint(-2.25) = %v, want %v", m, r, w.f32)
				}
				if r := Lrint(env, 2.75); r != w.i {
					return fmt.Errorf("%v: lrint(2.75) = %v, want %v", m, r, w.i)
				}
				if r := ext.Rint(env, ext.MustFromString("2.5")); r != w.x80 {
					return fmt.Errorf("%v: extended rint(2.5) = %v, want %v", m, r, w.x80)
				}
				// exact operations leave the flags alone.
				Nearbyint(env, 0.5)
				Rint(env, 7.0)
				if env.Round() != m {
					return fmt.Errorf("mode changed to %v, want %v", env.Round(), m)
				}
			}
			return nil
		})
	}
	a.NoError(g.Wait())
	for i, env := range envs {
		a.Equal(rounding[i], env.Round())
		a.Equal(fenv.Inexact, env.Test(fenv.AllExcept), "%v", rounding[i])
	}
}

func TestNilEnv(t *testing.T) {
	a := assert.New(t)
	a.Equal(2.0, Rint(nil, 2.5))
	a.Equal(int64(-2), Lrint(nil, -2.5))
	a.Equal(-3.0, Nearbyint(nil, -3.4))
	env := fenv.New()
	a.Equal(Rint(nil, 1e300), Rint(env, 1e300))
	a.Zero(env.Test(fenv.AllExcept))
}
