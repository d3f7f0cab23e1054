// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fenv implements a floating-point environment: a rounding mode
// and a set of sticky exception flags.
//
// An environment is an explicit handle. Functions that honor the rounding mode
// or report exceptions take an *Env argument; a nil *Env is the default
// environment, which rounds to nearest and discards all flags.
// An Env must not be shared between goroutines without synchronization,
// but distinct Env values are completely independent.
package fenv

import (
	"errors"
	"strings"
)

// RoundingMode is an IEEE-754 rounding direction.
type RoundingMode uint8

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest RoundingMode = iota
	// TowardZero truncates.
	TowardZero
	// Upward rounds toward +Inf.
	Upward
	// Downward rounds toward -Inf.
	Downward
)

var modeNames = [...]string{"to-nearest", "toward-zero", "upward", "downward"}

func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Valid reports whether m is one of the four defined modes.
func (m RoundingMode) Valid() bool {
	return m <= Downward
}

// Except is a set of floating-point exception flags.
type Except uint8

const (
	// Invalid is raised by operations without a meaningful result, like 0/0 or sqrt(-1).
	Invalid Except = 1 << iota
	// DivByZero is raised when an exact infinity is produced from finite operands.
	DivByZero
	// Overflow is raised when a rounded result exceeds the largest finite value.
	Overflow
	// Underflow is raised when a result is tiny and inexact.
	Underflow
	// Inexact is raised when a rounded result differs from the exact one.
	Inexact

	// AllExcept is the union of all flags.
	AllExcept = Invalid | DivByZero | Overflow | Underflow | Inexact
)

var exceptNames = [...]string{"invalid", "div-by-zero", "overflow", "underflow", "inexact"}

func (e Except) String() string {
	if e == 0 {
		return "none"
	}
	var b strings.Builder
	for i, name := range exceptNames {
		if e&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	return b.String()
}

var (
	// ErrInvalidMode is returned when setting a rounding mode that does not exist.
	ErrInvalidMode = errors.New("invalid rounding mode")
	// ErrReadOnly is returned when changing the mode of the default (nil) environment.
	ErrReadOnly = errors.New("default environment is read-only")

	// DefaultState is the state of a new environment.
	DefaultState = State{mode: ToNearest}
)

// State is a saved copy of an environment.
type State struct {
	mode  RoundingMode
	flags Except
}

// Round returns the saved rounding mode.
func (s State) Round() RoundingMode {
	return s.mode
}

// Flags returns the saved exception flags.
func (s State) Flags() Except {
	return s.flags
}

// Env holds a rounding mode and exception flags.
type Env struct {
	mode  RoundingMode
	flags Except
}

// New returns an environment in the default state.
func New() *Env {
	env := &Env{}
	env.Restore(DefaultState)
	return env
}

// Round returns the current rounding mode.
func (e *Env) Round() RoundingMode {
	if e == nil {
		return ToNearest
	}
	return e.mode
}

// SetRound changes the rounding mode.
// Unknown modes are rejected with ErrInvalidMode and the mode is left unchanged.
func (e *Env) SetRound(m RoundingMode) error {
	if !m.Valid() {
		return ErrInvalidMode
	}
	if e == nil {
		if m == ToNearest {
			return nil
		}
		return ErrReadOnly
	}
	e.mode = m
	return nil
}

// Raise sets the given flags.
func (e *Env) Raise(ex Except) {
	if e == nil {
		return
	}
	e.flags |= ex & AllExcept
}

// Test returns the subset of mask which is currently raised.
func (e *Env) Test(mask Except) Except {
	if e == nil {
		return 0
	}
	return e.flags & mask
}

// Clear lowers the given flags.
func (e *Env) Clear(mask Except) {
	if e == nil {
		return
	}
	e.flags &^= mask
}

// Save returns a snapshot of the environment.
func (e *Env) Save() State {
	if e == nil {
		return DefaultState
	}
	return State{mode: e.mode, flags: e.flags}
}

// Restore replaces the environment with a snapshot.
func (e *Env) Restore(s State) {
	if e == nil {
		return
	}
	e.mode, e.flags = s.mode, s.flags
}

// Hold saves the environment and clears all flags, keeping the rounding mode.
// Pair it with Update.
func (e *Env) Hold() State {
	s := e.Save()
	e.Clear(AllExcept)
	return s
}

// Update restores s and then raises the flags that were raised since Hold.
func (e *Env) Update(s State) {
	raised := e.Test(AllExcept)
	e.Restore(s)
	e.Raise(raised)
}

// Guard saves the environment and returns a function that restores it.
//	defer env.Guard()()
func (e *Env) Guard() (restore func()) {
	s := e.Save()
	return func() {
		e.Restore(s)
	}
}

// WithRound saves the environment, switches to mode m and returns
// a function that restores the saved state.
// On error, the environment is not changed and restore is a no-op.
func (e *Env) WithRound(m RoundingMode) (restore func(), err error) {
	s := e.Save()
	if err := e.SetRound(m); err != nil {
		return func() {}, err
	}
	return func() {
		e.Restore(s)
	}, nil
}
