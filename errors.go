// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "github.com/pkg/errors"

// Sentinel errors reported by the kernel. Errors returned by Elaborate and
// the Simulator wrap one of these; use errors.Cause to discriminate.
//
// Value and Signal operations that violate width or range constraints are
// programming errors in the circuit description and panic with an error
// wrapping the matching sentinel.
var (
	// ErrWidthMismatch reports an operation between values or signals of
	// disagreeing widths. Widths are never silently coerced.
	ErrWidthMismatch = errors.New("width mismatch")

	// ErrRange reports an out of bounds bit index or bit range.
	ErrRange = errors.New("bit index out of range")

	// ErrMultipleDrivers reports two distinct logic blocks driving the same
	// bit of a signal.
	ErrMultipleDrivers = errors.New("multiple drivers")

	// ErrCyclicInstantiation reports a module instantiating itself,
	// directly or transitively.
	ErrCyclicInstantiation = errors.New("cyclic module instantiation")

	// ErrNoFixedPoint reports combinational logic that keeps oscillating
	// instead of settling within the iteration bound.
	ErrNoFixedPoint = errors.New("combinational logic did not settle")

	// ErrDrivenSignal reports an attempt to poke a signal that is driven
	// by a logic block.
	ErrDrivenSignal = errors.New("signal is driven by a logic block")
)

// A Warning is a non-fatal diagnostic produced during elaboration, e.g. a
// signal that is read but never driven.
type Warning struct {
	Signal *Signal
	Msg    string
}

func (w Warning) String() string {
	return w.Signal.Name() + ": " + w.Msg
}
