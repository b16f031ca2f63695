// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

// An Event is one step of test-bench stimulus: drive Signal to Value,
// then let Delay instants pass. A zero Delay makes the next event take
// effect within the same instant.
type Event struct {
	Signal *Signal
	Value  Value
	Delay  uint64
}

// Drive returns an event driving sig to v for one instant.
func Drive(sig *Signal, v Value) Event {
	return Event{Signal: sig, Value: v, Delay: 1}
}

// ClockEvents returns the stimulus for the given number of whole cycles
// on clk: low one instant, high one instant, per cycle.
func ClockEvents(clk *Signal, cycles int) []Event {
	evs := make([]Event, 0, 2*cycles)
	for i := 0; i < cycles; i++ {
		evs = append(evs, Drive(clk, MustValue(1, 0)), Drive(clk, MustValue(1, 1)))
	}
	return evs
}
