// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtl provides small teaching circuits built on the esl kernel:
// registers and adders, a counter and blinker, a PWM ramp, block and
// dual-port RAMs with a record-and-playback controller, and a debounced
// classic state machine.
package rtl

// clog2 returns the number of bits needed to hold values in [0, n].
func clog2(n int) int {
	w := 1
	for 1<<uint(w) < n+1 {
		w++
	}
	return w
}
