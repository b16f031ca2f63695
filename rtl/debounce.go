// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// Debouncer returns a debounce filter for a 1-bit input. A countdown
// register is reloaded to bounceCycles whenever the raw input differs
// from its previous sample, and decremented while the input holds
// steady; only when the countdown reaches zero is the stable value
// latched onto button_o. Any bounce restarts the countdown.
func Debouncer(clk, btnI, btnO *esl.Signal, bounceCycles int) *esl.Module {
	m := esl.NewModule("debouncer")
	m.Input("clk_i", 1, clk)
	m.Input("button_i", 1, btnI)
	m.Output("button_o", 1, btnO)
	n := clog2(bounceCycles)
	cnt := m.Wire("dbcnt", n)
	prev := m.Wire("prev_button", 1)
	var (
		one    = esl.MustValue(n, 1)
		reload = esl.MustValue(n, int64(bounceCycles))
	)
	m.Seq("next_state_logic", clk, esl.Rising, esl.Reads(btnI, prev, cnt), esl.Writes(cnt, prev), func() {
		if btnI.Val().Eq(prev.Val()) {
			if !cnt.Val().IsZero() {
				cnt.SetNext(cnt.Val().Sub(one))
			}
		} else {
			cnt.SetNext(reload)
		}
		prev.SetNext(btnI.Val())
	})
	m.Seq("output_logic", clk, esl.Rising, esl.Reads(cnt, prev), esl.Writes(btnO), func() {
		if cnt.Val().IsZero() {
			btnO.SetNext(prev.Val())
		}
	})
	return m
}
