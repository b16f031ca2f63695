// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// Counter returns a free-running counter incrementing on each rising
// edge of clk. The counter width is the width of cnt.
func Counter(clk, cnt *esl.Signal) *esl.Module {
	n := cnt.Width()
	m := esl.NewModule("counter")
	m.Input("clk_i", 1, clk)
	m.Output("cnt_o", n, cnt)
	one := m.Const("one", esl.MustValue(n, 1))
	next := m.Wire("next_cnt", n)
	m.Add(Adder(one, cnt, next))
	m.Add(RegisterN(clk, next, cnt))
	return m
}

// Blinker returns a counter of the given length whose top bit drives
// led, so the LED toggles every 2^(length-1) clock cycles.
func Blinker(clk, led *esl.Signal, length int) *esl.Module {
	m := esl.NewModule("blinker")
	m.Input("clk_i", 1, clk)
	m.Output("led_o", 1, led)
	cnt := m.Wire("cnt", length)
	m.Add(Counter(clk, cnt))
	msb := cnt.Bit(length - 1)
	m.Comb("output_logic", esl.Reads(msb), esl.Writes(led), func() {
		led.SetNext(msb.Val())
	})
	return m
}
