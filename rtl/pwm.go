// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// PwmSimple returns a pulse-width modulator: a free-running counter of
// the threshold's width keeps pwm high while the counter is below the
// threshold.
func PwmSimple(clk, pwm, threshold *esl.Signal) *esl.Module {
	n := threshold.Width()
	m := esl.NewModule("pwm_simple")
	m.Input("clk_i", 1, clk)
	m.Input("threshold_i", n, threshold)
	m.Output("pwm_o", 1, pwm)
	cnt := m.Wire("cnt", n)
	one := esl.MustValue(n, 1)
	m.Seq("cntr_logic", clk, esl.Rising, esl.Reads(cnt), esl.Writes(cnt), func() {
		cnt.SetNext(cnt.Val().Add(one))
	})
	m.Comb("output_logic", esl.Reads(cnt, threshold), esl.Writes(pwm), func() {
		pwm.SetNext(esl.BoolValue(cnt.Val().Less(threshold.Val())))
	})
	return m
}

// Ramp returns a triangle wave generator. The ramp register climbs by
// one per clock cycle until it reaches its maximum minus one, then
// descends to one, and reverses again. The delta register powers up at
// zero; the first clock cycle kick-starts it to +1 and moves the ramp
// to 1.
func Ramp(clk, ramp *esl.Signal) *esl.Module {
	n := ramp.Width()
	m := esl.NewModule("ramp")
	m.Input("clk_i", 1, clk)
	m.Output("ramp_o", n, ramp)
	delta := m.Wire("delta", n)
	var (
		one      = esl.MustValue(n, 1)
		minusOne = esl.MustValue(n, -1)
		top      = esl.MaxValue(n).Sub(one) // 2^n - 2
	)
	m.Seq("logic", clk, esl.Rising, esl.Reads(ramp, delta), esl.Writes(ramp, delta), func() {
		r, d := ramp.Val(), delta.Val()
		ramp.SetNext(r.Add(d))
		switch {
		case r.Eq(one):
			delta.SetNext(one)
		case r.Eq(top):
			delta.SetNext(minusOne)
		case d.IsZero():
			delta.SetNext(one)
			ramp.SetNext(one)
		}
	})
	return m
}

// WaxWane drives led with a PWM whose threshold follows the top four
// bits of a triangle ramp of the given length, so the LED brightness
// waxes and wanes.
func WaxWane(clk, led *esl.Signal, length int) *esl.Module {
	m := esl.NewModule("wax_wane")
	m.Input("clk_i", 1, clk)
	m.Output("led_o", 1, led)
	rampout := m.Wire("ramp", length)
	m.Add(Ramp(clk, rampout))
	m.Add(PwmSimple(clk, led, rampout.Range(length-4, length)))
	return m
}
