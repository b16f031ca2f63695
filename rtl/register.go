// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// Dff returns a data flip-flop: q takes the value of d at each rising
// edge of clk.
//
//	Inputs: clk_i, d_i
//	Outputs: q_o
//	Function: q(t) = d(t-1)
func Dff(clk, d, q *esl.Signal) *esl.Module {
	m := esl.NewModule("dff")
	m.Input("clk_i", 1, clk)
	m.Input("d_i", d.Width(), d)
	m.Output("q_o", d.Width(), q)
	m.Seq("store", clk, esl.Rising, esl.Reads(d), esl.Writes(q), func() {
		q.SetNext(d.Val())
	})
	return m
}

// RegisterN returns a multi-bit register composed of one Dff per bit,
// all on the same clock. Behaviorally identical to a single Dff of the
// full width: commits are atomic per clock edge either way.
func RegisterN(clk, d, q *esl.Signal) *esl.Module {
	m := esl.NewModule("register")
	m.Input("clk_i", 1, clk)
	m.Input("d_i", d.Width(), d)
	m.Output("q_o", d.Width(), q)
	for k := 0; k < d.Width(); k++ {
		m.Add(Dff(clk, d.Bit(k), q.Bit(k)))
	}
	return m
}
