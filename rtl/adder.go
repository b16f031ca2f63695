// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// FullAdderBit returns a single full adder stage.
//
//	Inputs: a_i, b_i, c_i
//	Outputs: s_o, c_o
//	Function: s = lsb(a + b + c)
//	          c = msb(a + b + c)
func FullAdderBit(a, b, cin, s, cout *esl.Signal) *esl.Module {
	m := esl.NewModule("full_adder_bit")
	m.Input("a_i", 1, a)
	m.Input("b_i", 1, b)
	m.Input("c_i", 1, cin)
	m.Output("s_o", 1, s)
	m.Output("c_o", 1, cout)
	m.Comb("logic", esl.Reads(a, b, cin), esl.Writes(s, cout), func() {
		va, vb, vc := a.Val(), b.Val(), cin.Val()
		s.SetNext(va.Xor(vb).Xor(vc))
		cout.SetNext(va.And(vb).Or(va.And(vc)).Or(vb.And(vc)))
	})
	return m
}

// Adder returns a ripple-carry adder: s = a + b mod 2^n. The carry chain
// is an internal bus with its first bit tied low.
func Adder(a, b, s *esl.Signal) *esl.Module {
	n := a.Width()
	m := esl.NewModule("adder")
	m.Input("a_i", n, a)
	m.Input("b_i", n, b)
	m.Output("s_o", n, s)
	c := m.Wire("c", n+1)
	m.Tie(c.Bit(0), esl.MustValue(1, 0))
	for k := 0; k < n; k++ {
		m.Add(FullAdderBit(a.Bit(k), b.Bit(k), c.Bit(k), s.Bit(k), c.Bit(k+1)))
	}
	return m
}

// AdderCout is Adder with the final carry exposed on c_o.
func AdderCout(a, b, s, cout *esl.Signal) *esl.Module {
	n := a.Width()
	m := esl.NewModule("adder_cout")
	m.Input("a_i", n, a)
	m.Input("b_i", n, b)
	m.Output("s_o", n, s)
	m.Output("c_o", 1, cout)
	c := m.Wire("c", n+1)
	m.Tie(c.Bit(0), esl.MustValue(1, 0))
	for k := 0; k < n; k++ {
		m.Add(FullAdderBit(a.Bit(k), b.Bit(k), c.Bit(k), s.Bit(k), c.Bit(k+1)))
	}
	top := c.Bit(n)
	m.Comb("carry", esl.Reads(top), esl.Writes(cout), func() {
		cout.SetNext(top.Val())
	})
	return m
}
