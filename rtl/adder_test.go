package rtl_test

import (
	"testing"

	esl "github.com/Dud3ek/ESL"
	"github.com/Dud3ek/ESL/rtl"
)

func TestFullAdderBit(t *testing.T) {
	m := esl.NewModule("tb")
	a := m.Wire("a", 1)
	b := m.Wire("b", 1)
	c := m.Wire("c", 1)
	s := m.Wire("s", 1)
	co := m.Wire("co", 1)
	m.Add(rtl.FullAdderBit(a, b, c, s, co))
	m.Output("s_o", 1, s)
	m.Output("co_o", 1, co)

	sim := newSim(t, m)
	for x := int64(0); x < 8; x++ {
		poke(t, sim, a, x&1)
		poke(t, sim, b, (x>>1)&1)
		poke(t, sim, c, (x>>2)&1)
		sum := x&1 + (x>>1)&1 + (x>>2)&1
		if got := sim.Peek(s).Uint64(); got != uint64(sum&1) {
			t.Errorf("inputs %03b: s = %d, want %d", x, got, sum&1)
		}
		if got := sim.Peek(co).Uint64(); got != uint64(sum>>1) {
			t.Errorf("inputs %03b: co = %d, want %d", x, got, sum>>1)
		}
	}
}

func TestAdderCout_exhaustive(t *testing.T) {
	const n = 3
	m := esl.NewModule("tb")
	a := m.Wire("a", n)
	b := m.Wire("b", n)
	s := m.Wire("s", n)
	co := m.Wire("co", 1)
	m.Add(rtl.AdderCout(a, b, s, co))
	m.Output("s_o", n, s)
	m.Output("co_o", 1, co)

	sim := newSim(t, m)
	for x := int64(0); x < 1<<n; x++ {
		for y := int64(0); y < 1<<n; y++ {
			poke(t, sim, a, x)
			poke(t, sim, b, y)
			if got := sim.Peek(s).Uint64(); got != uint64((x+y)&(1<<n-1)) {
				t.Errorf("%d+%d: s = %d, want %d", x, y, got, (x+y)&(1<<n-1))
			}
			if got := sim.Peek(co).Uint64(); got != uint64((x+y)>>n) {
				t.Errorf("%d+%d: co = %d, want %d", x, y, got, (x+y)>>n)
			}
		}
	}
}

func TestAdder_wraps(t *testing.T) {
	const n = 4
	m := esl.NewModule("tb")
	a := m.Wire("a", n)
	b := m.Wire("b", n)
	s := m.Wire("s", n)
	m.Add(rtl.Adder(a, b, s))
	m.Output("s_o", n, s)

	sim := newSim(t, m)
	for _, d := range []struct{ x, y, want int64 }{
		{0, 0, 0},
		{5, 9, 14},
		{15, 1, 0},
		{12, 12, 8},
	} {
		poke(t, sim, a, d.x)
		poke(t, sim, b, d.y)
		if got := sim.Peek(s).Uint64(); got != uint64(d.want) {
			t.Errorf("%d+%d = %d, want %d", d.x, d.y, got, d.want)
		}
	}
}
