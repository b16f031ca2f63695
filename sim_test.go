package esl_test

import (
	"testing"

	esl "github.com/Dud3ek/ESL"
	"github.com/pkg/errors"
)

// newSim elaborates m and builds a simulator, failing the test on error.
func newSim(t *testing.T, m *esl.Module, opts ...esl.Option) *esl.Simulator {
	t.Helper()
	d, err := esl.Elaborate(m)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := esl.NewSimulator(d, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

// Two registers exchanging values must both observe pre-edge state: after
// any number of edges the pair is swapped, never duplicated.
func TestSimulator_edgeSimultaneity(t *testing.T) {
	m := esl.NewModule("swap")
	clk := m.Wire("clk", 1)
	a := m.WireInit("a", esl.MustValue(8, 0xAA))
	b := m.WireInit("b", esl.MustValue(8, 0x55))
	m.Seq("xfer_ab", clk, esl.Rising, esl.Reads(b), esl.Writes(a), func() {
		a.SetNext(b.Val())
	})
	m.Seq("xfer_ba", clk, esl.Rising, esl.Reads(a), esl.Writes(b), func() {
		b.SetNext(a.Val())
	})
	m.Output("a_o", 8, a)
	m.Output("b_o", 8, b)

	sim := newSim(t, m)
	want := [2]uint64{0xAA, 0x55}
	for cycle := 0; cycle < 5; cycle++ {
		if err := sim.Clock(clk, 1); err != nil {
			t.Fatal(err)
		}
		want[0], want[1] = want[1], want[0]
		if got := sim.Peek(a).Uint64(); got != want[0] {
			t.Fatalf("cycle %d: a = %#x, want %#x", cycle, got, want[0])
		}
		if got := sim.Peek(b).Uint64(); got != want[1] {
			t.Fatalf("cycle %d: b = %#x, want %#x", cycle, got, want[1])
		}
	}
}

func TestSimulator_noFixedPoint(t *testing.T) {
	m := esl.NewModule("ring")
	q := m.Wire("q", 1)
	m.Comb("inv", esl.Reads(q), esl.Writes(q), func() {
		q.SetNext(q.Val().Not())
	})
	m.Output("q_o", 1, q)

	d, err := esl.Elaborate(m)
	if err != nil {
		t.Fatal(err)
	}
	_, err = esl.NewSimulator(d)
	if errors.Cause(err) != esl.ErrNoFixedPoint {
		t.Fatalf("got %v, want ErrNoFixedPoint", err)
	}
}

func TestSimulator_pokeDriven(t *testing.T) {
	m := esl.NewModule("m")
	a := m.Wire("a", 1)
	out := m.Wire("out", 1)
	m.Comb("buf", esl.Reads(a), esl.Writes(out), func() {
		out.SetNext(a.Val())
	})
	m.Output("out_o", 1, out)

	sim := newSim(t, m)
	if err := sim.Poke(out, esl.MustValue(1, 1)); errors.Cause(err) != esl.ErrDrivenSignal {
		t.Fatalf("got %v, want ErrDrivenSignal", err)
	}

	m2 := esl.NewModule("m2")
	k := m2.Const("k", esl.MustValue(4, 9))
	o2 := m2.Wire("o", 4)
	m2.Comb("buf", esl.Reads(k), esl.Writes(o2), func() {
		o2.SetNext(k.Val())
	})
	m2.Output("o_o", 4, o2)
	sim2 := newSim(t, m2)
	if err := sim2.Poke(k, esl.MustValue(4, 0)); errors.Cause(err) != esl.ErrDrivenSignal {
		t.Fatalf("got %v, want ErrDrivenSignal for tied signal", err)
	}
}

func TestSimulator_pokeWidth(t *testing.T) {
	m := esl.NewModule("m")
	a := m.Wire("a", 4)
	out := m.Wire("out", 4)
	m.Comb("buf", esl.Reads(a), esl.Writes(out), func() {
		out.SetNext(a.Val())
	})
	m.Output("out_o", 4, out)
	sim := newSim(t, m)
	if err := sim.Poke(a, esl.MustValue(8, 1)); errors.Cause(err) != esl.ErrWidthMismatch {
		t.Fatalf("got %v, want ErrWidthMismatch", err)
	}
}

// Events apply in order; zero-delay events take effect within the same
// instant as the next event.
func TestSimulator_run(t *testing.T) {
	m := esl.NewModule("m")
	clk := m.Wire("clk", 1)
	d := m.Wire("d", 4)
	q := m.Wire("q", 4)
	m.Seq("store", clk, esl.Rising, esl.Reads(d), esl.Writes(q), func() {
		q.SetNext(d.Val())
	})
	m.Output("q_o", 4, q)

	sim := newSim(t, m)
	events := []esl.Event{
		{Signal: d, Value: esl.MustValue(4, 7), Delay: 0},
		{Signal: clk, Value: esl.MustValue(1, 1), Delay: 1},
		{Signal: clk, Value: esl.MustValue(1, 0), Delay: 1},
		{Signal: d, Value: esl.MustValue(4, 2), Delay: 1},
	}
	if err := sim.Run(events); err != nil {
		t.Fatal(err)
	}
	// the edge latched 7; the later change to d is not clocked in
	if got := sim.Peek(q).Uint64(); got != 7 {
		t.Fatalf("q = %d, want 7", got)
	}
	if sim.Time() != 3 {
		t.Fatalf("time = %d, want 3", sim.Time())
	}

	bad := []esl.Event{{Signal: d, Value: esl.MustValue(1, 0), Delay: 1}}
	if err := sim.Run(bad); errors.Cause(err) != esl.ErrWidthMismatch {
		t.Fatalf("got %v, want wrapped ErrWidthMismatch", err)
	}
}

func TestSimulator_initAndTies(t *testing.T) {
	m := esl.NewModule("m")
	a := m.WireInit("a", esl.MustValue(4, 5))
	k := m.Const("k", esl.MustValue(4, 3))
	sum := m.Wire("sum", 4)
	m.Comb("add", esl.Reads(a, k), esl.Writes(sum), func() {
		sum.SetNext(a.Val().Add(k.Val()))
	})
	m.Output("sum_o", 4, sum)

	sim := newSim(t, m)
	if got := sim.Peek(sum).Uint64(); got != 8 {
		t.Fatalf("sum = %d, want 8 after initial settle", got)
	}
	if err := sim.Poke(a, esl.MustValue(4, 14)); err != nil {
		t.Fatal(err)
	}
	// 14+3 wraps at 4 bits
	if got := sim.Peek(sum).Uint64(); got != 1 {
		t.Fatalf("sum = %d, want 1", got)
	}
}

func TestSimulator_fallingEdge(t *testing.T) {
	m := esl.NewModule("m")
	clk := m.Wire("clk", 1)
	cnt := m.Wire("cnt", 4)
	m.Seq("count", clk, esl.Falling, esl.Reads(cnt), esl.Writes(cnt), func() {
		cnt.SetNext(cnt.Val().Add(esl.MustValue(4, 1)))
	})
	m.Output("cnt_o", 4, cnt)

	sim := newSim(t, m)
	if err := sim.Poke(clk, esl.MustValue(1, 1)); err != nil {
		t.Fatal(err)
	}
	if got := sim.Peek(cnt).Uint64(); got != 0 {
		t.Fatalf("cnt = %d after rising edge, want 0", got)
	}
	if err := sim.Poke(clk, esl.MustValue(1, 0)); err != nil {
		t.Fatal(err)
	}
	if got := sim.Peek(cnt).Uint64(); got != 1 {
		t.Fatalf("cnt = %d after falling edge, want 1", got)
	}
}
