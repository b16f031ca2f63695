package esl_test

import (
	"strings"
	"testing"

	esl "github.com/Dud3ek/ESL"
	"github.com/pkg/errors"
)

func TestElaborate_multipleDrivers(t *testing.T) {
	m := esl.NewModule("bad")
	a := m.Wire("a", 1)
	out := m.Wire("out", 4)
	m.Comb("drv1", esl.Reads(a), esl.Writes(out), func() {})
	m.Comb("drv2", esl.Reads(a), esl.Writes(out.Bit(2)), func() {})

	_, err := esl.Elaborate(m)
	if errors.Cause(err) != esl.ErrMultipleDrivers {
		t.Fatalf("got %v, want ErrMultipleDrivers", err)
	}
	if !strings.Contains(err.Error(), "drv1") || !strings.Contains(err.Error(), "drv2") {
		t.Errorf("error does not name both drivers: %v", err)
	}
}

func TestElaborate_disjointBitDrivers(t *testing.T) {
	// distinct blocks may drive disjoint bits of one bus
	m := esl.NewModule("ok")
	a := m.Wire("a", 1)
	out := m.Wire("out", 2)
	m.Comb("lo", esl.Reads(a), esl.Writes(out.Bit(0)), func() { out.Bit(0).SetNext(a.Val()) })
	m.Comb("hi", esl.Reads(a), esl.Writes(out.Bit(1)), func() { out.Bit(1).SetNext(a.Val().Not()) })
	m.Comb("probe", esl.Reads(out), esl.Writes(), func() {})

	if _, err := esl.Elaborate(m); err != nil {
		t.Fatal(err)
	}
}

func TestElaborate_cyclicInstantiation(t *testing.T) {
	a := esl.NewModule("a")
	b := esl.NewModule("b")
	a.Add(b)
	b.Add(a)
	if _, err := esl.Elaborate(a); errors.Cause(err) != esl.ErrCyclicInstantiation {
		t.Fatalf("got %v, want ErrCyclicInstantiation", err)
	}

	self := esl.NewModule("self")
	self.Add(self)
	if _, err := esl.Elaborate(self); errors.Cause(err) != esl.ErrCyclicInstantiation {
		t.Fatal("self instantiation not rejected")
	}
}

func TestElaborate_portWidthMismatch(t *testing.T) {
	sig := esl.NewSignal("s", 4)
	m := esl.NewModule("m")
	m.Input("in", 8, sig)
	if _, err := esl.Elaborate(m); errors.Cause(err) != esl.ErrWidthMismatch {
		t.Fatalf("got %v, want ErrWidthMismatch", err)
	}
}

func TestElaborate_badClock(t *testing.T) {
	m := esl.NewModule("m")
	clk2 := m.Wire("clk2", 2)
	q := m.Wire("q", 1)
	m.Seq("store", clk2, esl.Rising, esl.Reads(q), esl.Writes(q), func() {})
	if _, err := esl.Elaborate(m); errors.Cause(err) != esl.ErrWidthMismatch {
		t.Fatalf("got %v, want ErrWidthMismatch for wide clock", err)
	}
}

func TestElaborate_warnings(t *testing.T) {
	m := esl.NewModule("m")
	und := m.Wire("undriven", 1)
	unread := m.Wire("unread", 1)
	out := m.Wire("probe", 1)
	m.Comb("use", esl.Reads(und), esl.Writes(out, unread), func() {
		out.SetNext(und.Val())
		unread.SetNext(und.Val())
	})
	m.Output("probe_o", 1, out)

	d, err := esl.Elaborate(m)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, w := range d.Warnings() {
		got = append(got, w.String())
	}
	if len(got) != 2 {
		t.Fatalf("warnings = %v, want 2", got)
	}
	if !strings.Contains(got[0], "never driven") && !strings.Contains(got[1], "never driven") {
		t.Errorf("missing undriven warning: %v", got)
	}
	if !strings.Contains(got[0], "never read") && !strings.Contains(got[1], "never read") {
		t.Errorf("missing unread warning: %v", got)
	}
}

func TestElaborate_tieConflict(t *testing.T) {
	m := esl.NewModule("m")
	a := m.Wire("a", 1)
	s := m.Wire("s", 1)
	m.Tie(s, esl.MustValue(1, 1))
	m.Comb("drv", esl.Reads(a), esl.Writes(s), func() { s.SetNext(a.Val()) })
	if _, err := esl.Elaborate(m); errors.Cause(err) != esl.ErrMultipleDrivers {
		t.Fatalf("got %v, want ErrMultipleDrivers for tied signal", err)
	}
}
