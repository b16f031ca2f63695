package esl_test

import (
	"strings"
	"testing"

	esl "github.com/Dud3ek/ESL"
	"github.com/Dud3ek/ESL/rtl"
	"github.com/pkg/errors"
)

func TestWriteNetlist(t *testing.T) {
	clk := esl.NewSignal("clk", 1)
	cnt := esl.NewSignal("cnt", 4)
	top := rtl.Counter(clk, cnt)

	var b strings.Builder
	if err := esl.WriteNetlist(&b, top); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"module counter\n",
		"input  clk_i width 1 = clk",
		"output cnt_o width 4 = cnt",
		"wire next_cnt width 4",
		"tie one = 4'b0001",
		"inst counter/adder0 u0 (",
		"inst counter/register1 u1 (",
		"posedge clk",
		"end\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("netlist missing %q:\n%s", want, out)
		}
	}
	// child modules get their own sections, recursively
	if !strings.Contains(out, "module counter/adder0\n") {
		t.Errorf("no section for child instance:\n%s", out)
	}
}

func TestWriteNetlist_regAndMemory(t *testing.T) {
	m := esl.NewModule("m")
	clk := m.Wire("clk", 1)
	addr := m.Wire("addr", 2)
	din := m.Wire("din", 8)
	q := m.Wire("q", 8)
	mem := m.Memory("mem", 2, 8)
	m.Seq("write", clk, esl.Rising, esl.Reads(addr, din), esl.Writes(mem), func() {
		mem.At(addr.Val()).SetNext(din.Val())
	})
	m.Seq("hold", clk, esl.Rising, esl.Reads(q), esl.Writes(q), func() {})
	m.Output("q_o", 8, q)

	var b strings.Builder
	if err := esl.WriteNetlist(&b, m); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"memory mem depth 4 width 8 reg",
		"reg q width 8",
		"writes (mem[*])",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("netlist missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "wire mem[0]") {
		t.Errorf("memory words leaked as wires:\n%s", out)
	}
}

func TestWriteNetlist_failsFast(t *testing.T) {
	m := esl.NewModule("bad")
	a := m.Wire("a", 1)
	out := m.Wire("out", 1)
	m.Comb("d1", esl.Reads(a), esl.Writes(out), func() {})
	m.Comb("d2", esl.Reads(a), esl.Writes(out), func() {})

	var b strings.Builder
	err := esl.WriteNetlist(&b, m)
	if errors.Cause(err) != esl.ErrMultipleDrivers {
		t.Fatalf("got %v, want ErrMultipleDrivers", err)
	}
	if b.Len() != 0 {
		t.Errorf("partial output written: %q", b.String())
	}
}
