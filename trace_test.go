package esl_test

import (
	"strings"
	"testing"

	esl "github.com/Dud3ek/ESL"
)

func TestTrace(t *testing.T) {
	m := esl.NewModule("m")
	clk := m.Wire("clk", 1)
	cnt := m.Wire("cnt", 2)
	m.Seq("count", clk, esl.Rising, esl.Reads(cnt), esl.Writes(cnt), func() {
		cnt.SetNext(cnt.Val().Add(esl.MustValue(2, 1)))
	})
	m.Output("cnt_o", 2, cnt)

	tr := esl.NewTrace(clk, cnt)
	sim := newSim(t, m, esl.WithTrace(tr))
	if err := sim.Clock(clk, 2); err != nil {
		t.Fatal(err)
	}

	// instant 0 plus 4 poked instants
	if tr.Len() != 5 {
		t.Fatalf("trace length = %d, want 5", tr.Len())
	}
	wantCnt := []uint64{0, 0, 1, 1, 2}
	for n, want := range wantCnt {
		if got := tr.At(n, 1).Uint64(); got != want {
			t.Errorf("cnt at instant %d = %d, want %d", n, got, want)
		}
	}

	var b strings.Builder
	if err := tr.WriteTable(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want header + 5 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "time") || !strings.Contains(lines[0], "cnt") {
		t.Errorf("bad header %q", lines[0])
	}
	if !strings.Contains(lines[5], "2'b10") {
		t.Errorf("last row %q does not show cnt = 2'b10", lines[5])
	}
}
