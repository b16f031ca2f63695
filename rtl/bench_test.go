package rtl_test

import (
	"testing"

	esl "github.com/Dud3ek/ESL"
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

func poke(t *testing.T, sim *esl.Simulator, s *esl.Signal, x int64) {
	t.Helper()
	if err := sim.Poke(s, esl.MustValue(s.Width(), x)); err != nil {
		t.Fatal(err)
	}
}

func clock(t *testing.T, sim *esl.Simulator, clk *esl.Signal, cycles int) {
	t.Helper()
	if err := sim.Clock(clk, cycles); err != nil {
		t.Fatal(err)
	}
}
