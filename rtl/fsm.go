// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	esl "github.com/Dud3ek/ESL"
)

// GenReset returns a power-up reset generator: reset_o pulses high for
// one clock cycle after the first rising edge, then stays low.
func GenReset(clk, reset *esl.Signal) *esl.Module {
	m := esl.NewModule("gen_reset")
	m.Input("clk_i", 1, clk)
	m.Output("reset_o", 1, reset)
	cntr := m.Wire("cntr", 1)
	m.Seq("logic", clk, esl.Rising, esl.Reads(cntr), esl.Writes(cntr, reset), func() {
		if cntr.Val().IsZero() {
			cntr.SetNext(esl.MustValue(1, 1))
			reset.SetNext(esl.MustValue(1, 1))
		} else {
			reset.SetNext(esl.MustValue(1, 0))
		}
	})
	return m
}

// SampleEn returns a pulse generator: do_sample_o goes high for a single
// cycle once every period clock cycles.
func SampleEn(clk, doSample *esl.Signal, period int) *esl.Module {
	m := esl.NewModule("sample_en")
	m.Input("clk_i", 1, clk)
	m.Output("do_sample_o", 1, doSample)
	n := clog2(period - 1)
	cntr := m.Wire("cntr", n)
	var (
		one      = esl.MustValue(n, 1)
		zero     = esl.MustValue(n, 0)
		rollover = esl.MustValue(n, int64(period-1))
	)
	m.Seq("counter", clk, esl.Rising, esl.Reads(cntr), esl.Writes(cntr, doSample), func() {
		c := cntr.Val()
		cntr.SetNext(c.Add(one))
		doSample.SetNext(esl.MustValue(1, 0))
		if c.Eq(rollover) {
			doSample.SetNext(esl.MustValue(1, 1))
			cntr.SetNext(zero)
		}
	})
	return m
}

// RecordPlayStates enumerates the record/playback controller states.
var RecordPlayStates = esl.NewStateSet("rp_state",
	"INIT", "WAITING_TO_RECORD", "RECORDING", "WAITING_TO_PLAY", "PLAYING")

// RecordPlay returns the record-and-playback controller: while button A
// selects between recording and playback, samples of button B are taken
// every samplePeriod cycles, stored in a 1-bit RAM of 2^addrWidth
// locations, and played back onto the LEDs in a loop. A power-up reset
// pulse forces the controller into INIT before normal operation.
func RecordPlay(clk, btnA, btnB, leds *esl.Signal, addrWidth, samplePeriod int) *esl.Module {
	m := esl.NewModule("record_play")
	m.Input("clk_i", 1, clk)
	m.Input("button_a", 1, btnA)
	m.Input("button_b", 1, btnB)
	m.Output("leds_o", 5, leds)

	reset := m.Wire("reset", 1)
	m.Add(GenReset(clk, reset))
	doSample := m.Wire("do_sample", 1)
	m.Add(SampleEn(clk, doSample, samplePeriod))

	wr := m.Wire("wr", 1)
	addr := m.Wire("addr", addrWidth)
	endAddr := m.Wire("end_addr", addrWidth)
	dataI := m.Wire("data_i", 1)
	dataO := m.Wire("data_o", 1)
	m.Add(Ram(clk, wr, addr, dataI, dataO))

	ss := RecordPlayStates
	state := ss.Signal(m, "state")
	var (
		sInit     = ss.Value("INIT")
		sWaitRec  = ss.Value("WAITING_TO_RECORD")
		sRec      = ss.Value("RECORDING")
		sWaitPlay = ss.Value("WAITING_TO_PLAY")
		sPlay     = ss.Value("PLAYING")
		one       = esl.MustValue(addrWidth, 1)
		lo        = esl.MustValue(1, 0)
		hi        = esl.MustValue(1, 1)
	)
	reads := esl.Reads(reset, doSample, btnA, btnB, state, addr, endAddr, dataO)
	writes := esl.Writes(wr, state, leds, addr, endAddr, dataI)
	m.Seq("fsm", clk, esl.Rising, reads, writes, func() {
		wr.SetNext(lo) // RAM write-control off unless a state below asserts it
		st := state.Val()
		switch {
		case !reset.Val().IsZero():
			state.SetNext(sInit)
		case !doSample.Val().IsZero():
			switch {
			case st.Eq(sInit):
				leds.SetNext(esl.MustValue(5, 0b10101))
				if !btnA.Val().IsZero() {
					state.SetNext(sWaitRec)
				}
			case st.Eq(sWaitRec):
				leds.SetNext(esl.MustValue(5, 0b11010))
				if btnA.Val().IsZero() {
					// record from the start of RAM once button A is released
					addr.SetNext(esl.MustValue(addrWidth, 0))
					dataI.SetNext(btnB.Val())
					wr.SetNext(hi)
					state.SetNext(sRec)
				}
			case st.Eq(sRec):
				addr.SetNext(addr.Val().Add(one))
				dataI.SetNext(btnB.Val())
				wr.SetNext(hi)
				// echo button B on the low LEDs while recording
				b := btnB.Val()
				leds.SetNext(hi.Concat(b).Concat(b).Concat(b).Concat(b))
				if !btnA.Val().IsZero() {
					endAddr.SetNext(addr.Val().Add(one))
					state.SetNext(sWaitPlay)
				}
			case st.Eq(sWaitPlay):
				leds.SetNext(esl.MustValue(5, 0b10000))
				if btnA.Val().IsZero() {
					addr.SetNext(esl.MustValue(addrWidth, 0))
					state.SetNext(sPlay)
				}
			case st.Eq(sPlay):
				b := dataO.Val()
				leds.SetNext(hi.Concat(b).Concat(b).Concat(b).Concat(b))
				addr.SetNext(addr.Val().Add(one))
				if addr.Val().Eq(endAddr.Val()) {
					addr.SetNext(esl.MustValue(addrWidth, 0))
				}
				if !btnA.Val().IsZero() {
					state.SetNext(sWaitRec)
				}
			}
		}
	})
	return m
}

// ClassicFsmStates enumerates the classic Moore machine states.
var ClassicFsmStates = esl.NewStateSet("fsm_state", "A", "B", "C", "D")

// ClassicFsm returns a debounced Moore machine over the states A..D.
// Each input bit is debounced over bounceCycles, rising edges of the
// debounced inputs drive the transitions (input 0 steps forward, input 1
// steps backward), and the outputs are a one-hot function of the current
// state alone. A two-bit reset counter holds state A for the first
// cycles after power-up.
func ClassicFsm(clk, inputs, outputs *esl.Signal, bounceCycles int) *esl.Module {
	m := esl.NewModule("classic_fsm")
	n := inputs.Width()
	m.Input("clk_i", 1, clk)
	m.Input("inputs_i", n, inputs)
	m.Output("outputs_o", 4, outputs)

	ss := ClassicFsmStates
	state := ss.Signal(m, "state")
	resetCnt := m.Wire("reset_cnt", 2)
	prevInputs := m.Wire("prev_inputs", n)
	inputChgs := m.Wire("input_chgs", n)
	dbncInputs := m.Wire("dbnc_inputs", n)
	for k := 0; k < n; k++ {
		m.Add(Debouncer(clk, inputs.Bit(k), dbncInputs.Bit(k), bounceCycles))
	}

	m.Comb("detect_chg", esl.Reads(dbncInputs, prevInputs), esl.Writes(inputChgs), func() {
		inputChgs.SetNext(dbncInputs.Val().And(prevInputs.Val().Not()))
	})

	var (
		sA, sB   = ss.Value("A"), ss.Value("B")
		sC, sD   = ss.Value("C"), ss.Value("D")
		one2     = esl.MustValue(2, 1)
		resetTop = esl.MaxValue(2) // hold state A while reset_cnt < 3
	)
	m.Seq("next_state_logic", clk, esl.Rising,
		esl.Reads(resetCnt, state, inputChgs, dbncInputs),
		esl.Writes(state, resetCnt, prevInputs), func() {
			st, chg := state.Val(), inputChgs.Val()
			fwd, bck := chg.Bit(0), chg.Bit(1)
			switch {
			case resetCnt.Val().Less(resetTop):
				state.SetNext(sA)
				resetCnt.SetNext(resetCnt.Val().Add(one2))
			case st.Eq(sA):
				if fwd {
					state.SetNext(sB)
				} else if bck {
					state.SetNext(sD)
				}
			case st.Eq(sB):
				if fwd {
					state.SetNext(sC)
				} else if bck {
					state.SetNext(sA)
				}
			case st.Eq(sC):
				if fwd {
					state.SetNext(sD)
				} else if bck {
					state.SetNext(sB)
				}
			case st.Eq(sD):
				if fwd {
					state.SetNext(sA)
				} else if bck {
					state.SetNext(sC)
				}
			default:
				state.SetNext(sA)
			}
			prevInputs.SetNext(dbncInputs.Val())
		})

	m.Comb("output_logic", esl.Reads(state), esl.Writes(outputs), func() {
		st := state.Val()
		switch {
		case st.Eq(sA):
			outputs.SetNext(esl.MustValue(4, 0b0001))
		case st.Eq(sB):
			outputs.SetNext(esl.MustValue(4, 0b0010))
		case st.Eq(sC):
			outputs.SetNext(esl.MustValue(4, 0b0100))
		case st.Eq(sD):
			outputs.SetNext(esl.MustValue(4, 0b1000))
		default:
			outputs.SetNext(esl.MustValue(4, 0b1111))
		}
	})
	return m
}
