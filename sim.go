// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "github.com/pkg/errors"

// A Simulator is a single-threaded discrete-event engine over an
// elaborated Design. Hardware concurrency is modeled as logical
// simultaneity within one simulated instant: combinational blocks are
// re-evaluated until the design settles, and all sequential blocks
// triggered by a clock edge observe identical pre-edge state and commit
// together.
//
// All mutation goes through the schedule/commit protocol; the only
// external way to change a signal is Poke, which is restricted to
// signals no logic block drives.
type Simulator struct {
	d         *Design
	maxSettle int
	trace     *Trace
	time      uint64
}

// An Option configures a Simulator.
type Option func(*Simulator)

// WithMaxSettle bounds the number of settle iterations per instant. The
// default is 2*len(combinational blocks)+8.
func WithMaxSettle(n int) Option {
	return func(s *Simulator) { s.maxSettle = n }
}

// WithTrace attaches a trace recorder, sampled after every instant.
func WithTrace(t *Trace) Option {
	return func(s *Simulator) { s.trace = t }
}

// NewSimulator resets every signal of d to its initial value, applies the
// design's ties and settles the combinational logic. It fails with
// ErrNoFixedPoint if the design cannot settle even once.
func NewSimulator(d *Design, opts ...Option) (*Simulator, error) {
	s := &Simulator{d: d, maxSettle: 2*len(d.comb) + 8}
	for _, o := range opts {
		o(s)
	}
	for _, r := range d.roots {
		r.reset()
	}
	for _, t := range d.ties {
		r, off := t.sig.root()
		r.cur = r.cur.SetSlice(off, t.val)
		r.next = r.next.SetSlice(off, t.val)
	}
	if err := s.settle(); err != nil {
		return nil, err
	}
	if s.trace != nil {
		s.trace.sample(s.time)
	}
	return s, nil
}

// Time returns the number of instants elapsed.
func (s *Simulator) Time() uint64 { return s.time }

// Design returns the design under simulation.
func (s *Simulator) Design() *Design { return s.d }

// Peek returns the current value of sig.
func (s *Simulator) Peek(sig *Signal) Value { return sig.Val() }

// Poke drives sig to v and advances the simulation by one instant: the
// value is applied, any clock edge this causes triggers the sequential
// blocks bound to it (evaluated against pre-edge state, committed
// atomically), and the combinational logic is settled. Only signals no
// block drives and no tie holds can be poked.
func (s *Simulator) Poke(sig *Signal, v Value) error {
	if err := s.apply(sig, v); err != nil {
		return err
	}
	s.advance(1)
	return nil
}

// Settle re-evaluates the combinational blocks to a fixed point. It fails
// with ErrNoFixedPoint when the iteration bound is exceeded, leaving the
// last fully committed state in place.
func (s *Simulator) Settle() error { return s.settle() }

// Run consumes an ordered stimulus list. Each event applies its value and
// then advances simulated time by Delay instants; events with zero delay
// take effect within the same instant as the following event. Events are
// never reordered.
func (s *Simulator) Run(events []Event) error {
	for i, ev := range events {
		if err := s.apply(ev.Signal, ev.Value); err != nil {
			return errors.Wrapf(err, "event %d", i)
		}
		if ev.Delay > 0 {
			s.advance(ev.Delay)
		}
	}
	return nil
}

// Clock runs the given number of whole clock cycles on clk: low for one
// instant, then high for one instant, so sequential logic on the rising
// edge fires once per cycle.
func (s *Simulator) Clock(clk *Signal, cycles int) error {
	for i := 0; i < cycles; i++ {
		if err := s.Poke(clk, MustValue(1, 0)); err != nil {
			return err
		}
		if err := s.Poke(clk, MustValue(1, 1)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) apply(sig *Signal, v Value) error {
	if v.Width() != sig.Width() {
		return errors.Wrapf(ErrWidthMismatch, "poke %d bit value on %d bit signal %s", v.Width(), sig.Width(), sig.Name())
	}
	r, off := sig.root()
	tied := s.d.tiedBits[r]
	for i := 0; i < v.Width(); i++ {
		if drv := s.d.driverAt(r, off+i); drv != nil {
			return errors.Wrapf(ErrDrivenSignal, "%s is driven by %s", sig.Name(), s.d.paths[drv])
		}
		if tied != nil && tied[off+i] {
			return errors.Wrapf(ErrDrivenSignal, "%s is tied to a constant", sig.Name())
		}
	}
	old := r.cur
	r.cur = r.cur.SetSlice(off, v)
	r.next = r.cur

	// a poked signal may be the clock of sequential blocks
	var fired []*Block
	for _, b := range s.d.seq {
		cr, coff := b.clk.root()
		if cr != r || coff < off || coff >= off+v.Width() {
			continue
		}
		was, is := old.Bit(coff), r.cur.Bit(coff)
		if was == is {
			continue
		}
		if (b.edge == Rising && is) || (b.edge == Falling && was) {
			fired = append(fired, b)
		}
	}
	if len(fired) > 0 {
		for _, b := range fired {
			b.fn()
		}
		for _, root := range s.d.roots {
			root.commit()
		}
	}
	return s.settle()
}

func (s *Simulator) advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.time++
		if s.trace != nil {
			s.trace.sample(s.time)
		}
	}
}

func (s *Simulator) settle() error {
	for i := 0; i < s.maxSettle; i++ {
		for _, b := range s.d.comb {
			b.fn()
		}
		changed := false
		for _, r := range s.d.roots {
			if r.commit() {
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
	return errors.Wrapf(ErrNoFixedPoint, "after %d settle iterations", s.maxSettle)
}
