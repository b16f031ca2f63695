// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Signal is a named wire or bus of fixed bit width. It holds a current
// value, visible to readers during the current evaluation round, and a
// next value scheduled to become current. Only the simulator commits the
// next value into the current one.
//
// The next slot persists across evaluation rounds: a logic block branch
// that does not assign a signal leaves the previously scheduled value in
// place. It is never reset to zero between rounds, so combinational
// blocks must assign every output on every evaluation or dependent logic
// will keep stale state.
//
// Bit and Range return view signals that alias bits of their root bus:
// reading a view slices the root's current value, writing a view patches
// the root's next value. Distinct blocks may drive disjoint bits of one
// bus; overlapping drivers are rejected at elaboration.
type Signal struct {
	name   string
	width  int
	init   Value
	cur    Value
	next   Value
	parent *Signal // non-nil for bit/range views
	off    int     // bit offset within parent
	tied   bool    // constant, counts as driven
}

// NewSignal returns a standalone signal of the given width, initialized
// to zero. Signals local to a module should be created with Module.Wire
// instead so that the module owns them.
func NewSignal(name string, width int) *Signal {
	return NewSignalInit(name, MustValue(width, 0))
}

// NewSignalInit returns a standalone signal initialized to init, with the
// width of init.
func NewSignalInit(name string, init Value) *Signal {
	return &Signal{name: name, width: init.Width(), init: init, cur: init, next: init}
}

// Name returns the signal name. Views are named after their root, e.g.
// "cnt[2]" or "ramp[5:2]".
func (s *Signal) Name() string { return s.name }

// Width returns the bit width of s.
func (s *Signal) Width() int { return s.width }

// root returns the backing signal of s and the absolute bit offset of s
// within it.
func (s *Signal) root() (*Signal, int) {
	r, off := s, 0
	for r.parent != nil {
		off += r.off
		r = r.parent
	}
	return r, off
}

// Val returns the current value of s.
func (s *Signal) Val() Value {
	if s.parent == nil {
		return s.cur
	}
	r, off := s.root()
	return r.cur.Slice(off, off+s.width)
}

// SetNext schedules v to become the value of s. It panics with
// ErrWidthMismatch if the width of v differs from the width of s. The
// scheduled value becomes current only when the simulator commits it.
func (s *Signal) SetNext(v Value) {
	if v.Width() != s.width {
		panic(errors.Wrapf(ErrWidthMismatch, "schedule %d bit value on %d bit signal %s", v.Width(), s.width, s.name))
	}
	r, off := s.root()
	if r.width == v.Width() {
		r.next = v
		return
	}
	r.next = r.next.SetSlice(off, v)
}

// Bit returns a 1-bit view signal aliasing bit i of s.
func (s *Signal) Bit(i int) *Signal {
	return s.view(i, i+1, s.name+"["+strconv.Itoa(i)+"]")
}

// Range returns a view signal aliasing bits [lo, hi) of s.
func (s *Signal) Range(lo, hi int) *Signal {
	return s.view(lo, hi, s.name+"["+strconv.Itoa(hi-1)+":"+strconv.Itoa(lo)+"]")
}

func (s *Signal) view(lo, hi int, name string) *Signal {
	if lo < 0 || hi > s.width || lo >= hi {
		panic(errors.Wrapf(ErrRange, "view [%d, %d) of %d bit signal %s", lo, hi, s.width, s.name))
	}
	return &Signal{name: name, width: hi - lo, parent: s, off: lo}
}

// commit moves the scheduled next value into the current one. The next
// slot keeps its value. Simulator use only.
func (s *Signal) commit() (changed bool) {
	if s.cur.Eq(s.next) {
		return false
	}
	s.cur = s.next
	return true
}

// reset restores the initial value in both slots. Simulator use only.
func (s *Signal) reset() {
	s.cur = s.init
	s.next = s.init
}

// A Location is anything that contributes signals to a block's read or
// write set: a Signal, a view of one, or a Memory.
type Location interface {
	locSignals() []*Signal
}

func (s *Signal) locSignals() []*Signal { return []*Signal{s} }
