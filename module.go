// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "github.com/pkg/errors"

// PortDir is the direction of a module port.
type PortDir int

// Port directions.
const (
	In PortDir = iota
	Out
)

func (d PortDir) String() string {
	if d == Out {
		return "output"
	}
	return "input"
}

// A Port binds an externally supplied signal to a module boundary. The
// binding is by identity: the port signal and the bound signal are the
// same signal, not a copy.
type Port struct {
	Name  string
	Dir   PortDir
	Width int // declared width, checked against Sig at elaboration
	Sig   *Signal
}

// A tie forces a signal (or a bit view of one) to a constant value. Tied
// bits count as driven.
type tie struct {
	sig *Signal
	val Value
}

// A Module is a named, composable unit owning signals, logic blocks,
// memories and child module instances. Ownership is explicit: everything
// a module contains is registered into it by the builder methods below,
// and elaboration is a pure function of the resulting instance tree.
//
// The usual pattern is a constructor taking the port signals and
// returning the module, e.g.:
//
//	func Counter(clk, cnt *esl.Signal) *esl.Module {
//		m := esl.NewModule("counter")
//		m.Input("clk_i", 1, clk)
//		m.Output("cnt_o", cnt.Width(), cnt)
//		...
//		return m
//	}
//
// Builder misuse that can only be judged in context (bad clock width,
// duplicate child) is recorded and reported by Elaborate, which fails
// fast before any simulation or export.
type Module struct {
	name     string
	signals  []*Signal
	blocks   []*Block
	children []*Module
	ports    []*Port
	mems     []*Memory
	ties     []tie
	errs     []error
}

// NewModule returns a new, empty module.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Ports returns the module's port list in declaration order.
func (m *Module) Ports() []*Port { return m.ports }

// Children returns the module's child instances in declaration order.
func (m *Module) Children() []*Module { return m.children }

// Blocks returns the module's logic blocks in declaration order.
func (m *Module) Blocks() []*Block { return m.blocks }

// Wire declares a signal of the given width owned by m, initialized to
// zero.
func (m *Module) Wire(name string, width int) *Signal {
	return m.WireInit(name, MustValue(width, 0))
}

// WireInit declares a signal owned by m with the given power-up value.
func (m *Module) WireInit(name string, init Value) *Signal {
	s := NewSignalInit(name, init)
	m.signals = append(m.signals, s)
	return s
}

// Const declares a signal owned by m tied to the constant v. Tied signals
// count as driven and may not be driven by any block.
func (m *Module) Const(name string, v Value) *Signal {
	s := m.WireInit(name, v)
	s.tied = true
	m.ties = append(m.ties, tie{sig: s, val: v})
	return s
}

// Tie forces sig, which may be a bit view, to the constant v.
func (m *Module) Tie(sig *Signal, v Value) {
	if v.Width() != sig.Width() {
		m.errs = append(m.errs, errors.Wrapf(ErrWidthMismatch,
			"module %s: tie %d bit value to %d bit signal %s", m.name, v.Width(), sig.Width(), sig.Name()))
		return
	}
	m.ties = append(m.ties, tie{sig: sig, val: v})
}

// Input declares an input port of the given width bound to sig.
func (m *Module) Input(name string, width int, sig *Signal) {
	m.ports = append(m.ports, &Port{Name: name, Dir: In, Width: width, Sig: sig})
}

// Output declares an output port of the given width bound to sig.
func (m *Module) Output(name string, width int, sig *Signal) {
	m.ports = append(m.ports, &Port{Name: name, Dir: Out, Width: width, Sig: sig})
}

// Add registers a child module instance.
func (m *Module) Add(child *Module) {
	if child == m {
		m.errs = append(m.errs, errors.Wrapf(ErrCyclicInstantiation,
			"module %s instantiates itself", m.name))
		return
	}
	m.children = append(m.children, child)
}

// Comb registers a combinational block. fn must assign every signal of
// the write set on every evaluation; a branch that skips an assignment
// keeps the previously scheduled value.
func (m *Module) Comb(name string, reads, writes []*Signal, fn func()) {
	m.blocks = append(m.blocks, &Block{name: name, reads: reads, writes: writes, fn: fn})
}

// Seq registers a sequential block triggered on the given edge of clk.
// The clock must be a 1-bit signal.
func (m *Module) Seq(name string, clk *Signal, edge Edge, reads, writes []*Signal, fn func()) {
	if clk.Width() != 1 {
		m.errs = append(m.errs, errors.Wrapf(ErrWidthMismatch,
			"module %s: block %s: %d bit clock %s", m.name, name, clk.Width(), clk.Name()))
	}
	m.blocks = append(m.blocks, &Block{name: name, seq: true, clk: clk, edge: edge, reads: reads, writes: writes, fn: fn})
}
