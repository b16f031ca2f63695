// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "github.com/pkg/errors"

// A Design is the result of elaborating a module tree: one flat signal
// and block collection with per-bit driver accounting, ready to simulate
// or inspect.
type Design struct {
	top      *Module
	roots    []*Signal // every root signal, in discovery order
	comb     []*Block  // combinational blocks, dependency ordered
	seq      []*Block  // sequential blocks, registration ordered
	ties     []tie
	drivers  map[*Signal][]*Block // per root, one entry per bit, nil if undriven
	tiedBits map[*Signal][]bool
	inputs   map[*Signal]bool // roots driven externally (top inputs, clocks)
	bound    map[*Signal]bool // roots bound to some port
	paths    map[*Block]string
	warnings []Warning
}

// Top returns the module the design was elaborated from.
func (d *Design) Top() *Module { return d.top }

// Signals returns every root signal of the design in discovery order.
func (d *Design) Signals() []*Signal { return d.roots }

// Warnings returns the non-fatal diagnostics produced by elaboration.
func (d *Design) Warnings() []Warning { return d.warnings }

// driverAt returns the block driving the given bit of a root, or nil.
func (d *Design) driverAt(root *Signal, bit int) *Block {
	if ds := d.drivers[root]; ds != nil {
		return ds[bit]
	}
	return nil
}

// Elaborate flattens the instance tree of top into a Design. It walks the
// tree depth-first, resolving port bindings by identity, collects every
// signal and logic block, builds the per-bit driver map and a dependency
// ordering for combinational evaluation, and verifies the structural
// invariants: no module is its own ancestor, port widths match the bound
// signals, no bit has more than one driver, and sequential clocks are
// 1-bit signals driven by stimulus, not by logic.
//
// Any error aborts elaboration; no partial design is returned. Signals
// that are read but never driven are reported as warnings, since they may
// be tied off externally.
func Elaborate(top *Module) (*Design, error) {
	d := &Design{
		top:      top,
		drivers:  make(map[*Signal][]*Block),
		tiedBits: make(map[*Signal][]bool),
		inputs:   make(map[*Signal]bool),
		bound:    make(map[*Signal]bool),
		paths:    make(map[*Block]string),
	}
	seen := make(map[*Signal]bool)
	var blocks []*Block

	var walk func(m *Module, path string, ancestors map[*Module]bool) error
	walk = func(m *Module, path string, ancestors map[*Module]bool) error {
		if ancestors[m] {
			return errors.Wrapf(ErrCyclicInstantiation, "%s", path)
		}
		if len(m.errs) > 0 {
			return errors.Wrapf(m.errs[0], "%s", path)
		}
		for _, p := range m.ports {
			if p.Sig == nil {
				return errors.Errorf("%s: port %s is not bound", path, p.Name)
			}
			if p.Sig.Width() != p.Width {
				return errors.Wrapf(ErrWidthMismatch, "%s: port %s declared %d bits, bound to %d bit signal %s",
					path, p.Name, p.Width, p.Sig.Width(), p.Sig.Name())
			}
			d.collect(p.Sig, seen)
			r, _ := p.Sig.root()
			d.bound[r] = true
		}
		for _, s := range m.signals {
			d.collect(s, seen)
		}
		for _, b := range m.blocks {
			d.paths[b] = path + "/" + b.name
			blocks = append(blocks, b)
			for _, s := range b.reads {
				d.collect(s, seen)
			}
			for _, s := range b.writes {
				d.collect(s, seen)
			}
			if b.seq {
				d.collect(b.clk, seen)
			}
		}
		for _, t := range m.ties {
			d.ties = append(d.ties, t)
			d.collect(t.sig, seen)
		}
		ancestors[m] = true
		for _, c := range m.children {
			if err := walk(c, path+"/"+c.name, ancestors); err != nil {
				return err
			}
		}
		delete(ancestors, m)
		return nil
	}
	if err := walk(top, top.name, make(map[*Module]bool)); err != nil {
		return nil, err
	}

	if err := d.mapDrivers(blocks); err != nil {
		return nil, err
	}

	// Top-level inputs and clocks are driven by stimulus.
	for _, p := range top.ports {
		if p.Dir == In {
			r, _ := p.Sig.root()
			d.inputs[r] = true
		}
	}
	for _, b := range d.seq {
		r, off := b.clk.root()
		if drv := d.driverAt(r, off); drv != nil {
			return nil, errors.Errorf("%s: clock %s is driven by block %s; clocks must be driven by stimulus",
				d.paths[b], b.clk.Name(), d.paths[drv])
		}
		d.inputs[r] = true
	}

	d.warnUndriven(blocks)
	d.orderComb()
	return d, nil
}

// collect registers the root of s in discovery order.
func (d *Design) collect(s *Signal, seen map[*Signal]bool) {
	r, _ := s.root()
	if !seen[r] {
		seen[r] = true
		d.roots = append(d.roots, r)
	}
}

// mapDrivers builds the per-bit driver map and rejects overlapping
// drivers, including overlaps between blocks and ties.
func (d *Design) mapDrivers(blocks []*Block) error {
	for _, t := range d.ties {
		r, off := t.sig.root()
		bits := d.tiedBits[r]
		if bits == nil {
			bits = make([]bool, r.Width())
			d.tiedBits[r] = bits
		}
		for i := 0; i < t.sig.Width(); i++ {
			if bits[off+i] {
				return errors.Wrapf(ErrMultipleDrivers, "signal %s bit %d tied twice", r.Name(), off+i)
			}
			bits[off+i] = true
		}
	}
	for _, b := range blocks {
		if b.seq {
			d.seq = append(d.seq, b)
		} else {
			d.comb = append(d.comb, b)
		}
		for _, w := range b.writes {
			r, off := w.root()
			ds := d.drivers[r]
			if ds == nil {
				ds = make([]*Block, r.Width())
				d.drivers[r] = ds
			}
			tied := d.tiedBits[r]
			for i := 0; i < w.Width(); i++ {
				if prev := ds[off+i]; prev != nil && prev != b {
					return errors.Wrapf(ErrMultipleDrivers, "signal %s bit %d driven by both %s and %s",
						r.Name(), off+i, d.paths[prev], d.paths[b])
				}
				if tied != nil && tied[off+i] {
					return errors.Wrapf(ErrMultipleDrivers, "signal %s bit %d is tied and driven by %s",
						r.Name(), off+i, d.paths[b])
				}
				ds[off+i] = b
			}
		}
	}
	return nil
}

// warnUndriven flags signals that some block reads but nothing drives,
// and signals that are driven but reach no block or port.
func (d *Design) warnUndriven(blocks []*Block) {
	read := make(map[*Signal]bool)
	for _, b := range blocks {
		for _, s := range b.reads {
			r, _ := s.root()
			read[r] = true
		}
		if b.seq {
			r, _ := b.clk.root()
			read[r] = true
		}
	}
	for _, r := range d.roots {
		driven := false
		ds, tied := d.drivers[r], d.tiedBits[r]
		for i := 0; i < r.Width(); i++ {
			if (ds != nil && ds[i] != nil) || (tied != nil && tied[i]) {
				driven = true
				break
			}
		}
		switch {
		case read[r] && !driven && !d.inputs[r]:
			d.warnings = append(d.warnings, Warning{Signal: r, Msg: "read but never driven"})
		case driven && !read[r] && !d.bound[r]:
			d.warnings = append(d.warnings, Warning{Signal: r, Msg: "driven but never read"})
		}
	}
}

// orderComb reorders the combinational blocks so that drivers come before
// readers where the dependency graph allows it. This is an efficiency
// measure only: settling iterates to a fixed point regardless of order.
// Blocks on a combinational cycle keep their registration order at the
// end of the list.
func (d *Design) orderComb() {
	index := make(map[*Block]int, len(d.comb))
	for i, b := range d.comb {
		index[b] = i
	}
	readers := make(map[*Signal][]*Block)
	for _, b := range d.comb {
		for _, s := range b.reads {
			r, _ := s.root()
			readers[r] = append(readers[r], b)
		}
	}
	indeg := make(map[*Block]int, len(d.comb))
	succ := make(map[*Block]map[*Block]bool)
	for _, b := range d.comb {
		for _, w := range b.writes {
			r, _ := w.root()
			for _, rd := range readers[r] {
				if rd == b {
					continue
				}
				if succ[b] == nil {
					succ[b] = make(map[*Block]bool)
				}
				if !succ[b][rd] {
					succ[b][rd] = true
					indeg[rd]++
				}
			}
		}
	}
	var order, ready []*Block
	for _, b := range d.comb {
		if indeg[b] == 0 {
			ready = append(ready, b)
		}
	}
	for len(ready) > 0 {
		// lowest registration index first, for determinism
		best := 0
		for i := 1; i < len(ready); i++ {
			if index[ready[i]] < index[ready[best]] {
				best = i
			}
		}
		b := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, b)
		for s := range succ[b] {
			indeg[s]--
			if indeg[s] == 0 {
				ready = append(ready, s)
			}
		}
	}
	if len(order) < len(d.comb) {
		for _, b := range d.comb {
			if indeg[b] > 0 {
				order = append(order, b)
			}
		}
	}
	d.comb = order
}
