// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteNetlist renders the module tree rooted at top as a structural
// wire-level description: one section per module instance listing its
// ports (name, direction, width), internal signal declarations (reg when
// a sequential block drives the signal, wire otherwise, memories as
// aggregates), child instantiations with their port bindings, and one
// clause per logic block giving its read and write sets and, for
// sequential blocks, clock and edge polarity. Widths, edge polarity and
// tie/initial values are preserved losslessly.
//
// The tree is elaborated first; any elaboration error aborts the export
// with no partial output. The scheduler is not involved.
func WriteNetlist(w io.Writer, top *Module) error {
	d, err := Elaborate(top)
	if err != nil {
		return err
	}
	var b strings.Builder
	writeModule(&b, d, top, top.name)
	_, err = io.WriteString(w, b.String())
	return err
}

func writeModule(b *strings.Builder, d *Design, m *Module, path string) {
	fmt.Fprintf(b, "module %s\n", path)
	for _, p := range m.ports {
		fmt.Fprintf(b, "  %-6s %s width %d = %s\n", p.Dir, p.Name, p.Width, p.Sig.Name())
	}
	memWords := make(map[*Signal]bool)
	for _, mem := range m.mems {
		for _, w := range mem.words {
			memWords[w] = true
		}
		kind := "wire"
		if d.memSequential(mem) {
			kind = "reg"
		}
		fmt.Fprintf(b, "  memory %s depth %d width %d %s\n", mem.name, mem.Depth(), mem.Width(), kind)
	}
	for _, s := range m.signals {
		if memWords[s] || s.tied {
			continue
		}
		kind := "wire"
		if d.anySequential(s) {
			kind = "reg"
		}
		fmt.Fprintf(b, "  %s %s width %d", kind, s.Name(), s.Width())
		if !s.init.IsZero() {
			fmt.Fprintf(b, " init %s", s.init)
		}
		b.WriteString("\n")
	}
	for _, t := range m.ties {
		fmt.Fprintf(b, "  tie %s = %s\n", t.sig.Name(), t.val)
	}
	for i, c := range m.children {
		fmt.Fprintf(b, "  inst %s u%d (", instPath(path, c, i), i)
		for j, p := range c.ports {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%s", p.Name, p.Sig.Name())
		}
		b.WriteString(")\n")
	}
	for _, blk := range m.blocks {
		if blk.seq {
			fmt.Fprintf(b, "  seq %s %s %s", blk.name, blk.edge, blk.clk.Name())
		} else {
			fmt.Fprintf(b, "  comb %s", blk.name)
		}
		b.WriteString(" reads " + sigList(blk.reads, memWords, m))
		b.WriteString(" writes " + sigList(blk.writes, memWords, m))
		b.WriteString("\n")
	}
	b.WriteString("end\n\n")
	for i, c := range m.children {
		writeModule(b, d, c, instPath(path, c, i))
	}
}

func instPath(parent string, c *Module, i int) string {
	return parent + "/" + c.name + strconv.Itoa(i)
}

// sigList formats a read or write set, collapsing memory word signals
// into the memory name.
func sigList(ss []*Signal, memWords map[*Signal]bool, m *Module) string {
	var out []string
	mems := make(map[*Memory]bool)
	for _, s := range ss {
		r, _ := s.root()
		if memWords[r] {
			for _, mem := range m.mems {
				for _, w := range mem.words {
					if w == r {
						if !mems[mem] {
							mems[mem] = true
							out = append(out, mem.name+"[*]")
						}
						break
					}
				}
			}
			continue
		}
		out = append(out, s.Name())
	}
	if len(out) == 0 {
		return "()"
	}
	return "(" + strings.Join(out, ", ") + ")"
}

// anySequential returns true if any bit of s is driven by a sequential
// block.
func (d *Design) anySequential(s *Signal) bool {
	r, _ := s.root()
	for _, b := range d.drivers[r] {
		if b != nil && b.seq {
			return true
		}
	}
	return false
}

func (d *Design) memSequential(mem *Memory) bool {
	for _, w := range mem.words {
		if d.anySequential(w) {
			return true
		}
	}
	return false
}
