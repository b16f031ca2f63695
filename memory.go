// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "strconv"

// A Memory is an address-indexed aggregate of word signals, one per
// location, each of the data width. An address width of a yields exactly
// 2^a locations; the address signal's width bounds addressing
// structurally, so there is no runtime range check on simulated
// addresses.
//
// A Memory is not itself a Signal, but it is a Location: a block whose
// behavior depends on memory contents lists the memory in its read set,
// and a block storing into it lists it in its write set.
type Memory struct {
	name  string
	width int
	words []*Signal
}

// Memory declares a memory owned by m with 2^addrWidth locations of
// dataWidth bits each, initialized to zero.
func (m *Module) Memory(name string, addrWidth, dataWidth int) *Memory {
	mem := &Memory{name: name, width: dataWidth, words: make([]*Signal, 1<<uint(addrWidth))}
	for i := range mem.words {
		mem.words[i] = m.Wire(name+"["+strconv.Itoa(i)+"]", dataWidth)
	}
	m.mems = append(m.mems, mem)
	return mem
}

// Name returns the memory name.
func (mem *Memory) Name() string { return mem.name }

// Width returns the data width of each location.
func (mem *Memory) Width() int { return mem.width }

// Depth returns the number of locations.
func (mem *Memory) Depth() int { return len(mem.words) }

// Word returns the signal holding location i.
func (mem *Memory) Word(i int) *Signal { return mem.words[i] }

// At returns the signal holding the location addressed by the current
// value of addr.
func (mem *Memory) At(addr Value) *Signal { return mem.words[addr.Uint64()] }

func (mem *Memory) locSignals() []*Signal { return mem.words }
