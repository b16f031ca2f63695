// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

// An Edge selects the clock transition a sequential block triggers on.
type Edge int

// Clock edge polarities.
const (
	Rising Edge = iota
	Falling
)

func (e Edge) String() string {
	if e == Falling {
		return "negedge"
	}
	return "posedge"
}

// A Block is a unit of behavior owned by a module: a function from its
// declared read set to its declared write set. Combinational blocks are
// re-evaluated until the circuit settles within one simulated instant.
// Sequential blocks are bound to a clock signal and edge polarity and run
// only at that edge, reading pre-edge state and committing atomically
// with every other block on the same edge.
//
// The function reads signals with Val and writes them with SetNext. The
// declared read and write sets, not the function body, are what
// elaboration uses for driver accounting and evaluation ordering, so a
// block must declare every signal it touches.
type Block struct {
	name   string
	seq    bool
	clk    *Signal
	edge   Edge
	reads  []*Signal
	writes []*Signal
	fn     func()
}

// Name returns the block name given at registration.
func (b *Block) Name() string { return b.name }

// Sequential returns true if b is edge-triggered.
func (b *Block) Sequential() bool { return b.seq }

// Clock returns the clock signal and edge polarity of a sequential block,
// or (nil, Rising) for a combinational one.
func (b *Block) Clock() (*Signal, Edge) { return b.clk, b.edge }

// Reads collects the signals of the given locations into a read set.
func Reads(ls ...Location) []*Signal { return locs(ls) }

// Writes collects the signals of the given locations into a write set.
func Writes(ls ...Location) []*Signal { return locs(ls) }

func locs(ls []Location) []*Signal {
	var ss []*Signal
	for _, l := range ls {
		ss = append(ss, l.locSignals()...)
	}
	return ss
}
