/*
Package esl provides the tools to describe digital hardware in Go and
simulate it.

A circuit is built from Modules owning Signals and logic blocks. Signals
carry fixed-width binary Values and hold both a current value, visible to
readers, and a next value, scheduled to become current. Combinational
blocks are re-evaluated within one simulated instant until the circuit
settles to a fixed point; sequential blocks run only at their declared
clock edge, all observing the same pre-edge state and committing their
updates atomically, the way real flip-flops do.

Elaborate flattens a module tree into a Design: one global signal and
block collection with per-bit driver accounting. A Design is run by a
Simulator driven by explicit stimulus events, and the same module tree
can independently be exported as a structural netlist with WriteNetlist.
*/
package esl
