// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import "github.com/pkg/errors"

// A StateSet is a closed set of symbolic state labels bound to a
// fixed-width binary encoding chosen at declaration: label i encodes as
// the unsigned value i in max(1, ceil(log2(n))) bits. State registers are
// ordinary signals of the encoded width; comparisons are value
// comparisons of the encoded values.
type StateSet struct {
	name   string
	labels []string
	width  int
}

// NewStateSet returns a state set with the given labels. It panics if no
// labels are given or a label repeats.
func NewStateSet(name string, labels ...string) *StateSet {
	if len(labels) == 0 {
		panic(errors.Wrapf(ErrRange, "state set %s has no states", name))
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			panic(errors.Errorf("state set %s: duplicate state %s", name, l))
		}
		seen[l] = true
	}
	w := 1
	for 1<<uint(w) < len(labels) {
		w++
	}
	return &StateSet{name: name, labels: labels, width: w}
}

// Name returns the state set name.
func (ss *StateSet) Name() string { return ss.name }

// Width returns the encoding width in bits.
func (ss *StateSet) Width() int { return ss.width }

// Value returns the encoded value of the given label. It panics if the
// label is not a member of the set.
func (ss *StateSet) Value(label string) Value {
	for i, l := range ss.labels {
		if l == label {
			return MustValue(ss.width, int64(i))
		}
	}
	panic(errors.Errorf("state set %s: unknown state %s", ss.name, label))
}

// Label returns the label encoded by v, or false if v does not encode a
// member of the set.
func (ss *StateSet) Label(v Value) (string, bool) {
	if v.Width() != ss.width {
		return "", false
	}
	i := v.Uint64()
	if i >= uint64(len(ss.labels)) {
		return "", false
	}
	return ss.labels[i], true
}

// Contains returns true if v encodes a member of the set.
func (ss *StateSet) Contains(v Value) bool {
	_, ok := ss.Label(v)
	return ok
}

// Signal declares a state register wire of the encoded width owned by m,
// initialized to the first state of the set.
func (ss *StateSet) Signal(m *Module, name string) *Signal {
	return m.WireInit(name, MustValue(ss.width, 0))
}
