// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import (
	"io"
	"strconv"
	"text/tabwriter"
)

// A Trace records the values of a set of watched signals across
// simulated time. Attach it to a simulator with WithTrace; it samples
// once per instant, after the design has settled.
type Trace struct {
	signals []*Signal
	times   []uint64
	rows    [][]Value
}

// NewTrace returns a trace watching the given signals.
func NewTrace(signals ...*Signal) *Trace {
	return &Trace{signals: signals}
}

func (t *Trace) sample(time uint64) {
	row := make([]Value, len(t.signals))
	for i, s := range t.signals {
		row[i] = s.Val()
	}
	t.times = append(t.times, time)
	t.rows = append(t.rows, row)
}

// Len returns the number of recorded instants.
func (t *Trace) Len() int { return len(t.rows) }

// At returns the value of the i-th watched signal at the n-th recorded
// instant.
func (t *Trace) At(n, i int) Value { return t.rows[n][i] }

// WriteTable renders the trace as a text table, one row per instant, one
// column per signal.
func (t *Trace) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	if _, err := io.WriteString(tw, "time"); err != nil {
		return err
	}
	for _, s := range t.signals {
		if _, err := io.WriteString(tw, "\t"+s.Name()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(tw, "\n"); err != nil {
		return err
	}
	for n, row := range t.rows {
		if _, err := io.WriteString(tw, strconv.FormatUint(t.times[n], 10)); err != nil {
			return err
		}
		for _, v := range row {
			if _, err := io.WriteString(tw, "\t"+v.String()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(tw, "\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
