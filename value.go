// Copyright 2026 Dud3ek
// Licensed under the MIT license. See license text in the LICENSE file.

package esl

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// A Value is an immutable binary value of fixed bit width. The zero Value
// is not valid; use NewValue or MustValue.
//
// Operations between two Values require equal widths. There is no implicit
// resizing: callers widen or slice explicitly. Width and range violations
// are programming errors and panic with an error wrapping ErrWidthMismatch
// or ErrRange.
type Value struct {
	width int
	bits  *big.Int // non-negative, < 2^width, never mutated
}

// NewValue returns a Value of the given width holding x. A negative x is
// interpreted as a two's complement bit pattern and truncated to width.
func NewValue(width int, x int64) (Value, error) {
	if width < 1 {
		return Value{}, errors.Wrapf(ErrRange, "invalid value width %d", width)
	}
	return Value{width: width, bits: truncate(width, big.NewInt(x))}, nil
}

// MustValue is like NewValue but panics on error. It is intended for
// constants in circuit descriptions.
func MustValue(width int, x int64) Value {
	v, err := NewValue(width, x)
	if err != nil {
		panic(err)
	}
	return v
}

// MaxValue returns the all-ones Value of the given width.
func MaxValue(width int) Value {
	return MustValue(width, -1)
}

// BoolValue returns the 1-bit Value 1 if b is true, else 0.
func BoolValue(b bool) Value {
	if b {
		return Value{width: 1, bits: big.NewInt(1)}
	}
	return Value{width: 1, bits: big.NewInt(0)}
}

// ValueFromUint64 returns a Value of the given width holding x truncated
// to width.
func ValueFromUint64(width int, x uint64) (Value, error) {
	if width < 1 {
		return Value{}, errors.Wrapf(ErrRange, "invalid value width %d", width)
	}
	return Value{width: width, bits: truncate(width, new(big.Int).SetUint64(x))}, nil
}

// ValueFromBig returns a Value of the given width holding x truncated to
// width. A negative x is interpreted as a two's complement bit pattern.
func ValueFromBig(width int, x *big.Int) (Value, error) {
	if width < 1 {
		return Value{}, errors.Wrapf(ErrRange, "invalid value width %d", width)
	}
	return Value{width: width, bits: truncate(width, new(big.Int).Set(x))}, nil
}

// truncate reduces b modulo 2^width into a fresh non-negative big.Int.
func truncate(width int, b *big.Int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return b.Mod(b, m)
}

// Width returns the bit width of v.
func (v Value) Width() int { return v.width }

// Big returns a copy of v's bit pattern as a non-negative big.Int.
func (v Value) Big() *big.Int { return new(big.Int).Set(v.bits) }

// Uint64 returns the low 64 bits of v.
func (v Value) Uint64() uint64 { return v.bits.Uint64() }

// Int64 returns v interpreted as a two's complement signed number.
// Values wider than 64 bits are truncated.
func (v Value) Int64() int64 {
	if v.width > 1 && v.bits.Bit(v.width-1) == 1 {
		m := new(big.Int).Lsh(big.NewInt(1), uint(v.width))
		return new(big.Int).Sub(v.bits, m).Int64()
	}
	return v.bits.Int64()
}

// Bit returns bit i of v.
func (v Value) Bit(i int) bool {
	if i < 0 || i >= v.width {
		panic(errors.Wrapf(ErrRange, "bit %d of %d bit value", i, v.width))
	}
	return v.bits.Bit(i) == 1
}

// IsZero returns true if all bits of v are 0.
func (v Value) IsZero() bool { return v.bits.Sign() == 0 }

// Eq returns true if o has the same width and bit pattern as v.
func (v Value) Eq(o Value) bool {
	return v.width == o.width && v.bits.Cmp(o.bits) == 0
}

// String formats v in Verilog style, e.g. "3'b010".
func (v Value) String() string {
	s := v.bits.Text(2)
	for len(s) < v.width {
		s = "0" + s
	}
	return strconv.Itoa(v.width) + "'b" + s
}

func (v Value) checkWidth(o Value, op string) {
	if v.width != o.width {
		panic(errors.Wrapf(ErrWidthMismatch, "%s of %d bit and %d bit values", op, v.width, o.width))
	}
}

// And returns the bitwise AND of v and o.
func (v Value) And(o Value) Value {
	v.checkWidth(o, "and")
	return Value{width: v.width, bits: new(big.Int).And(v.bits, o.bits)}
}

// Or returns the bitwise OR of v and o.
func (v Value) Or(o Value) Value {
	v.checkWidth(o, "or")
	return Value{width: v.width, bits: new(big.Int).Or(v.bits, o.bits)}
}

// Xor returns the bitwise XOR of v and o.
func (v Value) Xor(o Value) Value {
	v.checkWidth(o, "xor")
	return Value{width: v.width, bits: new(big.Int).Xor(v.bits, o.bits)}
}

// Not returns the bitwise complement of v.
func (v Value) Not() Value {
	b := new(big.Int).Not(v.bits)
	return Value{width: v.width, bits: truncate(v.width, b)}
}

// Add returns v + o wrapped modulo 2^width.
func (v Value) Add(o Value) Value {
	v.checkWidth(o, "add")
	b := new(big.Int).Add(v.bits, o.bits)
	return Value{width: v.width, bits: truncate(v.width, b)}
}

// AddCarry returns v + o wrapped modulo 2^width along with the carry out
// of the top bit.
func (v Value) AddCarry(o Value) (Value, bool) {
	v.checkWidth(o, "add")
	b := new(big.Int).Add(v.bits, o.bits)
	carry := b.Bit(v.width) == 1
	return Value{width: v.width, bits: truncate(v.width, b)}, carry
}

// Sub returns v - o wrapped modulo 2^width.
func (v Value) Sub(o Value) Value {
	v.checkWidth(o, "sub")
	b := new(big.Int).Sub(v.bits, o.bits)
	return Value{width: v.width, bits: truncate(v.width, b)}
}

// Cmp compares v and o as unsigned numbers and returns -1, 0 or 1.
func (v Value) Cmp(o Value) int {
	v.checkWidth(o, "compare")
	return v.bits.Cmp(o.bits)
}

// CmpSigned compares v and o as two's complement signed numbers and
// returns -1, 0 or 1.
func (v Value) CmpSigned(o Value) int {
	v.checkWidth(o, "compare")
	return v.signed().Cmp(o.signed())
}

func (v Value) signed() *big.Int {
	if v.bits.Bit(v.width-1) == 0 {
		return v.bits
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(v.width))
	return new(big.Int).Sub(v.bits, m)
}

// Less returns true if v < o as unsigned numbers.
func (v Value) Less(o Value) bool { return v.Cmp(o) < 0 }

// Slice returns bits [lo, hi) of v as a new Value of width hi-lo.
func (v Value) Slice(lo, hi int) Value {
	if lo < 0 || hi > v.width || lo >= hi {
		panic(errors.Wrapf(ErrRange, "slice [%d, %d) of %d bit value", lo, hi, v.width))
	}
	b := new(big.Int).Rsh(v.bits, uint(lo))
	return Value{width: hi - lo, bits: truncate(hi-lo, b)}
}

// Concat returns the concatenation of v (high bits) and lo (low bits).
// The result width is the sum of both widths.
func (v Value) Concat(lo Value) Value {
	b := new(big.Int).Lsh(v.bits, uint(lo.width))
	b.Or(b, lo.bits)
	return Value{width: v.width + lo.width, bits: b}
}

// SetSlice returns a copy of v with bits [lo, lo+o.Width()) replaced by o.
func (v Value) SetSlice(lo int, o Value) Value {
	if lo < 0 || lo+o.width > v.width {
		panic(errors.Wrapf(ErrRange, "set slice [%d, %d) of %d bit value", lo, lo+o.width, v.width))
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(o.width))
	m.Sub(m, big.NewInt(1))
	m.Lsh(m, uint(lo))
	b := new(big.Int).AndNot(v.bits, m)
	b.Or(b, new(big.Int).Lsh(o.bits, uint(lo)))
	return Value{width: v.width, bits: b}
}
