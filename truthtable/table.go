// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package truthtable implements dynamic truth tables for Boolean functions.
//
// A Table over n variables holds 2^n bits. Bit i is the value of the function
// for the input assignment whose binary encoding is i, variable k being bit k
// of i. With two variables a (0) and b (1), the AND function is 1000 when read
// from the most significant bit down, that is 0x8.
//
package truthtable

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// MaxVars is the maximum number of variables of a Table.
//
const MaxVars = 26

// projection masks for variables 0 to 5 within a 64 bits word.
var projections = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// Table is a truth table over a fixed number of variables.
//
// The zero value is a table over 0 variables whose only bit is 0. Tables
// returned by the functions of this package are never modified by later
// operations: Not, And, Or and Xor all return new tables.
//
type Table struct {
	n    int
	bits []uint64
}

func wordCount(n int) int {
	if n <= 6 {
		return 1
	}
	return 1 << uint(n-6)
}

// mask returns the valid bits of the last (and only) word for tables of less
// than 6 variables.
func mask(n int) uint64 {
	if n >= 6 {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(1) << uint(n))) - 1
}

// New returns a new table over n variables with all bits set to 0.
// It panics if n is negative or greater than MaxVars.
//
func New(n int) *Table {
	if n < 0 || n > MaxVars {
		panic(errors.Errorf("truthtable: invalid number of variables %d", n))
	}
	return &Table{n: n, bits: make([]uint64, wordCount(n))}
}

// Const returns a constant table over n variables.
//
func Const(n int, v bool) *Table {
	t := New(n)
	if v {
		for i := range t.bits {
			t.bits[i] = ^uint64(0)
		}
		t.bits[len(t.bits)-1] &= mask(n)
	}
	return t
}

// Var returns the projection function of variable i in a table over n
// variables. It panics if i is not in the range [0, n).
//
func Var(n, i int) *Table {
	if i < 0 || i >= n {
		panic(errors.Errorf("truthtable: variable %d out of range for %d variables", i, n))
	}
	t := New(n)
	if i < 6 {
		for w := range t.bits {
			t.bits[w] = projections[i]
		}
		t.bits[len(t.bits)-1] &= mask(n)
		return t
	}
	s := uint(i - 6)
	for w := range t.bits {
		if (w>>s)&1 != 0 {
			t.bits[w] = ^uint64(0)
		}
	}
	return t
}

// NumVars returns the number of variables of t.
//
func (t *Table) NumVars() int { return t.n }

// NumBits returns the number of bits of t, that is 2^NumVars().
//
func (t *Table) NumBits() int { return 1 << uint(t.n) }

func (t *Table) words() []uint64 {
	if t.bits == nil {
		// zero value
		return []uint64{0}
	}
	return t.bits
}

// Bit returns the value of bit i of t.
//
func (t *Table) Bit(i int) bool {
	if i < 0 || i >= t.NumBits() {
		panic(errors.Errorf("truthtable: bit %d out of range", i))
	}
	return t.words()[i>>6]&(uint64(1)<<uint(i&63)) != 0
}

// SetBit sets bit i of t to v.
//
func (t *Table) SetBit(i int, v bool) {
	if i < 0 || i >= t.NumBits() {
		panic(errors.Errorf("truthtable: bit %d out of range", i))
	}
	if t.bits == nil {
		t.bits = make([]uint64, 1)
	}
	if v {
		t.bits[i>>6] |= uint64(1) << uint(i&63)
	} else {
		t.bits[i>>6] &^= uint64(1) << uint(i&63)
	}
}

// CountOnes returns the number of bits set in t.
//
func (t *Table) CountOnes() int {
	var c int
	for _, w := range t.words() {
		c += bits.OnesCount64(w)
	}
	return c
}

// Not returns the complement of t.
//
func (t *Table) Not() *Table {
	r := New(t.n)
	for i, w := range t.words() {
		r.bits[i] = ^w
	}
	r.bits[len(r.bits)-1] &= mask(t.n)
	return r
}

func (t *Table) binop(u *Table, op func(a, b uint64) uint64) *Table {
	if t.n != u.n {
		panic(errors.Errorf("truthtable: variable count mismatch %d != %d", t.n, u.n))
	}
	r := New(t.n)
	tw, uw := t.words(), u.words()
	for i := range r.bits {
		r.bits[i] = op(tw[i], uw[i])
	}
	return r
}

// And returns the conjunction of t and u. Both tables must have the same
// number of variables.
//
func (t *Table) And(u *Table) *Table {
	return t.binop(u, func(a, b uint64) uint64 { return a & b })
}

// Or returns the disjunction of t and u.
//
func (t *Table) Or(u *Table) *Table {
	return t.binop(u, func(a, b uint64) uint64 { return a | b })
}

// Xor returns the exclusive or of t and u.
//
func (t *Table) Xor(u *Table) *Table {
	return t.binop(u, func(a, b uint64) uint64 { return a ^ b })
}

// Equal reports whether t and u have the same number of variables and the
// same bits.
//
func (t *Table) Equal(u *Table) bool {
	if t.n != u.n {
		return false
	}
	tw, uw := t.words(), u.words()
	for i := range tw {
		if tw[i] != uw[i] {
			return false
		}
	}
	return true
}

const hexDigits = "0123456789abcdef"

// Hex returns the hexadecimal representation of t, most significant digit
// first. Tables over less than 2 variables are printed as a single digit.
//
func (t *Table) Hex() string {
	nb := t.NumBits()
	nd := nb / 4
	if nd == 0 {
		nd = 1
	}
	var b strings.Builder
	b.Grow(nd)
	for d := nd - 1; d >= 0; d-- {
		w := t.words()[(d*4)>>6]
		b.WriteByte(hexDigits[(w>>uint((d*4)&63))&0xf])
	}
	return b.String()
}

// String returns the binary representation of t, most significant bit first.
//
func (t *Table) String() string {
	nb := t.NumBits()
	var b strings.Builder
	b.Grow(nb)
	for i := nb - 1; i >= 0; i-- {
		if t.Bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FromBinary parses a binary string as returned by String. The length of s
// must be a power of two.
//
func FromBinary(s string) (*Table, error) {
	n := bits.TrailingZeros(uint(len(s)))
	if len(s) == 0 || 1<<uint(n) != len(s) || n > MaxVars {
		return nil, errors.Errorf("truthtable: invalid binary string length %d", len(s))
	}
	t := New(n)
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case '0':
		case '1':
			t.SetBit(len(s)-1-j, true)
		default:
			return nil, errors.Errorf("truthtable: invalid binary digit %q at position %d", s[j], j)
		}
	}
	return t, nil
}

// FromHex parses a hexadecimal string as returned by Hex into a table over n
// variables.
//
func FromHex(n int, s string) (*Table, error) {
	if n < 0 || n > MaxVars {
		return nil, errors.Errorf("truthtable: invalid number of variables %d", n)
	}
	t := New(n)
	nd := t.NumBits() / 4
	if nd == 0 {
		nd = 1
	}
	if len(s) != nd {
		return nil, errors.Errorf("truthtable: expected %d hex digits, got %d", nd, len(s))
	}
	for j := 0; j < len(s); j++ {
		v := strings.IndexByte(hexDigits, lower(s[j]))
		if v < 0 {
			return nil, errors.Errorf("truthtable: invalid hex digit %q at position %d", s[j], j)
		}
		d := nd - 1 - j
		t.bits[(d*4)>>6] |= uint64(v) << uint((d*4)&63)
	}
	if t.bits[0]&^mask(n) != 0 {
		return nil, errors.Errorf("truthtable: value %q out of range for %d variables", s, n)
	}
	return t, nil
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'F' {
		return c + 'a' - 'A'
	}
	return c
}
