// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package genlib

import (
	"strconv"

	"github.com/db47h/genlib/truthtable"
	"github.com/pkg/errors"
)

// Phase is the phase of a gate input pin: whether the output is inverting,
// non-inverting or unknown relative to that input.
//
type Phase uint8

// Phase values. The numeric values are the conventional genlib phase codes.
//
const (
	PhaseInv Phase = iota
	PhaseNonInv
	PhaseUnknown
)

var phaseNames = [...]string{
	PhaseInv:     "INV",
	PhaseNonInv:  "NONINV",
	PhaseUnknown: "UNKNOWN",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Phase(" + strconv.Itoa(int(p)) + ")"
}

// ParsePhase returns the Phase for the genlib keyword s.
//
func ParsePhase(s string) (Phase, error) {
	for i, n := range phaseNames {
		if n == s {
			return Phase(i), nil
		}
	}
	return PhaseUnknown, errors.Errorf("invalid phase %q", s)
}

// Pin holds the loading and timing characteristics of a gate input pin.
//
// The same type is used for pin entries as read from a library, where Name
// may be the wildcard "*", and for the normalized pins of a Gate.
//
type Pin struct {
	Name            string
	Phase           Phase
	InputLoad       float64
	MaxLoad         float64
	RiseBlockDelay  float64
	RiseFanoutDelay float64
	FallBlockDelay  float64
	FallFanoutDelay float64
}

// Gate is a library gate.
//
// Pins has exactly NumVars entries, in declaration order. Function is
// expr.Compile(Expression, NumVars): bit i of Function is the gate output for
// the input assignment where variable k is set to bit k of i. Variables are
// numbered from the expression, not from Pins.
//
type Gate struct {
	ID         uint
	Name       string
	Expression string
	NumVars    int
	Function   *truthtable.Table
	Area       float64
	Pins       []Pin
}

// Catalog is an ordered collection of gates. The ID of each gate is its index
// in the catalog.
//
type Catalog []Gate

// Find returns the first gate named name.
//
func (c Catalog) Find(name string) (Gate, bool) {
	for _, g := range c {
		if g.Name == name {
			return g, true
		}
	}
	return Gate{}, false
}

// Match returns the gates that implement function f, in catalog order.
//
func (c Catalog) Match(f *truthtable.Table) []Gate {
	var gs []Gate
	for _, g := range c {
		if g.Function != nil && g.Function.Equal(f) {
			gs = append(gs, g)
		}
	}
	return gs
}
