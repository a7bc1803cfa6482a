// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package genlib

import (
	"log/slog"

	"github.com/db47h/genlib/expr"
	"github.com/pkg/errors"
)

// Wildcard is the name of a pin entry that applies to all gate inputs.
//
const Wildcard = "*"

const pinLetters = "abcdefghijklmnopqrstuvwxyz"

// PinName returns the default name of input i: "a" for input 0, "b" for
// input 1, up to "z" for input 25. Other values of i return an error wrapping
// ErrTooManyInputs.
//
func PinName(i int) (string, error) {
	if i < 0 || i >= len(pinLetters) {
		return "", errors.Wrapf(ErrTooManyInputs, "no pin name for input %d", i)
	}
	return pinLetters[i : i+1], nil
}

// A Handler receives gate declarations from Read, one call per declaration
// in source order.
//
type Handler interface {
	// OnGate handles a gate with the given function expression, input count,
	// area and pin entries. pins is either a single Wildcard entry or one
	// entry per input.
	OnGate(name, expression string, numVars int, area float64, pins []Pin) error
}

// Builder is a Handler that adds gates to a Catalog.
//
// The catalog is owned by the caller and must outlive the Builder. A Builder
// is not safe for concurrent use.
//
type Builder struct {
	// Logger, if not nil, logs added gates at debug level.
	Logger *slog.Logger

	c *Catalog
}

// NewBuilder returns a Builder appending gates to c.
//
func NewBuilder(c *Catalog) *Builder {
	return &Builder{c: c}
}

// OnGate implements Handler.
//
// The new gate gets the current length of the catalog as ID. If pins holds a
// single Wildcard entry, the gate gets one copy of it per input, named by
// PinName. Otherwise pins are copied as is and there must be exactly numVars
// of them.
//
// The gate function is compiled by expr.Compile from expression and numVars
// alone. Pin names and order do not change it.
//
// On error, the catalog is left untouched.
//
func (b *Builder) OnGate(name, expression string, numVars int, area float64, pins []Pin) error {
	pp, err := normalizePins(pins, numVars)
	if err != nil {
		return err
	}
	tt, err := expr.Compile(expression, numVars)
	if err != nil {
		return errors.Wrap(err, "invalid gate function")
	}

	id := uint(len(*b.c))
	*b.c = append(*b.c, Gate{
		ID:         id,
		Name:       name,
		Expression: expression,
		NumVars:    numVars,
		Function:   tt,
		Area:       area,
		Pins:       pp,
	})
	if b.Logger != nil {
		b.Logger.Debug("gate added", "id", id, "name", name, "inputs", numVars, "function", tt.Hex())
	}
	return nil
}

func normalizePins(pins []Pin, numVars int) ([]Pin, error) {
	if numVars < 0 {
		return nil, errors.Wrapf(ErrPinCount, "negative input count %d", numVars)
	}
	if len(pins) == 1 && pins[0].Name == Wildcard {
		if numVars > len(pinLetters) {
			return nil, errors.Wrapf(ErrTooManyInputs, "wildcard pin for %d inputs", numVars)
		}
		pp := make([]Pin, numVars)
		for i := range pp {
			n, err := PinName(i)
			if err != nil {
				return nil, err
			}
			pp[i] = pins[0]
			pp[i].Name = n
		}
		return pp, nil
	}
	if len(pins) != numVars {
		return nil, errors.Wrapf(ErrPinCount, "%d pins for %d inputs", len(pins), numVars)
	}
	for i := range pins {
		if pins[i].Name == Wildcard {
			return nil, errors.Wrapf(ErrPinCount, "wildcard pin among %d pins", len(pins))
		}
	}
	pp := make([]Pin, len(pins))
	copy(pp, pins)
	return pp, nil
}
