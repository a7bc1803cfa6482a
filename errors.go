// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package genlib

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPinCount is returned when the explicit pins of a gate do not match
	// its number of inputs.
	ErrPinCount = errors.New("pin count does not match the number of inputs")
	// ErrTooManyInputs is returned when a wildcard pin must be expanded to
	// more inputs than there are default pin names.
	ErrTooManyInputs = errors.New("too many inputs for default pin names")
)

// DeclError is the error returned by Read when a gate declaration is
// rejected by its Handler.
//
type DeclError struct {
	File      string
	Line, Col int
	Gate      string
	Err       error
}

func (e *DeclError) Error() string {
	f := e.File
	if f == "" {
		f = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: gate %q: %v", f, e.Line, e.Col, e.Gate, e.Err)
}

// Cause returns the underlying error.
//
func (e *DeclError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
//
func (e *DeclError) Unwrap() error { return e.Err }
