// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package genlib

import (
	"io"
	"log/slog"
	"os"

	"github.com/db47h/genlib/expr"
	"github.com/db47h/genlib/internal/syntax"
	"github.com/pkg/errors"
)

type reader struct {
	file   string
	log    *slog.Logger
	report func(err error)
}

// An Option configures Read.
//
type Option func(*reader)

// WithFilename sets the file name reported in errors.
//
func WithFilename(name string) Option {
	return func(r *reader) { r.file = name }
}

// WithLogger sets the logger used by Read. Read logs nothing by default.
//
func WithLogger(l *slog.Logger) Option {
	return func(r *reader) { r.log = l }
}

// SkipInvalid makes Read skip gate declarations rejected by the Handler
// instead of returning an error. Each rejection is passed to report as a
// *DeclError. report may be nil.
//
// Syntax errors always stop Read.
//
func SkipInvalid(report func(err error)) Option {
	return func(r *reader) {
		if report == nil {
			report = func(error) {}
		}
		r.report = report
	}
}

// Read reads a genlib library from r and calls h.OnGate once per gate
// declaration, in source order.
//
// The input count of a gate is the number of distinct variables in its
// function. Read stops at the first syntax error. Errors returned by h are
// wrapped in a *DeclError and stop Read unless the SkipInvalid option is set.
//
func Read(r io.Reader, h Handler, opts ...Option) error {
	rd := &reader{log: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(rd)
	}
	return rd.read(r, h)
}

// ReadFile is like Read but reads from the named file.
//
func ReadFile(name string, h Handler, opts ...Option) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "failed to open library")
	}
	defer f.Close()
	return Read(f, h, append([]Option{WithFilename(name)}, opts...)...)
}

// LoadFile reads the named library file into a new Catalog.
//
func LoadFile(name string, opts ...Option) (Catalog, error) {
	var c Catalog
	if err := ReadFile(name, NewBuilder(&c), opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (rd *reader) read(r io.Reader, h Handler) error {
	p := syntax.NewParser(rd.file, r)
	var count, skipped int
	for {
		d, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err = rd.decl(d, h); err != nil {
			if rd.report == nil {
				return err
			}
			rd.log.Warn("gate skipped", "error", err)
			rd.report(err)
			skipped++
			continue
		}
		count++
	}
	rd.log.Debug("library read", "file", rd.file, "gates", count, "skipped", skipped)
	return nil
}

func (rd *reader) decl(d *syntax.Decl, h Handler) error {
	derr := func(err error) error {
		return &DeclError{File: rd.file, Line: d.Line, Col: d.Col, Gate: d.Name, Err: err}
	}
	vars, err := expr.Vars(d.Expr)
	if err != nil {
		return derr(errors.Wrap(err, "invalid gate function"))
	}
	pins := make([]Pin, len(d.Pins))
	for i, sp := range d.Pins {
		ph, err := ParsePhase(sp.Phase)
		if err != nil {
			return derr(err)
		}
		pins[i] = Pin{
			Name:            sp.Name,
			Phase:           ph,
			InputLoad:       sp.InputLoad,
			MaxLoad:         sp.MaxLoad,
			RiseBlockDelay:  sp.RiseBlockDelay,
			RiseFanoutDelay: sp.RiseFanoutDelay,
			FallBlockDelay:  sp.FallBlockDelay,
			FallFanoutDelay: sp.FallFanoutDelay,
		}
	}
	if err = h.OnGate(d.Name, d.Expr, len(vars), d.Area, pins); err != nil {
		return derr(err)
	}
	return nil
}
