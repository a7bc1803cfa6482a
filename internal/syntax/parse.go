// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package syntax implements a scanner and parser for genlib cell libraries.
//
// A library is a sequence of gate declarations:
//
//	# comment
//	GATE nand2 2.0 O=!(a*b);
//	PIN * INV 1 999 1.0 0.2 1.0 0.2
//
// Each PIN line lists, in order, the pin name (or * for all inputs), its phase
// (INV, NONINV or UNKNOWN), input load, max load, rise block delay, rise fanout
// delay, fall block delay and fall fanout delay.
//
package syntax

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/genlib/internal/lex"
)

// Pin is a PIN line as read from the source.
//
type Pin struct {
	Name            string
	Phase           string
	InputLoad       float64
	MaxLoad         float64
	RiseBlockDelay  float64
	RiseFanoutDelay float64
	FallBlockDelay  float64
	FallFanoutDelay float64
}

// Decl is a GATE declaration and its PIN lines.
//
type Decl struct {
	Name   string
	Area   float64
	Output string
	Expr   string
	Pins   []Pin

	Line, Col int // position of the GATE keyword
}

// Error is a syntax error.
//
type Error struct {
	File      string
	Line, Col int
	Msg       string
}

func (e *Error) Error() string {
	f := e.File
	if f == "" {
		f = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", f, e.Line, e.Col, e.Msg)
}

// Parser reads gate declarations from a genlib source.
//
type Parser struct {
	File string // file name used in errors

	l    lex.Interface
	i    lex.Item
	err  error
	peek bool
}

// NewParser returns a new parser reading from r.
//
func NewParser(file string, r io.Reader) *Parser {
	return &Parser{File: file, l: Lexer(r)}
}

// Next returns the next gate declaration in the input stream. It returns
// io.EOF at the end of input. After a syntax error, Next keeps returning the
// same error.
//
func (p *Parser) Next() (*Decl, error) {
	if p.err != nil {
		return nil, p.err
	}
	d, err := p.decl()
	if err == nil {
		err = p.lexErr()
	}
	if err != nil {
		p.err = err
		return nil, err
	}
	return d, nil
}

func (p *Parser) lexErr() error {
	if err := p.l.Err(); err != nil {
		return p.errorf("%v", err)
	}
	return nil
}

func (p *Parser) next() lex.Item {
	if p.peek {
		p.peek = false
		return p.i
	}
	p.i = p.l.Lex()
	return p.i
}

func (p *Parser) backup() {
	p.peek = true
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	line, col := p.l.Position(p.i.Pos)
	return &Error{p.File, line, col, fmt.Sprintf(format, args...)}
}

func (p *Parser) decl() (*Decl, error) {
	i := p.next()
	switch {
	case i.Type == EOF:
		return nil, io.EOF
	case i.Type == Word && i.Value == "GATE":
	case i.Type == Word && i.Value == "LATCH":
		return nil, p.errorf("LATCH declarations are not supported")
	default:
		return nil, p.errorf("expected GATE, got %s", i)
	}
	d := &Decl{}
	d.Line, d.Col = p.l.Position(i.Pos)

	var err error
	if d.Name, err = p.word("gate name"); err != nil {
		return nil, err
	}
	if d.Area, err = p.number("gate area"); err != nil {
		return nil, err
	}
	if d.Output, err = p.word("output name"); err != nil {
		return nil, err
	}
	if i = p.next(); i.Type != Equal {
		return nil, p.errorf("expected '=' after output name, got %s", i)
	}
	if i = p.next(); i.Type != Expr || i.Value == "" {
		return nil, p.errorf("missing gate function")
	}
	d.Expr = i.Value.(string)
	if i = p.next(); i.Type != Semicolon {
		return nil, p.errorf("missing ';' after gate function")
	}

	for {
		i = p.next()
		if i.Type != Word || i.Value != "PIN" {
			p.backup()
			return d, nil
		}
		pin, err := p.pin()
		if err != nil {
			return nil, err
		}
		d.Pins = append(d.Pins, pin)
	}
}

func (p *Parser) pin() (Pin, error) {
	var (
		pin Pin
		err error
	)
	if pin.Name, err = p.word("pin name"); err != nil {
		return pin, err
	}
	i := p.next()
	switch i.Value {
	case "INV", "NONINV", "UNKNOWN":
		pin.Phase = i.Value.(string)
	default:
		return pin, p.errorf("invalid pin phase %s", i)
	}
	for _, f := range []struct {
		v    *float64
		name string
	}{
		{&pin.InputLoad, "input load"},
		{&pin.MaxLoad, "max load"},
		{&pin.RiseBlockDelay, "rise block delay"},
		{&pin.RiseFanoutDelay, "rise fanout delay"},
		{&pin.FallBlockDelay, "fall block delay"},
		{&pin.FallFanoutDelay, "fall fanout delay"},
	} {
		if *f.v, err = p.number(f.name); err != nil {
			return pin, err
		}
	}
	return pin, nil
}

func (p *Parser) word(what string) (string, error) {
	i := p.next()
	if i.Type != Word {
		return "", p.errorf("expected %s, got %s", what, i)
	}
	return i.Value.(string), nil
}

func (p *Parser) number(what string) (float64, error) {
	s, err := p.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, p.errorf("invalid %s %q", what, s)
	}
	return v, nil
}
