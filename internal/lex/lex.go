// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a state-function based lexer framework.
//
// A lexer is driven by StateFn functions. Each state reads runes with Next,
// emits items with Emit and returns the next state. A nil state returns the
// lexer to its initial state.
//
package lex

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EOF is both the rune returned by Next at the end of input and the item type
// emitted at end of input.
//
const EOF = -1

// Type is an item type. Values below 0 are reserved.
//
type Type int

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexical item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	if i.Type == EOF {
		return "end of input"
	}
	switch v := i.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case rune:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(i.Value)
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Interface is implemented by lexers.
//
type Interface interface {
	// Lex returns the next item in the input stream.
	Lex() Item
	// Position returns the 1-based line and column of pos.
	Position(pos Pos) (line, col int)
	// Err returns the first read error encountered, if any.
	Err() error
}

// Lexer is the state machine driving StateFn functions.
//
type Lexer struct {
	r     *bufio.Reader
	init  StateFn
	state StateFn
	items []Item

	cur   rune
	pos   Pos // offset of the next rune
	prev  Pos // offset of cur
	start Pos // offset of the current token
	err   error

	lines []Pos // offsets of line starts after the first
}

// New returns a new lexer reading from r with init as its initial state.
//
func New(r io.Reader, init StateFn) *Lexer {
	return &Lexer{r: bufio.NewReader(r), init: init}
}

// Lex returns the next item in the input stream. Once the end of input has
// been reached, Lex only returns EOF items as emitted by the current state.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.start = l.pos
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input or EOF.
//
func (l *Lexer) Next() rune {
	r, sz, err := l.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.err = err
		}
		l.prev = l.pos
		l.cur = EOF
		return EOF
	}
	if r == utf8.RuneError && sz == 1 {
		l.err = errors.Errorf("invalid UTF-8 encoding at offset %d", l.pos)
	}
	l.prev = l.pos
	l.pos += Pos(sz)
	if r == '\n' && (len(l.lines) == 0 || l.lines[len(l.lines)-1] < l.pos) {
		l.lines = append(l.lines, l.pos)
	}
	l.cur = r
	return r
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// Backup unreads the last rune. It can only be called once after each call to
// Next.
//
func (l *Lexer) Backup() {
	if l.cur == EOF {
		return
	}
	if err := l.r.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos = l.prev
	l.cur = 0
}

// AcceptWhile reads runes while f returns true.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	for r := l.Next(); r != EOF && f(r); r = l.Next() {
	}
	l.Backup()
}

// Emit emits an item of type t with value v, positioned at the start of the
// current token. The next token starts after the last rune read.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: v})
	l.start = l.pos
}

// Ignore discards the runes read since the start of the current token.
//
func (l *Lexer) Ignore() {
	l.start = l.pos
}

// Err returns the first read error encountered, if any.
//
func (l *Lexer) Err() error {
	return l.err
}

// Position returns the 1-based line and column of pos. The column is a byte
// offset within the line.
//
func (l *Lexer) Position(pos Pos) (line, col int) {
	n := sort.Search(len(l.lines), func(i int) bool { return l.lines[i] > pos })
	var ls Pos
	if n > 0 {
		ls = l.lines[n-1]
	}
	return n + 1, int(pos-ls) + 1
}
