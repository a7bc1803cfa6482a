// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package syntax

import (
	"io"
	"strings"
	"unicode"

	"github.com/db47h/genlib/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Word lex.Type = iota
	Equal
	Expr
	Semicolon
)

// Lexer returns a new lexer for genlib files.
//
func Lexer(r io.Reader) lex.Interface {
	return lex.New(r, lexInit)
}

func isWordRune(r rune) bool {
	return r != lex.EOF && !unicode.IsSpace(r) && r != '=' && r != ';' && r != '#'
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
		l.Ignore()
	case r == '#':
		l.AcceptWhile(func(r rune) bool { return r != '\n' })
		l.Ignore()
	case r == '=':
		l.Emit(Equal, "=")
		return lexExpr
	case r == ';':
		l.Emit(Semicolon, ";")
	default:
		return lexWord
	}
	return nil
}

func lexWord(l *lex.Lexer) lex.StateFn {
	var b strings.Builder
	b.WriteRune(l.Current())
	l.AcceptWhile(func(r rune) bool {
		if isWordRune(r) {
			b.WriteRune(r)
			return true
		}
		return false
	})
	l.Emit(Word, b.String())
	return nil
}

// lexExpr reads a gate function up to the terminating semicolon.
func lexExpr(l *lex.Lexer) lex.StateFn {
	l.AcceptWhile(unicode.IsSpace)
	l.Ignore()
	var b strings.Builder
	l.AcceptWhile(func(r rune) bool {
		if r != ';' {
			b.WriteRune(r)
			return true
		}
		return false
	})
	l.Emit(Expr, strings.TrimRightFunc(b.String(), unicode.IsSpace))
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
