// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package expr

import (
	"strings"
	"unicode"

	"github.com/db47h/genlib/internal/lex"
)

// Tokens
const (
	tokEOF   lex.Type = lex.EOF
	tokRaw   lex.Type = iota
	tokIdent          // variable name
	tokConst          // bool value
	tokNot            // !
	tokPrime          // postfix '
	tokAnd            // * or &
	tokOr             // + or |
	tokXor            // ^
	tokLParen
	tokRParen
)

func lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '[' || r == ']' || r == '.'
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
		l.Ignore()
	case isIdentStart(r):
		return lexIdent
	case r == '0' || r == '1':
		l.Emit(tokConst, r == '1')
	case r == '!':
		l.Emit(tokNot, r)
	case r == '\'':
		l.Emit(tokPrime, r)
	case r == '*' || r == '&':
		l.Emit(tokAnd, r)
	case r == '+' || r == '|':
		l.Emit(tokOr, r)
	case r == '^':
		l.Emit(tokXor, r)
	case r == '(':
		l.Emit(tokLParen, r)
	case r == ')':
		l.Emit(tokRParen, r)
	default:
		l.Emit(tokRaw, r)
	}
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var b strings.Builder
	b.WriteRune(l.Current())
	l.AcceptWhile(func(r rune) bool {
		if isIdentRune(r) {
			b.WriteRune(r)
			return true
		}
		return false
	})
	switch s := b.String(); s {
	case "CONST0":
		l.Emit(tokConst, false)
	case "CONST1":
		l.Emit(tokConst, true)
	default:
		l.Emit(tokIdent, s)
	}
	return nil
}

func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
