// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/db47h/genlib/internal/lex"
)

type node interface{}

type varNode struct {
	name string
	pos  int
}

type constNode struct {
	value bool
}

type notNode struct {
	x node
}

type binNode struct {
	op   lex.Type
	x, y node
}

func walk(n node, f func(v *varNode)) {
	switch n := n.(type) {
	case *varNode:
		f(n)
	case *notNode:
		walk(n.x, f)
	case *binNode:
		walk(n.x, f)
		walk(n.y, f)
	}
}

type parser struct {
	input string
	l     lex.Interface
	i     lex.Item
}

func parse(input string) (node, error) {
	p := &parser{input: input, l: lexer(input)}
	p.next()
	if p.i.Type == tokEOF {
		return nil, p.errorf("empty expression")
	}
	n, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.i.Type != tokEOF {
		return nil, p.errorf("unexpected %s", p.i)
	}
	if err := p.l.Err(); err != nil {
		return nil, &Error{input, 0, err.Error()}
	}
	return n, nil
}

func (p *parser) next() {
	p.i = p.l.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &Error{p.input, int(p.i.Pos), fmt.Sprintf(format, args...)}
}

// or = xor { ("+" | "|") xor }
func (p *parser) or() (node, error) {
	x, err := p.xor()
	if err != nil {
		return nil, err
	}
	for p.i.Type == tokOr {
		p.next()
		y, err := p.xor()
		if err != nil {
			return nil, err
		}
		x = &binNode{tokOr, x, y}
	}
	return x, nil
}

// xor = and { "^" and }
func (p *parser) xor() (node, error) {
	x, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.i.Type == tokXor {
		p.next()
		y, err := p.and()
		if err != nil {
			return nil, err
		}
		x = &binNode{tokXor, x, y}
	}
	return x, nil
}

func startsUnary(t lex.Type) bool {
	switch t {
	case tokIdent, tokConst, tokNot, tokLParen:
		return true
	}
	return false
}

// and = unary { ["*" | "&"] unary }
func (p *parser) and() (node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		if p.i.Type == tokAnd {
			p.next()
		} else if !startsUnary(p.i.Type) {
			return x, nil
		}
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &binNode{tokAnd, x, y}
	}
}

// unary = "!" unary | primary { "'" }
func (p *parser) unary() (node, error) {
	if p.i.Type == tokNot {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &notNode{x}, nil
	}
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.i.Type == tokPrime {
		p.next()
		x = &notNode{x}
	}
	return x, nil
}

// primary = IDENT | const | "(" or ")"
func (p *parser) primary() (node, error) {
	switch p.i.Type {
	case tokIdent:
		n := &varNode{p.i.Value.(string), int(p.i.Pos)}
		p.next()
		return n, nil
	case tokConst:
		n := &constNode{p.i.Value.(bool)}
		p.next()
		return n, nil
	case tokLParen:
		p.next()
		x, err := p.or()
		if err != nil {
			return nil, err
		}
		if p.i.Type != tokRParen {
			return nil, p.errorf("expected ')', got %s", p.i)
		}
		p.next()
		return x, nil
	case tokEOF:
		return nil, p.errorf("unexpected end of expression")
	}
	return nil, p.errorf("unexpected %s", p.i)
}
