// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package expr compiles Boolean expressions into truth tables.
//
// The supported syntax is the one of genlib gate functions:
//
//	!a         negation
//	a'         negation (postfix)
//	a*b, a&b   conjunction, juxtaposition (a b) is also a conjunction
//	a^b        exclusive or
//	a+b, a|b   disjunction
//	(a)        grouping
//	CONST0, 0  constant false
//	CONST1, 1  constant true
//
// Operators are listed from highest to lowest precedence. Identifiers start
// with a letter or '_' and may contain letters, digits and the characters
// '_', '[', ']' and '.'.
//
package expr

import (
	"fmt"

	"github.com/db47h/genlib/truthtable"
	"github.com/pkg/errors"
)

// Error is a malformed expression error.
//
type Error struct {
	Expr string
	Pos  int // byte offset in Expr
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("in %q at pos %d: %s", e.Expr, e.Pos+1, e.Msg)
}

// Compile compiles expression into a truth table over numVars variables.
//
// When every identifier in expression is a single lowercase letter, "a" is
// variable 0, "b" variable 1, and so on. Otherwise variables are numbered in
// order of first appearance, as returned by Vars. The mapping only depends on
// the expression; Names returns it.
//
func Compile(expression string, numVars int) (*truthtable.Table, error) {
	n, err := parse(expression)
	if err != nil {
		return nil, err
	}
	names, err := mapping(expression, n, numVars)
	if err != nil {
		return nil, err
	}
	return eval(expression, n, numVars, index(names))
}

// Names returns the name of each of the numVars variables of expression as
// numbered by Compile. Unused variables have an empty name.
//
func Names(expression string, numVars int) ([]string, error) {
	n, err := parse(expression)
	if err != nil {
		return nil, err
	}
	return mapping(expression, n, numVars)
}

func mapping(expression string, n node, numVars int) ([]string, error) {
	if numVars < 0 || numVars > truthtable.MaxVars {
		return nil, errors.Errorf("invalid number of variables %d", numVars)
	}
	ids := identifiers(n)
	names := make([]string, numVars)
	if letters(ids) {
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		return names, nil
	}
	if len(ids) > numVars {
		return nil, errors.Errorf("%d variables in %q, expected at most %d", len(ids), expression, numVars)
	}
	copy(names, ids)
	return names, nil
}

// CompileVars compiles expression into a truth table over len(vars)
// variables where variable k is named vars[k]. Any other identifier in the
// expression is an error.
//
func CompileVars(expression string, vars []string) (*truthtable.Table, error) {
	if len(vars) > truthtable.MaxVars {
		return nil, errors.Errorf("too many variables: %d > %d", len(vars), truthtable.MaxVars)
	}
	idx := index(vars)
	if len(idx) != len(vars) {
		return nil, errors.Errorf("duplicate or empty variable names in %q", vars)
	}
	n, err := parse(expression)
	if err != nil {
		return nil, err
	}
	return eval(expression, n, len(vars), idx)
}

// Vars returns the distinct identifiers of expression in order of first
// appearance.
//
func Vars(expression string) ([]string, error) {
	n, err := parse(expression)
	if err != nil {
		return nil, err
	}
	return identifiers(n), nil
}

func identifiers(n node) []string {
	var (
		vars []string
		seen = make(map[string]bool)
	)
	walk(n, func(v *varNode) {
		if !seen[v.name] {
			seen[v.name] = true
			vars = append(vars, v.name)
		}
	})
	return vars
}

func letters(names []string) bool {
	for _, s := range names {
		if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
			return false
		}
	}
	return true
}

func index(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, s := range names {
		if _, ok := idx[s]; !ok && s != "" {
			idx[s] = i
		}
	}
	return idx
}

func eval(expression string, n node, numVars int, idx map[string]int) (*truthtable.Table, error) {
	switch n := n.(type) {
	case *varNode:
		i, ok := idx[n.name]
		if !ok {
			return nil, &Error{expression, n.pos, fmt.Sprintf("unknown variable %q", n.name)}
		}
		return truthtable.Var(numVars, i), nil
	case *constNode:
		return truthtable.Const(numVars, n.value), nil
	case *notNode:
		x, err := eval(expression, n.x, numVars, idx)
		if err != nil {
			return nil, err
		}
		return x.Not(), nil
	case *binNode:
		x, err := eval(expression, n.x, numVars, idx)
		if err != nil {
			return nil, err
		}
		y, err := eval(expression, n.y, numVars, idx)
		if err != nil {
			return nil, err
		}
		switch n.op {
		case tokAnd:
			return x.And(y), nil
		case tokOr:
			return x.Or(y), nil
		case tokXor:
			return x.Xor(y), nil
		}
	}
	panic("unreachable")
}
