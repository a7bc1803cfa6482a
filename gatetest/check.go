// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing gate libraries.
//
package gatetest

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/db47h/genlib"
	"github.com/db47h/genlib/expr"
)

// maxExhaustive is the largest input count checked exhaustively. Gates with
// more inputs are checked on random assignments.
const maxExhaustive = 12

func assign(in []bool, i uint64) {
	for k := range in {
		in[k] = i&(1<<uint(k)) != 0
	}
}

func errString(g *genlib.Gate, in []bool, ex, got bool) string {
	var b strings.Builder
	names, _ := expr.Names(g.Expression, g.NumVars)
	for k, v := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		if k < len(names) && names[k] != "" {
			b.WriteString(names[k])
		} else {
			b.WriteString("?")
		}
		b.WriteRune('=')
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return "\n" + g.Name + ": expected " + b.String() + " => " + boolStr(ex) + "\ngot " + boolStr(got)
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// CheckFunction compares the truth table of gate g against the reference
// function ref. in[k] is the value of input variable k of g.Function, as
// numbered by expr.Compile.
//
// All input assignments are checked for gates of up to 12 inputs. Larger gates
// are checked with all inputs false, all inputs true and 4096 random
// assignments.
//
func CheckFunction(t testing.TB, g genlib.Gate, ref func(in []bool) bool) {
	t.Helper()

	if len(g.Pins) != g.NumVars {
		t.Fatalf("%s: %d pins for %d inputs", g.Name, len(g.Pins), g.NumVars)
	}
	if g.Function == nil || g.Function.NumVars() != g.NumVars {
		t.Fatalf("%s: function does not match the input count %d", g.Name, g.NumVars)
	}

	in := make([]bool, g.NumVars)
	check := func(i uint64) {
		assign(in, i)
		ex, got := ref(in), g.Function.Bit(int(i))
		if ex != got {
			t.Fatal(errString(&g, in, ex, got))
		}
	}

	tot := uint64(1) << uint(g.NumVars)
	if g.NumVars <= maxExhaustive {
		for i := uint64(0); i < tot; i++ {
			check(i)
		}
		return
	}
	check(0)
	check(tot - 1)
	for i := 0; i < 1<<maxExhaustive; i++ {
		check(rand.Uint64N(tot))
	}
}
