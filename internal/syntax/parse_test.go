// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package syntax_test

import (
	"io"
	"strings"
	"testing"

	"github.com/db47h/genlib/internal/syntax"
	"github.com/google/go-cmp/cmp"
)

const lib = `# test library
GATE zero 0 O=CONST0;
GATE inv1 1.5 O=!a;
PIN * INV 1 999 0.9 0.3 0.9 0.3
GATE and2 3
	Y = a * b ;
PIN A NONINV 1 999 1.0 0.2 1.0 0.2 PIN B UNKNOWN 2 8 .5 0 .5 0
`

func parseAll(t *testing.T, src string) ([]*syntax.Decl, error) {
	t.Helper()
	p := syntax.NewParser("test.genlib", strings.NewReader(src))
	var ds []*syntax.Decl
	for {
		d, err := p.Next()
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			return ds, err
		}
		ds = append(ds, d)
	}
}

func TestParser(t *testing.T) {
	ds, err := parseAll(t, lib)
	if err != nil {
		t.Fatal(err)
	}
	exp := []*syntax.Decl{
		{Name: "zero", Area: 0, Output: "O", Expr: "CONST0", Line: 2, Col: 1},
		{Name: "inv1", Area: 1.5, Output: "O", Expr: "!a", Line: 3, Col: 1,
			Pins: []syntax.Pin{{"*", "INV", 1, 999, 0.9, 0.3, 0.9, 0.3}}},
		{Name: "and2", Area: 3, Output: "Y", Expr: "a * b", Line: 5, Col: 1,
			Pins: []syntax.Pin{
				{"A", "NONINV", 1, 999, 1.0, 0.2, 1.0, 0.2},
				{"B", "UNKNOWN", 2, 8, .5, 0, .5, 0},
			}},
	}
	if diff := cmp.Diff(exp, ds); diff != "" {
		t.Errorf("declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		err  string
	}{
		{"not_gate", "PIN * INV 1 1 1 1 1 1", "test.genlib:1:1: expected GATE, got \"PIN\""},
		{"latch", "LATCH d 1 Q=D;", "test.genlib:1:1: LATCH declarations are not supported"},
		{"bad_area", "GATE g x O=a;", "test.genlib:1:8: invalid gate area \"x\""},
		{"no_equal", "GATE g 1 O a;", "test.genlib:1:12: expected '=' after output name, got \"a\""},
		{"no_function", "GATE g 1 O= ;", "test.genlib:1:13: missing gate function"},
		{"no_semicolon", "GATE g 1 O=a", "test.genlib:1:13: missing ';' after gate function"},
		{"bad_phase", "GATE g 1 O=a;\nPIN a SOMETIMES 1 1 1 1 1 1", "test.genlib:2:7: invalid pin phase \"SOMETIMES\""},
		{"short_pin", "GATE g 1 O=a;\nPIN a INV 1 1 1", "test.genlib:2:16: expected rise fanout delay, got end of input"},
		{"second_decl", "GATE g 1 O=a;\nfoo", "test.genlib:2:1: expected GATE, got \"foo\""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := parseAll(t, d.src)
			if err == nil || err.Error() != d.err {
				t.Errorf("got error %v, expected %q", err, d.err)
			}
		})
	}
}

func TestParser_sticky(t *testing.T) {
	p := syntax.NewParser("", strings.NewReader("GATE"))
	_, err1 := p.Next()
	_, err2 := p.Next()
	if err1 == nil || err1 != err2 {
		t.Fatalf("expected the same error twice, got %v and %v", err1, err2)
	}
	if _, ok := err1.(*syntax.Error); !ok {
		t.Errorf("expected *syntax.Error, got %T", err1)
	}
}
