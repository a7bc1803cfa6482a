// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package genlib_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/genlib"
	"github.com/db47h/genlib/internal/syntax"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

const testLib = `# small library
GATE inv 1 O=!a;
PIN * INV 1 999 1 0.2 1 0.2
GATE nand2 2 O=!(a*b);
PIN * INV 1 999 1 0.2 1 0.2
GATE aoi21 3 Y=!(A*B+C);
PIN A INV 1 999 1.2 0.3 1.2 0.3
PIN B INV 1 999 1.2 0.3 1.2 0.3
PIN C INV 2 999 1 0.2 1 0.2
GATE zero 0 O=CONST0;
GATE inv 1.5 O=a';
PIN * INV 2 999 0.8 0.1 0.8 0.1
`

type call struct {
	name, expr string
	numVars    int
	area       float64
	pins       []genlib.Pin
}

type recorder struct {
	calls []call
	fail  map[string]error
}

func (r *recorder) OnGate(name, expression string, numVars int, area float64, pins []genlib.Pin) error {
	if err := r.fail[name]; err != nil {
		return err
	}
	r.calls = append(r.calls, call{name, expression, numVars, area, pins})
	return nil
}

func TestRead_events(t *testing.T) {
	var r recorder
	if err := genlib.Read(strings.NewReader(testLib), &r); err != nil {
		t.Fatal(err)
	}
	wild := func(ld, d1, d2 float64) []genlib.Pin {
		return []genlib.Pin{{"*", genlib.PhaseInv, ld, 999, d1, d2, d1, d2}}
	}
	exp := []call{
		{"inv", "!a", 1, 1, wild(1, 1, 0.2)},
		{"nand2", "!(a*b)", 2, 2, wild(1, 1, 0.2)},
		{"aoi21", "!(A*B+C)", 3, 3, []genlib.Pin{
			{"A", genlib.PhaseInv, 1, 999, 1.2, 0.3, 1.2, 0.3},
			{"B", genlib.PhaseInv, 1, 999, 1.2, 0.3, 1.2, 0.3},
			{"C", genlib.PhaseInv, 2, 999, 1, 0.2, 1, 0.2},
		}},
		{"zero", "CONST0", 0, 0, []genlib.Pin{}},
		{"inv", "a'", 1, 1.5, wild(2, 0.8, 0.1)},
	}
	if diff := cmp.Diff(exp, r.calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_catalog(t *testing.T) {
	var c genlib.Catalog
	if err := genlib.Read(strings.NewReader(testLib), genlib.NewBuilder(&c)); err != nil {
		t.Fatal(err)
	}
	data := []struct {
		name string
		hex  string
		pins string
	}{
		{"inv", "1", "a"},
		{"nand2", "7", "a,b"},
		{"aoi21", "07", "A,B,C"},
		{"zero", "0", ""},
		{"inv", "1", "a"},
	}
	if len(c) != len(data) {
		t.Fatalf("got %d gates, expected %d", len(c), len(data))
	}
	for i, d := range data {
		g := c[i]
		var pins []string
		for _, p := range g.Pins {
			pins = append(pins, p.Name)
		}
		if g.ID != uint(i) || g.Name != d.name || g.Function.Hex() != d.hex || strings.Join(pins, ",") != d.pins {
			t.Errorf("gate %d: got %d %s %s %v", i, g.ID, g.Name, g.Function.Hex(), pins)
		}
		if len(g.Pins) != g.NumVars {
			t.Errorf("gate %d: %d pins for %d inputs", i, len(g.Pins), g.NumVars)
		}
	}
}

func TestRead_pinOrder(t *testing.T) {
	src := `GATE mux21 4 Y=A*!S+B*S;
PIN S UNKNOWN 2 999 2 0.2 2 0.2
PIN B NONINV 1 999 1.8 0.2 1.8 0.2
PIN A NONINV 1 999 1.8 0.2 1.8 0.2
GATE and2 3 O=a*b;
PIN X NONINV 1 999 1 0.2 1 0.2
PIN Y NONINV 1 999 1 0.2 1 0.2
`
	var c genlib.Catalog
	if err := genlib.Read(strings.NewReader(src), genlib.NewBuilder(&c)); err != nil {
		t.Fatal(err)
	}
	// variables A, S, B whatever the pin order.
	if got := c[0].Function.String(); got != "11100010" {
		t.Errorf("mux21 function = %s", got)
	}
	if got := c[1].Function.String(); got != "1000" {
		t.Errorf("and2 function = %s", got)
	}
	if c[0].Pins[0].Name != "S" || c[1].Pins[1].Name != "Y" {
		t.Errorf("pins not kept in declaration order: %v, %v", c[0].Pins, c[1].Pins)
	}
}

const badLib = `GATE inv 1 O=!a;
PIN * INV 1 999 1 0.2 1 0.2
GATE and2 2 O=a*b;
PIN a NONINV 1 999 1 0.2 1 0.2
PIN b NONINV 1 999 1 0.2 1 0.2
PIN c NONINV 1 999 1 0.2 1 0.2
GATE buf 1 O=a;
PIN * NONINV 1 999 1 0.2 1 0.2
`

func TestRead_declError(t *testing.T) {
	var c genlib.Catalog
	err := genlib.Read(strings.NewReader(badLib), genlib.NewBuilder(&c), genlib.WithFilename("bad.genlib"))
	var de *genlib.DeclError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DeclError, got %v", err)
	}
	if de.Gate != "and2" || de.Line != 3 || de.Col != 1 || de.File != "bad.genlib" {
		t.Errorf("got %+v", de)
	}
	if errors.Cause(err) != genlib.ErrPinCount {
		t.Errorf("got cause %v", errors.Cause(err))
	}
	if !strings.HasPrefix(err.Error(), `bad.genlib:3:1: gate "and2": `) {
		t.Errorf("got error message %q", err)
	}
	if len(c) != 1 {
		t.Errorf("got %d gates, expected 1", len(c))
	}
}

func TestRead_skipInvalid(t *testing.T) {
	var (
		c    genlib.Catalog
		errs []error
		logs bytes.Buffer
	)
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := genlib.NewBuilder(&c)
	b.Logger = log
	err := genlib.Read(strings.NewReader(badLib), b,
		genlib.SkipInvalid(func(err error) { errs = append(errs, err) }),
		genlib.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 1 || errors.Cause(errs[0]) != genlib.ErrPinCount {
		t.Fatalf("got reported errors %v", errs)
	}
	if len(c) != 2 || c[0].Name != "inv" || c[1].Name != "buf" {
		t.Fatalf("got catalog %+v", c)
	}
	// ids follow the catalog, not the declarations.
	if c[1].ID != 1 {
		t.Errorf("buf has ID %d, expected 1", c[1].ID)
	}
	for _, s := range []string{"gate added", "gate skipped", "library read"} {
		if !strings.Contains(logs.String(), s) {
			t.Errorf("log output misses %q:\n%s", s, logs.String())
		}
	}
}

func TestRead_syntaxError(t *testing.T) {
	var c genlib.Catalog
	src := "GATE inv 1 O=!a;\nPIN * INV 1 999 1 0.2 1 0.2\nGATE and2 two O=a*b;\nGATE buf 1 O=a;"
	err := genlib.Read(strings.NewReader(src), genlib.NewBuilder(&c), genlib.SkipInvalid(nil))
	if _, ok := err.(*syntax.Error); !ok {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if len(c) != 1 {
		t.Errorf("got %d gates, expected 1", len(c))
	}
}

func TestRead_badFunction(t *testing.T) {
	var r recorder
	err := genlib.Read(strings.NewReader("GATE g 1 O=a*(b;"), &r)
	var de *genlib.DeclError
	if !errors.As(err, &de) || de.Gate != "g" {
		t.Fatalf("expected *DeclError for g, got %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("handler called %d times", len(r.calls))
	}
}

func TestRead_handlerError(t *testing.T) {
	boom := errors.New("boom")
	r := recorder{fail: map[string]error{"nand2": boom}}
	err := genlib.Read(strings.NewReader(testLib), &r)
	if errors.Cause(err) != boom {
		t.Fatalf("got %v", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("got %d calls before error, expected 1", len(r.calls))
	}
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lib.genlib")
	if err := os.WriteFile(name, []byte(testLib), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := genlib.LoadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 5 {
		t.Errorf("got %d gates", len(c))
	}
	if _, err = genlib.LoadFile(filepath.Join(t.TempDir(), "missing.genlib")); err == nil {
		t.Error("expected error for missing file")
	}
}
