package kicadsym

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chewxy/sexp"

	"github.com/schemalab/symkit/pkg/symbols"
)

func TestWriteLibraryParses(t *testing.T) {
	entries := []Entry{
		{Name: "triode", Symbol: symbols.NewTriode()},
		{Name: "speaker", Symbol: symbols.NewSpeaker()},
		{Name: "xform", Symbol: symbols.NewTransformer()},
	}

	var buf bytes.Buffer
	if err := WriteLibrary(&buf, entries); err != nil {
		t.Fatalf("WriteLibrary failed: %v", err)
	}

	out := buf.String()
	sexps, err := sexp.ParseString(out)
	if err != nil {
		t.Fatalf("generated library does not parse: %v", err)
	}
	if len(sexps) != 1 {
		t.Fatalf("expected one top-level expression, got %d", len(sexps))
	}
	if sexps[0].IsLeaf() {
		t.Fatal("top-level expression is a bare atom")
	}
	if n := sexps[0].LeafCount(); n < 50 {
		t.Errorf("library suspiciously small: %d leaves", n)
	}

	for _, want := range []string{
		"(kicad_symbol_lib",
		`(generator "symkit")`,
		`(symbol "triode"`,
		`(symbol "triode_0_1"`,
		`(symbol "triode_1_1"`,
		`(symbol "speaker"`,
		`(symbol "xform"`,
		"(pin passive line",
		`(name "g"`,
		`(name "p1"`,
		"(stroke (width 0.254) (type dash))",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteSymbolPins(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSymbol(&buf, "jack", symbols.NewAudioJack(symbols.JackRing())); err != nil {
		t.Fatalf("WriteSymbol failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{`(name "tip"`, `(name "ring"`, `(name "sleeve"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing pin %s", want)
		}
	}
	if strings.Contains(out, `(name "ringswitch"`) {
		t.Error("ringswitch pin exported without the switch contact")
	}
}

func TestWriteLibraryEmptyName(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLibrary(&buf, []Entry{{Symbol: symbols.NewMotor()}})
	if err == nil {
		t.Fatal("expected error for empty symbol name")
	}
}

func TestUnitConversion(t *testing.T) {
	if got := num(1); got != "2.54" {
		t.Errorf("num(1) = %s, want 2.54", got)
	}
	if got := num(0.5); got != "1.27" {
		t.Errorf("num(0.5) = %s, want 1.27", got)
	}
	if got := num(0); got != "0" {
		t.Errorf("num(0) = %s, want 0", got)
	}
}
