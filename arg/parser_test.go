package arg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_AutoHelpFlag(t *testing.T) {
	p := New("test")

	a, ok := p.Lookup("help")
	if !ok {
		t.Fatal("expected help flag to be registered")
	}

	if a.Kind != KindFlag || a.Sym != 'h' {
		t.Errorf("expected flag with sym 'h', got kind=%s sym=%q",
			a.Kind, a.Sym)
	}

	if p.Len() != 1 {
		t.Errorf("expected exactly one declaration, got %d", p.Len())
	}
}

func TestNew_WithoutHelpFlag(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	if _, ok := p.Lookup("help"); ok {
		t.Error("expected no help flag")
	}

	if p.Len() != 0 {
		t.Errorf("expected no declarations, got %d", p.Len())
	}
}

func TestNew_Options(t *testing.T) {
	p := New("prog",
		WithUsage("prog [options]"),
		WithDescription("A test program."),
		WithEpilog("See the manual for details."),
	)

	if p.Program != "prog" {
		t.Errorf("expected program prog, got %q", p.Program)
	}

	if p.Usage != "prog [options]" {
		t.Errorf("unexpected usage %q", p.Usage)
	}

	if p.Description != "A test program." {
		t.Errorf("unexpected description %q", p.Description)
	}

	if p.Epilog != "See the manual for details." {
		t.Errorf("unexpected epilog %q", p.Epilog)
	}
}

func TestAdd_EmptyName(t *testing.T) {
	p := New("test")

	tests := []struct {
		name string
		add  func() error
	}{
		{"positional", func() error { return p.AddPositional('o', "", false, 1, "", "") }},
		{"keyvalue", func() error { return p.AddKeyValue('k', "", false, "", "") }},
		{"flag", func() error { return p.AddFlag('f', "", "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, ErrEmptyName) {
				t.Errorf("expected ErrEmptyName, got %v", err)
			}
		})
	}
}

func TestAddPositional_CountNormalized(t *testing.T) {
	p := New("test")

	if err := p.AddPositional(0, "files", false, 0, "", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	a, _ := p.Lookup("files")
	if a.Count != 1 {
		t.Errorf("expected count normalized to 1, got %d", a.Count)
	}
}

func TestAccessors_KindIsolation(t *testing.T) {
	p := New("test")

	if err := p.AddKeyValue('m', "mode", false, "", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.AddFlag('v', "verbose", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.AddPositional('o', "output", false, 1, "", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.Parse(t.Context(), []string{"--mode=fast", "--verbose", "--output=x"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Flag accessor on a KeyValue name yields false, not the value.
	if p.Flag("mode") {
		t.Error("expected Flag(mode) to be false")
	}

	// KeyValue accessor on a Flag name yields absent.
	if _, ok := p.KeyValue("verbose"); ok {
		t.Error("expected KeyValue(verbose) to be absent")
	}

	// Positional accessor on a KeyValue name yields absent.
	if _, ok := p.Positional("mode"); ok {
		t.Error("expected Positional(mode) to be absent")
	}

	// Unknown names yield the zero result for every accessor.
	if p.Flag("unknown") {
		t.Error("expected Flag(unknown) to be false")
	}

	if _, ok := p.KeyValue("unknown"); ok {
		t.Error("expected KeyValue(unknown) to be absent")
	}
}

func TestArgs_DeclarationOrder(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	for _, name := range []string{"gamma", "alpha", "beta"} {
		if err := p.AddFlag(0, name, ""); err != nil {
			t.Fatalf("declare error: %v", err)
		}
	}

	var got []string
	for a := range p.Args() {
		got = append(got, a.Name)
	}

	want := []string{"gamma", "alpha", "beta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("declaration order mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	p := New("test")

	if err := p.AddKeyValue('o', "output", false, "fallback", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.AddFlag('v', "verbose", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.Parse(t.Context(), []string{"--output=x", "-v"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Reset is idempotent: repeated calls leave the parser reusable.
	p.Reset()
	p.Reset()

	if p.Flag("verbose") {
		t.Error("expected Flag(verbose) to be false after reset")
	}

	got, ok := p.KeyValue("output")
	if !ok || got != "fallback" {
		t.Errorf("expected default after reset, got %q (ok=%v)", got, ok)
	}

	// A fresh parse after reset resolves values again.
	if err := p.Parse(t.Context(), []string{"--output=y"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got, _ := p.KeyValue("output"); got != "y" {
		t.Errorf("expected y after re-parse, got %q", got)
	}
}

func TestReset_EmptyParser(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	// Must not panic with no declarations.
	p.Reset()
	p.Reset()
}

func TestArgument_Value(t *testing.T) {
	p := New("test")

	if err := p.AddKeyValue('o', "output", false, "fallback", ""); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	a, _ := p.Lookup("output")

	// Argument.Value does not fall back to the default.
	if _, ok := a.Value(); ok {
		t.Error("expected no resolved value before parse")
	}

	if err := p.Parse(t.Context(), []string{"--output=x"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	v, ok := a.Value()
	if !ok || v.Kind != ValueSingle || v.Single != "x" {
		t.Errorf("expected Single(x), got %+v (ok=%v)", v, ok)
	}
}
