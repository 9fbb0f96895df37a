package arg

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
)

// specDoc is the YAML document shape for a declarative argument spec.
type specDoc struct {
	Program     string    `yaml:"program"`
	Usage       string    `yaml:"usage"`
	Description string    `yaml:"description"`
	Epilog      string    `yaml:"epilog"`
	Help        *bool     `yaml:"help"` // auto help flag, default true
	Arguments   []specArg `yaml:"arguments"`
}

// specArg is one argument entry in a YAML spec.
type specArg struct {
	Name     string `yaml:"name"`
	Sym      string `yaml:"sym"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
	Count    int    `yaml:"count"`
	Default  string `yaml:"default"`
	Help     string `yaml:"help"`
}

// LoadSpec builds a fully declared Parser from a YAML document.
//
// The document declares the program metadata and one entry per argument:
//
//	program: greet
//	usage: "greet [options]"
//	description: Greets the given name.
//	arguments:
//	  - { name: name, sym: n, kind: positional, required: true }
//	  - { name: color, sym: c, kind: kwarg, default: plain }
//	  - { name: shout, sym: s, kind: flag, help: Print in uppercase }
//
// Recognized kinds are "flag", "kwarg" (or "keyvalue"), and "arg" (or
// "positional"). Additional options are applied after the document's own
// settings, so they can override metadata from the file.
func LoadSpec(r io.Reader, opts ...Option) (*Parser, error) {
	var doc specDoc

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrSpecDecode.Wrap(err)
	}

	base := []Option{
		WithUsage(doc.Usage),
		WithDescription(doc.Description),
		WithEpilog(doc.Epilog),
	}

	if doc.Help != nil && !*doc.Help {
		base = append(base, WithoutHelpFlag())
	}

	p := New(doc.Program, append(base, opts...)...)

	for _, entry := range doc.Arguments {
		if err := declare(p, entry); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// LoadSpecString builds a Parser from a YAML document given as a string.
func LoadSpecString(s string, opts ...Option) (*Parser, error) {
	return LoadSpec(strings.NewReader(s), opts...)
}

// declare adds one spec entry to the parser.
func declare(p *Parser, entry specArg) error {
	sym, err := symbol(entry)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(entry.Kind)) {
	case "flag":
		return p.AddFlag(sym, entry.Name, entry.Help)

	case "kwarg", "keyvalue":
		return p.AddKeyValue(
			sym, entry.Name, entry.Required, entry.Default, entry.Help,
		)

	case "arg", "positional":
		return p.AddPositional(
			sym, entry.Name, entry.Required, entry.Count,
			entry.Default, entry.Help,
		)

	default:
		return ErrSpecKind.With(
			slog.String("name", entry.Name),
			slog.String("kind", entry.Kind),
		)
	}
}

// symbol decodes the optional single-character short symbol of an entry.
func symbol(entry specArg) (rune, error) {
	if entry.Sym == "" {
		return 0, nil
	}

	if utf8.RuneCountInString(entry.Sym) > 1 {
		return 0, ErrSpecSymbol.With(
			slog.String("name", entry.Name),
			slog.String("sym", entry.Sym),
		)
	}

	sym, _ := utf8.DecodeRuneInString(entry.Sym)

	return sym, nil
}
