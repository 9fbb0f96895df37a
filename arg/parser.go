package arg

import (
	"iter"
	"log/slog"

	"github.com/ardnew/margs/log"
)

// Parser owns the program metadata and an ordered, append-only list of
// declared arguments. Declare arguments with the Add methods, resolve them
// with [Parser.Parse], and read results through the accessors.
//
// A Parser is not safe for concurrent mutation. Parsing the same instance
// twice without calling [Parser.Reset] in between is unspecified, since
// each argument's value is written at most once per parse.
type Parser struct {
	// Program is the program name used in help output.
	Program string

	// Usage is the optional one-line usage synopsis.
	Usage string

	// Description is the optional program description printed before the
	// argument list.
	Description string

	// Epilog is the optional trailer printed after the argument list.
	Epilog string

	args   []*Argument
	logger log.Logger
	noHelp bool
}

// Option configures a Parser during construction.
type Option func(*Parser)

// WithUsage sets the one-line usage synopsis.
func WithUsage(usage string) Option {
	return func(p *Parser) {
		p.Usage = usage
	}
}

// WithDescription sets the program description.
func WithDescription(description string) Option {
	return func(p *Parser) {
		p.Description = description
	}
}

// WithEpilog sets the help trailer.
func WithEpilog(epilog string) Option {
	return func(p *Parser) {
		p.Epilog = epilog
	}
}

// WithoutHelpFlag suppresses the automatic registration of the
// -h/--help flag.
func WithoutHelpFlag() Option {
	return func(p *Parser) {
		p.noHelp = true
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a Parser for the named program.
//
// Unless [WithoutHelpFlag] is given, a "help" flag with short symbol 'h'
// is registered as the first declaration.
func New(program string, opts ...Option) *Parser {
	p := &Parser{Program: program}

	for _, opt := range opts {
		opt(p)
	}

	if !p.noHelp {
		_ = p.AddFlag('h', "help", "Show this help message")
	}

	return p
}

// add appends a declared argument, copying all caller-provided strings by
// value. Name uniqueness is not validated; the first declaration wins at
// lookup time.
func (p *Parser) add(a *Argument) error {
	if a.Name == "" {
		return ErrEmptyName
	}

	if a.Count < 1 {
		a.Count = 1
	}

	p.args = append(p.args, a)

	p.logger.Trace("declared argument",
		slog.String("name", a.Name),
		slog.String("kind", a.Kind.String()))

	return nil
}

// AddPositional declares a [KindPositional] argument.
//
// The count parameter declares the number of expected values, but only
// count == 1 is functionally supported: the scanner never populates more
// than one value per argument. A zero sym means no short form; an empty
// def means no default value.
func (p *Parser) AddPositional(
	sym rune,
	name string,
	required bool,
	count int,
	def, help string,
) error {
	return p.add(&Argument{
		Name:     name,
		Sym:      sym,
		Kind:     KindPositional,
		Required: required,
		Count:    count,
		Default:  def,
		Help:     help,
	})
}

// AddKeyValue declares a [KindKeyValue] argument taking exactly one value.
// A zero sym means no short form; an empty def means no default value.
func (p *Parser) AddKeyValue(
	sym rune,
	name string,
	required bool,
	def, help string,
) error {
	return p.add(&Argument{
		Name:     name,
		Sym:      sym,
		Kind:     KindKeyValue,
		Required: required,
		Default:  def,
		Help:     help,
	})
}

// AddFlag declares a [KindFlag] argument. Flags are never required and
// have no default value.
func (p *Parser) AddFlag(sym rune, name, help string) error {
	return p.add(&Argument{
		Name: name,
		Sym:  sym,
		Kind: KindFlag,
		Help: help,
	})
}

// Lookup returns the first declared argument with the given name.
func (p *Parser) Lookup(name string) (*Argument, bool) {
	for _, a := range p.args {
		if a.Name == name {
			return a, true
		}
	}

	return nil, false
}

// Args returns an iterator over all declared arguments in declaration
// order.
func (p *Parser) Args() iter.Seq[*Argument] {
	return func(yield func(*Argument) bool) {
		for _, a := range p.args {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of declared arguments.
func (p *Parser) Len() int { return len(p.args) }

// Positional returns the effective value of the named argument, falling
// back to its default, only if the argument exists and its kind is
// [KindPositional]. Any other kind or an unknown name yields ("", false).
func (p *Parser) Positional(name string) (string, bool) {
	return p.valueOf(name, KindPositional)
}

// KeyValue returns the effective value of the named argument, falling
// back to its default, only if the argument exists and its kind is
// [KindKeyValue]. Any other kind or an unknown name yields ("", false).
func (p *Parser) KeyValue(name string) (string, bool) {
	return p.valueOf(name, KindKeyValue)
}

// Flag reports whether the named [KindFlag] argument was supplied.
// Any other kind or an unknown name yields false.
func (p *Parser) Flag(name string) bool {
	a, ok := p.Lookup(name)

	return ok && a.Kind == KindFlag && a.resolved
}

// valueOf implements the kind-restricted accessors with a first-match
// linear scan by name.
func (p *Parser) valueOf(name string, kind Kind) (string, bool) {
	a, ok := p.Lookup(name)
	if !ok || a.Kind != kind {
		return "", false
	}

	return a.lookup()
}

// Reset clears every argument's resolved value so the parser can be
// reused for another token sequence. It is idempotent and safe to call
// any number of times, including on a parser that never parsed.
func (p *Parser) Reset() {
	for _, a := range p.args {
		a.reset()
	}
}
