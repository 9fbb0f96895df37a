package arg

// Kind indicates how a declared argument is matched and resolved.
type Kind int

const (
	// KindFlag represents a boolean switch that is either present or absent.
	KindFlag Kind = iota

	// KindKeyValue represents a named argument taking exactly one value.
	KindKeyValue

	// KindPositional represents a required-capable argument taking one value.
	// Despite the name, it is matched by exact name equality, not by position
	// on the command line.
	KindPositional
)

// String returns a string representation of the argument kind.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "Flag"

	case KindKeyValue:
		return "KeyValue"

	case KindPositional:
		return "Positional"

	default:
		return "Unknown"
	}
}

// Argument is one declared option owned by a [Parser].
//
// Name must be unique within a parser instance. The library does not
// validate uniqueness: parsing scans declarations in order and the first
// match wins, so a duplicate name shadows all later declarations with the
// same name. The same applies to Sym.
//
// All string fields are plain Go values, so an Argument never aliases
// caller-owned buffers.
type Argument struct {
	// Name is the unique long identifier, matched against "--name" or a
	// bare "name" token.
	Name string

	// Sym is the optional single-character short symbol, matched against
	// clustered "-x" forms. Zero means no short form.
	Sym rune

	// Kind selects the matching and resolution behavior.
	Kind Kind

	// Required reports whether parsing fails when no value is resolved.
	// Only meaningful for KindKeyValue and KindPositional.
	Required bool

	// Count is the declared number of values. Only Count == 1 is
	// functionally supported: parsing never populates more than a single
	// value per argument.
	Count int

	// Default is the fallback value used when no token resolves the
	// argument and Required is false. Empty means no default.
	Default string

	// Help is the optional description rendered in help output.
	Help string

	value    Value
	resolved bool
}

// HasSym reports whether the argument declares a short symbol.
func (a *Argument) HasSym() bool { return a.Sym != 0 }

// HasDefault reports whether the argument declares a default value.
func (a *Argument) HasDefault() bool { return a.Default != "" }

// Resolved reports whether parsing assigned a value to the argument.
func (a *Argument) Resolved() bool { return a.resolved }

// Value returns the resolved value and whether one was assigned.
// It does not fall back to the default; use the [Parser] accessors for
// default-aware lookup.
func (a *Argument) Value() (Value, bool) {
	return a.value, a.resolved
}

// set assigns the resolved value. Each argument is written at most once
// per parse: later matches in the same token sequence are ignored.
func (a *Argument) set(v Value) bool {
	if a.resolved {
		return false
	}

	a.value = v
	a.resolved = true

	return true
}

// lookup returns the effective string value, falling back to the default
// when no value was resolved. The second return reports whether any value
// is available.
func (a *Argument) lookup() (string, bool) {
	if a.resolved {
		return a.value.String(), true
	}

	if a.HasDefault() {
		return a.Default, true
	}

	return "", false
}

// reset clears the resolved value so the argument can be parsed again.
func (a *Argument) reset() {
	a.value = Value{}
	a.resolved = false
}
