// Package arg implements a small command-line argument parser built
// around an explicit declaration table: a program declares named
// positional arguments, keyword arguments, and boolean flags, then hands
// the raw token sequence to [Parser.Parse] and reads resolved values back
// through kind-restricted accessors.
//
// # Declaration
//
// Arguments are declared once, in order, on a [Parser]:
//
//	p := arg.New("greet",
//		arg.WithUsage("greet [options]"),
//		arg.WithDescription("Greets the given name."))
//
//	_ = p.AddPositional('n', "name", true, 1, "", "Name to greet")
//	_ = p.AddKeyValue('c', "color", false, "plain", "Output color")
//	_ = p.AddFlag('s', "shout", "Print in uppercase")
//
// A "help" flag with short symbol 'h' is registered automatically unless
// [WithoutHelpFlag] is given. Parsers can also be declared from a YAML
// document with [LoadSpec].
//
// # Token Syntax
//
// Recognized long syntax is "--name" and "--name=value". Short syntax is
// "-x", "-x=value", or clustered "-xyz", where each character is
// independently matched against declared short symbols; an inline value
// is shared by every value-taking match in the cluster. A token without a
// leading dash is matched by exact name equality, so positional arguments
// bind by name rather than by their position on the command line.
//
// # Resolution
//
//	if err := p.Parse(ctx, os.Args[1:]); err != nil {
//		// errors.Is(err, arg.ErrMissingRequired)
//	}
//
//	name, ok := p.Positional("name")
//	color, ok := p.KeyValue("color")
//	shout := p.Flag("shout")
//
// Tokens that match no declaration are ignored without a diagnostic; the
// only failure [Parser.Parse] reports is [ErrMissingRequired], returned
// when a required argument resolves no value. Callers decide whether to
// print and exit. Unresolved non-required arguments fall back to their
// declared default, both during validation and in the accessors.
//
// # Limitations
//
// Declaration names and short symbols are not checked for uniqueness;
// lookups scan declarations in order and the first match wins. Multi-value
// collection (count > 1) is declared but not implemented: the scanner
// populates at most one value per argument, and the [ValueMultiple]
// variant exists only to reserve the slot. Matching is a linear scan per
// token, which is well within bounds for realistic declaration counts.
package arg
