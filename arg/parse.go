package arg

import (
	"context"
	"log/slog"
	"strings"
)

// flagValue is the truthy marker assigned to a matched flag.
const flagValue = "true"

// Parse consumes a sequence of raw command-line tokens, excluding the
// program name, and resolves the declared arguments.
//
// Three token shapes are recognized:
//
//   - Long form: "--name" or "--name=value". The name is matched by exact
//     equality against declarations in order.
//   - Clustered short form: "-x", "-xyz", or "-xyz=value". Each character
//     is independently matched against declared short symbols. When the
//     token carries an inline value, every value-taking symbol in the
//     cluster receives that same value.
//   - Bare token: "name" or "name=value", matched by exact name equality
//     like the long form. Positional arguments are therefore bound by
//     name, not by their position on the command line.
//
// Tokens that match no declaration are silently ignored. After scanning,
// a validation pass runs in declaration order: a required argument with
// no resolved value fails with [ErrMissingRequired], and any other
// unresolved argument is filled from its default when one exists.
//
// Each argument is written at most once per call; later tokens matching
// an already-resolved argument are ignored.
func (p *Parser) Parse(ctx context.Context, tokens []string) error {
	for _, token := range tokens {
		switch {
		case strings.HasPrefix(token, "--"):
			p.matchName(ctx, token[2:], token)

		case strings.HasPrefix(token, "-") && len(token) > 1:
			p.matchCluster(ctx, token[1:], token)

		default:
			p.matchName(ctx, token, token)
		}
	}

	return p.validate(ctx)
}

// matchName resolves a long-form or bare token. The candidate name is the
// text left of the first '=', and the inline value is everything right of
// it.
func (p *Parser) matchName(ctx context.Context, s, token string) {
	name, inline, hasInline := strings.Cut(s, "=")

	for _, a := range p.args {
		if a.Name != name {
			continue
		}

		p.assign(ctx, a, inline, hasInline, token)

		return
	}

	p.ignored(ctx, name, token)
}

// matchCluster resolves a short-form token. Every character left of the
// first '=' is an independent short symbol; the inline value right of it
// is shared by each value-taking match.
func (p *Parser) matchCluster(ctx context.Context, s, token string) {
	cluster, inline, hasInline := strings.Cut(s, "=")

	for _, sym := range cluster {
		matched := false

		for _, a := range p.args {
			// Positional arguments are matched by name only, never by
			// short symbol within a cluster.
			if a.Sym != sym || a.Kind == KindPositional {
				continue
			}

			p.assign(ctx, a, inline, hasInline, token)

			matched = true

			break
		}

		if !matched {
			p.ignored(ctx, string(sym), token)
		}
	}
}

// assign writes the resolved value for a matched argument according to
// its kind. Flags receive the truthy marker regardless of any inline
// value. Value-taking arguments require an inline value: a match without
// one leaves the argument unresolved, deferring to its default or the
// required check.
func (p *Parser) assign(
	ctx context.Context,
	a *Argument,
	inline string,
	hasInline bool,
	token string,
) {
	var v Value

	switch a.Kind {
	case KindFlag:
		v = NewSingle(flagValue)

	case KindKeyValue, KindPositional:
		if !hasInline {
			p.logger.DebugContext(ctx, "match without inline value",
				slog.String("name", a.Name),
				slog.String("token", token))

			return
		}

		v = NewSingle(inline)
	}

	if !a.set(v) {
		p.logger.DebugContext(ctx, "value already resolved",
			slog.String("name", a.Name),
			slog.String("token", token))

		return
	}

	p.logger.TraceContext(ctx, "resolved argument",
		slog.String("name", a.Name),
		slog.String("kind", a.Kind.String()),
		slog.String("value", v.String()))
}

// ignored records an unmatched token at debug level, including the
// closest declared name when one ranks.
func (p *Parser) ignored(ctx context.Context, name, token string) {
	attrs := []slog.Attr{slog.String("token", token)}

	if ranked := p.Suggest(name); len(ranked) > 0 {
		attrs = append(attrs, slog.String("closest", ranked[0]))
	}

	p.logger.DebugContext(ctx, "ignored unrecognized token", attrs...)
}

// validate runs the post-scan pass over every declaration in order.
func (p *Parser) validate(ctx context.Context) error {
	for _, a := range p.args {
		if a.Required && !a.resolved {
			p.logger.ErrorContext(ctx, "missing required argument",
				slog.String("name", a.Name))

			return ErrMissingRequired.With(slog.String("name", a.Name))
		}

		if !a.resolved && a.HasDefault() {
			a.set(NewSingle(a.Default))
		}
	}

	return nil
}
