package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/margs/arg"
	"github.com/ardnew/margs/log"
	"github.com/ardnew/margs/pkg"
	"github.com/ardnew/margs/profile"
)

// ErrNoSpec is returned when no argument spec file was provided.
var ErrNoSpec = arg.NewError("no argument spec provided")

// Run executes the margs CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when a flag
// like help or version short-circuits normal execution.
//
// The command line is split at the first "--": tokens before it configure
// margs itself, and tokens after it are parsed against the loaded spec.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	own, rest := splitTokens(args)

	p := selfParser()

	if err := p.Parse(ctx, own); err != nil {
		return err
	}

	logger := configureLog(p)

	switch {
	case p.Flag("help"):
		p.WriteHelp(os.Stdout)
		exit(0)

		return nil

	case p.Flag("version"):
		fmt.Printf("%s %s\n", pkg.Name, strings.TrimSpace(pkg.Version))
		exit(0)

		return nil
	}

	if mode, ok := p.KeyValue("pprof"); ok && mode != "" {
		defer profile.New(
			profile.WithMode(mode),
			profile.WithPath("."),
		).Start().Stop()
	}

	path, ok := p.KeyValue("spec")
	if !ok {
		return ErrNoSpec
	}

	return runSpec(ctx, exit, logger, path, rest)
}

// runSpec loads the YAML argument spec, parses the remaining tokens
// against it, and renders the resolved values as YAML on stdout.
func runSpec(
	ctx context.Context,
	exit func(code int),
	logger log.Logger,
	path string,
	tokens []string,
) error {
	f, err := os.Open(path)
	if err != nil {
		return arg.WrapError(err)
	}
	defer f.Close()

	spec, err := arg.LoadSpec(f, arg.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := spec.Parse(ctx, tokens); err != nil {
		return err
	}

	if spec.Flag("help") {
		spec.WriteHelp(os.Stdout)
		exit(0)

		return nil
	}

	out, err := resultYAML(spec)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)

	return err
}

// selfParser declares the margs command line using the library itself.
func selfParser() *arg.Parser {
	p := arg.New(pkg.Name,
		arg.WithUsage(pkg.Name+" [options] [-- tokens...]"),
		arg.WithDescription(pkg.Description),
		arg.WithEpilog(
			"Tokens after -- are parsed against the loaded argument spec.",
		),
	)

	_ = p.AddKeyValue('s', "spec", false, "", "YAML argument spec file")
	_ = p.AddKeyValue('l', "log-level", false,
		log.DefaultLevel.String(), "Minimum log level")
	_ = p.AddKeyValue('f', "log-format", false,
		log.DefaultFormat.String(), "Log output format")
	_ = p.AddFlag(0, "log-pretty", "Colorize log output")
	_ = p.AddKeyValue('p', "pprof", false, "",
		"Profiling mode (requires binary built with tag "+profile.Tag+")")
	_ = p.AddFlag('V', "version", "Print version and exit")

	return p
}

// configureLog applies the parsed logging flags to the default logger and
// returns a logger for library instrumentation.
func configureLog(p *arg.Parser) log.Logger {
	level, _ := p.KeyValue("log-level")
	format, _ := p.KeyValue("log-format")

	log.Config(
		log.WithLevel(log.ParseLevel(level)),
		log.WithFormat(log.ParseFormat(format)),
		log.WithPretty(p.Flag("log-pretty")),
	)

	return log.Default().With(slog.String("component", "parser"))
}

// splitTokens divides the command line at the first "--" separator.
func splitTokens(args []string) (own, rest []string) {
	for i, token := range args {
		if token == "--" {
			return args[:i], args[i+1:]
		}
	}

	return args, nil
}

// resultYAML renders every declared argument's effective value in
// declaration order. Flags render as booleans, value-taking arguments as
// strings, and unresolved arguments without a default as null.
func resultYAML(p *arg.Parser) ([]byte, error) {
	values := make(yaml.MapSlice, 0, p.Len())

	for a := range p.Args() {
		item := yaml.MapItem{Key: a.Name}

		switch a.Kind {
		case arg.KindFlag:
			item.Value = p.Flag(a.Name)

		case arg.KindKeyValue:
			if v, ok := p.KeyValue(a.Name); ok {
				item.Value = v
			}

		case arg.KindPositional:
			if v, ok := p.Positional(a.Name); ok {
				item.Value = v
			}
		}

		values = append(values, item)
	}

	out, err := yaml.Marshal(values)
	if err != nil {
		return nil, arg.WrapError(err)
	}

	return out, nil
}
