// Package cli contains the command line interface for margs.
//
// The margs binary is a spec runner for the arg package: it loads a YAML
// argument spec, parses a token sequence against it, and prints the
// resolved values as YAML. Its own flags are declared with the arg
// package itself.
//
// # Usage
//
//	margs --spec=greet.yaml -- --name=World -s
//	margs --spec=greet.yaml --log-level=debug -- -ns=World
//
// Tokens before the first "--" configure margs; tokens after it are
// handed to the parser built from the spec file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-pretty: Colorize text log output
//
// # Profiling
//
// The --pprof option selects a profiling mode (cpu, mem, trace, ...) and
// writes the profile to the working directory for the duration of the run.
// It requires a binary built with the pprof build tag and is otherwise a
// no-op.
package cli
