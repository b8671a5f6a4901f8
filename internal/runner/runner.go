// Package runner exposes the checks in package require as sub-commands, so shell scripts can state their preconditions.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/saylorsolutions/debug/internal/cli"
	"github.com/saylorsolutions/debug/internal/env"
	"github.com/saylorsolutions/debug/require"
	flag "github.com/spf13/pflag"
)

// Config holds the collaborators of a [Runner].
// Zero values are replaced with defaults in [New].
type Config struct {
	Name    string       // Name is the invocation name shown in usage output.
	Printer *cli.Printer // Printer receives usage and failure output.
	Stdout  io.Writer    // Stdout receives command results that scripts may capture.
	Logger  *slog.Logger
}

// Runner evaluates one check per invocation.
type Runner struct {
	set    *cli.CommandSet
	stdout io.Writer
	log    *slog.Logger
}

// subject is a single value under test.
// A nil value means the source variable is unset.
type subject struct {
	label string
	value *string
}

func (s subject) orNil() any {
	if s.value == nil {
		return nil
	}
	return *s.value
}

func New(cfg Config) *Runner {
	if len(cfg.Name) == 0 {
		cfg.Name = "require"
	}
	if cfg.Printer == nil {
		cfg.Printer = cli.NewPrinter()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Runner{
		set:    cli.NewCommandSet(cfg.Name, cfg.Printer),
		stdout: cfg.Stdout,
		log:    cfg.Logger,
	}
	r.set.Synopsis(`Evaluates a precondition and exits non-zero if it doesn't hold.

Values are given as arguments, or read from environment variables with --env.
An unset variable is treated as null.

EXIT CODES:
  0  The check passed, or checks were stripped from this build.
  1  The check failed.
  2  The command was used incorrectly.`)
	r.addNullChecks()
	r.addStringChecks()
	r.addBoolChecks()
	r.addComparisons()
	r.set.AddCommand("mode", "Prints 'enabled' if checks are compiled in, or 'stripped' if not").
		Does(func(*flag.FlagSet, *cli.Printer) error {
			mode := "stripped"
			if require.Enabled {
				mode = "enabled"
			}
			_, err := fmt.Fprintln(r.stdout, mode)
			return err
		})
	return r
}

// Exec runs the sub-command named by the first argument.
//
// A failed check returns a [*CheckError], which matches [ErrCheckFailed].
// Invalid arguments or flags return a [*cli.UsageError].
func (r *Runner) Exec(args []string) error {
	return r.set.Exec(args)
}

// Printer returns the [cli.Printer] used for user-facing output.
func (r *Runner) Printer() *cli.Printer {
	return r.set.Printer()
}

func subjectFlags(cmd *cli.Command) {
	cmd.Usage("[FLAGS] [VALUE...]")
	cmd.Flags().StringArrayP("env", "e", nil, "Checks the named environment variable, may be repeated")
	messageFlag(cmd)
}

func messageFlag(cmd *cli.Command) {
	cmd.Flags().StringP("message", "m", "", "Replaces the failure message")
}

func messageArgs(flags *flag.FlagSet) []any {
	if !flags.Changed("message") {
		return nil
	}
	return []any{cli.MustGet(flags.GetString("message"))}
}

func subjects(flags *flag.FlagSet) ([]subject, error) {
	var subs []subject
	for _, name := range cli.MustGet(flags.GetStringArray("env")) {
		sub := subject{label: name}
		if val, ok := env.Lookup(name); ok {
			sub.value = &val
		}
		subs = append(subs, sub)
	}
	for _, arg := range flags.Args() {
		subs = append(subs, subject{value: &arg})
	}
	if len(subs) == 0 {
		return nil, cli.NewUsageError("at least one value or --env variable is required")
	}
	return subs, nil
}

// each runs check against every subject, collecting all failures.
func (r *Runner) each(key string, subs []subject, check func(subject)) error {
	failures := CollectErrors()
	for _, sub := range subs {
		r.log.Debug("Evaluating check", "check", key, "subject", sub.label, "present", sub.value != nil)
		failures.Capture(sub.label, func() {
			check(sub)
		})
	}
	return r.report(key, failures)
}

func (r *Runner) report(key string, failures *Collector) error {
	if failures.Len() == 0 {
		r.log.Debug("Check passed", "check", key)
		return nil
	}
	printer := r.set.Printer()
	for _, err := range failures.Unwrap() {
		printer.Failure(err.Error())
	}
	r.log.Debug("Check failed", "check", key, "failures", failures.Len())
	return &CheckError{failures: failures}
}

func (r *Runner) addNullChecks() {
	checks := []struct {
		key, short string
		check      func(v any, msgAndArgs ...any)
	}{
		{"null", "Requires that each variable is unset", require.IsNull},
		{"not-null", "Requires that each variable is set, even if empty", require.IsNotNull},
	}
	for _, c := range checks {
		cmd := r.set.AddCommand(c.key, c.short)
		subjectFlags(cmd)
		cmd.Does(func(flags *flag.FlagSet, _ *cli.Printer) error {
			subs, err := subjects(flags)
			if err != nil {
				return err
			}
			msg := messageArgs(flags)
			return r.each(c.key, subs, func(sub subject) {
				c.check(sub.orNil(), msg...)
			})
		})
	}
}

func (r *Runner) addStringChecks() {
	checks := []struct {
		key, short string
		check      func(s *string, msgAndArgs ...any)
	}{
		{"empty", "Requires that each value is empty", require.IsEmpty[*string]},
		{"not-empty", "Requires that each value is set and not empty", require.IsNotEmpty[*string]},
		{"blank", "Requires that each value is empty or white space", require.IsBlank[*string]},
		{"not-blank", "Requires that each value is set and not blank", require.IsNotBlank[*string]},
	}
	for _, c := range checks {
		cmd := r.set.AddCommand(c.key, c.short)
		subjectFlags(cmd)
		cmd.Does(func(flags *flag.FlagSet, _ *cli.Printer) error {
			subs, err := subjects(flags)
			if err != nil {
				return err
			}
			msg := messageArgs(flags)
			return r.each(c.key, subs, func(sub subject) {
				c.check(sub.value, msg...)
			})
		})
	}
}

func (r *Runner) addBoolChecks() {
	checks := []struct {
		key, short string
		check      func(v bool, msgAndArgs ...any)
	}{
		{"true", "Requires that each value is a true boolean", require.IsTrue},
		{"false", "Requires that each value is a false boolean", require.IsFalse},
	}
	for _, c := range checks {
		cmd := r.set.AddCommand(c.key, c.short)
		subjectFlags(cmd)
		cmd.Does(func(flags *flag.FlagSet, _ *cli.Printer) error {
			subs, err := subjects(flags)
			if err != nil {
				return err
			}
			values := make([]bool, len(subs))
			for i, sub := range subs {
				if sub.value == nil {
					return cli.NewUsageError("variable %s is not set", sub.label)
				}
				values[i], err = strconv.ParseBool(*sub.value)
				if err != nil {
					return cli.NewUsageError("%q is not a boolean", *sub.value)
				}
			}
			msg := messageArgs(flags)
			failures := CollectErrors()
			for i, sub := range subs {
				r.log.Debug("Evaluating check", "check", c.key, "subject", sub.label)
				failures.Capture(sub.label, func() {
					c.check(values[i], msg...)
				})
			}
			return r.report(c.key, failures)
		})
	}
}

// comparison holds the float and string forms of a check, so --numeric can pick one.
type comparison struct {
	key, short string
	alias      string
	numeric    func(a, b float64, msgAndArgs ...any)
	text       func(a, b string, msgAndArgs ...any)
}

func (r *Runner) addComparisons() {
	checks := []comparison{
		{"equal", "Requires that A equals B", "eq", require.AreEqual[float64], require.AreEqual[string]},
		{"not-equal", "Requires that A does not equal B", "ne", require.AreNotEqual[float64], require.AreNotEqual[string]},
		{"less-than", "Requires that A is less than B", "lt", require.IsLessThan[float64], require.IsLessThan[string]},
		{"greater-than", "Requires that A is greater than B", "gt", require.IsGreaterThan[float64], require.IsGreaterThan[string]},
		{"at-most", "Requires that A is less than or equal to B", "le", require.IsAtMost[float64], require.IsAtMost[string]},
		{"at-least", "Requires that A is greater than or equal to B", "ge", require.IsAtLeast[float64], require.IsAtLeast[string]},
	}
	for _, c := range checks {
		cmd := r.set.AddCommand(c.key, c.short, c.alias)
		cmd.Usage("[FLAGS] A B")
		cmd.Flags().BoolP("numeric", "n", false, "Compares A and B as numbers instead of strings")
		messageFlag(cmd)
		cmd.Does(func(flags *flag.FlagSet, _ *cli.Printer) error {
			var a, b string
			if err := cli.MapArgs(flags.Args(), &a, &b); err != nil {
				return err
			}
			msg := messageArgs(flags)
			check := func() { c.text(a, b, msg...) }
			if cli.MustGet(flags.GetBool("numeric")) {
				na, err := parseNumber(a)
				if err != nil {
					return err
				}
				nb, err := parseNumber(b)
				if err != nil {
					return err
				}
				check = func() { c.numeric(na, nb, msg...) }
			}
			r.log.Debug("Evaluating check", "check", c.key, "a", a, "b", b)
			return r.report(c.key, CollectErrors().Capture("", check))
		})
	}
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, cli.NewUsageError("%q is not a number", s)
	}
	return n, nil
}
