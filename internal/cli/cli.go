package cli

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h", "help"} // HelpPatterns are the first arguments that trigger usage output from the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// Positional arguments are available with [flag.FlagSet.Args].
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is a named check exposed to the user.
type Command struct {
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	path       string
	shortUsage string
	usage      string
	printer    *Printer
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	fs.SetOutput(printer)
	cmd := &Command{flags: fs, key: key, shortUsage: shortUsage, printer: printer}
	cmd.path = strings.TrimSpace(parent + " " + key)
	fs.Usage = cmd.printUsage
	cmd.exec = func(*flag.FlagSet, *Printer) error {
		cmd.printUsage()
		return nil
	}
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Key is the normalized name of the [Command].
func (c *Command) Key() string {
	return c.key
}

// CommandPath returns the full invocation for this [Command], including the top-level name.
func (c *Command) CommandPath() string {
	return c.path
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage sets the argument synopsis shown after the command path in usage output.
func (c *Command) Usage(format string, args ...any) *Command {
	c.usage = fmt.Sprintf(format, args...)
	return c
}

func (c *Command) printUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage)
	buf.WriteString("\n\nUSAGE:\n")
	buf.WriteString(strings.TrimSpace(c.path + " " + c.usage))
	buf.WriteString("\n\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.printer.Print(buf.String())
}

// Exec parses flags from args and executes the command.
func (c *Command) Exec(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{wrapped: err}
	}
	if val, _ := c.flags.GetBool("help"); val {
		c.printUsage()
		return nil
	}
	return c.exec(c.flags, c.printer)
}

// CommandSet is the top-level group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	name     string
	synopsis string
}

// NewCommandSet creates the root of a CLI's commands.
// The name is used as the invocation prefix in usage output.
func NewCommandSet(name string, printer *Printer) *CommandSet {
	if printer == nil {
		printer = NewPrinter()
	}
	return &CommandSet{printer: printer, name: name}
}

// Synopsis sets text that's shown before the command listing in top-level usage output.
func (s *CommandSet) Synopsis(format string, args ...any) *CommandSet {
	s.synopsis = fmt.Sprintf(format, args...)
	return s
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := newCommand(key, s.name, shortUsage, s.printer)
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Printer returns the [Printer] shared by every [Command] in this set.
func (s *CommandSet) Printer() *Printer {
	return s.printer
}

// Exec executes this [CommandSet].
// It's expected that the first argument is the key or alias of a sub-command.
// Passing no arguments, or one of [HelpPatterns], prints usage information.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 || slices.Contains(HelpPatterns, args[0]) {
		s.PrintUsage()
		return nil
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return &UsageError{wrapped: fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])}
		}
	}
	return cmd.Exec(args[1:])
}

// PrintUsage prints the top-level usage information with the [Printer].
func (s *CommandSet) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(s.name)
	if len(s.synopsis) > 0 {
		buf.WriteString("\n\n")
		buf.WriteString(strings.TrimSuffix(s.synopsis, "\n"))
	}
	buf.WriteString("\n\nCOMMANDS:\n")
	buf.WriteString(s.CommandUsages())
	s.printer.Print(buf.String())
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf    strings.Builder
		keys   = make([]string, 0, len(s.commands))
		labels = make(map[string]string, len(s.commands))
		maxLen int
	)
	for key, cmd := range s.commands {
		keys = append(keys, key)
		label := key
		if len(cmd.aliases) > 0 {
			label = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		}
		labels[key] = label
		maxLen = max(maxLen, len(label))
	}
	slices.Sort(keys)

	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for _, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, labels[key], s.commands[key].shortUsage))
	}
	return buf.String()
}
