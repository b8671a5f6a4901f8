package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Printer writes user-facing output, which goes to STDERR by default.
type Printer struct {
	out   io.Writer
	color bool
	quiet bool
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect sends output to writer.
// Color is turned off, since the new destination may not be a terminal.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.color = false
}

// UseColor enables ANSI color for failures, but only if the output is a terminal.
func (p *Printer) UseColor(enabled bool) {
	p.color = enabled && IsTerminal(p.out)
}

// Quiet suppresses failure output.
// Usage information is still printed, since the user asked for it.
func (p *Printer) Quiet(quiet bool) {
	p.quiet = quiet
}

// Write allows the Printer to be used as the output of a [flag.FlagSet] or a log handler.
func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Failure prints a failed check message on its own line.
func (p *Printer) Failure(msg string) {
	if p.quiet {
		return
	}
	if p.color {
		_, _ = fmt.Fprintln(p.out, ansiRed+msg+ansiReset)
		return
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
