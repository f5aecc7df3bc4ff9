// Package presenter prints user-facing CLI messages with consistent
// coloring and a quiet mode. It is the output channel for command
// results; diagnostics go through pkg/logger instead.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Presenter writes styled user-facing output.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// New creates a presenter writing to stdout and stderr.
func New() *Presenter {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a presenter with custom writers.
func NewWithWriters(out, errOut io.Writer) *Presenter {
	return &Presenter{out: out, errOut: errOut}
}

// SetQuiet suppresses everything except errors.
func (p *Presenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Error prints an error with optional context to the error stream.
// Errors print even in quiet mode.
func (p *Presenter) Error(err error, context string) {
	if context != "" {
		fmt.Fprintf(p.errOut, "%s %s: %v\n", color.RedString("Error:"), context, err)
		return
	}
	fmt.Fprintf(p.errOut, "%s %v\n", color.RedString("Error:"), err)
}

// Success prints a success message.
func (p *Presenter) Success(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", color.GreenString("✓"), message)
}

// Warning prints a warning message.
func (p *Presenter) Warning(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", color.YellowString("Warning:"), message)
}

// Info prints an informational message.
func (p *Presenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, message)
}

// Section prints a titled divider.
func (p *Presenter) Section(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", color.New(color.Bold).Sprint(title))
}

// Default presenter used by package-level helpers.
var std = New()

// SetQuiet toggles quiet mode on the default presenter.
func SetQuiet(quiet bool) { std.SetQuiet(quiet) }

// Error prints via the default presenter.
func Error(err error, context string) { std.Error(err, context) }

// Success prints via the default presenter.
func Success(message string) { std.Success(message) }

// Warning prints via the default presenter.
func Warning(message string) { std.Warning(message) }

// Info prints via the default presenter.
func Info(message string) { std.Info(message) }

// Section prints via the default presenter.
func Section(title string) { std.Section(title) }
