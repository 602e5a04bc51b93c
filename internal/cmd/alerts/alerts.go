// Package alerts prints the outcome of catalog changes on stderr, apart
// from the command results on stdout.
package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/libris/internal/cmd/output"
)

// Level is the outcome an alert reports.
type Level string

const (
	// Success means the change was applied and saved.
	Success Level = "success"
	// Warning means the change was applied but needs attention.
	Warning Level = "warning"
)

func (l Level) icon() string {
	if l == Warning {
		return "!"
	}
	return "✓"
}

func (l Level) color() string {
	if l == Warning {
		return "\033[33m"
	}
	return "\033[32m"
}

// Alert is a status line with optional indented details.
type Alert struct {
	Level   Level    `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Successf builds a success alert.
func Successf(format string, args ...any) Alert {
	return Alert{Level: Success, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning alert.
func Warningf(format string, args ...any) Alert {
	return Alert{Level: Warning, Message: fmt.Sprintf(format, args...)}
}

// WithDetails returns a copy of a with details appended.
func (a Alert) WithDetails(details ...string) Alert {
	a.Details = append(append([]string(nil), a.Details...), details...)
	return a
}

// Writer prints alerts in the output format of the running command, so
// a --output json run gets JSON alerts.
type Writer struct {
	w      io.Writer
	format output.Format
	color  bool
}

// NewWriter returns a Writer on w. Plain alerts are colored only when w
// is a terminal and noColor is false.
func NewWriter(w io.Writer, format output.Format, noColor bool) *Writer {
	return &Writer{w: w, format: format, color: !noColor && isTerminal(w)}
}

// Write prints a.
func (aw *Writer) Write(a Alert) error {
	if aw.format.Structured() {
		return output.NewWriter(aw.w, aw.format).Encode(a)
	}

	line := a.Level.icon() + " " + a.Message
	if aw.color {
		line = a.Level.color() + line + "\033[0m"
	}
	if _, err := fmt.Fprintln(aw.w, line); err != nil {
		return err
	}
	for _, d := range a.Details {
		if _, err := fmt.Fprintf(aw.w, "   %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
