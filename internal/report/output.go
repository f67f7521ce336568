// Package report writes results and parse diagnostics for humantime.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jparise/humantime/internal/timeparse"
	"github.com/mgutz/ansi"
)

// Problem is a value that failed to parse or validate.
type Problem struct {
	Location string // Where the value came from, e.g. "file.txt:3:5"
	Input    string // The text that was parsed
	Err      error
}

// Output handles all output formatting with optional color support.
type Output struct {
	mu       sync.Mutex
	stdout   io.Writer
	stderr   io.Writer
	colorize bool

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
	red    func(string) string
	bold   func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:   stdout,
		stderr:   stderr,
		colorize: colorize,
		cyan:     color("cyan"),
		green:    color("green+b"),
		yellow:   color("yellow"),
		red:      color("red+b"),
		bold:     color("white+b"),
	}
}

// Colorize reports whether output is colored.
func (o *Output) Colorize() bool {
	return o.colorize
}

// Stdout returns the writer for results. Callers that write to it
// directly must not interleave with concurrent Output calls.
func (o *Output) Stdout() io.Writer {
	return o.stdout
}

// Value writes a successfully parsed value, optionally prefixed by the
// input it came from.
func (o *Output) Value(input, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if input == "" {
		fmt.Fprintln(o.stdout, o.green(value))
		return
	}
	fmt.Fprintf(o.stdout, "%s: %s\n", o.cyan(input), o.green(value))
}

// Problems writes a group of problems to stderr without interleaving
// them with other output.
func (o *Output) Problems(problems []Problem) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, p := range problems {
		o.writeProblem(p)
	}
}

func (o *Output) writeProblem(p Problem) {
	if p.Location != "" {
		fmt.Fprintf(o.stderr, "%s: ", o.bold(p.Location))
	}
	fmt.Fprintf(o.stderr, "%s %v\n", o.red("error:"), p.Err)

	var perr *timeparse.ParseError
	if !errors.As(p.Err, &perr) {
		return
	}
	start, end, ok := perr.Span()
	if !ok {
		return
	}
	line := strings.TrimRight(p.Input, "\r\n")
	fmt.Fprintf(o.stderr, "    %s\n    %s\n", line, o.yellow(Caret(line, start, end)))
}

// Caret returns a marker line that underlines input[start:end]. An empty
// range marks the single character at start, or the end of input.
func Caret(input string, start, end int) string {
	start = min(start, len(input))
	end = min(max(end, start), len(input))
	if end == start && start < len(input) {
		_, size := utf8.DecodeRuneInString(input[start:])
		end = start + size
	}

	pad := utf8.RuneCountInString(input[:start])
	width := max(utf8.RuneCountInString(input[start:end]), 1)
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
