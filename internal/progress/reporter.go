package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while cards are rendered.
type Reporter interface {
	Start(total int, description string)
	Increment()
	Finish()
}

// NewReporter returns a TerminalReporter when w is an interactive terminal
// and a LineReporter otherwise. CI runs always get the line reporter.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" || !IsTerminal(w) {
		return &LineReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalReporter displays a progress bar.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, description string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Increment() {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints a start and a finish line, suitable for logs.
type LineReporter struct {
	w           io.Writer
	total       int
	current     int
	description string
}

func (r *LineReporter) Start(total int, description string) {
	r.total = total
	r.current = 0
	r.description = description
	fmt.Fprintf(r.w, "%s: %d cards\n", description, total)
}

func (r *LineReporter) Increment() {
	r.current++
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.w, "%s: done [%d/%d]\n", r.description, r.current, r.total)
}

// Nop reports nothing.
type Nop struct{}

func (Nop) Start(int, string) {}
func (Nop) Increment()        {}
func (Nop) Finish()           {}
