package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one key/value line of a listing. Absent entries are shown dimmed
// with a placeholder.
type Entry struct {
	Key    string
	Value  string
	Absent bool
}

// Printer writes listings, styled when color is enabled.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer for out, detecting color support.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, color: ColorEnabled(out)}
}

// NewPlainPrinter creates a Printer that never styles its output.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Title writes a heading line.
func (p *Printer) Title(title string) {
	fmt.Fprintln(p.out, p.render(TitleStyle, title))
}

// Entries writes entries with keys padded to a common width. Multi-line
// values are indented under their first line.
func (p *Printer) Entries(entries []Entry) {
	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}
	indent := strings.Repeat(" ", width+4)

	for _, e := range entries {
		key := p.render(KeyStyle, fmt.Sprintf("%-*s", width, e.Key))
		var value string
		if e.Absent {
			value = p.render(AbsentStyle, "(absent)")
		} else {
			value = p.render(ValueStyle, strings.ReplaceAll(e.Value, "\n", "\n"+indent))
		}
		fmt.Fprintf(p.out, "  %s  %s\n", key, value)
	}
}

// Success writes a line marked with a check symbol.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(SuccessStyle, SymbolCheck+" "+fmt.Sprintf(format, args...)))
}

// Failure writes a line marked with a cross symbol.
func (p *Printer) Failure(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(ErrorStyle, SymbolCross+" "+fmt.Sprintf(format, args...)))
}
