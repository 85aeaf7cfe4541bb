// Package printer renders user-facing CLI output. It is not a logger.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgHiCyan, color.Bold)
	infoColor    = color.New(color.FgHiCyan)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgHiRed, color.Bold)
	messageColor = color.New(color.FgWhite, color.Bold)
	goodColor    = color.New(color.FgHiGreen)
	subtleColor  = color.New(color.FgHiBlack, color.Italic)
	keyColor     = color.New(color.FgCyan)
)

// Printer writes styled lines to a writer.
type Printer struct {
	out io.Writer
}

// New returns a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Title prints a bold section header followed by a blank line.
func (p *Printer) Title(msg string) {
	_, _ = titleColor.Fprintln(p.out, msg)
	_, _ = fmt.Fprintln(p.out)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	_, _ = infoColor.Fprintln(p.out, "💡 "+msg)
}

// Infof formats and prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning.
func (p *Printer) Warn(msg string) {
	_, _ = warnColor.Fprintln(p.out, "⚠️  "+msg)
}

// Warnf formats and prints a warning.
func (p *Printer) Warnf(format string, args ...any) {
	p.Warn(fmt.Sprintf(format, args...))
}

// Error prints an error with a red prefix.
func (p *Printer) Error(msg string) {
	_, _ = fmt.Fprintln(p.out, errorColor.Sprint("✘  Error: ")+messageColor.Sprint(msg))
}

// Good prints a success line.
func (p *Printer) Good(msg string) {
	_, _ = goodColor.Fprintln(p.out, "✔  "+msg)
}

// Goodf formats and prints a success line.
func (p *Printer) Goodf(format string, args ...any) {
	p.Good(fmt.Sprintf(format, args...))
}

// Note prints supplementary information for a previous line.
func (p *Printer) Note(msg string) {
	_, _ = fmt.Fprintln(p.out, messageColor.Sprint("Note:")+" "+msg)
}

// Subtle prints de-emphasised text.
func (p *Printer) Subtle(msg string) {
	_, _ = subtleColor.Fprintln(p.out, msg)
}

// Text prints plain text.
func (p *Printer) Text(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

// Row is one line of a key/value table.
type Row struct {
	Key   string
	Value string
}

// Table prints rows with right-aligned keys.
func (p *Printer) Table(rows []Row) {
	width := 0
	for _, r := range rows {
		if len(r.Key) > width {
			width = len(r.Key)
		}
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", width-len(r.Key))
		_, _ = fmt.Fprintf(p.out, "  %s%s  %s\n", pad, keyColor.Sprint(r.Key+":"), r.Value)
	}
}

// List prints names one per line with a bullet.
func (p *Printer) List(names []string) {
	for _, n := range names {
		_, _ = fmt.Fprintf(p.out, "  - %s\n", n)
	}
}

// Grid prints a borderless table with a bold header row and bold first column.
func (p *Printer) Grid(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow || col == 0 {
				return style.Bold(true)
			}
			return style
		})
	_, _ = fmt.Fprintln(p.out, t.String())
}
