package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-list.com/todo-list/internal/tasklist"
)

// Printer writes styled console output.
type Printer struct {
	writer io.Writer
	styles *Styles
}

type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Bold    lipgloss.Style
	Done    lipgloss.Style
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
		styles: &Styles{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Underline(true),
			Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Bold:    lipgloss.NewStyle().Bold(true),
			Done:    lipgloss.NewStyle().Strikethrough(true),
		},
	}
}

func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout)
}

func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Header(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Header.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Subtle(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Subtle.Render(fmt.Sprintf(format, args...)))
}

// Done renders a completed task title.
func (p *Printer) Done(title string) string {
	return p.styles.Done.Render(title)
}

// Notify lets the printer act as the controller's notification sink.
func (p *Printer) Notify(kind tasklist.Kind, message string) {
	if kind == tasklist.KindError {
		p.Error("%s", message)
		return
	}
	p.Success("%s", message)
}

// Table prints a simple aligned table.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerParts := make([]string, len(headers))
	for i, h := range headers {
		headerParts[i] = p.styles.Bold.Render(padRight(h, widths[i]))
	}
	fmt.Fprintln(p.writer, strings.Join(headerParts, "  "))

	separatorParts := make([]string, len(headers))
	for i, w := range widths {
		separatorParts[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(p.writer, p.styles.Subtle.Render(strings.Join(separatorParts, "  ")))

	for _, row := range rows {
		rowParts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowParts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(p.writer, strings.Join(rowParts, "  "))
	}
}

// padRight pads s to width terminal cells, so wide and styled text lines up.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
