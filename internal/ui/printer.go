package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/voxel51/fiftyone-links/internal/links"
)

// Printer writes UI components to a writer, styled or plain.
// This is the primary way commands should output content.
type Printer struct {
	out    io.Writer
	width  int
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer, styled bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  GetTerminalWidth(),
		styled: styled,
	}
}

// Styled reports whether the printer applies lipgloss styles
func (p *Printer) Styled() bool {
	return p.styled
}

// Width returns the terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header
func (p *Printer) PrintHeader(h *Header) {
	if !p.styled {
		p.Print(h.RenderPlain())
		p.Newline()
		return
	}
	p.Println(h.SetWidth(p.width).Render())
	p.Newline()
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	if !p.styled {
		p.Print(r.RenderPlain())
		return
	}
	p.Println(r.SetWidth(p.width).Render())
}

// PrintTable prints entries as an aligned table
func (p *Printer) PrintTable(entries []links.Entry) {
	p.Print(RenderTable(entries, p.styled))
}

// PrintCompact prints one "KEY url" line per entry
func (p *Printer) PrintCompact(entries []links.Entry) {
	p.Print(RenderCompact(entries))
}

// PrintEntry prints the detail view of a single entry
func (p *Printer) PrintEntry(e links.Entry) {
	p.Print(RenderEntry(e, p.styled))
}

// CheckResult builds the result box for a link check report.
func CheckResult(report *links.Report) *Result {
	if report.OK() {
		return NewSuccessResult("All links valid", map[string]string{
			"Checked": fmt.Sprintf("%d", report.Checked),
		})
	}

	problems := make([]string, 0, len(report.Errors))
	for _, ce := range report.Errors {
		problems = append(problems, ce.Error())
	}
	r := NewFailureResult(
		fmt.Sprintf("%d problem(s) in %d link(s)", len(report.Errors), report.Checked),
		nil,
		problems,
	)
	return r
}
