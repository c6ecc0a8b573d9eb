package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header represents a command header with title, command, and parameters.
// Used at the start of long-form commands such as check.
type Header struct {
	Title   string            // e.g., "Link Check"
	Command string            // e.g., "fiftyone-links check"
	Params  map[string]string // e.g., {"Links": "12", "Allowed hosts": "any"}
	Width   int               // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params map[string]string) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) == 0 {
		return h.border(width).Render(topSection)
	}

	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := "  " + RenderHorizontalDivider(dividerWidth, "─")

	var paramLines []string
	for _, key := range sortedKeys(h.Params) {
		keyStyled := HeaderParamKeyStyle.Render(key + ":")
		valueStyled := HeaderParamValueStyle.Render(h.Params[key])
		paramLines = append(paramLines, keyStyled+" "+valueStyled)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(paramLines, "\n"))
	return h.border(width).Render(content)
}

func (h *Header) border(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2)
}

// RenderPlain returns the header as unstyled text
func (h *Header) RenderPlain() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(h.Title))
	b.WriteString("\n")
	b.WriteString(h.Command)
	b.WriteString("\n")
	for _, key := range sortedKeys(h.Params) {
		b.WriteString("  " + key + ": " + h.Params[key] + "\n")
	}
	return b.String()
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
