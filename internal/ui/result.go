package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type     ResultType        // Success, failure, or warning
	Title    string            // e.g., "All links valid"
	Details  map[string]string // Key-value details to display, sorted by key
	Error    error             // Error (for failure results)
	Problems []string          // Bullet list (for failure and warning results)
	Width    int               // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, problems []string) *Result {
	return &Result{
		Type:     ResultFailure,
		Title:    title,
		Error:    err,
		Problems: problems,
		Width:    GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		color lipgloss.Color
		title string
	)
	switch r.Type {
	case ResultFailure:
		color = ErrorColor
		title = ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title))
	case ResultWarning:
		color = WarningColor
		title = WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
	default:
		color = SuccessColor
		title = SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
	}

	lines := []string{"", title, ""}

	for _, key := range sortedKeys(r.Details) {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", key))
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(r.Details[key]))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Problems) > 0 {
		lines = append(lines, r.renderProblemsBox(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderProblemsBox renders the inner bullet list box
func (r *Result) renderProblemsBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Problems:"), ""}
	for _, p := range r.Problems {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+p))
	}

	innerWidth := width - 12 // Indent within outer box
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// RenderPlain returns the result as unstyled text
func (r *Result) RenderPlain() string {
	var b strings.Builder

	switch r.Type {
	case ResultFailure:
		fmt.Fprintf(&b, "%s FAILED: %s\n", FailureMarker, r.Title)
	case ResultWarning:
		fmt.Fprintf(&b, "%s WARNING: %s\n", WarningMarker, r.Title)
	default:
		fmt.Fprintf(&b, "%s SUCCESS: %s\n", SuccessMarker, r.Title)
	}
	for _, key := range sortedKeys(r.Details) {
		fmt.Fprintf(&b, "  %s: %s\n", key, r.Details[key])
	}
	if r.Error != nil {
		fmt.Fprintf(&b, "  Error: %v\n", r.Error)
	}
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	return b.String()
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
