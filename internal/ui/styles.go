package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#FF6D04") // Orange - headers, borders, keys
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Amber - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	LinkColor    = lipgloss.Color("#5FAFFF") // Blue - URLs
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Shared styles
var (
	// HeaderTitleStyle is for the main command title (e.g., "LINK CHECK")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "fiftyone-links check")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Links:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TableHeadingStyle is for table column headings
	TableHeadingStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	// LinkKeyStyle is for registry keys in tables and detail views
	LinkKeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// LinkURLStyle is for URLs
	LinkURLStyle = lipgloss.NewStyle().
			Foreground(LinkColor).
			Underline(true)

	// LinkTitleStyle is for the human-readable label under a key
	LinkTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for the warning result title
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TroubleshootingTitleStyle is for "Problems:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stream is an interactive terminal. Streams
// without a file descriptor, such as buffers, never are.
func IsTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StyledOutput reports whether output to w should be styled: color must be
// enabled, NO_COLOR unset, and w a terminal.
func StyledOutput(w io.Writer, color bool) bool {
	if !color || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
