package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints prompt to out and reads a yes/no answer from in.
// Only "y" or "yes" (any case) confirm; anything else, including EOF, declines.
func Confirm(in io.Reader, out io.Writer, prompt string, styled bool) bool {
	text := prompt + " [y/N]: "
	if styled {
		text = lipgloss.NewStyle().Foreground(WarningColor).Bold(true).Render(text)
	}
	_, _ = fmt.Fprint(out, text)

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
