// Package ui provides terminal output for the fiftyone-links CLI.
//
// Lipgloss renders the styled components and Bubble Tea drives the
// interactive browser. Apart from the browser, components follow a
// "render once and exit" pattern: they return strings or write to an
// io.Writer and never wait for input.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Table: aligned key/URL listing of registry entries
//   - Result: success/failure/warning boxes with details
//   - Browser: filterable Bubble Tea list of links
//
// # Plain Output
//
// Styling is only applied when stdout is a terminal and color is enabled.
// Otherwise the Printer emits plain text, so output can be piped into other
// tools:
//
//	p := ui.NewPrinter(os.Stdout, ui.StyledOutput(os.Stdout, cfg.Preferences.Color))
//	p.PrintTable(links.All())
//
// # Logging Integration
//
// Logging is controlled via FIFTYONE_LINKS_LOG_LEVEL and goes to stderr, so
// it never mixes with the output produced here.
package ui
