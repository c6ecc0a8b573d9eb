package ui

import (
	"fmt"
	"strings"

	"github.com/voxel51/fiftyone-links/internal/links"
)

// keyColumnWidth returns the width of the widest key, at least len("KEY").
func keyColumnWidth(entries []links.Entry) int {
	w := len("KEY")
	for _, e := range entries {
		if len(e.Key) > w {
			w = len(e.Key)
		}
	}
	return w
}

// RenderTable renders entries as an aligned two-column table with a header row.
func RenderTable(entries []links.Entry, styled bool) string {
	w := keyColumnWidth(entries)
	var b strings.Builder

	if styled {
		b.WriteString(TableHeadingStyle.Width(w).Render("KEY"))
		b.WriteString("  ")
		b.WriteString(TableHeadingStyle.Render("URL"))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(LinkKeyStyle.Width(w).Render(e.Key))
			b.WriteString("  ")
			b.WriteString(LinkURLStyle.Render(e.URL))
			b.WriteString("\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%-*s  %s\n", w, "KEY", "URL")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %s\n", w, e.Key, e.URL)
	}
	return b.String()
}

// RenderCompact renders one "KEY url" line per entry.
func RenderCompact(entries []links.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// RenderEntry renders the detail view of a single entry.
func RenderEntry(e links.Entry, styled bool) string {
	type row struct{ label, value string }
	rows := []row{
		{"Title", e.Title()},
		{"URL", e.URL},
		{"Host", e.Host()},
	}
	if e.IsDeepLink() {
		rows = append(rows, row{"Section", e.Fragment()})
	}

	var b strings.Builder
	if styled {
		b.WriteString(LinkKeyStyle.Render(e.Key))
		b.WriteString("\n")
		for _, r := range rows {
			value := ResultValueStyle.Render(r.value)
			if r.label == "URL" {
				value = LinkURLStyle.Render(r.value)
			}
			b.WriteString(ResultKeyStyle.Render("  " + r.label + ":"))
			b.WriteString(value)
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(e.Key)
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-9s%s\n", r.label+":", r.value)
	}
	return b.String()
}
