package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/voxel51/fiftyone-links/internal/links"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if p.Styled() {
		t.Fatal("printer should be plain")
	}

	p.PrintCompact([]links.Entry{{Key: "QP_MODE", URL: links.QPMode}})
	p.PrintResult(NewSuccessResult("done", nil))

	want := "QP_MODE " + links.QPMode + "\n✓ SUCCESS: done\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_PrintEntryAndTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	e, _ := links.Get("sort-by-similarity")
	p.PrintEntry(e)
	p.PrintTable([]links.Entry{e})

	out := buf.String()
	if strings.Count(out, links.SortBySimilarity) != 2 {
		t.Errorf("expected URL twice in output:\n%s", out)
	}
}

func TestStyledOutput_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if StyledOutput(&buf, true) {
		t.Error("a buffer is not a terminal; output should be plain")
	}
	if IsTerminal(&buf) {
		t.Error("IsTerminal(buffer) = true")
	}
}

func TestStyledOutput_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if StyledOutput(nil, true) {
		t.Error("NO_COLOR should disable styling")
	}
}

func TestNewPrinter_DefaultsToStdout(t *testing.T) {
	p := NewPrinter(nil, false)
	if p.Writer() == nil {
		t.Error("Writer() should default to stdout")
	}
	if p.Width() < MinTerminalWidth {
		t.Errorf("Width() = %d, want >= %d", p.Width(), MinTerminalWidth)
	}
}
