package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/voxel51/fiftyone-links/internal/links"
)

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	entries := []links.Entry{{Key: "CLIPS_VIEWS", URL: links.ClipsViews}}

	if err := Encode(&buf, "yaml", entries); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "version: 1\nlinks:\n") {
		t.Errorf("Encode(yaml) should start with version and links:\n%s", out)
	}
	if !strings.Contains(out, "key: CLIPS_VIEWS") || !strings.Contains(out, links.ClipsViews) {
		t.Errorf("Encode(yaml) missing entry:\n%s", out)
	}
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "JSON", links.All()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"key": "QP_MODE"`) {
		t.Errorf("JSON output missing QP_MODE key:\n%s", out)
	}
	if !strings.Contains(out, links.QPMode) {
		t.Errorf("JSON output should keep URLs unescaped:\n%s", out)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "xml", links.All()); err == nil {
		t.Error("Encode(xml) should fail")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		wantCount int
	}{
		{"json", "json", links.Len()},
		{"yaml", "yaml", links.Len()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.format, links.All()); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			doc, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(doc.Links) != tt.wantCount {
				t.Errorf("decoded %d links, want %d", len(doc.Links), tt.wantCount)
			}
			if r := links.Check(doc.Links); !r.OK() {
				t.Errorf("decoded links fail check: %v", r.Err())
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong version", "version: 3\nlinks: []\n"},
		{"missing version", "links: []\n"},
		{"garbage", "links: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Errorf("Decode(%q) should fail", tt.doc)
			}
		})
	}
}

func TestEncodeEntry(t *testing.T) {
	e := links.Entry{Key: "QP_MODE", URL: links.QPMode}

	var js bytes.Buffer
	if err := EncodeEntry(&js, "json", e); err != nil {
		t.Fatalf("EncodeEntry(json) error = %v", err)
	}
	want := "{\n  \"key\": \"QP_MODE\",\n  \"url\": \"" + links.QPMode + "\"\n}\n"
	if js.String() != want {
		t.Errorf("EncodeEntry(json) = %q, want %q", js.String(), want)
	}

	var ym bytes.Buffer
	if err := EncodeEntry(&ym, "yaml", e); err != nil {
		t.Fatalf("EncodeEntry(yaml) error = %v", err)
	}
	if !strings.HasPrefix(ym.String(), "key: QP_MODE\n") {
		t.Errorf("EncodeEntry(yaml) = %q", ym.String())
	}

	if err := EncodeEntry(&ym, "table", e); err == nil {
		t.Error("EncodeEntry(table) should fail")
	}
}
