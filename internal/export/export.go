// Package export encodes the link registry as a JSON or YAML document for
// link-checking and documentation tooling, and decodes such documents back
// into entries.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voxel51/fiftyone-links/internal/links"
)

// DocumentVersion is written to every exported document.
const DocumentVersion = 1

// Document is the exported form of the registry.
type Document struct {
	Version int           `json:"version" yaml:"version"`
	Links   []links.Entry `json:"links" yaml:"links"`
}

// NewDocument wraps entries in a versioned document.
func NewDocument(entries []links.Entry) Document {
	return Document{Version: DocumentVersion, Links: entries}
}

// Encode writes entries to w in the given format ("json" or "yaml").
func Encode(w io.Writer, format string, entries []links.Entry) error {
	doc := NewDocument(entries)

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// URLs carry '&' and '#'; keep them readable
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (valid: json, yaml)", format)
	}
	return nil
}

// Decode parses a JSON or YAML document. YAML is a superset of JSON, so a
// single decoder handles both.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse links document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return Document{}, fmt.Errorf("unsupported links document version: %d (expected %d)", doc.Version, DocumentVersion)
	}
	return doc, nil
}

// EncodeEntry writes a single entry to w in the given format ("json" or "yaml").
func EncodeEntry(w io.Writer, format string, e links.Entry) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml", "yml":
		data, err := yaml.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (valid: json, yaml)", format)
	}
	return nil
}
