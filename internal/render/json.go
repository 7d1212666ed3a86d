// Package render serializes the assembled tax document, either as the
// pretty-printed JSON file the calculator loads or as a JavaScript object
// literal for manual copy-paste.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rrspmax/bracketgen/internal/document"
)

// Filename returns the output file name for a tax year,
// e.g. tax_brackets_2025.json.
func Filename(year int) string {
	return fmt.Sprintf("tax_brackets_%d.json", year)
}

// WriteJSON writes the document as 2-space-indented UTF-8 JSON into dir,
// overwriting any existing file of the same name. The document is encoded
// fully in memory first, so a failure never leaves a partial file behind.
// It returns the path written.
func WriteJSON(doc *document.TaxDocument, dir string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("render: encoding document: %w", err)
	}

	path := filepath.Join(dir, Filename(doc.Year))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("render: writing %s: %w", path, err)
	}
	return path, nil
}
