package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rrspmax/bracketgen/internal/bracket"
	"github.com/rrspmax/bracketgen/internal/document"
	"github.com/rrspmax/bracketgen/internal/taxrate"
)

func sampleDoc() *document.TaxDocument {
	return &document.TaxDocument{
		Year: 2025,
		Federal: []bracket.Bracket{
			{Min: 0, Max: taxrate.UpTo(57375), Rate: 0.15},
			{Min: 57375, Max: taxrate.NoLimit(), Rate: 0.205},
		},
		Provincial: map[string]document.ProvinceBrackets{
			"AB": {
				Name: "Alberta",
				Brackets: []bracket.Bracket{
					{Min: 0, Max: taxrate.NoLimit(), Rate: 0.1},
				},
			},
		},
	}
}

const wantJSON = `{
  "year": 2025,
  "federal": [
    {
      "min": 0,
      "max": 57375,
      "rate": 0.15
    },
    {
      "min": 57375,
      "max": "Infinity",
      "rate": 0.205
    }
  ],
  "provincial": {
    "AB": {
      "name": "Alberta",
      "brackets": [
        {
          "min": 0,
          "max": "Infinity",
          "rate": 0.1
        }
      ]
    }
  }
}
`

func TestFilename(t *testing.T) {
	t.Parallel()
	if got := Filename(2025); got != "tax_brackets_2025.json" {
		t.Errorf("Filename(2025) = %q", got)
	}
}

func TestWriteJSON_Content(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path, err := WriteJSON(sampleDoc(), dir)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if path != filepath.Join(dir, "tax_brackets_2025.json") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != wantJSON {
		t.Errorf("file content mismatch:\ngot:\n%s\nwant:\n%s", data, wantJSON)
	}
}

func TestWriteJSON_Deterministic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path1, err := WriteJSON(sampleDoc(), dir)
	if err != nil {
		t.Fatalf("first WriteJSON: %v", err)
	}
	first, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// Second run overwrites the same file; content must be byte-identical.
	path2, err := WriteJSON(sampleDoc(), dir)
	if err != nil {
		t.Fatalf("second WriteJSON: %v", err)
	}
	if path1 != path2 {
		t.Fatalf("paths differ: %q vs %q", path1, path2)
	}
	second, err := os.ReadFile(path2)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("re-run output is not byte-identical")
	}
}

func TestWriteJSON_OverwritesExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	stale := filepath.Join(dir, "tax_brackets_2025.json")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	if _, err := WriteJSON(sampleDoc(), dir); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != wantJSON {
		t.Error("stale file was not overwritten")
	}
}

func TestWriteJSON_BadDir(t *testing.T) {
	t.Parallel()
	_, err := WriteJSON(sampleDoc(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
}

const wantJS = `
// Tax brackets for 2025 (generated by bracketgen)
// Add this to the TAX_DATA object in script.js

2025: {
  federal: [
    { min: 0, max: 57375, rate: 0.15 },
    { min: 57375, max: Infinity, rate: 0.205 },
  ],
  provincial: {
    AB: {
      name: 'Alberta',
      brackets: [
        { min: 0, max: Infinity, rate: 0.1 },
      ]
    },
  }
}
`

func TestJS_Golden(t *testing.T) {
	t.Parallel()
	if got := JS(sampleDoc()); got != wantJS {
		t.Errorf("JS output mismatch:\ngot:\n%s\nwant:\n%s", got, wantJS)
	}
}

func TestJS_LargeAmountsNotExponential(t *testing.T) {
	t.Parallel()
	doc := &document.TaxDocument{
		Year: 2025,
		Federal: []bracket.Bracket{
			{Min: 0, Max: taxrate.UpTo(1128858), Rate: 0.213},
		},
		Provincial: map[string]document.ProvinceBrackets{},
	}
	got := JS(doc)
	if want := "{ min: 0, max: 1128858, rate: 0.213 }"; !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
}
