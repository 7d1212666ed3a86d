package taxrate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}
	return path
}

const validRates = `
year = 2026

[federal]
bands = [
  { rate = 15.0, upper = 58000 },
  { rate = 33.0, upper = -1 },
]

[provincial.ON]
bands = [
  { rate = 5.05, upper = 54000 },
  { rate = 13.16, upper = -1 },
]
`

func TestLoadFile_Valid(t *testing.T) {
	t.Parallel()
	ds, err := LoadFile(writeRatesFile(t, validRates))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if ds.Year() != 2026 {
		t.Errorf("Year() = %d, want 2026", ds.Year())
	}

	fed, err := ds.Federal()
	if err != nil {
		t.Fatalf("Federal(): %v", err)
	}
	if len(fed) != 2 {
		t.Fatalf("federal has %d bands, want 2", len(fed))
	}
	if fed[0] != (Band{RatePercent: 15, Upper: UpTo(58000)}) {
		t.Errorf("federal band 0 = %+v", fed[0])
	}
	if !fed[1].Upper.Infinite() {
		t.Errorf("federal top band should be unbounded, got %+v", fed[1])
	}

	on, err := ds.Provincial("ON")
	if err != nil {
		t.Fatalf("Provincial(ON): %v", err)
	}
	if len(on) != 2 || on[0].RatePercent != 5.05 {
		t.Errorf("ON schedule = %+v", on)
	}
}

func TestLoadFile_ProvinceNotInFile(t *testing.T) {
	t.Parallel()
	ds, err := LoadFile(writeRatesFile(t, validRates))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	_, err = ds.Provincial("QC")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Provincial(QC) = %v, want FetchError", err)
	}
	if fe.Code != "QC" {
		t.Errorf("FetchError.Code = %q, want QC", fe.Code)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{
			name:    "missing year",
			content: "[federal]\nbands = []\n",
			wantSub: "missing year",
		},
		{
			name:    "unknown code",
			content: "year = 2026\n[provincial.ZZ]\nbands = []\n",
			wantSub: "unknown jurisdiction",
		},
		{
			name:    "not toml",
			content: "{ this is not toml",
			wantSub: "parsing rates file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeRatesFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading rates file") {
		t.Errorf("error %q should mention reading rates file", err)
	}
}
