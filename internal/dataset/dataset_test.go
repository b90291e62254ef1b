package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yildizm/landing/internal/chart"
)

func TestParseFormats(t *testing.T) {
	want := []chart.Record{
		{Value: 548, Category: chart.CategoryRefurbishment, Status: chart.StatusComplete},
		{Value: 12.5, Category: chart.CategoryNewBuild, Status: chart.StatusEstimate},
	}

	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			input: `records:
  - value: 548
    type: refurbishment
    status: complete
  - value: 12.5
    type: new-build
    status: estimate
`,
		},
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"records":[{"value":548,"type":"refurbishment","status":"complete"},{"value":12.5,"type":"new-build","status":"estimate"}]}`,
		},
		{
			name:   "csv",
			format: FormatCSV,
			input:  "Value,Type,Status\n548,refurbishment,complete\n12.5,new-build,estimate\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(want, ds.Records()); diff != "" {
				t.Errorf("unexpected records (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	sample := chart.SampleDataset()
	data, err := chart.Export(sample)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	ds, err := Parse(data, FormatCSV)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(sample.Records(), ds.Records()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		isEmpty bool
	}{
		{"empty yaml", FormatYAML, "records: []\n", true},
		{"empty csv", FormatCSV, "", true},
		{"header only csv", FormatCSV, "Value,Type,Status\n", true},
		{"bad header", FormatCSV, "a,b,c\n1,new-build,complete\n", false},
		{"bad value", FormatCSV, "Value,Type,Status\nabc,new-build,complete\n", false},
		{"nan csv", FormatCSV, "Value,Type,Status\nNaN,new-build,complete\n", false},
		{"inf csv", FormatCSV, "Value,Type,Status\n+Inf,refurbishment,estimate\n", false},
		{"nan yaml", FormatYAML, "records:\n  - value: .nan\n    type: new-build\n    status: complete\n", false},
		{"inf yaml", FormatYAML, "records:\n  - value: .inf\n    type: new-build\n    status: complete\n", false},
		{"negative inf yaml", FormatYAML, "records:\n  - value: -.inf\n    type: new-build\n    status: complete\n", false},
		{"negative value", FormatJSON, `{"records":[{"value":-1,"type":"new-build","status":"complete"}]}`, false},
		{"type all", FormatJSON, `{"records":[{"value":1,"type":"all","status":"complete"}]}`, false},
		{"bad status", FormatYAML, "records:\n  - value: 1\n    type: new-build\n    status: draft\n", false},
		{"bad yaml", FormatYAML, "records: [", false},
		{"bad format", Format("xml"), "<records/>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if got := errors.Is(err, ErrEmpty); got != tt.isEmpty {
				t.Errorf("errors.Is(err, ErrEmpty) = %v, want %v (err: %v)", got, tt.isEmpty, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("Value,Type,Status\n881,new-build,complete\n"), 0o600); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if ds.Len() != 1 || ds.At(0).Value != 881 {
		t.Errorf("unexpected dataset: %+v", ds.Records())
	}

	if _, err := LoadFile(filepath.Join(dir, "data.txt")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
