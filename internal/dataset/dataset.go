// Package dataset loads chart datasets from YAML, JSON or CSV files.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yildizm/landing/internal/chart"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a file holds no records.
var ErrEmpty = errors.New("dataset has no records")

// Format identifies a dataset file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// document is the YAML/JSON file layout.
type document struct {
	Records []chart.Record `yaml:"records" json:"records"`
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q (must be .yaml, .yml, .json or .csv)", filepath.Ext(path))
	}
}

// LoadFile reads and validates a dataset file.
func LoadFile(path string) (chart.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return chart.Dataset{}, err
	}

	// #nosec G304 - dataset path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return chart.Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	ds, err := Parse(data, format)
	if err != nil {
		return chart.Dataset{}, fmt.Errorf("failed to load dataset from %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (chart.Dataset, error) {
	var (
		records []chart.Record
		err     error
	)

	switch format {
	case FormatYAML:
		var doc document
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return chart.Dataset{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		records = doc.Records
	case FormatJSON:
		var doc document
		if err = json.Unmarshal(data, &doc); err != nil {
			return chart.Dataset{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
		records = doc.Records
	case FormatCSV:
		records, err = parseCSV(bytes.NewReader(data))
		if err != nil {
			return chart.Dataset{}, err
		}
	default:
		return chart.Dataset{}, fmt.Errorf("unsupported dataset format %q", format)
	}

	if err := validate(records); err != nil {
		return chart.Dataset{}, err
	}
	return chart.NewDataset(records), nil
}

// parseCSV reads the export layout: a Value,Type,Status header then rows.
func parseCSV(r io.Reader) ([]chart.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(chart.ExportHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, name := range chart.ExportHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("unexpected CSV header %q (want %s)", strings.Join(header, ","), strings.Join(chart.ExportHeader, ","))
		}
	}

	var records []chart.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", len(records)+2, row[0], err)
		}
		records = append(records, chart.Record{
			Value:    value,
			Category: chart.Category(strings.TrimSpace(row[1])),
			Status:   chart.Status(strings.TrimSpace(row[2])),
		})
	}
	return records, nil
}

func validate(records []chart.Record) error {
	if len(records) == 0 {
		return ErrEmpty
	}
	for i, r := range records {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			return fmt.Errorf("record %d: value must be a finite number, got %v", i, r.Value)
		}
		if r.Value < 0 {
			return fmt.Errorf("record %d: value must be non-negative, got %v", i, r.Value)
		}
		if !r.Category.Valid() {
			return fmt.Errorf("record %d: invalid type %q (must be one of: refurbishment, new-build)", i, r.Category)
		}
		if !r.Status.Valid() {
			return fmt.Errorf("record %d: invalid status %q (must be one of: complete, estimate)", i, r.Status)
		}
	}
	return nil
}
