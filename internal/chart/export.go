package chart

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// ExportHeader is the header row of the dataset download.
var ExportHeader = []string{"Value", "Type", "Status"}

// Export writes every record of dataset as CSV, one row per record in
// dataset order, each row terminated by a newline.
func Export(dataset Dataset) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(ExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range dataset.records {
		row := []string{
			FormatValue(r.Value),
			string(r.Category),
			string(r.Status),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// FormatValue prints a value in its shortest decimal form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
