package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/stats"
)

// csvFormatter formats views as CSV. The chart rendering lists the bars of
// the current view; the unfiltered dataset download is chart.Export.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatChart(view chart.DerivedView) ([]byte, error) {
	headers := []string{"Index", "Value", "Type", "Status", "Height Fraction"}

	rows := make([][]string, 0, len(view.Bars))
	for _, bar := range view.Bars {
		rows = append(rows, []string{
			strconv.Itoa(bar.Index),
			chart.FormatValue(bar.Record.Value),
			string(bar.Record.Category),
			string(bar.Record.Status),
			strconv.FormatFloat(bar.HeightFraction, 'f', 4, 64),
		})
	}

	return writeCSV(headers, rows)
}

func (f *csvFormatter) FormatStats(metrics []stats.Metric) ([]byte, error) {
	headers := []string{"Metric", "Unit", "Year", "Value", "Width"}

	var rows [][]string
	for _, m := range metrics {
		for _, p := range m.Timeline {
			rows = append(rows, []string{
				m.ID,
				m.Unit,
				p.Year,
				strconv.FormatInt(p.Value, 10),
				strconv.Itoa(p.Width),
			})
		}
	}

	return writeCSV(headers, rows)
}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range rows {
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
