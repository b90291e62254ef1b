package formatter

import (
	"fmt"

	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/stats"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	// FormatChart renders a derived chart view.
	FormatChart(view chart.DerivedView) ([]byte, error)
	// FormatStats renders the statistic panels.
	FormatStats(metrics []stats.Metric) ([]byte, error)
}

// Options controls the text and markdown renderings
type Options struct {
	Color bool
	Emoji bool
	// ClampBars caps bars above the scale ceiling at full width. Overflowing
	// bars are marked either way.
	ClampBars bool
}

// New returns the formatter for a named output format.
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTerminal(opts), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown":
		return NewMarkdown(opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, csv, markdown)", format)
	}
}
