package formatter

import (
	"encoding/json"

	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/stats"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// ChartOutput is the JSON document for a chart view
type ChartOutput struct {
	Filter   chart.FilterState `json:"filter"`
	Count    int               `json:"count"`
	ScaleMax float64           `json:"scale_max"`
	Unit     string            `json:"unit"`
	Bars     []chart.Bar       `json:"bars"`
	Targets  []TargetOutput    `json:"targets"`
}

// TargetOutput describes a reference line
type TargetOutput struct {
	Value          float64 `json:"value"`
	Label          string  `json:"label"`
	HeightFraction float64 `json:"height_fraction"`
}

// StatsOutput is the JSON document for the statistic panels
type StatsOutput struct {
	Metrics []stats.Metric `json:"metrics"`
}

func (f *jsonFormatter) FormatChart(view chart.DerivedView) ([]byte, error) {
	output := &ChartOutput{
		Filter:   view.Filter,
		Count:    len(view.Bars),
		ScaleMax: chart.ScaleMax,
		Unit:     chart.Unit,
		Bars:     view.Bars,
		Targets:  make([]TargetOutput, 0, len(chart.Targets)),
	}
	for _, t := range chart.Targets {
		output.Targets = append(output.Targets, TargetOutput{
			Value:          t.Value,
			Label:          t.Label,
			HeightFraction: chart.HeightFraction(t.Value),
		})
	}

	return json.MarshalIndent(output, "", "  ")
}

func (f *jsonFormatter) FormatStats(metrics []stats.Metric) ([]byte, error) {
	return json.MarshalIndent(&StatsOutput{Metrics: metrics}, "", "  ")
}
