// Package stats holds the managed portfolio metrics shown as animated
// statistic panels.
package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Direction is the sense of a change against the baseline year
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Arrow returns the glyph for the direction.
func (d Direction) Arrow() string {
	if d == DirectionUp {
		return "↑"
	}
	return "↓"
}

// Change is a percentage change relative to a baseline
type Change struct {
	Percent   int       `json:"percent"`
	Direction Direction `json:"direction"`
}

// LinkKind selects the footer icon of a panel
type LinkKind string

const (
	LinkArrow    LinkKind = "arrow"
	LinkDownload LinkKind = "download"
)

// Point is one year of a metric's timeline. Width is the bar length as a
// percentage of the panel.
type Point struct {
	Year  string `json:"year"`
	Value int64  `json:"value"`
	Width int    `json:"width"`
}

// Metric is one statistic panel
type Metric struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Unit         string   `json:"unit"`
	CurrentValue int64    `json:"current_value"`
	Change       Change   `json:"change"`
	ChangeLabel  string   `json:"change_label"`
	LinkText     string   `json:"link_text"`
	LinkKind     LinkKind `json:"link_kind"`
	Timeline     []Point  `json:"timeline"`
}

// ChangeText renders the change, e.g. "↑16% from 2019".
func (m *Metric) ChangeText() string {
	return fmt.Sprintf("%s%d%% %s", m.Change.Direction.Arrow(), m.Change.Percent, m.ChangeLabel)
}

// Export writes the metric's timeline as CSV with a Year,Value header.
func (m *Metric) Export() ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write([]string{"Year", "Value"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range m.Timeline {
		if err := writer.Write([]string{p.Year, strconv.FormatInt(p.Value, 10)}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return b.Bytes(), nil
}

// Portfolio returns the three landing page metrics.
func Portfolio() []Metric {
	return []Metric{
		{
			ID:           "carbon",
			Title:        "Managed portfolio carbon footprint",
			Unit:         "tCO₂e",
			CurrentValue: 45048,
			Change:       Change{Percent: 16, Direction: DirectionUp},
			ChangeLabel:  "from 2019",
			LinkText:     "See full breakdown of carbon footprint",
			LinkKind:     LinkArrow,
			Timeline: []Point{
				{Year: "2022", Value: 45048, Width: 69},
				{Year: "2021", Value: 14111, Width: 22},
				{Year: "2020", Value: 32813, Width: 50},
				{Year: "2019", Value: 38673, Width: 59},
			},
		},
		{
			ID:           "intensity",
			Title:        "Managed portfolio energy intensity",
			Unit:         "kWh/m²",
			CurrentValue: 123,
			Change:       Change{Percent: 22, Direction: DirectionDown},
			ChangeLabel:  "from 2019",
			LinkText:     "Download the data",
			LinkKind:     LinkDownload,
			Timeline: []Point{
				{Year: "2022", Value: 123, Width: 78},
				{Year: "2021", Value: 128, Width: 82},
				{Year: "2020", Value: 135, Width: 86},
				{Year: "2019", Value: 157, Width: 100},
			},
		},
		{
			ID:           "consumption",
			Title:        "Managed portfolio energy consumption",
			Unit:         "kWh",
			CurrentValue: 47790662,
			Change:       Change{Percent: 27, Direction: DirectionDown},
			ChangeLabel:  "from 2019",
			LinkText:     "Download the data",
			LinkKind:     LinkDownload,
			Timeline: []Point{
				{Year: "2022", Value: 47790662, Width: 73},
				{Year: "2021", Value: 49324077, Width: 76},
				{Year: "2020", Value: 48784205, Width: 75},
				{Year: "2019", Value: 65198706, Width: 100},
			},
		},
	}
}

// Find returns the metric with the given ID.
func Find(metrics []Metric, id string) (*Metric, bool) {
	for i := range metrics {
		if metrics[i].ID == id {
			return &metrics[i], true
		}
	}
	return nil, false
}

// FormatNumber formats an integer with comma thousands separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	sign := ""
	if str[0] == '-' {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	var result strings.Builder
	result.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}
	return result.String()
}
