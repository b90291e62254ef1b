package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/landing/internal/chart"
)

// BarChart renders a derived chart view as vertical bars over a fixed
// 0..chart.ScaleMax axis with the target lines drawn across it.
type BarChart struct {
	Title  string
	View   chart.DerivedView
	Height int
	// Clamp caps overflowing bars at the top row. Overflow is marked either way.
	Clamp bool
	Plain bool
}

// NewBarChart creates a new bar chart
func NewBarChart(title string, view chart.DerivedView, height int) *BarChart {
	return &BarChart{
		Title:  title,
		View:   view,
		Height: height,
		Clamp:  true,
	}
}

const (
	barCellWidth = 2
	axisWidth    = 5
)

// Render renders the bar chart
func (b *BarChart) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7a5e54", Dark: "#c4a69a"}).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})

	content := []string{b.style(titleStyle, b.Title), b.style(mutedStyle, "Intensity measured by "+chart.Unit), ""}

	if len(b.View.Bars) == 0 {
		content = append(content, b.style(mutedStyle, "No records match the current filter."))
	} else {
		content = append(content, b.renderOverflow())
		content = append(content, b.renderRows()...)
		content = append(content, b.renderBaseline())
	}

	content = append(content, "")
	for _, t := range chart.Targets {
		marker := "───"
		if t.Dashed {
			marker = "┄┄┄"
		}
		content = append(content, b.style(mutedStyle, marker+" "+t.Label))
	}

	return strings.Join(content, "\n")
}

// rows returns the number of chart rows, at least one.
func (b *BarChart) rows() int {
	if b.Height < 1 {
		return 1
	}
	return b.Height
}

// cells returns the filled height of a bar in rows.
func (b *BarChart) cells(fraction float64) int {
	if b.Clamp {
		fraction = chart.Clamp(fraction)
	}
	return int(math.Round(fraction * float64(b.rows())))
}

// renderOverflow marks bars whose value exceeds the scale ceiling
func (b *BarChart) renderOverflow() string {
	var line strings.Builder
	line.WriteString(strings.Repeat(" ", axisWidth+1))
	for _, bar := range b.View.Bars {
		if bar.HeightFraction > 1 {
			line.WriteString("▲" + strings.Repeat(" ", barCellWidth))
		} else {
			line.WriteString(strings.Repeat(" ", barCellWidth+1))
		}
	}
	return strings.TrimRight(line.String(), " ")
}

// renderRows draws the chart body from the top row down
func (b *BarChart) renderRows() []string {
	rows := b.rows()
	step := chart.ScaleMax / float64(rows)

	targetRows := make(map[int]chart.Target)
	for _, t := range chart.Targets {
		row := rows - int(math.Round(t.Value/step))
		if row >= 0 && row < rows {
			targetRows[row] = t
		}
	}

	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		rowTop := float64(rows-i) * step

		label := ""
		if int(rowTop)%200 == 0 {
			label = fmt.Sprintf("%d", int(rowTop))
		}

		var line strings.Builder
		fmt.Fprintf(&line, "%*s │", axisWidth-1, label)

		target, hasTarget := targetRows[i]
		for j, bar := range b.View.Bars {
			cell := strings.Repeat(" ", barCellWidth)
			if b.cells(bar.HeightFraction) >= rows-i {
				cell = b.style(lipgloss.NewStyle().Foreground(lipgloss.Color(chart.BarColor(bar.Record.Category))), strings.Repeat("█", barCellWidth))
			} else if hasTarget {
				cell = targetCell(target)
			}

			line.WriteString(cell)
			if j < len(b.View.Bars)-1 {
				gap := " "
				if hasTarget {
					gap = targetRune(target)
				}
				line.WriteString(gap)
			}
		}
		out = append(out, line.String())
	}
	return out
}

// renderBaseline draws the zero axis
func (b *BarChart) renderBaseline() string {
	width := len(b.View.Bars)*(barCellWidth+1) - 1
	return fmt.Sprintf("%*d └%s", axisWidth-1, 0, strings.Repeat("─", width))
}

func targetRune(t chart.Target) string {
	if t.Dashed {
		return "┄"
	}
	return "─"
}

func targetCell(t chart.Target) string {
	return strings.Repeat(targetRune(t), barCellWidth)
}

func (b *BarChart) style(s lipgloss.Style, text string) string {
	if b.Plain {
		return text
	}
	return s.Render(text)
}
