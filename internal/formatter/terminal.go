package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/stats"
)

// barWidth is the number of cells of a full-scale bar.
const barWidth = 40

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts      *termfmt.TerminalOptions
	clampBars bool
}

// NewTerminal creates a new terminal formatter
func NewTerminal(o Options) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = o.Color
	opts.Emoji = o.Emoji
	return &terminalFormatter{opts: opts, clampBars: o.ClampBars}
}

func (f *terminalFormatter) FormatChart(view chart.DerivedView) ([]byte, error) {
	var b strings.Builder

	writeHeader(&b, "Embodied Carbon Emissions")
	f.writeFilter(&b, view)
	f.writeBars(&b, view)
	f.writeTargets(&b)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatStats(metrics []stats.Metric) ([]byte, error) {
	var b strings.Builder

	writeHeader(&b, "Managed Portfolio")
	symbol := termfmt.GetEmoji("statistics", f.opts)

	for _, m := range metrics {
		fmt.Fprintf(&b, "%s %s (%s)\n", symbol, m.Title, m.Unit)

		items := make([]termfmt.TreeItem, 0, len(m.Timeline)+2)
		items = append(items,
			termfmt.TreeItem{Label: "Current", Value: stats.FormatNumber(m.CurrentValue)},
			termfmt.TreeItem{Label: "Change", Value: m.ChangeText()},
		)
		for i, p := range m.Timeline {
			items = append(items, termfmt.TreeItem{
				Label: p.Year,
				Value: fmt.Sprintf("%s %s", percentBar(p.Width, 20), stats.FormatNumber(p.Value)),
				Last:  i == len(m.Timeline)-1,
			})
		}

		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n\n", m.LinkText)
	}

	return []byte(b.String()), nil
}

// writeFilter writes the active selection and match count
func (f *terminalFormatter) writeFilter(b *strings.Builder, view chart.DerivedView) {
	symbol := termfmt.GetEmoji("summary", f.opts)
	b.WriteString(symbol + " Filter\n")

	items := []termfmt.TreeItem{
		{Label: "Type", Value: view.Filter.Category.Label()},
		{Label: "Status", Value: view.Filter.Status.Label()},
		{Label: "Bars", Value: fmt.Sprintf("%d", len(view.Bars)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n\n")
}

// writeBars writes one horizontal bar per record
func (f *terminalFormatter) writeBars(b *strings.Builder, view chart.DerivedView) {
	fmt.Fprintf(b, "Embodied carbon intensity (%s), scale 0-%.0f\n", chart.Unit, chart.ScaleMax)

	if len(view.Bars) == 0 {
		b.WriteString("  (no records match the current filter)\n\n")
		return
	}

	for _, bar := range view.Bars {
		fmt.Fprintf(b, "%3d %-13s %s %s\n",
			bar.Index+1,
			bar.Record.Category.Label(),
			f.renderBar(bar.HeightFraction),
			chart.FormatValue(bar.Record.Value))
	}
	b.WriteString("\n")
}

// renderBar draws a fraction of barWidth. Fractions above 1 overflow the
// width unless clamped, and are marked with an arrow either way.
func (f *terminalFormatter) renderBar(fraction float64) string {
	width := fraction
	if f.clampBars {
		width = chart.Clamp(fraction)
	}
	cells := int(width*barWidth + 0.5)
	if cells < 0 {
		cells = 0
	}

	filled, empty := "█", "░"
	if !f.opts.Emoji {
		filled, empty = "#", "-"
	}

	bar := strings.Repeat(filled, cells)
	if cells < barWidth {
		bar += strings.Repeat(empty, barWidth-cells)
	}
	if fraction > 1 {
		bar += "▲"
	}
	return bar
}

// writeTargets writes the legend of reference lines
func (f *terminalFormatter) writeTargets(b *strings.Builder) {
	b.WriteString("Key\n")
	for _, t := range chart.Targets {
		line := "───"
		if t.Dashed {
			line = "- -"
		}
		fmt.Fprintf(b, "  %s %s\n", line, t.Label)
	}
}

// writeHeader writes a boxed title
func writeHeader(b *strings.Builder, header string) {
	headerLen := len([]rune(header))

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// percentBar draws a bar of width cells filled to percent.
func percentBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
