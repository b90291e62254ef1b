package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/emoji"
	"github.com/yildizm/landing/internal/stats"
)

// markdownFormatter formats output as Markdown tables
type markdownFormatter struct {
	opts Options
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown(opts Options) Formatter {
	return &markdownFormatter{opts: opts}
}

func (f *markdownFormatter) FormatChart(view chart.DerivedView) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Embodied Carbon Emissions\n\n", f.symbol("chart"))
	fmt.Fprintf(&b, "Intensity measured by %s. Type: **%s**, status: **%s**.\n\n",
		chart.Unit, view.Filter.Category.Label(), view.Filter.Status.Label())

	b.WriteString("| # | Type | Value | Height |\n")
	b.WriteString("|---|------|-------|--------|\n")
	for _, bar := range view.Bars {
		fmt.Fprintf(&b, "| %d | %s | %s | %.1f%% |\n",
			bar.Index+1, bar.Record.Category.Label(), chart.FormatValue(bar.Record.Value), bar.HeightFraction*100)
	}
	b.WriteString("\n## Key\n\n")
	for _, t := range chart.Targets {
		fmt.Fprintf(&b, "- %s\n", t.Label)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatStats(metrics []stats.Metric) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Managed Portfolio\n\n", f.symbol("stats"))
	for _, m := range metrics {
		fmt.Fprintf(&b, "## %s\n\n", m.Title)
		fmt.Fprintf(&b, "**%s %s** (%s)\n\n", stats.FormatNumber(m.CurrentValue), m.Unit, m.ChangeText())
		b.WriteString("| Year | Value |\n")
		b.WriteString("|------|-------|\n")
		for _, p := range m.Timeline {
			fmt.Fprintf(&b, "| %s | %s |\n", p.Year, stats.FormatNumber(p.Value))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) symbol(key string) string {
	if !f.opts.Emoji {
		return ""
	}
	return emoji.GetEmoji(key)
}
