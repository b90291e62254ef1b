package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/landing/internal/stats"
)

// StatsCard represents one statistic panel
type StatsCard struct {
	Metric stats.Metric
	Width  int
	// Reveal scales the timeline bars from 0 to 1 while the panel animates in.
	Reveal float64
	Icon   string
}

// NewStatsCard creates a new stats card fully revealed
func NewStatsCard(metric stats.Metric) *StatsCard {
	return &StatsCard{
		Metric: metric,
		Width:  40,
		Reveal: 1,
	}
}

// SetReveal sets how far the timeline bars have grown
func (s *StatsCard) SetReveal(reveal float64) *StatsCard {
	if reveal < 0 {
		reveal = 0
	}
	if reveal > 1 {
		reveal = 1
	}
	s.Reveal = reveal
	return s
}

// SetIcon sets the icon for the card footer
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// SetWidth sets the width of the card
func (s *StatsCard) SetWidth(width int) *StatsCard {
	s.Width = width
	return s
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	accentColor := lipgloss.AdaptiveColor{Light: "#7a5e54", Dark: "#c4a69a"}
	upColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	downColor := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	mutedColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	m := s.Metric
	titleStyle := lipgloss.NewStyle().Foreground(mutedColor)
	valueStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	changeColor := downColor
	if m.Change.Direction == stats.DirectionUp {
		changeColor = upColor
	}
	changeStyle := lipgloss.NewStyle().Foreground(changeColor)

	lines := []string{
		titleStyle.Render(m.Title),
		valueStyle.Render(stats.FormatNumber(m.CurrentValue)) + " " + titleStyle.Render(m.Unit),
		changeStyle.Render(m.ChangeText()),
		"",
	}
	lines = append(lines, s.renderTimeline()...)

	footer := m.LinkText
	if s.Icon != "" {
		footer = s.Icon + " " + footer
	}
	lines = append(lines, "", titleStyle.Underline(true).Render(footer))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Padding(0, 1).
		Width(s.Width).
		Render(strings.Join(lines, "\n"))
}

// renderTimeline draws one bar per year scaled by the panel width
func (s *StatsCard) renderTimeline() []string {
	barColor := lipgloss.AdaptiveColor{Light: "#c4a69a", Dark: "#7a5e54"}
	barStyle := lipgloss.NewStyle().Foreground(barColor)

	maxBar := s.Width - 8
	if maxBar < 1 {
		maxBar = 1
	}

	lines := make([]string, 0, len(s.Metric.Timeline))
	for _, p := range s.Metric.Timeline {
		cells := int(float64(maxBar*p.Width) / 100 * s.Reveal)
		lines = append(lines, fmt.Sprintf("%s %s", p.Year, barStyle.Render(strings.Repeat("▇", cells))))
	}
	return lines
}

// StatsDashboard lays out stats cards side by side
type StatsDashboard struct {
	Cards []*StatsCard
	Width int
}

// NewStatsDashboard creates one card per metric
func NewStatsDashboard(metrics []stats.Metric, width int) *StatsDashboard {
	d := &StatsDashboard{Width: width}
	for _, m := range metrics {
		d.Cards = append(d.Cards, NewStatsCard(m))
	}
	return d
}

// SetReveal applies the reveal fraction to every card
func (d *StatsDashboard) SetReveal(reveal float64) {
	for _, c := range d.Cards {
		c.SetReveal(reveal)
	}
}

// Render renders the dashboard, wrapping to a column on narrow terminals
func (d *StatsDashboard) Render() string {
	if len(d.Cards) == 0 {
		return ""
	}

	cardWidth := 40
	rendered := make([]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		rendered = append(rendered, c.SetWidth(cardWidth).Render())
	}

	if d.Width > 0 && d.Width < (cardWidth+4)*len(d.Cards) {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
