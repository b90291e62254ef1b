package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar represents the loader's counter and bar
type ProgressBar struct {
	Width   int
	Current int
	Total   int
	Label   string
	Plain   bool
}

// NewProgressBar creates a new progress bar out of total
func NewProgressBar(width, total int) *ProgressBar {
	return &ProgressBar{
		Width: width,
		Total: total,
	}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current int) {
	p.Current = current
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Percent returns the completed share in [0, 100].
func (p *ProgressBar) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	percent := p.Current * 100 / p.Total
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	// Define styles locally to avoid import cycle
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7a5e54")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#c4a69a"))

	percent := p.Percent()
	filledWidth := p.Width * percent / 100
	emptyWidth := p.Width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	bar := filled + empty
	if !p.Plain {
		bar = progressStyle.Render(filled) + mutedStyle.Render(empty)
	}

	result := fmt.Sprintf("%s %3d%%", bar, percent)
	if p.Label != "" {
		result = p.Label + "\n" + result
	}

	return result
}
