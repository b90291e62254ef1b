package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette of the landing page
type Theme struct {
	Name string

	Primary  lipgloss.AdaptiveColor // titles, active panel border
	Success  lipgloss.AdaptiveColor // toast, goodbye
	Error    lipgloss.AdaptiveColor // failed download
	Border   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Progress lipgloss.AdaptiveColor // loader break shape
	Selected lipgloss.AdaptiveColor // active tab background
	Flash    lipgloss.AdaptiveColor // zooming white-out
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Available themes
var (
	DefaultTheme = Theme{
		Name:     "default",
		Primary:  adaptive("#7a5e54", "#c4a69a"),
		Success:  adaptive("#059669", "#10B981"),
		Error:    adaptive("#DC2626", "#EF4444"),
		Border:   adaptive("#D1D5DB", "#374151"),
		Muted:    adaptive("#6B7280", "#9CA3AF"),
		Progress: adaptive("#7a5e54", "#c4a69a"),
		Selected: adaptive("#EADBD3", "#4A3A33"),
		Flash:    adaptive("#FFFFFF", "#FFFFFF"),
	}

	HighContrastTheme = Theme{
		Name:     "high-contrast",
		Primary:  adaptive("#000000", "#FFFFFF"),
		Success:  adaptive("#006600", "#00FF00"),
		Error:    adaptive("#CC0000", "#FF4444"),
		Border:   adaptive("#000000", "#FFFFFF"),
		Muted:    adaptive("#444444", "#BBBBBB"),
		Progress: adaptive("#000000", "#FFFFFF"),
		Selected: adaptive("#CCCCCC", "#333333"),
		Flash:    adaptive("#FFFFFF", "#FFFFFF"),
	}

	MinimalTheme = Theme{
		Name:     "minimal",
		Primary:  adaptive("#2D3748", "#E2E8F0"),
		Success:  adaptive("#2F855A", "#68D391"),
		Error:    adaptive("#C53030", "#FC8181"),
		Border:   adaptive("#E2E8F0", "#2D3748"),
		Muted:    adaptive("#A0AEC0", "#718096"),
		Progress: adaptive("#4A5568", "#CBD5E0"),
		Selected: adaptive("#EDF2F7", "#2D3748"),
		Flash:    adaptive("#F7FAFC", "#F7FAFC"),
	}
)

var themes = map[string]Theme{
	DefaultTheme.Name:      DefaultTheme,
	HighContrastTheme.Name: HighContrastTheme,
	MinimalTheme.Name:      MinimalTheme,
}

var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetThemeByName sets the theme by name. Unknown names leave the current
// theme in place.
func SetThemeByName(name string) bool {
	theme, ok := themes[name]
	if ok {
		currentTheme = theme
	}
	return ok
}

var colorDisabled bool

// SetColorDisabled forces plain rendering, e.g. for --no-color
func SetColorDisabled(disabled bool) {
	colorDisabled = disabled
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return colorDisabled || os.Getenv("NO_COLOR") != ""
}

// Styles are the lipgloss styles of the current theme
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Progress lipgloss.Style

	// Carousel panels
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style
}

// GetStyles builds the styles for the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Bold(true),

		Progress: lipgloss.NewStyle().
			Foreground(theme.Progress).
			Bold(true),

		Panel:       panel,
		ActivePanel: panel.BorderForeground(theme.Primary),
	}
}
