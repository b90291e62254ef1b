package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/landing/internal/brand"
	"github.com/yildizm/landing/internal/carousel"
)

// ListItem represents an item in a list
type ListItem struct {
	ID     string
	Title  string
	Icon   string
	Swatch []string // hex colours drawn after the title
	Marked bool
}

// List represents a navigable list component
type List struct {
	Title       string
	Items       []ListItem
	Selected    int
	Focused     bool
	Width       int
	ShowNumbers bool
	Plain       bool
}

// NewList creates a new list component
func NewList(title string, width int) *List {
	return &List{
		Title: title,
		Width: width,
	}
}

// AddItem adds an item to the list
func (l *List) AddItem(item *ListItem) {
	l.Items = append(l.Items, *item)
}

// SetFocused sets the focus state of the list
func (l *List) SetFocused(focused bool) {
	l.Focused = focused
}

// GetSelectedItem returns the currently selected item
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	primaryColor := lipgloss.AdaptiveColor{Light: "#7a5e54", Dark: "#c4a69a"}
	secondaryColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	headerStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	content := []string{l.render(headerStyle, l.Title), ""}
	for i := range l.Items {
		content = append(content, l.renderItem(&l.Items[i], i+1, i == l.Selected))
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)
	if l.Plain {
		return joined
	}

	border := secondaryColor
	if l.Focused {
		border = primaryColor
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1).Width(l.Width).Render(joined)
}

// renderItem renders a single list item
func (l *List) renderItem(item *ListItem, number int, selected bool) string {
	primaryColor := lipgloss.AdaptiveColor{Light: "#7a5e54", Dark: "#c4a69a"}
	secondaryColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	var parts []string

	cursor := " "
	if selected && l.Focused {
		cursor = ">"
	}
	parts = append(parts, cursor)

	if l.ShowNumbers {
		parts = append(parts, fmt.Sprintf("%d.", number))
	}
	if item.Icon != "" {
		parts = append(parts, item.Icon)
	}
	parts = append(parts, item.Title)

	for _, hex := range item.Swatch {
		parts = append(parts, l.render(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)), "■"))
	}

	style := lipgloss.NewStyle().Foreground(secondaryColor)
	if item.Marked {
		style = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	}
	return l.render(style, strings.Join(parts, " "))
}

func (l *List) render(s lipgloss.Style, text string) string {
	if l.Plain {
		return text
	}
	return s.Render(text)
}

// NewBrandList creates a list for the brand card. checked and unchecked are
// the radio glyphs.
func NewBrandList(card *brand.Card, checked, unchecked string, width int) *List {
	list := NewList("Select a brand", width)

	for i, b := range card.Brands() {
		selected := card.IsSelected(b.Name)
		icon := unchecked
		if selected {
			icon = checked
			list.Selected = i
		}

		list.AddItem(&ListItem{
			ID:     b.Name,
			Title:  b.Name,
			Icon:   icon,
			Swatch: b.Colors,
			Marked: selected,
		})
	}

	return list
}

// NewProductList creates a list of a carousel panel's products
func NewProductList(panel carousel.Panel, icon string, width int) *List {
	list := NewList(panel.Title, width)
	list.ShowNumbers = true

	for _, p := range panel.Products {
		list.AddItem(&ListItem{
			ID:    p.Name,
			Title: p.Name,
			Icon:  icon,
		})
	}

	return list
}
