// Package brand implements the single-selection brand card.
package brand

import (
	"errors"
	"fmt"
)

// ErrUnknownBrand is returned when selecting a brand that is not on the card.
var ErrUnknownBrand = errors.New("unknown brand")

// Brand is one selectable entry with its colour swatches
type Brand struct {
	Name   string
	Colors []string
}

// DefaultSelection is the brand selected when the card first renders.
const DefaultSelection = "The Agency"

// Brands returns the brands shown on the card, in display order.
func Brands() []Brand {
	return []Brand{
		{Name: "ECorp", Colors: []string{"#00BFA6", "#FFFFFF"}},
		{Name: "ICorp", Colors: []string{"#FFB800", "#FFFFFF"}},
		{Name: "The Agency", Colors: []string{"#FF3B30", "#FFFFFF"}},
		{Name: "TechFlow", Colors: []string{"#3B82F6", "#FFFFFF"}},
	}
}

// Card tracks which brand is selected
type Card struct {
	brands   []Brand
	selected int
}

// NewCard creates a card over the default brands with DefaultSelection chosen.
func NewCard() *Card {
	c := &Card{brands: Brands()}
	c.selected = c.index(DefaultSelection)
	return c
}

// Brands returns the card's brands.
func (c *Card) Brands() []Brand {
	return c.brands
}

// Selected returns the selected brand.
func (c *Card) Selected() Brand {
	return c.brands[c.selected]
}

// IsSelected reports whether name is the selected brand.
func (c *Card) IsSelected(name string) bool {
	return c.brands[c.selected].Name == name
}

// Select chooses the brand with the given name.
func (c *Card) Select(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownBrand, name)
	}
	c.selected = i
	return nil
}

// Next moves the selection down, wrapping at the end.
func (c *Card) Next() {
	c.selected = (c.selected + 1) % len(c.brands)
}

// Prev moves the selection up, wrapping at the start.
func (c *Card) Prev() {
	c.selected = (c.selected - 1 + len(c.brands)) % len(c.brands)
}

func (c *Card) index(name string) int {
	for i, b := range c.brands {
		if b.Name == name {
			return i
		}
	}
	return -1
}
