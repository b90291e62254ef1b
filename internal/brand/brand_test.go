package brand

import (
	"errors"
	"testing"
)

func TestDefaultSelection(t *testing.T) {
	card := NewCard()
	if got := card.Selected().Name; got != "The Agency" {
		t.Errorf("Expected default selection The Agency, got %s", got)
	}
}

func TestSelect(t *testing.T) {
	card := NewCard()
	if err := card.Select("ICorp"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !card.IsSelected("ICorp") || card.IsSelected("The Agency") {
		t.Error("Expected exactly ICorp to be selected")
	}

	err := card.Select("Initech")
	if !errors.Is(err, ErrUnknownBrand) {
		t.Errorf("Expected ErrUnknownBrand, got %v", err)
	}
	if !card.IsSelected("ICorp") {
		t.Error("Selection changed after rejected Select")
	}
}

func TestNextPrevWrap(t *testing.T) {
	card := NewCard()
	card.Next()
	if got := card.Selected().Name; got != "TechFlow" {
		t.Errorf("Next() selected %s, want TechFlow", got)
	}
	card.Next()
	if got := card.Selected().Name; got != "ECorp" {
		t.Errorf("Next() should wrap to ECorp, got %s", got)
	}
	card.Prev()
	if got := card.Selected().Name; got != "TechFlow" {
		t.Errorf("Prev() should wrap to TechFlow, got %s", got)
	}
}
