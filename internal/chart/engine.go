package chart

import "fmt"

// Engine holds a dataset and the current filter selection. It is not safe
// for concurrent use.
type Engine struct {
	dataset Dataset
	filter  FilterState
}

// NewEngine creates an engine over dataset with the default filter.
func NewEngine(dataset Dataset) *Engine {
	return &Engine{
		dataset: dataset,
		filter:  DefaultFilter(),
	}
}

// Dataset returns the engine's source data.
func (e *Engine) Dataset() Dataset {
	return e.dataset
}

// Filter returns the current selection.
func (e *Engine) Filter() FilterState {
	return e.filter
}

// SetCategory replaces the category filter.
func (e *Engine) SetCategory(c Category) {
	e.filter.Category = c
}

// SetStatus replaces the status filter.
func (e *Engine) SetStatus(s Status) {
	e.filter.Status = s
}

// SetFilter replaces one dimension of the selection. The value must be one
// of Options(dimension); anything else leaves the state unchanged.
func (e *Engine) SetFilter(dimension Dimension, value string) error {
	switch dimension {
	case DimensionCategory:
		c, err := ParseCategoryFilter(value)
		if err != nil {
			return err
		}
		e.SetCategory(c)
	case DimensionStatus:
		s, err := ParseStatus(value)
		if err != nil {
			return err
		}
		e.SetStatus(s)
	default:
		return fmt.Errorf("%w: unknown dimension %q", ErrInvalidOption, dimension)
	}
	return nil
}

// View projects the dataset through the current filter.
func (e *Engine) View() DerivedView {
	return Project(e.dataset, e.filter)
}

// Export serializes the whole dataset, ignoring the current filter.
func (e *Engine) Export() ([]byte, error) {
	return Export(e.dataset)
}
