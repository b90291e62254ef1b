package chart

import (
	"errors"
	"fmt"
)

// ScaleMax is the value that maps to a full-height bar.
const ScaleMax = 1200.0

// DefaultExportName is the file name offered for the dataset download.
const DefaultExportName = "embodied-carbon-emissions.csv"

// ErrInvalidOption is returned when a filter value is not one of the
// enumerated options of its dimension.
var ErrInvalidOption = errors.New("invalid filter option")

// Category classifies a record by building type
type Category string

const (
	CategoryRefurbishment Category = "refurbishment"
	CategoryNewBuild      Category = "new-build"

	// CategoryAll is a filter value only. Records never carry it.
	CategoryAll Category = "all"
)

// Status classifies a record by measurement status
type Status string

const (
	StatusComplete Status = "complete"
	StatusEstimate Status = "estimate"
)

// Dimension names a filterable field
type Dimension string

const (
	DimensionCategory Dimension = "category"
	DimensionStatus   Dimension = "status"
)

// Record is one embodied carbon intensity measurement
type Record struct {
	Value    float64  `json:"value" yaml:"value"`
	Category Category `json:"type" yaml:"type"`
	Status   Status   `json:"status" yaml:"status"`
}

// FilterState is the current category/status selection
type FilterState struct {
	Category Category `json:"type" yaml:"type"`
	Status   Status   `json:"status" yaml:"status"`
}

// DefaultFilter returns the initial selection: every category, complete status.
func DefaultFilter() FilterState {
	return FilterState{Category: CategoryAll, Status: StatusComplete}
}

// Bar is one record selected into the derived view
type Bar struct {
	// Index is the record's position in the source dataset.
	Index          int     `json:"index"`
	Record         Record  `json:"record"`
	HeightFraction float64 `json:"height_fraction"`
}

// DerivedView is the filtered, scaled projection of a dataset
type DerivedView struct {
	Filter FilterState `json:"filter"`
	Bars   []Bar       `json:"bars"`
}

// Records returns the selected records in dataset order.
func (v DerivedView) Records() []Record {
	records := make([]Record, len(v.Bars))
	for i, bar := range v.Bars {
		records[i] = bar.Record
	}
	return records
}

// Options returns the legal filter values for a dimension, in the order a
// UI presents them.
func Options(d Dimension) []string {
	switch d {
	case DimensionCategory:
		return []string{string(CategoryRefurbishment), string(CategoryNewBuild), string(CategoryAll)}
	case DimensionStatus:
		return []string{string(StatusComplete), string(StatusEstimate)}
	default:
		return nil
	}
}

// Categories returns the record categories, excluding CategoryAll.
func Categories() []Category {
	return []Category{CategoryRefurbishment, CategoryNewBuild}
}

// Statuses returns every record status.
func Statuses() []Status {
	return []Status{StatusComplete, StatusEstimate}
}

// Valid reports whether c is a record category.
func (c Category) Valid() bool {
	return c == CategoryRefurbishment || c == CategoryNewBuild
}

// ValidFilter reports whether c may be used as a category filter.
func (c Category) ValidFilter() bool {
	return c.Valid() || c == CategoryAll
}

// Label returns the display form, e.g. "New build".
func (c Category) Label() string {
	switch c {
	case CategoryRefurbishment:
		return "Refurbishment"
	case CategoryNewBuild:
		return "New build"
	case CategoryAll:
		return "All"
	default:
		return string(c)
	}
}

// Valid reports whether s is a record status.
func (s Status) Valid() bool {
	return s == StatusComplete || s == StatusEstimate
}

// Label returns the display form, e.g. "Complete".
func (s Status) Label() string {
	switch s {
	case StatusComplete:
		return "Complete"
	case StatusEstimate:
		return "Estimate"
	default:
		return string(s)
	}
}

// ParseCategoryFilter converts a filter value, including "all".
func ParseCategoryFilter(s string) (Category, error) {
	c := Category(s)
	if !c.ValidFilter() {
		return "", fmt.Errorf("%w: %q for %s (must be one of: refurbishment, new-build, all)", ErrInvalidOption, s, DimensionCategory)
	}
	return c, nil
}

// ParseStatus converts a status value.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q for %s (must be one of: complete, estimate)", ErrInvalidOption, s, DimensionStatus)
	}
	return st, nil
}
