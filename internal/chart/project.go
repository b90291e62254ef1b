package chart

// Project selects the records matching filter, in dataset order, and scales
// each against ScaleMax. Heights are not clamped: values above the ceiling
// produce fractions above 1.
func Project(dataset Dataset, filter FilterState) DerivedView {
	view := DerivedView{Filter: filter, Bars: []Bar{}}
	for i, r := range dataset.records {
		if !filter.Matches(r) {
			continue
		}
		view.Bars = append(view.Bars, Bar{
			Index:          i,
			Record:         r,
			HeightFraction: HeightFraction(r.Value),
		})
	}
	return view
}

// Matches reports whether r passes the filter.
func (f FilterState) Matches(r Record) bool {
	categoryMatch := f.Category == CategoryAll || r.Category == f.Category
	return categoryMatch && r.Status == f.Status
}

// HeightFraction maps a value onto the linear chart scale.
func HeightFraction(value float64) float64 {
	return value / ScaleMax
}

// Clamp limits a height fraction to [0, 1] for renderers that cannot overflow.
func Clamp(fraction float64) float64 {
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	default:
		return fraction
	}
}
