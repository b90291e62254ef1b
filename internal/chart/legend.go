package chart

// YAxisLabels are the tick labels from top to bottom.
var YAxisLabels = []int{1200, 1000, 800, 600, 400, 200, 0}

// Target is a reference line drawn across the chart.
type Target struct {
	Value  float64
	Label  string
	Dashed bool
}

// Targets are the embodied carbon targets in kgCO₂e/m².
var Targets = []Target{
	{Value: 500, Label: "500 kgCO₂e/m² - Embodied Carbon Target 2030", Dashed: true},
	{Value: 600, Label: "600 kgCO₂e/m² - Embodied Carbon Target 2025"},
}

// Unit is the measurement unit of record values.
const Unit = "kgCO₂e/m²"

// BarColor returns the hex colour used for a category's bars.
func BarColor(c Category) string {
	switch c {
	case CategoryNewBuild:
		return "#7a5e54"
	case CategoryRefurbishment:
		return "#c4a69a"
	default:
		return "#b89b8f"
	}
}
