package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectDeterministic(t *testing.T) {
	ds := SampleDataset()
	filters := []FilterState{
		DefaultFilter(),
		{Category: CategoryNewBuild, Status: StatusComplete},
		{Category: CategoryRefurbishment, Status: StatusEstimate},
		{Category: CategoryAll, Status: StatusEstimate},
	}

	for _, f := range filters {
		first := Project(ds, f)
		second := Project(ds, f)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Project(%v) not deterministic (-first +second):\n%s", f, diff)
		}
	}
}

func TestProjectAllComplete(t *testing.T) {
	ds := SampleDataset()
	view := Project(ds, FilterState{Category: CategoryAll, Status: StatusComplete})

	var want []Record
	for _, r := range ds.Records() {
		if r.Status == StatusComplete {
			want = append(want, r)
		}
	}

	if diff := cmp.Diff(want, view.Records()); diff != "" {
		t.Errorf("unexpected records (-want +got):\n%s", diff)
	}
	if len(view.Bars) != 20 {
		t.Errorf("Expected 20 bars, got %d", len(view.Bars))
	}
}

func TestProjectNewBuildComplete(t *testing.T) {
	view := Project(SampleDataset(), FilterState{Category: CategoryNewBuild, Status: StatusComplete})

	wantValues := []float64{875, 617, 506, 881, 607, 528}
	wantIndexes := []int{2, 3, 4, 10, 18, 19}

	gotValues := make([]float64, len(view.Bars))
	gotIndexes := make([]int, len(view.Bars))
	for i, bar := range view.Bars {
		if bar.Record.Category == CategoryRefurbishment {
			t.Errorf("refurbishment record leaked into new-build view: %+v", bar)
		}
		gotValues[i] = bar.Record.Value
		gotIndexes[i] = bar.Index
	}

	if diff := cmp.Diff(wantValues, gotValues); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantIndexes, gotIndexes); diff != "" {
		t.Errorf("unexpected indexes (-want +got):\n%s", diff)
	}
}

func TestProjectEstimateIsEmpty(t *testing.T) {
	view := Project(SampleDataset(), FilterState{Category: CategoryAll, Status: StatusEstimate})
	if len(view.Bars) != 0 {
		t.Errorf("Expected no estimate bars in sample data, got %d", len(view.Bars))
	}
	if view.Bars == nil {
		t.Error("Expected empty, non-nil bars")
	}
}

func TestHeightFractionUnclamped(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{600, 0.5},
		{1200, 1},
		{1800, 1.5},
	}
	for _, tt := range tests {
		if got := HeightFraction(tt.value); got != tt.want {
			t.Errorf("HeightFraction(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	view := Project(NewDataset([]Record{{Value: 2400, Category: CategoryNewBuild, Status: StatusComplete}}), DefaultFilter())
	if got := view.Bars[0].HeightFraction; got != 2 {
		t.Errorf("Expected overflowing fraction 2, got %v", got)
	}
	if got := Clamp(view.Bars[0].HeightFraction); got != 1 {
		t.Errorf("Clamp() = %v, want 1", got)
	}
}

func TestExportSingleRecord(t *testing.T) {
	ds := NewDataset([]Record{{Value: 548, Category: CategoryRefurbishment, Status: StatusComplete}})
	got, err := Export(ds)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	want := "Value,Type,Status\n548,refurbishment,complete\n"
	if string(got) != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestExportIgnoresFilter(t *testing.T) {
	engine := NewEngine(SampleDataset())
	baseline, err := engine.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(baseline), "\n"), "\n")
	if len(lines) != engine.Dataset().Len()+1 {
		t.Errorf("Expected %d lines, got %d", engine.Dataset().Len()+1, len(lines))
	}

	selections := []struct {
		dim   Dimension
		value string
	}{
		{DimensionCategory, "new-build"},
		{DimensionStatus, "estimate"},
		{DimensionCategory, "refurbishment"},
		{DimensionCategory, "all"},
	}
	for _, s := range selections {
		if err := engine.SetFilter(s.dim, s.value); err != nil {
			t.Fatalf("SetFilter(%s, %s) error = %v", s.dim, s.value, err)
		}
		got, err := engine.Export()
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if diff := cmp.Diff(string(baseline), string(got)); diff != "" {
			t.Errorf("export changed after %s=%s (-want +got):\n%s", s.dim, s.value, diff)
		}
	}
}

func TestExportFractionalValue(t *testing.T) {
	got, err := Export(NewDataset([]Record{{Value: 12.5, Category: CategoryNewBuild, Status: StatusEstimate}}))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "Value,Type,Status\n12.5,new-build,estimate\n"; string(got) != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestEngineSetFilter(t *testing.T) {
	engine := NewEngine(SampleDataset())
	if diff := cmp.Diff(DefaultFilter(), engine.Filter()); diff != "" {
		t.Fatalf("unexpected initial filter (-want +got):\n%s", diff)
	}

	if err := engine.SetFilter(DimensionCategory, "new-build"); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	if got := len(engine.View().Bars); got != 6 {
		t.Errorf("Expected 6 new-build bars, got %d", got)
	}

	if err := engine.SetFilter(DimensionStatus, "estimate"); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	want := FilterState{Category: CategoryNewBuild, Status: StatusEstimate}
	if diff := cmp.Diff(want, engine.Filter()); diff != "" {
		t.Errorf("unexpected filter (-want +got):\n%s", diff)
	}
}

func TestEngineRejectsUnknownOption(t *testing.T) {
	engine := NewEngine(SampleDataset())

	tests := []struct {
		name  string
		dim   Dimension
		value string
	}{
		{"status all", DimensionStatus, "all"},
		{"unknown category", DimensionCategory, "retrofit"},
		{"unknown dimension", Dimension("year"), "2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.SetFilter(tt.dim, tt.value)
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
			if diff := cmp.Diff(DefaultFilter(), engine.Filter()); diff != "" {
				t.Errorf("filter changed on rejected option (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionsAreAccepted(t *testing.T) {
	for _, dim := range []Dimension{DimensionCategory, DimensionStatus} {
		engine := NewEngine(SampleDataset())
		for _, opt := range Options(dim) {
			if err := engine.SetFilter(dim, opt); err != nil {
				t.Errorf("SetFilter(%s, %s) error = %v", dim, opt, err)
			}
		}
	}
}

func TestDatasetIsCopied(t *testing.T) {
	source := []Record{{Value: 1, Category: CategoryNewBuild, Status: StatusComplete}}
	ds := NewDataset(source)
	source[0].Value = 99

	records := ds.Records()
	records[0].Value = 42

	if got := ds.At(0).Value; got != 1 {
		t.Errorf("Dataset mutated through caller slices, value = %v", got)
	}
}

func TestSampleDatasetMax(t *testing.T) {
	if got := SampleDataset().Max(); got != 881 {
		t.Errorf("Max() = %v, want 881", got)
	}
}
