package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1000, "1,000"},
		{45048, "45,048"},
		{47790662, "47,790,662"},
		{-14111, "-14,111"},
		{-999, "-999"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPortfolio(t *testing.T) {
	metrics := Portfolio()
	ids := make([]string, len(metrics))
	for i, m := range metrics {
		ids[i] = m.ID
		if len(m.Timeline) != 4 {
			t.Errorf("%s: expected 4 timeline points, got %d", m.ID, len(m.Timeline))
		}
		if m.Timeline[0].Value != m.CurrentValue {
			t.Errorf("%s: latest timeline value %d does not match current value %d", m.ID, m.Timeline[0].Value, m.CurrentValue)
		}
	}
	if diff := cmp.Diff([]string{"carbon", "intensity", "consumption"}, ids); diff != "" {
		t.Errorf("unexpected metric order (-want +got):\n%s", diff)
	}
}

func TestChangeText(t *testing.T) {
	carbon, ok := Find(Portfolio(), "carbon")
	if !ok {
		t.Fatal("carbon metric not found")
	}
	if got, want := carbon.ChangeText(), "↑16% from 2019"; got != want {
		t.Errorf("ChangeText() = %q, want %q", got, want)
	}

	intensity, _ := Find(Portfolio(), "intensity")
	if got, want := intensity.ChangeText(), "↓22% from 2019"; got != want {
		t.Errorf("ChangeText() = %q, want %q", got, want)
	}

	if _, ok := Find(Portfolio(), "water"); ok {
		t.Error("Expected unknown metric lookup to fail")
	}
}

func TestMetricExport(t *testing.T) {
	intensity, _ := Find(Portfolio(), "intensity")
	got, err := intensity.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	want := "Year,Value\n2022,123\n2021,128\n2020,135\n2019,157\n"
	if string(got) != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}
