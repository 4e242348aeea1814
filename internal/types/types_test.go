package types

import "testing"

func TestMonthString(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{index: 0, expected: "2019-6"},
		{index: 6, expected: "2019-12"},
		{index: 7, expected: "2020-1"},
		{index: 19, expected: "2021-1"},
	}

	for _, tt := range tests {
		m := Month{Index: tt.index, StartYear: 2019, StartMonth: 6}
		if got := m.String(); got != tt.expected {
			t.Errorf("Month{Index: %d}.String() = %q, expected %q", tt.index, got, tt.expected)
		}
	}
}

func TestPlaceEntryLatest(t *testing.T) {
	entry := PlaceEntry{Percentages: []float64{10, 20, 30}}
	if got := entry.Latest(); got != 30 {
		t.Errorf("Latest() = %v, expected 30", got)
	}
	if got := (PlaceEntry{}).Latest(); got != 0 {
		t.Errorf("empty Latest() = %v, expected 0", got)
	}
}
