package stats

import "testing"

func TestEddington(t *testing.T) {
	tests := []struct {
		name      string
		distances []float64
		expected  int
	}{
		{
			// Sorted descending: 50,40,30,20,10. Every rank e from 1 to 5
			// satisfies distance >= e (10 >= 5), so e = 5.
			name:      "descending tens",
			distances: []float64{50, 40, 30, 20, 10},
			expected:  5,
		},
		{
			// Ranks 1..4 hold (50,40,30,20 >= 1..4) but rank 5 has 4 < 5.
			name:      "crossover below rank",
			distances: []float64{50, 40, 30, 20, 4},
			expected:  4,
		},
		{
			name:      "single long ride",
			distances: []float64{100},
			expected:  1,
		},
		{
			name:      "all sub-mile days",
			distances: []float64{0.5, 0.9, 0.2},
			expected:  0,
		},
		{
			name:      "empty",
			distances: nil,
			expected:  0,
		},
		{
			name:      "unsorted input",
			distances: []float64{3, 62, 5, 30, 4, 21, 18},
			expected:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eddington(tt.distances); got != tt.expected {
				t.Errorf("Eddington(%v) = %d, expected %d", tt.distances, got, tt.expected)
			}
		})
	}
}

func TestEddingtonDoesNotMutateInput(t *testing.T) {
	distances := []float64{10, 50, 30}
	Eddington(distances)
	if distances[0] != 10 || distances[1] != 50 || distances[2] != 30 {
		t.Errorf("input reordered: %v", distances)
	}
}

func TestEddingtonGap(t *testing.T) {
	distances := []float64{50, 40, 30, 20, 10}

	tests := []struct {
		target   int
		expected int
	}{
		// Two rides exceed 30 miles, so 28 more are needed for E=30.
		{target: 30, expected: 28},
		// Nothing exceeds 60; the whole target remains.
		{target: 60, expected: 60},
		// Four rides exceed 10.
		{target: 10, expected: 6},
	}

	for _, tt := range tests {
		if got := EddingtonGap(distances, tt.target); got != tt.expected {
			t.Errorf("EddingtonGap(target=%d) = %d, expected %d", tt.target, got, tt.expected)
		}
	}
}
