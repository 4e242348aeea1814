package rides

import (
	"math"
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		miles   float64
		feet    float64
		mph     float64
		vam     float64
		fpm     float64
		pct     float64
		kms     float64
		wantErr bool
	}{
		{
			// 80.05 miles in 6:26:35 with 541 ft of climbing
			name:  "long flat ride",
			hours: 6.4431,
			miles: 80.05,
			feet:  541,
			mph:   12.42,
			vam:   84,
			fpm:   7,
			pct:   0.13,
			kms:   128.80,
		},
		{
			// Old La Honda in 28:49
			name:  "steep segment",
			hours: 0.4803,
			miles: 2.98,
			feet:  1255,
			mph:   6.2,
			vam:   2613,
			fpm:   421,
			pct:   7.98,
			kms:   4.79,
		},
		{
			name:    "zero duration rejected",
			hours:   0,
			miles:   10,
			feet:    100,
			wantErr: true,
		},
		{
			name:    "zero distance rejected",
			hours:   1,
			miles:   0,
			feet:    100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Derive(tt.hours, tt.miles, tt.feet)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Derive(%v, %v, %v) = %+v, expected error", tt.hours, tt.miles, tt.feet, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Derive(%v, %v, %v) unexpected error: %v", tt.hours, tt.miles, tt.feet, err)
			}
			check := func(col string, got, expected float64) {
				if math.Abs(got-expected) > 1e-9 {
					t.Errorf("%s = %v, expected %v", col, got, expected)
				}
			}
			check("mph", d.MPH, tt.mph)
			check("vam", d.VAM, tt.vam)
			check("fpm", d.FPM, tt.fpm)
			check("pct", d.Pct, tt.pct)
			check("kms", d.Kms, tt.kms)
		})
	}
}

func TestReadLog(t *testing.T) {
	input := strings.Join([]string{
		"# date\tyear\ttitle\tduration\tmiles\tfeet",
		"",
		"Jun 1\t2024\tCoast loop\t6:26:35\t80.05\t541",
		"Jun 8\t2024\tOLH repeats\t1:45:00\t12.5\t2,510",
	}, "\n")

	rides, err := ReadLog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("got %d rides, expected 2", len(rides))
	}

	first := rides[0]
	if first.Title != "Coast loop" || first.Year != 2024 {
		t.Errorf("unexpected first ride: %+v", first)
	}
	if math.Abs(first.Hours-6.4431) > 1e-9 {
		t.Errorf("hours = %v, expected 6.4431", first.Hours)
	}
	if math.Abs(first.MPH-12.42) > 1e-9 {
		t.Errorf("mph = %v, expected 12.42", first.MPH)
	}

	if rides[1].Feet != 2510 {
		t.Errorf("comma-separated feet = %v, expected 2510", rides[1].Feet)
	}
}

func TestReadLogMalformedRow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing fields", input: "Jun 1\t2024\tShort row"},
		{name: "bad duration", input: "Jun 1\t2024\tRide\t1:xx:00\t10\t100"},
		{name: "bad feet", input: "Jun 1\t2024\tRide\t1:00:00\t10\t1o0"},
		{name: "zero duration row", input: "Jun 1\t2024\tRide\t0:00:00\t10\t100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadLog(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadLog(%q) succeeded, expected error", tt.input)
			}
		})
	}
}

func TestDistances(t *testing.T) {
	all, err := ReadLog(strings.NewReader(strings.Join([]string{
		"Jan 1\t2023\tA\t1:00:00\t20\t100",
		"Jan 2\t2024\tB\t1:00:00\t30\t100",
		"Jan 3\t2025\tC\t1:00:00\t40\t100",
	}, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	got := Distances(all, 2024)
	if len(got) != 2 || got[0] != 30 || got[1] != 40 {
		t.Errorf("Distances cutoff 2024 = %v, expected [30 40]", got)
	}
	if got := Distances(all, 0); len(got) != 3 {
		t.Errorf("Distances cutoff 0 = %v, expected all 3", got)
	}
}
