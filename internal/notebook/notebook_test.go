package notebook

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmsennott/velolog/pkg/config"
)

const rideLog = `# date	year	title	duration	miles	feet
Jan 6	2024	Foothill loop	1:30:00	21.0	700
Feb 3	2024	Coast ride	4:30:00	58.5	2,100
Mar 2	2024	Valley century	6:26:35	80.05	541
Apr 6	2025	Hill repeats	2:00:00	18.0	3,200
`

const segmentsFile = `Old La Honda, 2.98, 1255, 28:49, 34:03
`

const placesFile = `:Nearby:
Cupertino: 172: 22.1 23.9 26.2*3 26.3 | 26.4
`

func writeInputs(t *testing.T) *config.ConfigData {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	return &config.ConfigData{
		Inputs: config.InputsData{
			RideLog:  write("rides.txt", rideLog),
			Segments: write("segments.txt", segmentsFile),
			Places:   write("places.txt", placesFile),
		},
		Places: config.PlacesData{
			StartYear:  2019,
			StartMonth: 6,
		},
		Eddington: config.EddingtonData{
			Targets: []int{25},
		},
	}
}

func TestLoad(t *testing.T) {
	nb, err := Load(writeInputs(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(nb.Rides) != 4 {
		t.Errorf("got %d rides, expected 4", len(nb.Rides))
	}
	if len(nb.Attempts) != 2 {
		t.Errorf("got %d attempts, expected 2", len(nb.Attempts))
	}
	if nb.Coverage == nil || len(nb.Coverage.Entries["Nearby"]) != 1 {
		t.Errorf("coverage not loaded: %+v", nb.Coverage)
	}
	if nb.Estimator == nil {
		t.Error("estimator not built")
	}
}

func TestEddingtonReport(t *testing.T) {
	nb, err := Load(writeInputs(t))
	if err != nil {
		t.Fatal(err)
	}

	// Distances 21, 58.5, 80.05, 18: every rank holds (18 >= 4), so 4.
	report := nb.Eddington(0)
	if report.Number != 4 {
		t.Errorf("Eddington number = %d, expected 4", report.Number)
	}
	if len(report.Gaps) != 1 || report.Gaps[0].Target != 25 {
		t.Fatalf("gaps = %+v, expected one entry for target 25", report.Gaps)
	}
	// Two rides exceed 25 miles, so 23 remain.
	if report.Gaps[0].Gap != 23 {
		t.Errorf("gap to 25 = %d, expected 23", report.Gaps[0].Gap)
	}

	// Cutoff to 2025 leaves one 18-mile ride.
	if got := nb.Eddington(2025).Number; got != 1 {
		t.Errorf("Eddington(2025) = %d, expected 1", got)
	}
}

func TestTrend(t *testing.T) {
	nb, err := Load(writeInputs(t))
	if err != nil {
		t.Fatal(err)
	}

	trend, err := nb.Trend("fpm", "mph", 1)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(trend.Coefficients) != 2 {
		t.Errorf("got %d coefficients, expected 2 for degree 1", len(trend.Coefficients))
	}
	if len(trend.Samples) != trendSamples {
		t.Errorf("got %d samples, expected %d", len(trend.Samples), trendSamples)
	}
	// Steeper rides are slower in the fixture history.
	if trend.Coefficients[1] >= 0 {
		t.Errorf("slope = %v, expected negative", trend.Coefficients[1])
	}
	first, last := trend.Samples[0], trend.Samples[len(trend.Samples)-1]
	if first.X >= last.X {
		t.Errorf("samples should span x ascending: %v .. %v", first.X, last.X)
	}

	if _, err := nb.Trend("nope", "mph", 1); err == nil {
		t.Error("unknown x column should fail")
	}
	if _, err := nb.Trend("fpm", "nope", 1); err == nil {
		t.Error("unknown y column should fail")
	}
}

func TestEstimatorMinutes(t *testing.T) {
	nb, err := Load(writeInputs(t))
	if err != nil {
		t.Fatal(err)
	}

	minutes, err := nb.Estimator.Minutes(30, 1000)
	if err != nil {
		t.Fatalf("Minutes: %v", err)
	}
	if minutes <= 0 || math.IsNaN(minutes) {
		t.Errorf("Minutes(30, 1000) = %v, expected a positive duration", minutes)
	}
}
