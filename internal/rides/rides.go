// Package rides loads the tab-separated ride log and computes the derived
// speed, climb-rate, and grade columns shared with the segment expander.
package rides

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tmsennott/velolog/internal/constants"
	"github.com/tmsennott/velolog/internal/parse"
	"github.com/tmsennott/velolog/internal/types"
)

// Derive computes the derived columns for one row. A non-positive duration
// or distance is a data-entry mistake and rejects the row rather than
// letting division produce NaN or Inf.
func Derive(hours, miles, feet float64) (types.Derived, error) {
	if hours <= 0 {
		return types.Derived{}, fmt.Errorf("non-positive duration %.4f hours", hours)
	}
	if miles <= 0 {
		return types.Derived{}, fmt.Errorf("non-positive distance %.2f miles", miles)
	}

	return types.Derived{
		MPH: round2(miles / hours),
		VAM: math.Round(feet / hours),
		FPM: math.Round(feet / miles),
		Pct: round2(feet / miles * 100 / constants.FeetPerMile),
		Kms: round2(miles * constants.KmsPerMile),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ReadLog parses the ride log: tab-separated columns of date, year, title,
// duration (H:MM:SS), miles, and feet climbed. Lines starting with '#' and
// blank lines are skipped. The log is hand-edited, so any malformed row
// aborts the load with an error naming the line.
func ReadLog(r io.Reader) ([]types.Ride, error) {
	var out []types.Ride

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ride, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("ride log line %d: %w", lineno, err)
		}
		out = append(out, ride)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ride log: %w", err)
	}

	return out, nil
}

func parseRow(line string) (types.Ride, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 6 {
		return types.Ride{}, fmt.Errorf("expected 6 tab-separated fields, got %d", len(fields))
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return types.Ride{}, fmt.Errorf("year: %w", err)
	}

	hours, err := parse.Hours(fields[3])
	if err != nil {
		return types.Ride{}, err
	}

	miles, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return types.Ride{}, fmt.Errorf("miles: %w", err)
	}

	feet, err := parse.CommaInt(fields[5])
	if err != nil {
		return types.Ride{}, err
	}

	derived, err := Derive(hours, miles, float64(feet))
	if err != nil {
		return types.Ride{}, err
	}

	return types.Ride{
		Date:    strings.TrimSpace(fields[0]),
		Year:    year,
		Title:   strings.TrimSpace(fields[2]),
		Hours:   hours,
		Miles:   miles,
		Feet:    float64(feet),
		Derived: derived,
	}, nil
}

// Distances returns the per-ride distances for rides in years >= cutoff,
// the input to the Eddington calculation. A cutoff of 0 includes everything.
func Distances(all []types.Ride, cutoff int) []float64 {
	var out []float64
	for _, r := range all {
		if r.Year >= cutoff {
			out = append(out, r.Miles)
		}
	}
	return out
}
