// Package segments expands the timed-segments file into one attempt record
// per recorded time.
package segments

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tmsennott/velolog/internal/parse"
	"github.com/tmsennott/velolog/internal/rides"
	"github.com/tmsennott/velolog/internal/types"
)

// Only the title, length, climb, and first two recorded times are consumed
// from each line even when more fields are present.
const maxFields = 5

// Expand parses comma-separated lines of the form
//
//	title, miles, feet, time1[, time2]
//
// producing one attempt per time field. Attempts keep input order: line
// order first, then time order within a line.
func Expand(r io.Reader) ([]types.Attempt, error) {
	var out []types.Attempt

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		attempts, err := expandLine(line)
		if err != nil {
			return nil, fmt.Errorf("segments line %d: %w", lineno, err)
		}
		out = append(out, attempts...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading segments: %w", err)
	}

	return out, nil
}

func expandLine(line string) ([]types.Attempt, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected at least 4 comma-separated fields, got %d", len(fields))
	}
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	title := strings.TrimSpace(fields[0])

	miles, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("miles: %w", err)
	}

	feet, err := parse.CommaInt(fields[2])
	if err != nil {
		return nil, err
	}

	var out []types.Attempt
	for _, tf := range fields[3:] {
		hours, err := parse.Hours(tf)
		if err != nil {
			return nil, err
		}

		derived, err := rides.Derive(hours, miles, float64(feet))
		if err != nil {
			return nil, err
		}

		out = append(out, types.Attempt{
			Segment: title,
			Hours:   hours,
			Miles:   miles,
			Feet:    float64(feet),
			Derived: derived,
		})
	}

	return out, nil
}
