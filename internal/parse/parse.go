// Package parse handles the hand-written token formats used throughout the
// log files: clock durations and thousands-separated integers.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hours converts a clock string like "4:30:00" or "28:49" to fractional
// hours, rounded to 4 decimal places. Strings with fewer than two colons are
// left-padded with zero components, so "28:49" reads as 0:28:49.
func Hours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	for strings.Count(s, ":") < 2 {
		s = "0:" + s
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed duration %q: expected at most two colons", s)
	}

	var fields [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, fmt.Errorf("malformed duration %q: %w", s, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("malformed duration %q: negative component", s)
		}
		fields[i] = v
	}

	hours := fields[0] + fields[1]/60 + fields[2]/3600
	return math.Round(hours*10000) / 10000, nil
}

// CommaInt parses a base-10 integer that may carry thousands separators,
// e.g. "1,255".
func CommaInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, fmt.Errorf("malformed integer %q: %w", s, err)
	}
	return n, nil
}
