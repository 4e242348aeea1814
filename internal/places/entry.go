package places

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmsennott/velolog/internal/types"
)

// runLength matches the "value*count" shorthand, e.g. "26.2*3".
var runLength = regexp.MustCompile(`(\d+(?:\.\d+)?)\*(\d+)`)

// parseEntry parses one entry line of the form
//
//	name: miles: pct pct ...
//
// The percentage field is expanded textually before tokenization: year
// markers ("|") become spaces and run-length tokens become literal repeats.
// An "=" token copies the previous resolved value.
func parseEntry(line string) (types.PlaceEntry, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return types.PlaceEntry{}, fmt.Errorf("expected two colons in entry %q", strings.TrimSpace(line))
	}

	miles, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return types.PlaceEntry{}, fmt.Errorf("miles in entry %q: %w", strings.TrimSpace(line), err)
	}

	pcts, err := parsePercentages(fields[2])
	if err != nil {
		return types.PlaceEntry{}, fmt.Errorf("percentages in entry %q: %w", strings.TrimSpace(line), err)
	}

	return types.PlaceEntry{
		Name:        strings.TrimSpace(fields[0]),
		Miles:       miles,
		Percentages: pcts,
	}, nil
}

func parsePercentages(field string) ([]float64, error) {
	// The year marker is purely visual and must not affect the series.
	field = strings.ReplaceAll(field, "|", " ")

	// Substitution happens before tokenization so a run-length token
	// expands into ordinary value tokens.
	field = runLength.ReplaceAllStringFunc(field, func(tok string) string {
		m := runLength.FindStringSubmatch(tok)
		count, err := strconv.Atoi(m[2])
		if err != nil || count < 1 {
			return tok
		}
		repeats := make([]string, count)
		for i := range repeats {
			repeats[i] = m[1]
		}
		return strings.Join(repeats, " ")
	})

	var out []float64
	for _, tok := range strings.Fields(field) {
		if tok == "=" {
			if len(out) == 0 {
				return nil, fmt.Errorf(`"=" with no preceding value`)
			}
			out = append(out, out[len(out)-1])
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// FormatEntry renders an entry back to its line form with the percentage
// series fully expanded. Re-parsing the result reproduces the same values;
// the run-length and "=" shorthands are lossy to text but lossless to value.
func FormatEntry(e types.PlaceEntry) string {
	pcts := make([]string, len(e.Percentages))
	for i, p := range e.Percentages {
		pcts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return fmt.Sprintf("%s: %s: %s", e.Name, strconv.FormatFloat(e.Miles, 'f', -1, 64), strings.Join(pcts, " "))
}
