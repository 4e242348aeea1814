// Package places parses the road-coverage file: a hand-maintained text
// format recording, per place, the cumulative percentage of its roads ridden
// each month.
//
// The file looks like:
//
//	# comment
//	:Nearby:
//	Cupertino: 172: 22.1 23.9 26.2*3 26.3 | 26.4
//
// Category headers are lines wrapped in colons. Entry lines carry the place
// name, its total road miles, and a compact percentage series where "N*K"
// repeats N for K months, "=" repeats the previous value, and "|" marks a
// year boundary with no other meaning.
package places

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tmsennott/velolog/internal/types"
)

// Options replaces the implicit module-level defaults of the original
// notebook with named configuration.
type Options struct {
	StartYear       int       // year of the first percentage column
	StartMonth      int       // month (1-12) of the first percentage column
	BonusThresholds []float64 // coverage milestones worth annotating, e.g. 50, 90, 100
}

// Coverage is the parsed road-coverage file: an ordered set of categories,
// each holding its place entries sorted by most-recent percentage,
// descending. Malformed entry lines are collected as diagnostics rather
// than aborting the parse.
type Coverage struct {
	Categories  []string
	Entries     map[string][]types.PlaceEntry
	Diagnostics []string

	opts Options
}

// Milestone records the month a place first reached a bonus threshold.
type Milestone struct {
	Category  string
	Place     string
	Threshold float64
	Month     types.Month
}

// Parse consumes the whole coverage file. Blank lines and '#' comments are
// skipped; a line wrapped in colons starts a new category; anything else is
// an entry line. Entry lines that do not parse are recorded in
// Coverage.Diagnostics and skipped, matching the source data's
// report-and-continue handling.
func Parse(r io.Reader, opts Options) (*Coverage, error) {
	cov := &Coverage{
		Entries: make(map[string][]types.PlaceEntry),
		opts:    opts,
	}

	var category string
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			category = strings.Trim(trimmed, ": \t")
			cov.Categories = append(cov.Categories, category)
			cov.Entries[category] = nil
			continue
		}

		if category == "" {
			cov.Diagnostics = append(cov.Diagnostics,
				fmt.Sprintf("line %d: entry before any category header: %q", lineno, trimmed))
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			cov.Diagnostics = append(cov.Diagnostics,
				fmt.Sprintf("line %d: %v", lineno, err))
			continue
		}

		cov.Entries[category] = append(cov.Entries[category], entry)
		sortByLatest(cov.Entries[category])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading coverage file: %w", err)
	}

	return cov, nil
}

func sortByLatest(entries []types.PlaceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Latest() > entries[j].Latest()
	})
}

// Months returns labels for the first n percentage columns, counted from
// the configured start month.
func (c *Coverage) Months(n int) []types.Month {
	out := make([]types.Month, n)
	for i := range out {
		out[i] = types.Month{Index: i, StartYear: c.opts.StartYear, StartMonth: c.opts.StartMonth}
	}
	return out
}

// Milestones reports, for every place and configured bonus threshold, the
// first month the place's coverage reached that threshold. Results follow
// category file order, then each category's sorted entry order.
func (c *Coverage) Milestones() []Milestone {
	var out []Milestone
	for _, cat := range c.Categories {
		for _, entry := range c.Entries[cat] {
			for _, threshold := range c.opts.BonusThresholds {
				for i, pct := range entry.Percentages {
					if pct >= threshold {
						out = append(out, Milestone{
							Category:  cat,
							Place:     entry.Name,
							Threshold: threshold,
							Month: types.Month{
								Index:      i,
								StartYear:  c.opts.StartYear,
								StartMonth: c.opts.StartMonth,
							},
						})
						break
					}
				}
			}
		}
	}
	return out
}
