// Package notebook loads the three input files once at startup and holds
// the resulting in-memory tables for the lifetime of the run. Nothing here
// is mutated after Load returns; callers only read.
package notebook

import (
	"fmt"
	"os"

	"github.com/tmsennott/velolog/internal/log"
	"github.com/tmsennott/velolog/internal/places"
	"github.com/tmsennott/velolog/internal/rides"
	"github.com/tmsennott/velolog/internal/segments"
	"github.com/tmsennott/velolog/internal/stats"
	"github.com/tmsennott/velolog/internal/types"
	"github.com/tmsennott/velolog/pkg/config"
)

// DefaultEstimatorDegree is used when the config does not pin one. Speed
// falls off with grade faster than linearly, so a quadratic is the lowest
// degree that tracks the data.
const DefaultEstimatorDegree = 2

// Notebook is the loaded analytics state: the ride and attempt tables, the
// road-coverage structure, and the pre-built ride-time estimator.
type Notebook struct {
	Rides     []types.Ride
	Attempts  []types.Attempt
	Coverage  *places.Coverage
	Estimator *stats.Estimator

	cfg *config.ConfigData
}

// Load reads and parses all configured inputs. Each file is opened, fully
// consumed, and closed before the next. A missing or malformed ride log or
// segments file is fatal; malformed coverage entries are collected and
// logged but do not abort the load.
func Load(cfg *config.ConfigData) (*Notebook, error) {
	nb := &Notebook{cfg: cfg}

	if err := readFile(cfg.Inputs.RideLog, func(f *os.File) error {
		var err error
		nb.Rides, err = rides.ReadLog(f)
		return err
	}); err != nil {
		return nil, fmt.Errorf("loading ride log: %w", err)
	}
	log.Infof("loaded %d rides from %s", len(nb.Rides), cfg.Inputs.RideLog)

	if cfg.Inputs.Segments != "" {
		if err := readFile(cfg.Inputs.Segments, func(f *os.File) error {
			var err error
			nb.Attempts, err = segments.Expand(f)
			return err
		}); err != nil {
			return nil, fmt.Errorf("loading segments: %w", err)
		}
		log.Infof("expanded %d segment attempts from %s", len(nb.Attempts), cfg.Inputs.Segments)
	}

	if cfg.Inputs.Places != "" {
		opts := places.Options{
			StartYear:       cfg.Places.StartYear,
			StartMonth:      cfg.Places.StartMonth,
			BonusThresholds: cfg.Places.BonusThresholds,
		}
		if opts.StartMonth == 0 {
			opts.StartMonth = 1
		}
		if err := readFile(cfg.Inputs.Places, func(f *os.File) error {
			var err error
			nb.Coverage, err = places.Parse(f, opts)
			return err
		}); err != nil {
			return nil, fmt.Errorf("loading places: %w", err)
		}
		for _, diag := range nb.Coverage.Diagnostics {
			log.Warnf("places: %s", diag)
		}
	}

	degree := cfg.Estimator.Degree
	if degree == 0 {
		degree = DefaultEstimatorDegree
	}
	est, err := stats.NewRideEstimator(nb.Rides, degree)
	if err != nil {
		// Too few rides to fit a curve is not worth refusing to start over.
		log.Warnf("ride-time estimator unavailable: %v", err)
	} else {
		nb.Estimator = est
	}

	return nb, nil
}

func readFile(path string, parse func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return parse(f)
}

// EddingtonReport is the Eddington number over the configured year range
// plus the gap to each configured target.
type EddingtonReport struct {
	Number     int         `json:"number"`
	YearCutoff int         `json:"year_cutoff,omitempty"`
	Gaps       []TargetGap `json:"gaps,omitempty"`
}

// TargetGap pairs a goal Eddington number with the count of additional
// qualifying rides needed to reach it.
type TargetGap struct {
	Target int `json:"target"`
	Gap    int `json:"gap"`
}

// Eddington computes the report for rides in years >= cutoff. A cutoff of 0
// uses the configured cutoff; gaps come from the configured targets.
func (nb *Notebook) Eddington(cutoff int) EddingtonReport {
	if cutoff == 0 {
		cutoff = nb.cfg.Eddington.YearCutoff
	}
	distances := rides.Distances(nb.Rides, cutoff)

	report := EddingtonReport{
		Number:     stats.Eddington(distances),
		YearCutoff: cutoff,
	}
	for _, target := range nb.cfg.Eddington.Targets {
		report.Gaps = append(report.Gaps, TargetGap{
			Target: target,
			Gap:    stats.EddingtonGap(distances, target),
		})
	}
	return report
}

// Summaries aggregates the ride table per year.
func (nb *Notebook) Summaries() []stats.Summary {
	return stats.Summarize(nb.Rides)
}
