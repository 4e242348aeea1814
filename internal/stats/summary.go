package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tmsennott/velolog/internal/types"
)

// Summary aggregates one year of riding.
type Summary struct {
	Year        int     `json:"year"`
	Rides       int     `json:"rides"`
	TotalMiles  float64 `json:"total_miles"`
	TotalFeet   float64 `json:"total_feet"`
	MeanMPH     float64 `json:"mean_mph"`
	StdDevMPH   float64 `json:"stddev_mph"`
	MedianMiles float64 `json:"median_miles"`
}

// Summarize aggregates the ride table per year, oldest year first.
func Summarize(all []types.Ride) []Summary {
	byYear := make(map[int][]types.Ride)
	for _, r := range all {
		byYear[r.Year] = append(byYear[r.Year], r)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]Summary, 0, len(years))
	for _, y := range years {
		rs := byYear[y]
		miles := make([]float64, len(rs))
		speeds := make([]float64, len(rs))
		s := Summary{Year: y, Rides: len(rs)}
		for i, r := range rs {
			miles[i] = r.Miles
			speeds[i] = r.MPH
			s.TotalMiles += r.Miles
			s.TotalFeet += r.Feet
		}

		s.MeanMPH, s.StdDevMPH = stat.MeanStdDev(speeds, nil)
		if len(rs) == 1 {
			s.StdDevMPH = 0
		}

		sort.Float64s(miles)
		s.MedianMiles = stat.Quantile(0.5, stat.Empirical, miles, nil)

		out = append(out, s)
	}
	return out
}
