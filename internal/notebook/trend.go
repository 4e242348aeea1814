package notebook

import (
	"fmt"

	"github.com/tmsennott/velolog/internal/stats"
	"github.com/tmsennott/velolog/internal/types"
)

// Trend is a fitted polynomial over two ride columns, sampled across the
// x column's range so a chart can draw the curve directly.
type Trend struct {
	XColumn      string      `json:"x"`
	YColumn      string      `json:"y"`
	Degree       int         `json:"degree"`
	Coefficients []float64   `json:"coefficients"`
	Samples      []TrendPoint `json:"samples"`
}

// TrendPoint is one sampled point of a fitted curve.
type TrendPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// column extracts a named numeric column from a ride.
func column(r types.Ride, name string) (float64, bool) {
	switch name {
	case "hours":
		return r.Hours, true
	case "miles":
		return r.Miles, true
	case "feet":
		return r.Feet, true
	case "mph":
		return r.MPH, true
	case "vam":
		return r.VAM, true
	case "fpm":
		return r.FPM, true
	case "pct":
		return r.Pct, true
	case "kms":
		return r.Kms, true
	}
	return 0, false
}

const trendSamples = 50

// Trend fits a least-squares polynomial of y as a function of x over the
// whole ride table and samples it across the observed x range.
func (nb *Notebook) Trend(xcol, ycol string, degree int) (*Trend, error) {
	if len(nb.Rides) == 0 {
		return nil, fmt.Errorf("no rides to fit")
	}

	xs := make([]float64, len(nb.Rides))
	ys := make([]float64, len(nb.Rides))
	for i, r := range nb.Rides {
		x, ok := column(r, xcol)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", xcol)
		}
		y, ok := column(r, ycol)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", ycol)
		}
		xs[i], ys[i] = x, y
	}

	curve, err := stats.PolyFit(xs, ys, degree)
	if err != nil {
		return nil, err
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	trend := &Trend{
		XColumn:      xcol,
		YColumn:      ycol,
		Degree:       degree,
		Coefficients: curve.Coefficients,
	}
	for i := 0; i < trendSamples; i++ {
		x := lo + (hi-lo)*float64(i)/float64(trendSamples-1)
		trend.Samples = append(trend.Samples, TrendPoint{X: x, Y: curve.At(x)})
	}
	return trend, nil
}
