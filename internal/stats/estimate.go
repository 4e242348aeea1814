package stats

import (
	"fmt"

	"github.com/tmsennott/velolog/internal/types"
)

// Estimator predicts ride times from a curve fit of grade (feet per mile)
// against speed (mph) over the whole ride history. It is built once at
// startup and immutable afterwards.
type Estimator struct {
	curve *Polynomial
}

// NewRideEstimator fits the grade-to-speed curve. Degree 2 matches the
// shape of the data: speed falls off with grade faster than linearly.
func NewRideEstimator(all []types.Ride, degree int) (*Estimator, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("estimator: no rides to fit")
	}

	xs := make([]float64, len(all))
	ys := make([]float64, len(all))
	for i, r := range all {
		xs[i] = r.FPM
		ys[i] = r.MPH
	}

	curve, err := PolyFit(xs, ys, degree)
	if err != nil {
		return nil, fmt.Errorf("estimator: %w", err)
	}
	return &Estimator{curve: curve}, nil
}

// Minutes returns the expected duration in minutes of a ride of the given
// distance and climb.
func (e *Estimator) Minutes(miles, feet float64) (float64, error) {
	if miles <= 0 {
		return 0, fmt.Errorf("estimator: non-positive distance %.2f miles", miles)
	}
	speed := e.curve.At(feet / miles)
	if speed <= 0 {
		return 0, fmt.Errorf("estimator: fitted speed %.2f mph is not positive at %.0f ft/mi", speed, feet/miles)
	}
	return 60 * miles / speed, nil
}
