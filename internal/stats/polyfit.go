package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a fitted least-squares polynomial. Coefficients are ordered
// low degree first: f(x) = c0 + c1*x + c2*x² + ...
type Polynomial struct {
	Coefficients []float64
}

// At evaluates the polynomial at x.
func (p *Polynomial) At(x float64) float64 {
	y := 0.0
	for i, c := range p.Coefficients {
		y += c * math.Pow(x, float64(i))
	}
	return y
}

// PolyFit fits a least-squares polynomial of the given degree to the paired
// samples, minimizing the sum of squared residuals. A rank-deficient system
// (fewer distinct x values than coefficients) is an error: a numerically
// meaningless curve must never reach a chart.
func PolyFit(xs, ys []float64, degree int) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("polyfit: %d x values but %d y values", len(xs), len(ys))
	}
	if degree < 0 {
		return nil, fmt.Errorf("polyfit: negative degree %d", degree)
	}
	if distinct(xs) <= degree {
		return nil, fmt.Errorf("polyfit: degree %d needs more than %d distinct x values", degree, degree)
	}

	n := len(xs)

	// Vandermonde matrix: one row per sample, one column per power of x.
	X := mat.NewDense(n, degree+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= degree; j++ {
			X.Set(i, j, math.Pow(xs[i], float64(j)))
		}
	}
	y := mat.NewVecDense(n, ys)

	var qr mat.QR
	qr.Factorize(X)

	coeffs := mat.NewVecDense(degree+1, nil)
	if err := qr.SolveVecTo(coeffs, false, y); err != nil {
		return nil, fmt.Errorf("polyfit: solving least squares: %w", err)
	}

	out := make([]float64, degree+1)
	for i := range out {
		out[i] = coeffs.AtVec(i)
	}
	return &Polynomial{Coefficients: out}, nil
}

func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}
