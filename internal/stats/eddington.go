// Package stats holds the numeric computations over the ride tables: the
// Eddington number, least-squares trend curves, the ride-time estimator,
// and yearly summaries.
package stats

import "sort"

// Eddington returns the maximum e such that e of the given daily distances
// are each at least e miles. An empty list, or one where even the longest
// day is under a mile, returns 0.
func Eddington(distances []float64) int {
	sorted := make([]float64, len(distances))
	copy(sorted, distances)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	e := 0
	for rank, d := range sorted {
		if d >= float64(rank+1) {
			e = rank + 1
		}
	}
	return e
}

// EddingtonGap returns how many more rides of at least target miles are
// needed to reach an Eddington number of target, given how many rides
// already exceed it. The target is a hypothetical goal, not necessarily the
// current Eddington number.
func EddingtonGap(distances []float64, target int) int {
	over := 0
	for _, d := range distances {
		if d > float64(target) {
			over++
		}
	}
	return target - over
}
