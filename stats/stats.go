// Package stats reduces the DistancePairs of a sampling run to summary
// statistics: count, arithmetic mean and population standard deviation.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/sampling"
)

// ErrEmptyInput is returned when statistics are requested over zero pairs.
var ErrEmptyInput = errors.New("stats: no distances to aggregate")

// Summary describes a collection of pairwise distances.
//
// StdDev is the population standard deviation (divides by Count, not
// Count-1). Pairs at core.Infinity are counted in Unreachable and enter
// Mean, StdDev and Max with their recorded value.
type Summary struct {
	Count       int
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
	Unreachable int
}

// Aggregate computes the Summary of pairs. Empty input fails with ErrEmptyInput.
//
// Complexity: O(n).
func Aggregate(pairs []sampling.DistancePair) (Summary, error) {
	if len(pairs) == 0 {
		return Summary{}, ErrEmptyInput
	}

	xs := make([]float64, len(pairs))
	var unreachable int
	for i, p := range pairs {
		xs[i] = float64(p.Distance)
		if p.Distance == core.Infinity {
			unreachable++
		}
	}

	mean, std := stat.PopMeanStdDev(xs, nil)
	return Summary{
		Count:       len(pairs),
		Mean:        mean,
		StdDev:      std,
		Min:         floats.Min(xs),
		Max:         floats.Max(xs),
		Unreachable: unreachable,
	}, nil
}

// Histogram counts pairs per distance value, the distribution of degrees
// of separation in the sample.
func Histogram(pairs []sampling.DistancePair) map[core.Distance]int {
	out := make(map[core.Distance]int)
	for _, p := range pairs {
		out[p.Distance]++
	}
	return out
}
