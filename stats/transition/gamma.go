package transition

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-hsmm/internal/num"
)

// Fallback gamma prior used when the observed runs carry too little
// information for a method-of-moments fit.
const (
	defaultShape = 2.0
	defaultScale = 10.0
)

// FitGamma fits gamma shape and scale parameters to observed run lengths by
// the method of moments.
//
// Degenerate inputs fall back instead of failing: fewer than two samples
// return the (2.0, 10.0) prior, and near-constant samples return shape 2.0
// with scale mean/2. Results are clipped to shape [1, 50] and scale [1, 100]
// to keep the resulting duration distributions numerically tame.
func FitGamma(durations []int) (shape, scale float64) {
	if len(durations) < 2 {
		return defaultShape, defaultScale
	}

	x := make([]float64, len(durations))
	for i, d := range durations {
		x[i] = float64(d)
	}

	mean := stat.Mean(x, nil)
	variance := stat.Variance(x, nil)
	if variance < 1e-6 {
		return defaultShape, mean / 2
	}

	scale = variance / mean
	shape = mean / scale

	return num.Clamp(shape, 1, 50), num.Clamp(scale, 1, 100)
}
