package testutil

import (
	"math"
	"math/rand"
)

// CycleLabels builds a label sequence from alternating run lengths, starting
// in state 0: CycleLabels(3, 2, 1) = [0 0 0 1 1 0].
func CycleLabels(runs ...int) []int {
	var out []int
	state := 0
	for _, n := range runs {
		for i := 0; i < n; i++ {
			out = append(out, state)
		}
		state = 1 - state
	}
	return out
}

// StepEmissions generates a two-state emission matrix that favors state 0
// with the given confidence before the flip index and state 1 after it.
func StepEmissions(length, flip int, confidence float64) [][]float64 {
	out := make([][]float64, length)
	for t := range out {
		if t < flip {
			out[t] = []float64{confidence, 1 - confidence}
		} else {
			out[t] = []float64{1 - confidence, confidence}
		}
	}
	return out
}

// LabelEmissions turns a label sequence into an emission matrix over n states
// with the given confidence on the true label and the remainder spread
// uniformly over the other states.
func LabelEmissions(labels []int, n int, confidence float64) [][]float64 {
	rest := (1 - confidence) / float64(n-1)
	out := make([][]float64, len(labels))
	for t, s := range labels {
		row := make([]float64, n)
		for j := range row {
			row[j] = rest
		}
		row[s] = confidence
		out[t] = row
	}
	return out
}

// GammaRuns draws count run lengths from a gamma distribution with integer
// shape and the given scale, using a fixed seed for reproducibility. Each
// draw is the sum of shape exponential variates, rounded and floored at 1.
func GammaRuns(seed int64, shape int, scale float64, count int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, count)
	for i := range out {
		sum := 0.0
		for k := 0; k < shape; k++ {
			sum += -scale * math.Log(1-rng.Float64())
		}
		d := int(math.Round(sum))
		if d < 1 {
			d = 1
		}
		out[i] = d
	}
	return out
}
