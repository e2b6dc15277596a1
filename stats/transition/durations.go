package transition

import (
	"fmt"
	"math"
)

// Stats summarizes the sojourn-time (run-length) structure of label sequences.
// All per-state slices are indexed by state.
type Stats struct {
	Mean  []float64 // mean run length
	Std   []float64 // population standard deviation of run lengths
	Min   []int     // shortest observed run
	Max   []int     // longest observed run
	Runs  [][]int   // every observed run length, in encounter order
	Count []int     // number of observed runs
}

// Durations extracts maximal constant runs per state from the sequences and
// computes their summary statistics. A state with no observed runs gets the
// placeholder mean = min = max = 1 and std = 0 so downstream duration models
// stay well-defined.
func Durations(sequences [][]int, n int, remap map[int]int) (Stats, error) {
	runs := make([][]int, n)

	for si, seq := range sequences {
		states, err := translate(seq, n, remap)
		if err != nil {
			return Stats{}, fmt.Errorf("sequence %d: %w", si, err)
		}
		if len(states) == 0 {
			continue
		}

		current := states[0]
		length := 1
		for _, s := range states[1:] {
			if s == current {
				length++
				continue
			}
			runs[current] = append(runs[current], length)
			current = s
			length = 1
		}
		runs[current] = append(runs[current], length)
	}

	stats := Stats{
		Mean:  make([]float64, n),
		Std:   make([]float64, n),
		Min:   make([]int, n),
		Max:   make([]int, n),
		Runs:  runs,
		Count: make([]int, n),
	}

	for state, r := range runs {
		stats.Count[state] = len(r)
		if len(r) == 0 {
			stats.Mean[state] = 1
			stats.Min[state] = 1
			stats.Max[state] = 1
			continue
		}

		mean, std := runMoments(r)
		stats.Mean[state] = mean
		stats.Std[state] = std

		minRun, maxRun := r[0], r[0]
		for _, d := range r[1:] {
			if d < minRun {
				minRun = d
			}
			if d > maxRun {
				maxRun = d
			}
		}
		stats.Min[state] = minRun
		stats.Max[state] = maxRun
	}

	return stats, nil
}

// runMoments computes mean and population standard deviation of run lengths
// in a single Welford pass.
func runMoments(runs []int) (mean, std float64) {
	var m2 float64

	for i, d := range runs {
		x := float64(d)
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, math.Sqrt(m2 / float64(len(runs)))
}
