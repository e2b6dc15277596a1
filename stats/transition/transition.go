// Package transition derives empirical transition matrices and sojourn-time
// statistics from labeled phase sequences, and fits gamma duration priors to
// the observed run lengths.
package transition

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-hsmm/phase"
)

// Errors returned by the statistics functions. Both indicate bad input data,
// not a configuration problem.
var (
	ErrUnknownLabel = errors.New("transition: label not in remap table")
	ErrLabelRange   = errors.New("transition: label outside state range")
)

// translate maps raw labels to state indices and validates the result.
// A nil remap passes labels through unchanged.
func translate(seq []int, n int, remap map[int]int) ([]int, error) {
	out := make([]int, len(seq))
	for i, raw := range seq {
		s := raw
		if remap != nil {
			mapped, ok := remap[raw]
			if !ok {
				return nil, fmt.Errorf("label %d at position %d: %w", raw, i, ErrUnknownLabel)
			}
			s = mapped
		}
		if s < 0 || s >= n {
			return nil, fmt.Errorf("label %d at position %d: %w", s, i, ErrLabelRange)
		}
		out[i] = s
	}
	return out, nil
}

// Counts tallies adjacent-pair transitions over every sequence into an
// n-by-n matrix. Counts[i,j] is the number of observed i-to-j steps.
//
// The optional remap table translates raw labels to state indices first;
// a label absent from a non-nil remap is an input error.
func Counts(sequences [][]int, n int, remap map[int]int) (*mat.Dense, error) {
	counts := mat.NewDense(n, n, nil)

	for si, seq := range sequences {
		states, err := translate(seq, n, remap)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", si, err)
		}
		for i := 0; i+1 < len(states); i++ {
			from, to := states[i], states[i+1]
			counts.Set(from, to, counts.At(from, to)+1)
		}
	}

	return counts, nil
}

// Matrix returns the row-normalized transition matrix of the sequences.
// States with no outgoing transitions get a uniform 1/n row.
func Matrix(sequences [][]int, n int, remap map[int]int) (*mat.Dense, error) {
	counts, err := Counts(sequences, n, remap)
	if err != nil {
		return nil, err
	}

	m := mat.NewDense(n, n, nil)
	uniform := 1 / float64(n)

	for i := 0; i < n; i++ {
		row := counts.RawRowView(i)
		total := floats.Sum(row)

		for j := 0; j < n; j++ {
			if total == 0 {
				m.Set(i, j, uniform)
			} else {
				m.Set(i, j, row[j]/total)
			}
		}
	}

	return m, nil
}

// Cyclic builds the idealized transition matrix of an n-state ring: selfProb
// on the diagonal and the full remainder on the cyclic successor.
func Cyclic(n int, selfProb float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		m.Set(i, i, selfProb)
		m.Set(i, phase.Next(i, n), 1-selfProb)
	}

	return m
}
