// Package segment splits long sample sequences into bounded windows for
// decoding and stitches per-window predictions back together.
//
// Long recordings are decoded window by window to bound memory, with optional
// overlap so phase boundaries near window edges get a second opinion. Split
// produces the windows and their half-open boundaries; Combine, CombineMatrix,
// and CombineLabels merge per-window outputs back into one sequence using a
// configurable overlap strategy.
package segment

import (
	"errors"
	"fmt"
)

// Errors returned by segmentation and combination. The first three report
// configuration mistakes, the rest bad input data.
var (
	ErrSegmentLength   = errors.New("segment: segment length must be positive")
	ErrNegativeOverlap = errors.New("segment: overlap must not be negative")
	ErrOverlapTooLarge = errors.New("segment: overlap must be smaller than the segment length")
	ErrLabelLength     = errors.New("segment: label length does not match signal length")
	ErrNoPredictions   = errors.New("segment: no predictions to combine")
	ErrCountMismatch   = errors.New("segment: prediction and boundary counts differ")
	ErrUnknownStrategy = errors.New("segment: unknown combine strategy")
	ErrLabelAverage    = errors.New("segment: labels cannot be averaged, use Vote")
)

// Boundary is a half-open [Start, End) index range into the original
// sequence.
type Boundary struct {
	Start, End int
}

// Len returns the number of samples the boundary covers.
func (b Boundary) Len() int { return b.End - b.Start }

// Strategy selects how overlapping predictions are merged.
type Strategy int

const (
	// First keeps the value of the earliest segment covering a position.
	First Strategy = iota

	// Last lets every later segment overwrite the overlap.
	Last

	// Average arithmetically averages all values covering a position.
	Average

	// Vote averages and rounds to the nearest integer class, halves
	// rounding away from zero.
	Vote
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case First:
		return "first"
	case Last:
		return "last"
	case Average:
		return "average"
	case Vote:
		return "vote"
	default:
		return "unknown"
	}
}

// Split cuts the signal into windows of segmentLength samples, a new window
// starting every segmentLength-overlap samples. A trailing window shorter
// than minLength is absorbed into its predecessor instead of being emitted.
// The returned segments share the signal's backing array.
//
// labels, when non-nil, must have the signal's length and are cut along the
// same boundaries.
func Split(signal []float64, labels []int, segmentLength, overlap, minLength int) ([][]float64, [][]int, []Boundary, error) {
	boundaries, err := bounds(len(signal), segmentLength, overlap, minLength)
	if err != nil {
		return nil, nil, nil, err
	}
	if labels != nil && len(labels) != len(signal) {
		return nil, nil, nil, fmt.Errorf("%d labels for %d samples: %w",
			len(labels), len(signal), ErrLabelLength)
	}

	segments := make([][]float64, len(boundaries))
	for i, b := range boundaries {
		segments[i] = signal[b.Start:b.End]
	}

	var labelSegments [][]int
	if labels != nil {
		labelSegments = make([][]int, len(boundaries))
		for i, b := range boundaries {
			labelSegments[i] = labels[b.Start:b.End]
		}
	}

	return segments, labelSegments, boundaries, nil
}

// SplitMatrix cuts a per-sample row matrix, such as a T-by-N emission
// matrix, along the same walk as Split.
func SplitMatrix(rows [][]float64, labels []int, segmentLength, overlap, minLength int) ([][][]float64, [][]int, []Boundary, error) {
	boundaries, err := bounds(len(rows), segmentLength, overlap, minLength)
	if err != nil {
		return nil, nil, nil, err
	}
	if labels != nil && len(labels) != len(rows) {
		return nil, nil, nil, fmt.Errorf("%d labels for %d rows: %w",
			len(labels), len(rows), ErrLabelLength)
	}

	segments := make([][][]float64, len(boundaries))
	for i, b := range boundaries {
		segments[i] = rows[b.Start:b.End]
	}

	var labelSegments [][]int
	if labels != nil {
		labelSegments = make([][]int, len(boundaries))
		for i, b := range boundaries {
			labelSegments[i] = labels[b.Start:b.End]
		}
	}

	return segments, labelSegments, boundaries, nil
}

// bounds runs the segmentation walk shared by Split and SplitMatrix.
func bounds(n, segmentLength, overlap, minLength int) ([]Boundary, error) {
	if segmentLength <= 0 {
		return nil, ErrSegmentLength
	}
	if overlap < 0 {
		return nil, ErrNegativeOverlap
	}
	if overlap >= segmentLength {
		return nil, ErrOverlapTooLarge
	}

	step := segmentLength - overlap
	var out []Boundary
	for start := 0; start < n; start += step {
		if n-start < minLength && len(out) > 0 {
			out[len(out)-1].End = n
			break
		}
		end := start + segmentLength
		if end > n {
			end = n
		}
		out = append(out, Boundary{Start: start, End: end})
	}

	return out, nil
}
