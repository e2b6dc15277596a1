package segment

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-hsmm/internal/num"
)

// Combine stitches per-segment predictions back into a single sequence of
// totalLength values. Each prediction is written into its boundary's range,
// truncated to whichever of the prediction, the boundary, or the output is
// shortest. Positions no segment covers stay zero.
func Combine(predictions [][]float64, boundaries []Boundary, totalLength int, strategy Strategy) ([]float64, error) {
	if err := checkCombine(len(predictions), len(boundaries), strategy); err != nil {
		return nil, err
	}

	combined := make([]float64, totalLength)
	counts := make([]float64, totalLength)

	for i, pred := range predictions {
		start, span := clipSpan(boundaries[i], len(pred), totalLength)
		if span == 0 {
			continue
		}
		dst := combined[start : start+span]

		switch strategy {
		case First:
			for j := range dst {
				if counts[start+j] == 0 {
					dst[j] = pred[j]
					counts[start+j] = 1
				}
			}
		case Last:
			copy(dst, pred[:span])
			num.Fill(counts[start:start+span], 1)
		default: // Average, Vote
			vecmath.AddBlockInPlace(dst, pred[:span])
			floats.AddConst(1, counts[start:start+span])
		}
	}

	if strategy == Average || strategy == Vote {
		normalize(combined, counts, strategy == Vote)
	}

	return combined, nil
}

// CombineMatrix stitches per-segment row matrices, such as per-class
// probability rows, back into a single totalLength-row matrix.
func CombineMatrix(predictions [][][]float64, boundaries []Boundary, totalLength int, strategy Strategy) ([][]float64, error) {
	if err := checkCombine(len(predictions), len(boundaries), strategy); err != nil {
		return nil, err
	}

	width := 0
	if len(predictions[0]) > 0 {
		width = len(predictions[0][0])
	}
	combined := make([][]float64, totalLength)
	for i := range combined {
		combined[i] = make([]float64, width)
	}
	counts := make([]float64, totalLength)

	for i, pred := range predictions {
		start, span := clipSpan(boundaries[i], len(pred), totalLength)
		if span == 0 {
			continue
		}

		switch strategy {
		case First:
			for j := 0; j < span; j++ {
				if counts[start+j] == 0 {
					copy(combined[start+j], pred[j])
					counts[start+j] = 1
				}
			}
		case Last:
			for j := 0; j < span; j++ {
				copy(combined[start+j], pred[j])
				counts[start+j] = 1
			}
		default: // Average, Vote
			for j := 0; j < span; j++ {
				vecmath.AddBlockInPlace(combined[start+j], pred[j])
			}
			floats.AddConst(1, counts[start:start+span])
		}
	}

	if strategy == Average || strategy == Vote {
		for i, row := range combined {
			c := counts[i]
			if c == 0 {
				c = 1
			}
			floats.Scale(1/c, row)
			if strategy == Vote {
				for j := range row {
					row[j] = math.Round(row[j])
				}
			}
		}
	}

	return combined, nil
}

// CombineLabels stitches integer label predictions. Average is rejected
// because fractional labels are meaningless; Vote resolves overlap
// disagreements by majority, ties rounding up.
func CombineLabels(predictions [][]int, boundaries []Boundary, totalLength int, strategy Strategy) ([]int, error) {
	if strategy == Average {
		return nil, ErrLabelAverage
	}
	if err := checkCombine(len(predictions), len(boundaries), strategy); err != nil {
		return nil, err
	}

	if strategy == Vote {
		votes := make([][]float64, len(predictions))
		for i, pred := range predictions {
			row := make([]float64, len(pred))
			for j, v := range pred {
				row[j] = float64(v)
			}
			votes[i] = row
		}
		averaged, err := Combine(votes, boundaries, totalLength, Vote)
		if err != nil {
			return nil, err
		}
		combined := make([]int, totalLength)
		for i, v := range averaged {
			combined[i] = int(v)
		}
		return combined, nil
	}

	combined := make([]int, totalLength)
	written := make([]bool, totalLength)
	for i, pred := range predictions {
		start, span := clipSpan(boundaries[i], len(pred), totalLength)
		for j := 0; j < span; j++ {
			if strategy == Last || !written[start+j] {
				combined[start+j] = pred[j]
				written[start+j] = true
			}
		}
	}

	return combined, nil
}

// checkCombine validates the shared combination preconditions.
func checkCombine(preds, bounds int, strategy Strategy) error {
	switch strategy {
	case First, Last, Average, Vote:
	default:
		return ErrUnknownStrategy
	}
	if preds == 0 {
		return ErrNoPredictions
	}
	if preds != bounds {
		return fmt.Errorf("%d predictions for %d boundaries: %w",
			preds, bounds, ErrCountMismatch)
	}
	return nil
}

// clipSpan returns the output range a prediction may write: the boundary
// clipped to the prediction's length and the output's end. Boundaries that
// start outside the output are skipped.
func clipSpan(b Boundary, predLen, total int) (start, span int) {
	start = b.Start
	if start < 0 || start >= total {
		return 0, 0
	}
	span = b.Len()
	if predLen < span {
		span = predLen
	}
	if start+span > total {
		span = total - start
	}
	if span < 0 {
		span = 0
	}
	return start, span
}

// normalize divides each position by its coverage count, treating uncovered
// positions as count one, and rounds when vote is set.
func normalize(combined, counts []float64, vote bool) {
	for i := range combined {
		c := counts[i]
		if c == 0 {
			c = 1
		}
		combined[i] /= c
		if vote {
			combined[i] = math.Round(combined[i])
		}
	}
}
