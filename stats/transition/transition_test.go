package transition

import (
	"errors"
	"math"
	"testing"
)

// cyclicSequence is the shared fixture: runs of 3, 3, 2, 2 samples
// alternating between the two states.
var cyclicSequence = []int{0, 0, 0, 1, 1, 1, 0, 0, 1, 1}

func TestCountsAdjacentPairs(t *testing.T) {
	counts, err := Counts([][]int{cyclicSequence}, 2, nil)
	if err != nil {
		t.Fatalf("Counts() error: %v", err)
	}

	expected := [2][2]float64{
		{3, 2},
		{1, 3},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := counts.At(i, j); got != expected[i][j] {
				t.Fatalf("counts[%d][%d] = %v, want %v", i, j, got, expected[i][j])
			}
		}
	}
}

func TestMatrixRowsSumToOne(t *testing.T) {
	m, err := Matrix([][]int{cyclicSequence}, 2, nil)
	if err != nil {
		t.Fatalf("Matrix() error: %v", err)
	}

	expected := [2][2]float64{
		{3.0 / 5.0, 2.0 / 5.0},
		{1.0 / 4.0, 3.0 / 4.0},
	}
	for i := 0; i < 2; i++ {
		rowSum := 0.0
		for j := 0; j < 2; j++ {
			got := m.At(i, j)
			if math.Abs(got-expected[i][j]) > 1e-12 {
				t.Fatalf("matrix[%d][%d] = %v, want %v", i, j, got, expected[i][j])
			}
			rowSum += got
		}
		if math.Abs(rowSum-1) > 1e-12 {
			t.Fatalf("row %d sums to %v, want 1", i, rowSum)
		}
	}
}

func TestMatrixUniformRowForUnseenState(t *testing.T) {
	m, err := Matrix([][]int{{0, 0, 0}}, 2, nil)
	if err != nil {
		t.Fatalf("Matrix() error: %v", err)
	}

	if got := m.At(0, 0); got != 1 {
		t.Fatalf("matrix[0][0] = %v, want 1", got)
	}
	if got := m.At(1, 0); got != 0.5 {
		t.Fatalf("matrix[1][0] = %v, want 0.5 (uniform row)", got)
	}
	if got := m.At(1, 1); got != 0.5 {
		t.Fatalf("matrix[1][1] = %v, want 0.5 (uniform row)", got)
	}
}

func TestCountsRemap(t *testing.T) {
	remap := map[int]int{10: 0, 20: 1}

	counts, err := Counts([][]int{{10, 10, 20}}, 2, remap)
	if err != nil {
		t.Fatalf("Counts() error: %v", err)
	}
	if got := counts.At(0, 0); got != 1 {
		t.Fatalf("counts[0][0] = %v, want 1", got)
	}
	if got := counts.At(0, 1); got != 1 {
		t.Fatalf("counts[0][1] = %v, want 1", got)
	}

	_, err = Counts([][]int{{10, 30}}, 2, remap)
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("expected ErrUnknownLabel, got %v", err)
	}
}

func TestCountsRejectsOutOfRangeLabels(t *testing.T) {
	_, err := Counts([][]int{{0, 5}}, 2, nil)
	if !errors.Is(err, ErrLabelRange) {
		t.Fatalf("expected ErrLabelRange, got %v", err)
	}

	_, err = Counts([][]int{{-1, 0}}, 2, nil)
	if !errors.Is(err, ErrLabelRange) {
		t.Fatalf("expected ErrLabelRange for negative label, got %v", err)
	}
}

func TestCountsEmptyInput(t *testing.T) {
	counts, err := Counts(nil, 2, nil)
	if err != nil {
		t.Fatalf("Counts() error: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := counts.At(i, j); got != 0 {
				t.Fatalf("counts[%d][%d] = %v, want 0", i, j, got)
			}
		}
	}
}

func TestCyclicTwoState(t *testing.T) {
	m := Cyclic(2, 0.9)

	expected := [2][2]float64{
		{0.9, 0.1},
		{0.1, 0.9},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := m.At(i, j); got != expected[i][j] {
				t.Fatalf("cyclic[%d][%d] = %v, want %v", i, j, got, expected[i][j])
			}
		}
	}
}

func TestCyclicRingPlacesRemainderOnSuccessor(t *testing.T) {
	m := Cyclic(3, 0.8)

	for i := 0; i < 3; i++ {
		if got := m.At(i, i); math.Abs(got-0.8) > 1e-12 {
			t.Fatalf("diagonal[%d] = %v, want 0.8", i, got)
		}
		next := (i + 1) % 3
		if got := m.At(i, next); math.Abs(got-0.2) > 1e-12 {
			t.Fatalf("successor[%d] = %v, want 0.2", i, got)
		}

		rowSum := 0.0
		for j := 0; j < 3; j++ {
			rowSum += m.At(i, j)
		}
		if math.Abs(rowSum-1) > 1e-12 {
			t.Fatalf("row %d sums to %v, want 1", i, rowSum)
		}
	}
}
