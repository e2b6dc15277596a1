package testutil

import "testing"

func TestCycleLabels(t *testing.T) {
	got := CycleLabels(3, 2, 1)
	want := []int{0, 0, 0, 1, 1, 0}
	RequireIntSliceEqual(t, got, want)
}

func TestStepEmissions(t *testing.T) {
	em := StepEmissions(4, 2, 0.9)
	if len(em) != 4 {
		t.Fatalf("length = %d, want 4", len(em))
	}
	RequireSliceNearlyEqual(t, em[0], []float64{0.9, 0.1}, 1e-15)
	RequireSliceNearlyEqual(t, em[3], []float64{0.1, 0.9}, 1e-15)
}

func TestLabelEmissionsRowsSumToOne(t *testing.T) {
	em := LabelEmissions([]int{0, 2, 1}, 3, 0.8)
	for t2, row := range em {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if diff := sum - 1; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("row %d sums to %v, want 1", t2, sum)
		}
	}
	if em[1][2] != 0.8 {
		t.Fatalf("true-label mass = %v, want 0.8", em[1][2])
	}
}

func TestGammaRunsDeterministicAndPositive(t *testing.T) {
	a := GammaRuns(42, 4, 10, 50)
	b := GammaRuns(42, 4, 10, 50)
	RequireIntSliceEqual(t, a, b)

	for i, d := range a {
		if d < 1 {
			t.Fatalf("index %d: run %d < 1", i, d)
		}
	}
}
