package label

import (
	"testing"

	"github.com/cwbudde/algo-hsmm/internal/testutil"
)

func TestSmoothRemovesSpuriousRun(t *testing.T) {
	got := Smooth([]int{0, 0, 0, 1, 0, 0, 1, 1, 1, 1}, 2)
	want := []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	testutil.RequireIntSliceEqual(t, got, want)
}

func TestSmoothLeadingRunAdoptsNext(t *testing.T) {
	got := Smooth([]int{1, 0, 0, 0}, 2)
	want := []int{0, 0, 0, 0}
	testutil.RequireIntSliceEqual(t, got, want)
}

func TestSmoothTrailingRunAdoptsPrevious(t *testing.T) {
	got := Smooth([]int{0, 0, 0, 1}, 2)
	want := []int{0, 0, 0, 0}
	testutil.RequireIntSliceEqual(t, got, want)
}

func TestSmoothWholeSequenceRunUnchanged(t *testing.T) {
	got := Smooth([]int{1, 1}, 5)
	want := []int{1, 1}
	testutil.RequireIntSliceEqual(t, got, want)
}

func TestSmoothMergesCascade(t *testing.T) {
	// The first merge turns index 2 into 0; the scan then sees [3,4) as
	// another short run of 0 and leaves it merged with the same value.
	got := Smooth([]int{0, 0, 1, 0, 1, 1}, 2)
	want := []int{0, 0, 0, 0, 1, 1}
	testutil.RequireIntSliceEqual(t, got, want)
}

func TestSmoothMinDurationOneKeepsInput(t *testing.T) {
	seq := []int{0, 1, 0, 1}
	got := Smooth(seq, 1)
	testutil.RequireIntSliceEqual(t, got, seq)
}

func TestSmoothEmpty(t *testing.T) {
	if got := Smooth(nil, 3); len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}

func TestSmoothDoesNotMutateInput(t *testing.T) {
	seq := []int{0, 0, 1, 0, 0}
	_ = Smooth(seq, 2)
	testutil.RequireIntSliceEqual(t, seq, []int{0, 0, 1, 0, 0})
}
