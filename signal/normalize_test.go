package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-hsmm/internal/testutil"
)

func TestNormalizeZScore(t *testing.T) {
	got, err := Normalize([]float64{1, 2, 3, 4, 5}, MethodZScore)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	s := math.Sqrt2
	want := []float64{-2 / s, -1 / s, 0, 1 / s, 2 / s}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestNormalizeZScoreConstantInput(t *testing.T) {
	got, err := Normalize([]float64{3, 3, 3}, MethodZScore)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	// Scale guard keeps the output finite and centered.
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0}, 1e-12)
	testutil.RequireFinite(t, got)
}

func TestNormalizeMinMax(t *testing.T) {
	got, err := Normalize([]float64{2, 4, 6}, MethodMinMax)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1}, 1e-12)
}

func TestNormalizeMinMaxConstantInput(t *testing.T) {
	got, err := Normalize([]float64{-1, -1}, MethodMinMax)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0}, 1e-12)
}

func TestNormalizeRobust(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	got, err := Normalize(x, MethodRobust)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	// median 5, q25 = 3, q75 = 7, iqr = 4
	want := make([]float64, len(x))
	for i, v := range x {
		want[i] = (v - 5) / 4
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestNormalizeRobustResistsOutliers(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 1000}

	got, err := Normalize(x, MethodRobust)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	// The outlier shifts mean-based scores badly; the robust center must
	// stay at the median.
	if math.Abs(got[4]) > 1e-12 {
		t.Fatalf("median sample normalized to %v, want 0", got[4])
	}
}

func TestNormalizeUnknownMethod(t *testing.T) {
	_, err := Normalize([]float64{1, 2}, Method(42))
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}

	// The method is validated also for empty input.
	_, err = Normalize(nil, Method(42))
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod for empty input, got %v", err)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	got, err := Normalize(nil, MethodZScore)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}

func TestNormalizeToLengthMismatch(t *testing.T) {
	err := NormalizeTo(make([]float64, 2), []float64{1, 2, 3}, MethodZScore)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMethodString(t *testing.T) {
	tests := []struct {
		method   Method
		expected string
	}{
		{MethodZScore, "zscore"},
		{MethodMinMax, "minmax"},
		{MethodRobust, "robust"},
		{Method(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.method.String(); got != tt.expected {
			t.Fatalf("String(%d) = %q, want %q", int(tt.method), got, tt.expected)
		}
	}
}
