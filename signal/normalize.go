// Package signal provides per-record normalization of waveform samples,
// typically applied before emission probabilities are estimated.
package signal

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by normalization. ErrUnknownMethod signals a configuration
// error, ErrLengthMismatch an input error.
var (
	ErrUnknownMethod  = errors.New("signal: unknown normalization method")
	ErrLengthMismatch = errors.New("signal: destination length mismatch")
)

// Method selects the normalization applied to a record.
type Method int

const (
	// MethodZScore centers on the mean and scales by the population
	// standard deviation.
	MethodZScore Method = iota

	// MethodMinMax maps the observed range onto [0, 1].
	MethodMinMax

	// MethodRobust centers on the median and scales by the interquartile
	// range, resisting outlier beats and motion artifacts.
	MethodRobust
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodZScore:
		return "zscore"
	case MethodMinMax:
		return "minmax"
	case MethodRobust:
		return "robust"
	default:
		return "unknown"
	}
}

// Normalize returns a normalized copy of x.
//
// Degenerate records never fail: a scale estimate below 1e-8 (constant or
// near-constant input) is replaced by 1 so the output stays finite.
func Normalize(x []float64, method Method) ([]float64, error) {
	out := make([]float64, len(x))
	if err := NormalizeTo(out, x, method); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeTo normalizes x into the pre-allocated dst, which must have the
// same length as x.
func NormalizeTo(dst, x []float64, method Method) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}
	if len(x) == 0 {
		return methodValid(method)
	}

	switch method {
	case MethodZScore:
		mean := stat.Mean(x, nil)
		std := stat.PopStdDev(x, nil)
		if std < 1e-8 {
			std = 1
		}
		shiftScale(dst, x, mean, std)

	case MethodMinMax:
		low := floats.Min(x)
		span := floats.Max(x) - low
		if span < 1e-8 {
			span = 1
		}
		shiftScale(dst, x, low, span)

	case MethodRobust:
		sorted := append([]float64(nil), x...)
		sort.Float64s(sorted)
		median := percentile(sorted, 0.5)
		iqr := percentile(sorted, 0.75) - percentile(sorted, 0.25)
		if iqr < 1e-8 {
			iqr = 1
		}
		shiftScale(dst, x, median, iqr)

	default:
		return ErrUnknownMethod
	}

	return nil
}

func methodValid(method Method) error {
	switch method {
	case MethodZScore, MethodMinMax, MethodRobust:
		return nil
	default:
		return ErrUnknownMethod
	}
}

// shiftScale writes (x - shift) / scale into dst.
func shiftScale(dst, x []float64, shift, scale float64) {
	copy(dst, x)
	floats.AddConst(-shift, dst)
	floats.Scale(1/scale, dst)
}

// percentile evaluates the p-quantile of sorted data with linear
// interpolation between the two nearest order statistics.
func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
