package hsmm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-hsmm/internal/num"
	"github.com/cwbudde/algo-hsmm/phase"
)

// DurationParams describes the sojourn-time prior of one state. Shape and
// scale parameterize a gamma distribution over run lengths in samples; the
// remaining fields summarize the expected behavior and bound the sojourns the
// decoder will consider leaving early.
type DurationParams struct {
	Shape, Scale float64 // gamma distribution parameters
	Mean, Std    float64 // expected run length and spread, informational
	Min, Max     int     // sojourn bounds in samples
}

// defaultParams returns the built-in prior of a state, sized for pulse
// waveforms sampled at roughly 100 Hz. The upstroke (systolic rise) is
// typically shorter than the downstroke (diastolic descent). States beyond
// the two-phase alphabet get a broad generic prior.
func defaultParams(state, minDuration, maxDuration int) DurationParams {
	switch state {
	case int(phase.Upstroke):
		return DurationParams{Shape: 3, Scale: 10, Mean: 30, Std: 15, Min: 5, Max: 60}
	case int(phase.Downstroke):
		return DurationParams{Shape: 4, Scale: 15, Mean: 60, Std: 25, Min: 10, Max: 150}
	default:
		return deriveParams(DurationParams{Shape: 2, Scale: 10}, minDuration, maxDuration)
	}
}

// deriveParams fills zero summary fields from shape and scale: the gamma
// mean is shape*scale and its standard deviation sqrt(shape)*scale. Zero
// sojourn bounds fall back to the decoder-wide defaults.
func deriveParams(p DurationParams, minDuration, maxDuration int) DurationParams {
	if p.Mean == 0 {
		p.Mean = p.Shape * p.Scale
	}
	if p.Std == 0 {
		p.Std = math.Sqrt(p.Shape) * p.Scale
	}
	if p.Min == 0 {
		p.Min = minDuration
	}
	if p.Max == 0 {
		p.Max = maxDuration
	}
	return p
}

// buildDurationTables converts per-state gamma priors into stay/advance
// probability rows indexed by the current sojourn length.
//
// Sojourns below a state's minimum force staying. Above it, the advance
// probability is the gamma CDF at the sojourn, clipped to [0.01, 0.99] so
// neither option ever becomes impossible. Index 0 is never consulted by the
// decoder and keeps the neutral 0.5 placeholder.
func buildDurationTables(params []DurationParams, maxDuration int) (stay, trans [][]float64) {
	stay = make([][]float64, len(params))
	trans = make([][]float64, len(params))

	for s, p := range params {
		stayRow := make([]float64, maxDuration)
		transRow := make([]float64, maxDuration)
		num.Fill(stayRow, 0.5)
		num.Fill(transRow, 0.5)

		dist := distuv.Gamma{Alpha: p.Shape, Beta: 1 / p.Scale}
		for d := 1; d < maxDuration; d++ {
			if d < p.Min {
				stayRow[d] = 1
				transRow[d] = 0
				continue
			}
			cdf := num.Clamp(dist.CDF(float64(d)), 0.01, 0.99)
			stayRow[d] = 1 - cdf
			transRow[d] = cdf
		}

		stay[s] = stayRow
		trans[s] = transRow
	}

	return stay, trans
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
