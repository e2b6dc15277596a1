package hsmm

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-hsmm/internal/num"
	"github.com/cwbudde/algo-hsmm/phase"
)

// vectorEngine is the block-vectorized Viterbi kernel. It stores the lattice
// in flat duration-major rows and replaces the scalar candidate loops with
// block adds over whole sojourn ranges: both predecessor kinds reduce to
// "previous row plus a precomputed log row plus an emission constant".
//
// The kernel is arithmetically identical to referenceEngine. Candidates are
// summed in the same association order and maxima are resolved by the same
// first-strict-max rule, so the two kernels return the same path for the
// same input, tie cases included.
type vectorEngine struct{}

func (vectorEngine) name() string { return "vector" }

func (vectorEngine) decode(emissions, stay, trans [][]float64, nStates, maxDuration int) ([]int, error) {
	T := len(emissions)
	negInf := math.Inf(-1)

	logStay := make([][]float64, nStates)
	logTrans := make([][]float64, nStates)
	for s := 0; s < nStates; s++ {
		logStay[s] = logRow(stay[s])
		logTrans[s] = logRow(trans[s])
	}

	cells := T * nStates * maxDuration
	delta := make([]float64, cells)
	num.Fill(delta, negInf)
	psiS := make([]int32, cells)
	psiD := make([]int32, cells)
	for i := range psiS {
		psiS[i] = unreached
		psiD[i] = unreached
	}

	// row returns the offset of the maxDuration-wide sojourn row of (t, s).
	row := func(t, s int) int { return (t*nStates + s) * maxDuration }

	for s := 0; s < nStates; s++ {
		base := row(0, s)
		delta[base+1] = math.Log(emissions[0][s] + epsilon)
		psiS[base+1] = noPredecessor
		psiD[base+1] = noPredecessor
	}

	buf := make([]float64, maxDuration)

	for t := 1; t < T; t++ {
		for s := 0; s < nStates; s++ {
			emissLL := math.Log(emissions[t][s] + epsilon)
			cur := row(t, s)

			// Stay scores for sojourns d in [2, limit) come from the same
			// state's previous row shifted by one: candidate d reads slot
			// d-1. One block add plus one constant add covers all of them.
			limit := t + 2
			if limit > maxDuration {
				limit = maxDuration
			}
			if limit > 2 {
				prevRow := row(t-1, s)
				width := limit - 2
				vecmath.AddBlock(buf[1:1+width], delta[prevRow+1:prevRow+1+width], logStay[s][1:1+width])
				floats.AddConst(emissLL, buf[1:1+width])
				for d := 2; d < limit; d++ {
					if score := buf[d-1]; score > negInf {
						delta[cur+d] = score
						psiS[cur+d] = int32(s)
						psiD[cur+d] = int32(d - 1)
					}
				}
			}

			// Entering from the cyclic predecessor lands at sojourn 1. The
			// best donor sojourn is the first maximum of the blockwise
			// candidate row; slot 0 never holds a valid sojourn.
			prevS := phase.Prev(s, nStates)
			prevRow := row(t-1, prevS)
			vecmath.AddBlock(buf, delta[prevRow:prevRow+maxDuration], logTrans[prevS])
			floats.AddConst(emissLL, buf)
			best := floats.MaxIdx(buf[1:]) + 1
			if score := buf[best]; score > delta[cur+1] {
				delta[cur+1] = score
				psiS[cur+1] = int32(prevS)
				psiD[cur+1] = int32(best)
			}
		}
	}

	bestState, bestDuration := 0, 1
	bestScore := negInf
	for s := 0; s < nStates; s++ {
		base := row(T-1, s)
		last := delta[base+1 : base+maxDuration]
		j := floats.MaxIdx(last)
		if score := last[j]; score > bestScore {
			bestScore = score
			bestState = s
			bestDuration = j + 1
		}
	}
	if math.IsInf(bestScore, -1) {
		return nil, nil
	}

	path := make([]int, T)
	curS, curD := bestState, bestDuration
	for t := T - 1; t >= 0; t-- {
		path[t] = curS
		base := row(t, curS)
		from := psiS[base+curD]
		if from == unreached {
			return nil, ErrInconsistentPath
		}
		if from == noPredecessor {
			for tt := t - 1; tt >= 0; tt-- {
				path[tt] = curS
			}
			break
		}
		curS, curD = int(from), int(psiD[base+curD])
	}

	return path, nil
}

// logRow returns elementwise log(p + epsilon) of a probability row.
func logRow(probs []float64) []float64 {
	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = math.Log(p + epsilon)
	}
	return out
}
