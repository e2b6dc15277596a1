package hsmm

import (
	"math"

	"github.com/cwbudde/algo-hsmm/phase"
)

// referenceEngine is the plain scalar Viterbi kernel. It favors readability
// over speed and serves as the correctness baseline for the vector kernel.
//
// delta[t][s][d] is the best log-probability of any path that ends at sample
// t in state s after staying there for exactly d samples. Each cell has two
// kinds of predecessor: staying in s one sample longer (d-1 at t-1), or
// entering s from its cyclic predecessor at any sojourn, which resets d to 1.
type referenceEngine struct{}

func (referenceEngine) name() string { return "reference" }

func (referenceEngine) decode(emissions, stay, trans [][]float64, nStates, maxDuration int) ([]int, error) {
	T := len(emissions)
	negInf := math.Inf(-1)

	delta := make([][][]float64, T)
	psiS := make([][][]int32, T)
	psiD := make([][][]int32, T)
	for t := range delta {
		delta[t] = make([][]float64, nStates)
		psiS[t] = make([][]int32, nStates)
		psiD[t] = make([][]int32, nStates)
		for s := 0; s < nStates; s++ {
			scores := make([]float64, maxDuration)
			fromS := make([]int32, maxDuration)
			fromD := make([]int32, maxDuration)
			for d := range scores {
				scores[d] = negInf
				fromS[d] = unreached
				fromD[d] = unreached
			}
			delta[t][s] = scores
			psiS[t][s] = fromS
			psiD[t][s] = fromD
		}
	}

	// Every state may start a path with sojourn 1.
	for s := 0; s < nStates; s++ {
		delta[0][s][1] = math.Log(emissions[0][s] + epsilon)
		psiS[0][s][1] = noPredecessor
		psiD[0][s][1] = noPredecessor
	}

	for t := 1; t < T; t++ {
		for s := 0; s < nStates; s++ {
			emissLL := math.Log(emissions[t][s] + epsilon)

			// Staying in s advances the sojourn counter by one.
			limit := t + 2
			if limit > maxDuration {
				limit = maxDuration
			}
			for d := 2; d < limit; d++ {
				prev := delta[t-1][s][d-1]
				if math.IsInf(prev, -1) {
					continue
				}
				score := prev + math.Log(stay[s][d-1]+epsilon) + emissLL
				if score > delta[t][s][d] {
					delta[t][s][d] = score
					psiS[t][s][d] = int32(s)
					psiD[t][s][d] = int32(d - 1)
				}
			}

			// Entering s from its cyclic predecessor resets the sojourn to 1.
			prevS := phase.Prev(s, nStates)
			for prevD := 1; prevD < maxDuration; prevD++ {
				prev := delta[t-1][prevS][prevD]
				if math.IsInf(prev, -1) {
					continue
				}
				score := prev + math.Log(trans[prevS][prevD]+epsilon) + emissLL
				if score > delta[t][s][1] {
					delta[t][s][1] = score
					psiS[t][s][1] = int32(prevS)
					psiD[t][s][1] = int32(prevD)
				}
			}
		}
	}

	bestState, bestDuration := 0, 1
	bestScore := negInf
	for s := 0; s < nStates; s++ {
		for d := 1; d < maxDuration; d++ {
			if delta[T-1][s][d] > bestScore {
				bestScore = delta[T-1][s][d]
				bestState = s
				bestDuration = d
			}
		}
	}
	if math.IsInf(bestScore, -1) {
		return nil, nil
	}

	path := make([]int, T)
	curS, curD := bestState, bestDuration
	for t := T - 1; t >= 0; t-- {
		path[t] = curS
		from := psiS[t][curS][curD]
		if from == unreached {
			return nil, ErrInconsistentPath
		}
		if from == noPredecessor {
			for tt := t - 1; tt >= 0; tt-- {
				path[tt] = curS
			}
			break
		}
		curS, curD = int(from), int(psiD[t][curS][curD])
	}

	return path, nil
}
