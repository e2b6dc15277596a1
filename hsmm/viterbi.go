package hsmm

import (
	"github.com/cwbudde/algo-hsmm/internal/cpu"
)

// EngineKind selects the Viterbi kernel implementation.
type EngineKind int

const (
	// EngineAuto picks the vector kernel when the CPU reports SIMD support
	// and the reference kernel otherwise.
	EngineAuto EngineKind = iota

	// EngineReference forces the plain scalar implementation.
	EngineReference

	// EngineVector forces the block-vectorized implementation.
	EngineVector
)

// String returns the lower-case kind name.
func (k EngineKind) String() string {
	switch k {
	case EngineAuto:
		return "auto"
	case EngineReference:
		return "reference"
	case EngineVector:
		return "vector"
	default:
		return "unknown"
	}
}

// epsilon regularizes probabilities inside logarithms so zero-probability
// options stay representable as large negative scores instead of -Inf.
const epsilon = 1e-10

// Backpointer sentinels. unreached marks cells the forward pass never
// filled; noPredecessor marks initialization cells that legitimately start
// a path.
const (
	unreached     int32 = -2
	noPredecessor int32 = -1
)

// engine is the decoding kernel contract. decode returns a nil path and nil
// error when no duration-constrained path has nonzero probability; the
// decoder then falls back to per-sample argmax. Both kernels walk the same
// (state, sojourn) lattice and produce identical paths.
type engine interface {
	name() string
	decode(emissions, stay, trans [][]float64, nStates, maxDuration int) ([]int, error)
}

func selectEngine(kind EngineKind) engine {
	switch kind {
	case EngineReference:
		return referenceEngine{}
	case EngineVector:
		return vectorEngine{}
	default:
		if cpu.HasSIMD() {
			return vectorEngine{}
		}
		return referenceEngine{}
	}
}
