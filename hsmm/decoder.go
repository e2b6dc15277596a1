// Package hsmm decodes cyclic physiological waveforms into phase sequences
// with a hidden semi-Markov model.
//
// Classifier emission probabilities rarely respect the physiology of a pulse
// cycle: isolated misclassified samples produce phase flips far shorter than
// any plausible systole or diastole. The decoder suppresses such flips by
// pairing the emissions with gamma-distributed sojourn-time priors. For every
// state it tracks how long the current path has already stayed there and
// converts the gamma CDF at that sojourn into dynamic stay/advance
// probabilities, so leaving a phase only becomes likely once its typical
// duration has elapsed. States form a ring, so a transition always advances
// to the cyclic successor.
//
// # Usage
//
// For the default two-phase pulse model, construct a decoder and feed it a
// T-by-2 emission matrix from any upstream classifier:
//
//	dec, err := hsmm.New()
//	if err != nil {
//		// handle configuration error
//	}
//	out, err := dec.Decode(emissions)
//	// out.Path holds one state index per sample
//
// Duration priors can be fit from labeled training sequences instead of
// using the built-in defaults:
//
//	err = dec.FitDurations(labelSequences)
//
// # Engines
//
// Two interchangeable Viterbi kernels are provided: a plain scalar reference
// implementation and a block-vectorized one. Both produce identical paths;
// the decoder picks the vector kernel automatically when the CPU reports
// SIMD support. Use WithEngine to force a specific kernel.
package hsmm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-hsmm/stats/transition"
)

// Errors returned by decoder construction, fitting, and decoding.
var (
	ErrEmptyEmissions   = errors.New("hsmm: empty emission matrix")
	ErrEmissionWidth    = errors.New("hsmm: emission row width does not match state count")
	ErrStateRange       = errors.New("hsmm: state index out of range")
	ErrNoSequences      = errors.New("hsmm: no label sequences to fit")
	ErrGammaParams      = errors.New("hsmm: gamma shape and scale must be positive")
	ErrDurationBounds   = errors.New("hsmm: min duration must be less than max duration")
	ErrInconsistentPath = errors.New("hsmm: backtrack reached an unvisited cell")
)

// minFitRuns is the smallest number of observed runs needed before a state's
// duration prior is replaced by a fitted one.
const minFitRuns = 3

// Decoded is the result of one Decode call.
type Decoded struct {
	// Path holds the decoded state index for every input sample.
	Path []int

	// Fallback reports that no duration-constrained path had nonzero
	// probability and Path was filled with per-sample argmax instead.
	Fallback bool
}

// Decoder assigns phase labels to emission probability sequences under
// per-state sojourn-time constraints.
//
// A Decoder is safe for concurrent Decode calls as long as its duration
// parameters are not mutated concurrently.
type Decoder struct {
	cfg    Config
	engine engine
	params []DurationParams

	// Cached per-state probability rows indexed by current sojourn length.
	// Rebuilt whenever duration parameters change, read-only during decode.
	stay  [][]float64
	trans [][]float64
}

// New constructs a Decoder from the default configuration modified by the
// given options.
func New(opts ...Option) (*Decoder, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.MinDuration >= cfg.MaxDuration {
		return nil, ErrDurationBounds
	}

	d := &Decoder{
		cfg:    cfg,
		engine: selectEngine(cfg.Engine),
		params: make([]DurationParams, cfg.NumStates),
	}
	for s := range d.params {
		d.params[s] = defaultParams(s, cfg.MinDuration, cfg.MaxDuration)
	}
	for state, p := range cfg.Params {
		if err := d.storeParams(state, p); err != nil {
			return nil, err
		}
	}
	d.rebuildTables()

	return d, nil
}

// NumStates returns the number of cyclic phases.
func (d *Decoder) NumStates() int { return d.cfg.NumStates }

// MaxDuration returns the longest per-state sojourn the decoder tracks.
func (d *Decoder) MaxDuration() int { return d.cfg.MaxDuration }

// MinDuration returns the default lower sojourn bound.
func (d *Decoder) MinDuration() int { return d.cfg.MinDuration }

// EngineName reports which Viterbi kernel the decoder selected.
func (d *Decoder) EngineName() string { return d.engine.name() }

// Params returns the duration parameters of one state.
func (d *Decoder) Params(state int) (DurationParams, error) {
	if state < 0 || state >= d.cfg.NumStates {
		return DurationParams{}, fmt.Errorf("state %d: %w", state, ErrStateRange)
	}
	return d.params[state], nil
}

// SetDurationParams replaces the duration prior of one state and refreshes
// the cached probability tables. Zero Mean, Std, Min, or Max fields are
// derived from shape and scale.
func (d *Decoder) SetDurationParams(state int, p DurationParams) error {
	if err := d.storeParams(state, p); err != nil {
		return err
	}
	d.rebuildTables()
	return nil
}

func (d *Decoder) storeParams(state int, p DurationParams) error {
	if state < 0 || state >= d.cfg.NumStates {
		return fmt.Errorf("state %d: %w", state, ErrStateRange)
	}
	if p.Shape <= 0 || p.Scale <= 0 {
		return fmt.Errorf("state %d: %w", state, ErrGammaParams)
	}

	d.params[state] = deriveParams(p, d.cfg.MinDuration, d.cfg.MaxDuration)
	return nil
}

// FitDurations replaces the duration priors with parameters fitted to the
// observed run lengths of the label sequences. States with fewer than three
// observed runs keep their current prior.
func (d *Decoder) FitDurations(sequences [][]int) error {
	if len(sequences) == 0 {
		return ErrNoSequences
	}

	stats, err := transition.Durations(sequences, d.cfg.NumStates, nil)
	if err != nil {
		return fmt.Errorf("hsmm: fit durations: %w", err)
	}

	for s := 0; s < d.cfg.NumStates; s++ {
		if stats.Count[s] < minFitRuns {
			if d.cfg.Logger != nil {
				d.cfg.Logger.Printf("hsmm: state %d has %d runs, keeping prior", s, stats.Count[s])
			}
			continue
		}
		shape, scale := transition.FitGamma(stats.Runs[s])
		d.params[s] = DurationParams{
			Shape: shape,
			Scale: scale,
			Mean:  stats.Mean[s],
			Std:   stats.Std[s],
			Min:   stats.Min[s],
			Max:   stats.Max[s],
		}
		if d.cfg.Logger != nil {
			d.cfg.Logger.Printf("hsmm: state %d fitted from %d runs: shape %.3f scale %.3f bounds [%d, %d]",
				s, stats.Count[s], shape, scale, stats.Min[s], stats.Max[s])
		}
	}
	d.rebuildTables()

	return nil
}

// StayTable returns a copy of the cached per-state stay probabilities,
// indexed by [state][sojourn].
func (d *Decoder) StayTable() [][]float64 { return copyRows(d.stay) }

// TransTable returns a copy of the cached per-state advance probabilities,
// indexed by [state][sojourn].
func (d *Decoder) TransTable() [][]float64 { return copyRows(d.trans) }

func (d *Decoder) rebuildTables() {
	d.stay, d.trans = buildDurationTables(d.params, d.cfg.MaxDuration)
}

// Decode finds the most probable duration-constrained state sequence for the
// emission matrix. emissions[t][s] is the classifier probability of state s
// at sample t; every row must have at least NumStates entries, columns beyond
// that are ignored.
//
// When no duration-constrained path has nonzero probability, Decode degrades
// to per-sample argmax and marks the result as a fallback.
func (d *Decoder) Decode(emissions [][]float64) (Decoded, error) {
	if len(emissions) == 0 {
		return Decoded{}, ErrEmptyEmissions
	}
	for t, row := range emissions {
		if len(row) < d.cfg.NumStates {
			return Decoded{}, fmt.Errorf("row %d has width %d, want at least %d: %w",
				t, len(row), d.cfg.NumStates, ErrEmissionWidth)
		}
	}

	path, err := d.engine.decode(emissions, d.stay, d.trans, d.cfg.NumStates, d.cfg.MaxDuration)
	if err != nil {
		return Decoded{}, err
	}
	if path == nil {
		if d.cfg.Logger != nil {
			d.cfg.Logger.Printf("hsmm: no duration-constrained path found, falling back to per-sample argmax")
		}
		return Decoded{Path: argmaxPath(emissions, d.cfg.NumStates), Fallback: true}, nil
	}

	return Decoded{Path: path}, nil
}

// argmaxPath labels every sample with its highest-probability state among the
// first n columns, ignoring duration structure.
func argmaxPath(emissions [][]float64, n int) []int {
	path := make([]int, len(emissions))
	for t, row := range emissions {
		path[t] = floats.MaxIdx(row[:n])
	}
	return path
}
