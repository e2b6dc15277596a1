package hsmm

import (
	"log"

	"github.com/cwbudde/algo-hsmm/phase"
)

// Config collects the decoder construction settings.
type Config struct {
	NumStates   int
	MaxDuration int
	MinDuration int
	Engine      EngineKind
	Params      map[int]DurationParams
	Logger      *log.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the two-phase pulse decoder settings, sized for
// waveforms sampled at roughly 100 Hz.
func DefaultConfig() Config {
	return Config{
		NumStates:   phase.Count,
		MaxDuration: 100,
		MinDuration: 5,
		Engine:      EngineAuto,
	}
}

// WithNumStates sets the number of cyclic phases.
func WithNumStates(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.NumStates = n
		}
	}
}

// WithMaxDuration caps the per-state sojourn length the decoder tracks.
func WithMaxDuration(samples int) Option {
	return func(cfg *Config) {
		if samples >= 2 {
			cfg.MaxDuration = samples
		}
	}
}

// WithMinDuration sets the default lower sojourn bound for states without
// explicit duration parameters.
func WithMinDuration(samples int) Option {
	return func(cfg *Config) {
		if samples > 0 {
			cfg.MinDuration = samples
		}
	}
}

// WithEngine forces a specific Viterbi kernel instead of CPU-based
// auto-selection.
func WithEngine(kind EngineKind) Option {
	return func(cfg *Config) {
		if kind >= EngineAuto && kind <= EngineVector {
			cfg.Engine = kind
		}
	}
}

// WithDurationParams overrides the duration prior of one state. Zero Mean,
// Std, Min, or Max fields are derived from shape and scale at construction.
func WithDurationParams(state int, p DurationParams) Option {
	return func(cfg *Config) {
		if cfg.Params == nil {
			cfg.Params = make(map[int]DurationParams)
		}
		cfg.Params[state] = p
	}
}

// WithLogger routes decoder warnings, such as the argmax fallback notice, to
// the given logger. A nil logger keeps the decoder silent.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}
