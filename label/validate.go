package label

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-hsmm/stats/transition"
)

// Report is the outcome of a label-sequence hygiene check. Problems are
// collected as human-readable issues, never returned as errors.
type Report struct {
	Valid  bool
	Issues []string
	Stats  transition.Stats
}

// Validate checks a phase sequence for physiological plausibility: every
// value within [0, n) and no phase run shorter than minPhaseDuration.
//
// A sequence containing out-of-range values is reported with the range issue
// alone; run statistics are only computed for in-range sequences.
func Validate(seq []int, n, minPhaseDuration int) Report {
	var issues []string

	seen := make(map[int]bool)
	var invalid []int
	for _, v := range seq {
		if (v < 0 || v >= n) && !seen[v] {
			seen[v] = true
			invalid = append(invalid, v)
		}
	}
	if len(invalid) > 0 {
		sort.Ints(invalid)
		issues = append(issues, fmt.Sprintf("invalid state values found: %v", invalid))
		return Report{Valid: false, Issues: issues}
	}

	stats, err := transition.Durations([][]int{seq}, n, nil)
	if err != nil {
		// The range check above keeps this unreachable.
		return Report{Valid: false, Issues: append(issues, err.Error())}
	}

	for state := 0; state < n; state++ {
		var short []int
		for _, d := range stats.Runs[state] {
			if d < minPhaseDuration {
				short = append(short, d)
			}
		}
		if len(short) > 0 {
			issues = append(issues, fmt.Sprintf(
				"state %d has %d phases shorter than minimum (%d): %v",
				state, len(short), minPhaseDuration, short))
		}
	}

	return Report{Valid: len(issues) == 0, Issues: issues, Stats: stats}
}
