// Package label builds, validates, and cleans per-sample phase sequences.
//
// Sequences use the phase package's convention: 0 = upstroke, 1 = downstroke.
// Builders turn sparse annotations (systolic peaks, upstroke time ranges) into
// dense per-sample labels suitable for fitting duration models or scoring
// decoded paths.
package label

import (
	"sort"

	"github.com/cwbudde/algo-hsmm/phase"
)

// landmark is a peak or trough position on the waveform.
type landmark struct {
	index  int
	isPeak bool
}

// FromPeaks builds a phase sequence from systolic peak positions.
//
// Troughs bound the upstrokes: trough-to-peak spans become Upstroke and
// peak-to-trough spans become Downstroke. A nil troughs slice requests
// estimation (halfway between adjacent peaks, plus one before the first and
// one after the last peak when there is room); pass an explicit empty slice
// to label from peaks alone. Samples before the first landmark mirror it
// (Upstroke before a peak, Downstroke before a trough) and samples after the
// last landmark mirror it the other way. Landmark positions are clipped to
// the sequence, and an empty peak list yields an all-Upstroke sequence.
func FromPeaks(length int, peaks, troughs []int) []int {
	if length <= 0 {
		return nil
	}

	labels := make([]int, length)
	if len(peaks) == 0 {
		return labels
	}

	sortedPeaks := append([]int(nil), peaks...)
	sort.Ints(sortedPeaks)

	var sortedTroughs []int
	if troughs == nil {
		sortedTroughs = estimateTroughs(sortedPeaks, length)
	} else {
		sortedTroughs = append([]int(nil), troughs...)
		sort.Ints(sortedTroughs)
	}

	marks := make([]landmark, 0, len(sortedPeaks)+len(sortedTroughs))
	for _, p := range sortedPeaks {
		marks = append(marks, landmark{index: p, isPeak: true})
	}
	for _, tr := range sortedTroughs {
		marks = append(marks, landmark{index: tr, isPeak: false})
	}
	// Stable keeps peaks ahead of troughs when both land on one sample.
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].index < marks[j].index })

	for i := 0; i+1 < len(marks); i++ {
		from, to := marks[i], marks[i+1]
		switch {
		case !from.isPeak && to.isPeak:
			fill(labels, from.index, to.index, int(phase.Upstroke))
		case from.isPeak && !to.isPeak:
			fill(labels, from.index, to.index, int(phase.Downstroke))
		}
	}

	first := marks[0]
	if first.isPeak {
		fill(labels, 0, first.index, int(phase.Upstroke))
	} else {
		fill(labels, 0, first.index, int(phase.Downstroke))
	}

	last := marks[len(marks)-1]
	if last.isPeak {
		fill(labels, last.index, length, int(phase.Downstroke))
	} else {
		fill(labels, last.index, length, int(phase.Upstroke))
	}

	return labels
}

// estimateTroughs places troughs halfway between adjacent peaks, plus one
// before the first peak and one after the last when there is room.
func estimateTroughs(peaks []int, length int) []int {
	var troughs []int

	if peaks[0] > 0 {
		troughs = append(troughs, peaks[0]/2)
	}
	for i := 0; i+1 < len(peaks); i++ {
		troughs = append(troughs, (peaks[i]+peaks[i+1])/2)
	}
	if last := peaks[len(peaks)-1]; last < length-1 {
		troughs = append(troughs, (last+length)/2)
	}

	return troughs
}

// Range is a half-open [Start, End) index interval.
type Range struct {
	Start int
	End   int
}

// FromUpstrokeRanges builds a phase sequence by stamping Upstroke over each
// range and defaultLabel everywhere else. Ranges are clipped to the sequence.
func FromUpstrokeRanges(ranges []Range, length, defaultLabel int) []int {
	if length <= 0 {
		return nil
	}

	labels := make([]int, length)
	for i := range labels {
		labels[i] = defaultLabel
	}

	for _, r := range ranges {
		fill(labels, r.Start, r.End, int(phase.Upstroke))
	}

	return labels
}

// fill stamps value over labels[start:end], clipping the bounds.
func fill(labels []int, start, end, value int) {
	if start < 0 {
		start = 0
	}
	if end > len(labels) {
		end = len(labels)
	}
	for i := start; i < end; i++ {
		labels[i] = value
	}
}
