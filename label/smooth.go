package label

// Smooth removes spurious short phase runs from a prediction sequence.
//
// A run shorter than minDuration adopts the previous run's value when one
// exists, otherwise the following run's value; a short run spanning the whole
// sequence stays unchanged. Merges apply to the working copy as the scan
// advances, so an earlier merge can absorb later short runs.
func Smooth(seq []int, minDuration int) []int {
	smoothed := append([]int(nil), seq...)
	n := len(smoothed)

	i := 0
	for i < n {
		state := smoothed[i]
		j := i + 1
		for j < n && smoothed[j] == state {
			j++
		}

		if j-i < minDuration {
			switch {
			case i > 0:
				fill(smoothed, i, j, smoothed[i-1])
			case j < n:
				fill(smoothed, i, j, smoothed[j])
			}
		}

		i = j
	}

	return smoothed
}
