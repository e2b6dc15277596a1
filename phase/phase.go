// Package phase defines the cyclic phase alphabet shared by the decoder,
// statistics, and labeling packages.
//
// The default alphabet models one cardiac pulse cycle as two alternating
// phases: the systolic upstroke (rising flank) and the diastolic downstroke
// (falling flank back to baseline). Phases form a ring, so state transitions
// always advance to the cyclic successor. The successor rule is kept general
// over N states so larger alphabets (e.g. with a dicrotic segment) reuse the
// same arithmetic.
package phase

// Phase identifies one phase of the pulse cycle.
type Phase int

const (
	// Upstroke is the rising flank of the pulse wave.
	Upstroke Phase = iota

	// Downstroke is the falling flank back to the diastolic baseline.
	Downstroke
)

// Count is the number of phases in the default two-state cycle.
const Count = 2

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Upstroke:
		return "upstroke"
	case Downstroke:
		return "downstroke"
	default:
		return "unknown"
	}
}

// Next returns the cyclic successor of state s in an n-state ring.
func Next(s, n int) int {
	return (s + 1) % n
}

// Prev returns the cyclic predecessor of state s in an n-state ring.
// The result is always non-negative, also for s = 0.
func Prev(s, n int) int {
	return (s - 1 + n) % n
}
