package transition_test

import (
	"fmt"

	"github.com/cwbudde/algo-hsmm/stats/transition"
)

func ExampleMatrix() {
	labels := []int{0, 0, 0, 1, 1, 1, 0, 0, 1, 1}

	m, err := transition.Matrix([][]int{labels}, 2, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("0: %.2f %.2f\n", m.At(0, 0), m.At(0, 1))
	fmt.Printf("1: %.2f %.2f\n", m.At(1, 0), m.At(1, 1))

	// Output:
	// 0: 0.60 0.40
	// 1: 0.25 0.75
}

func ExampleDurations() {
	labels := []int{0, 0, 0, 1, 1, 1, 0, 0, 1, 1}

	stats, err := transition.Durations([][]int{labels}, 2, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("state 0: runs=%v mean=%.1f\n", stats.Runs[0], stats.Mean[0])
	fmt.Printf("state 1: runs=%v mean=%.1f\n", stats.Runs[1], stats.Mean[1])

	// Output:
	// state 0: runs=[3 2] mean=2.5
	// state 1: runs=[3 2] mean=2.5
}

func ExampleFitGamma() {
	shape, scale := transition.FitGamma([]int{14, 22, 30, 38, 47})

	fmt.Printf("shape=%.2f scale=%.2f\n", shape, scale)

	// Output:
	// shape=5.42 scale=5.57
}
