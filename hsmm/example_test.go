package hsmm_test

import (
	"fmt"

	"github.com/cwbudde/algo-hsmm/hsmm"
)

func ExampleDecoder_Decode() {
	dec, err := hsmm.New()
	if err != nil {
		panic(err)
	}

	// Sixteen classifier snapshots: confident upstroke, then confident
	// downstroke.
	emissions := make([][]float64, 16)
	for t := range emissions {
		if t < 8 {
			emissions[t] = []float64{0.9, 0.1}
		} else {
			emissions[t] = []float64{0.1, 0.9}
		}
	}

	out, err := dec.Decode(emissions)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Path)
	fmt.Println(out.Fallback)
	// Output:
	// [0 0 0 0 0 0 0 0 1 1 1 1 1 1 1 1]
	// false
}

func ExampleDecoder_FitDurations() {
	dec, err := hsmm.New()
	if err != nil {
		panic(err)
	}

	// Labeled training cycles: upstroke runs of 20 to 42 samples alternating
	// with downstroke runs of 50 to 60.
	var labels []int
	for _, run := range []struct{ state, length int }{
		{0, 20}, {1, 50}, {0, 28}, {1, 55}, {0, 35}, {1, 60}, {0, 42},
	} {
		for i := 0; i < run.length; i++ {
			labels = append(labels, run.state)
		}
	}

	if err := dec.FitDurations([][]int{labels}); err != nil {
		panic(err)
	}

	p, err := dec.Params(0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("shape %.1f scale %.1f min %d max %d\n", p.Shape, p.Scale, p.Min, p.Max)
	// Output:
	// shape 11.0 scale 2.8 min 20 max 42
}
