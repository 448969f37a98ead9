package sampling

import (
	"fmt"
	"time"
)

// Time repeats Run iterations times for each sample size and reports the
// mean wall time per size, in the order sizes were given. Every iteration
// draws a fresh sample from the same random source.
func Time(vs VertexSet, sizes []int, iterations int, fn SingleSource, opts ...Option) ([]Timing, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadIterations, iterations)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// pin the resolved source so iterations advance one stream
	pinned := append(opts[:len(opts):len(opts)], WithRand(o.Rand))

	out := make([]Timing, 0, len(sizes))
	for _, size := range sizes {
		t := Timing{Size: size, Iterations: iterations}
		for it := 0; it < iterations; it++ {
			start := time.Now()
			if _, err := Run(vs, size, fn, pinned...); err != nil {
				return nil, fmt.Errorf("sampling: size %d: %w", size, err)
			}
			t.Total += time.Since(start)
		}
		t.Mean = t.Total / time.Duration(iterations)
		out = append(out, t)
	}
	return out, nil
}
