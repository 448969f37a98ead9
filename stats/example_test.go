package stats_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/sampling"
	"github.com/katalvlaran/degrees/stats"
)

func ExampleAggregate() {
	s, err := stats.Aggregate([]sampling.DistancePair{
		{Node1: 1, Node2: 2, Distance: 1},
		{Node1: 1, Node2: 3, Distance: 2},
		{Node1: 2, Node2: 3, Distance: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("n=%d mean=%.2f sd=%.3f\n", s.Count, s.Mean, s.StdDev)
	// Output: n=3 mean=2.00 sd=0.816
}
