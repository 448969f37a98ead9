package sampling

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for sampling runs.
var (
	// ErrOversizedSample is returned when the sample is larger than the vertex set.
	ErrOversizedSample = errors.New("sampling: requested sample is bigger than graph")

	// ErrBadSampleSize is returned for a negative sample size.
	ErrBadSampleSize = errors.New("sampling: sample size must be non-negative")

	// ErrNilSource is returned when no single-source function is supplied.
	ErrNilSource = errors.New("sampling: single-source function is nil")

	// ErrBadIterations is returned by Time for a non-positive iteration count.
	ErrBadIterations = errors.New("sampling: iterations must be positive")
)

// defaultSeed is used when neither WithSeed nor WithRand was given.
const defaultSeed int64 = 1

// DistancePair is one computed shortest distance between two distinct
// sampled vertices.
type DistancePair struct {
	Node1    core.Vertex
	Node2    core.Vertex
	Distance core.Distance
}

// String renders the pair the way reports list it.
func (p DistancePair) String() string {
	return fmt.Sprintf("Shortest distance between %d and %d is %d", p.Node1, p.Node2, p.Distance)
}

// SingleSource computes a distance table rooted at start.
type SingleSource func(start core.Vertex) (*core.Distances, error)

// VertexSet is the vertex universe a sample is drawn from.
// *core.Adjacency and *core.Weighted both satisfy it.
type VertexSet interface {
	Len() int
	Vertices() []core.Vertex
}

// Timing is the mean wall time of repeated Run calls at one sample size.
type Timing struct {
	Size       int
	Iterations int
	Total      time.Duration
	Mean       time.Duration
}

// Option configures a sampling run.
type Option func(*Options)

// Options holds the random source and parallelism of a run.
type Options struct {
	Rand    *rand.Rand
	Workers int
}

// DefaultOptions returns a sequential run seeded with the default seed.
func DefaultOptions() Options {
	return Options{
		Rand:    rand.New(rand.NewSource(defaultSeed)),
		Workers: 1,
	}
}

// WithRand supplies the random source used for the shuffle.
// A *rand.Rand is not goroutine-safe; do not share it across concurrent runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh random source. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithWorkers sets how many sources are computed concurrently.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}
