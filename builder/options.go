// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// options.go — functional options for the builder package.
//
// Option constructors panic on meaningless inputs; generators never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/degrees/core"
)

// defaultSeed is used when no RNG was configured.
const defaultSeed int64 = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	offset core.Vertex
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithOffset shifts every generated vertex id by base.
func WithOffset(base core.Vertex) Option {
	return func(c *config) {
		c.offset = base
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

func (c config) id(i int) core.Vertex { return c.offset + core.Vertex(i) }
