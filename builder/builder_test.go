package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

func TestTopologies_Sizes(t *testing.T) {
	path, err := builder.Path(5)
	require.NoError(t, err)
	assert.Len(t, path, 4)
	assert.Equal(t, core.Edge{From: 3, To: 4}, path[3])

	cycle, err := builder.Cycle(5)
	require.NoError(t, err)
	assert.Len(t, cycle, 5)
	assert.Equal(t, core.Edge{From: 4, To: 0}, cycle[4])

	star, err := builder.Star(4, builder.WithOffset(10))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{10, 11}, {10, 12}, {10, 13}}, star)

	complete, err := builder.Complete(6)
	require.NoError(t, err)
	assert.Len(t, complete, 15)
	assert.Equal(t, 6, core.Build(complete).Len())
}

func TestTopologies_TooFew(t *testing.T) {
	_, err := builder.Path(1)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomSparse(0, 0.5)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(40, 0.1, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomSparse(40, 0.1, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, e := range a {
		assert.Less(t, e.From, e.To)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	none, err := builder.RandomSparse(10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := builder.RandomSparse(10, 1)
	require.NoError(t, err)
	assert.Len(t, all, 45)

	_, err = builder.RandomSparse(10, 1.5)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(10, -0.1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestWeigh(t *testing.T) {
	edges, err := builder.Path(20)
	require.NoError(t, err)
	weighted, err := builder.Weigh(edges, 2, 5, builder.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, weighted, len(edges))
	for i, e := range weighted {
		assert.Equal(t, edges[i].From, e.From)
		assert.Equal(t, edges[i].To, e.To)
		assert.GreaterOrEqual(t, e.Weight, uint32(2))
		assert.LessOrEqual(t, e.Weight, uint32(5))
	}

	_, err = builder.Weigh(edges, 5, 2)
	assert.ErrorIs(t, err, builder.ErrInvalidWeightRange)

	fixed, err := builder.Weigh(edges[:1], 9, 9)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), fixed[0].Weight)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
