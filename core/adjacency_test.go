package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/core"
)

// diamond is the 4-vertex, 5-edge graph with a chord:
//
//	1 ─── 2 ─── 3
//	 \    |    /
//	  \   |   /
//	   \  |  /
//	     4
func diamond() []core.Edge {
	return []core.Edge{{1, 2}, {2, 3}, {1, 4}, {2, 4}, {3, 4}}
}

func TestBuild_Diamond(t *testing.T) {
	a := core.Build(diamond())

	require.Equal(t, 4, a.Len())
	assert.Equal(t, 5, a.EdgeCount())
	assert.Equal(t, []core.Vertex{1, 2, 3, 4}, a.Vertices())

	assert.Equal(t, []core.Vertex{2, 4}, a.Neighbors(1))
	assert.Equal(t, []core.Vertex{1, 3, 4}, a.Neighbors(2))
	assert.Equal(t, []core.Vertex{2, 4}, a.Neighbors(3))
	assert.Equal(t, []core.Vertex{1, 2, 3}, a.Neighbors(4))
}

func TestBuild_SymmetricClosure(t *testing.T) {
	edges := []core.Edge{{10, 20}, {20, 30}, {30, 10}, {40, 10}}
	a := core.Build(edges)
	for _, e := range edges {
		assert.Contains(t, a.Neighbors(e.From), e.To)
		assert.Contains(t, a.Neighbors(e.To), e.From)
	}
}

func TestBuild_KeepsDuplicatesAndLoops(t *testing.T) {
	a := core.Build([]core.Edge{{1, 2}, {1, 2}, {3, 3}})

	assert.Equal(t, []core.Vertex{2, 2}, a.Neighbors(1))
	assert.Equal(t, []core.Vertex{1, 1}, a.Neighbors(2))
	assert.Equal(t, []core.Vertex{3, 3}, a.Neighbors(3))
	assert.Equal(t, 3, a.EdgeCount())
}

func TestBuild_IsolatedAndUnknown(t *testing.T) {
	a := core.Build([]core.Edge{{5, 6}}, core.WithVertices(9), core.WithCapacity(8))

	require.Equal(t, 3, a.Len())
	assert.Equal(t, []core.Vertex{9, 5, 6}, a.Vertices())
	assert.True(t, a.Has(9))
	assert.Empty(t, a.Neighbors(9))
	assert.Equal(t, 0, a.Degree(9))

	assert.False(t, a.Has(42))
	assert.Nil(t, a.Neighbors(42))
	_, ok := a.Slot(42)
	assert.False(t, ok)
}

func TestBuild_SparseIDs(t *testing.T) {
	a := core.Build([]core.Edge{{4_000_000_000, 0}})
	s, ok := a.Slot(4_000_000_000)
	require.True(t, ok)
	assert.Equal(t, 0, s)
	assert.Equal(t, core.Vertex(4_000_000_000), a.ID(s))
	assert.Equal(t, []int32{1}, a.NeighborSlots(s))
}

func TestBuildWeighted_UnitWeights(t *testing.T) {
	a := core.Build(diamond())
	w := core.BuildWeighted(a)

	require.Equal(t, a.Len(), w.Len())
	assert.Equal(t, a.EdgeCount(), w.EdgeCount())
	assert.Equal(t, a.Vertices(), w.Vertices())
	for _, v := range a.Vertices() {
		plain := a.Neighbors(v)
		weighted := w.Neighbors(v)
		require.Len(t, weighted, len(plain))
		for i, n := range weighted {
			assert.Equal(t, plain[i], n.Vertex)
			assert.Equal(t, uint32(1), n.Weight)
		}
	}
}

func TestBuildWeightedEdges(t *testing.T) {
	w := core.BuildWeightedEdges([]core.WeightedEdge{
		{From: 1, To: 2, Weight: 7},
		{From: 2, To: 3, Weight: 0},
	}, core.WithVertices(8))

	require.Equal(t, 4, w.Len())
	assert.Equal(t, []core.WeightedNeighbor{{Vertex: 2, Weight: 7}}, w.Neighbors(1))
	assert.Equal(t, []core.WeightedNeighbor{{Vertex: 1, Weight: 7}, {Vertex: 3, Weight: 0}}, w.Neighbors(2))
	assert.Empty(t, w.Neighbors(8))
	assert.Nil(t, w.Neighbors(99))
}

func TestDistances_Table(t *testing.T) {
	a := core.Build(diamond())
	d := a.NewDistances()

	require.Equal(t, 4, d.Len())
	for _, v := range a.Vertices() {
		assert.Equal(t, core.Infinity, d.To(v))
		assert.False(t, d.Reachable(v))
	}
	s, _ := a.Slot(3)
	d.Set(s, 2)
	assert.Equal(t, core.Distance(2), d.To(3))
	assert.Equal(t, core.Distance(2), d.At(s))
	assert.True(t, d.Reachable(3))
	assert.Equal(t, core.Infinity, d.To(77))

	m := d.Map()
	assert.Len(t, m, 4)
	assert.Equal(t, core.Distance(2), m[3])
}
