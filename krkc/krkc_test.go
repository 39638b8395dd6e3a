package krkc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/k2go/relation"
)

// treeBits returns T as 0/1 ints for exact structural checks.
func treeBits[T comparable](t *Tree[T]) []int {
	bits := make([]int, t.tree.Len())
	for i := range bits {
		if t.tree.Get(i) {
			bits[i] = 1
		}
	}

	return bits
}

// leafVals returns L as a plain slice.
func leafVals[T comparable](t *Tree[T]) []T {
	vals := make([]T, t.leaves.Len())
	for i := range vals {
		vals[i] = t.leaves.Get(i)
	}

	return vals
}

func TestFromMatrix_SingleLevel(t *testing.T) {
	// 2x2 matrix, one edge: the tree collapses to a single leaf block.
	mat := [][]int{
		{0, 1},
		{0, 0},
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, tree.H())
	assert.Equal(t, 2, tree.NumRows())
	assert.Equal(t, 2, tree.NumCols())
	assert.Empty(t, treeBits(tree))
	assert.Equal(t, []int{0, 1, 0, 0}, leafVals(tree))

	assert.Equal(t, 1, tree.CountElements())
	assert.Equal(t, []int{1}, tree.SuccessorPositions(0))
	assert.Equal(t, 2, tree.FirstSuccessor(1))
	assert.Equal(t, 1, tree.Get(0, 1))
	assert.True(t, tree.IsNotNull(0, 1))
	assert.False(t, tree.IsNotNull(1, 1))
}

func TestFromMatrix_TwoLevels(t *testing.T) {
	// 4x4 matrix with a single edge in the bottom-right quadrant.
	mat := make([][]int, 4)
	for i := range mat {
		mat[i] = make([]int, 4)
	}
	mat[3][3] = 1

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, tree.H())
	assert.Equal(t, 4, tree.NumRows())
	assert.Equal(t, 4, tree.NumCols())
	assert.Equal(t, []int{0, 0, 0, 1}, treeBits(tree))
	assert.Equal(t, []int{0, 0, 0, 1}, leafVals(tree))

	assert.Equal(t, []int{3}, tree.SuccessorPositions(3))
	assert.Equal(t, []int{3}, tree.PredecessorPositions(3))
	assert.Equal(t, 1, tree.Get(3, 3))
}

func TestFromMatrix_Rectangular(t *testing.T) {
	// Different arities: a 2x4 matrix fits a single level with kr=2, kc=4.
	mat := [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	}

	tree, err := FromMatrix(mat, 2, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, tree.NumRows())
	assert.Equal(t, 4, tree.NumCols())
	assert.Empty(t, treeBits(tree))
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 1}, leafVals(tree))

	assert.ElementsMatch(t,
		[]relation.Position{{Row: 0, Col: 0}, {Row: 1, Col: 3}},
		tree.Range(0, 1, 0, 3),
	)
}

func TestFromMatrix_Empty(t *testing.T) {
	mat := make([][]int, 4)
	for i := range mat {
		mat[i] = make([]int, 4)
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	assert.Empty(t, treeBits(tree))
	assert.Empty(t, leafVals(tree))
	assert.Equal(t, 0, tree.CountElements())
	assert.False(t, tree.IsNotNull(0, 0))
	assert.Empty(t, tree.AllPositions())
	assert.Empty(t, tree.SuccessorElements(1))
	assert.Empty(t, tree.PredecessorElements(2))
	assert.False(t, tree.ContainsElement(0, 3, 0, 3))
	for i := 0; i < tree.NumRows(); i++ {
		assert.Equal(t, tree.NumCols(), tree.FirstSuccessor(i))
	}
}

func TestFromMatrix_Padding(t *testing.T) {
	// A 3x3 matrix pads to 4x4; padded cells read as null and stay out
	// of every enumeration.
	mat := [][]int{
		{0, 2, 0},
		{0, 0, 0},
		{4, 0, 0},
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tree.NumRows())

	assert.Equal(t, 0, tree.Get(3, 3))
	assert.Equal(t, 0, tree.Get(0, 3))
	assert.False(t, tree.IsNotNull(3, 0))
	assert.ElementsMatch(t,
		[]relation.Position{{Row: 0, Col: 1}, {Row: 2, Col: 0}},
		tree.AllPositions(),
	)
	assert.Equal(t, 4, tree.FirstSuccessor(3))
}

func TestFromMatrix_InvalidInput(t *testing.T) {
	_, err := FromMatrix([][]int{}, 2, 2, 0)
	assert.ErrorIs(t, err, relation.ErrEmptyMatrix)

	_, err = FromMatrix([][]int{{1}}, 1, 2, 0)
	var ia *relation.ErrInvalidArity
	assert.ErrorAs(t, err, &ia)
}

func TestFromMatrixWindow(t *testing.T) {
	mat := make([][]int, 6)
	for i := range mat {
		mat[i] = make([]int, 6)
	}
	mat[1][1] = 9 // window cell (0, 0)
	mat[4][3] = 5 // window cell (3, 2)
	mat[0][0] = 7 // outside the window
	mat[5][5] = 8 // outside the window

	tree, err := FromMatrixWindow(mat, 1, 1, 4, 4, 2, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 9, tree.Get(0, 0))
	assert.Equal(t, 5, tree.Get(3, 2))
	assert.Equal(t, 2, tree.CountElements())
	assert.ElementsMatch(t,
		[]relation.Position{{Row: 0, Col: 0}, {Row: 3, Col: 2}},
		tree.AllPositions(),
	)
}

func TestFromMatrixWindow_UnsuitableParameters(t *testing.T) {
	mat := make([][]int, 6)
	for i := range mat {
		mat[i] = make([]int, 6)
	}

	// 4 columns cannot be a power of kc=3 with the exponent derived
	// from nr=4, kr=2.
	_, err := FromMatrixWindow(mat, 1, 1, 4, 4, 2, 3, 0)

	var ip *relation.ErrInvalidParameters
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, 4, ip.NR)
	assert.Equal(t, 4, ip.NC)
	assert.Equal(t, 2, ip.Kr)
	assert.Equal(t, 3, ip.Kc)
	assert.Equal(t, 2, ip.H)
	assert.Equal(t, 4, ip.NumRows)
	assert.Equal(t, 9, ip.NumCols)
}

func TestSetNull(t *testing.T) {
	mat := make([][]int, 4)
	for i := range mat {
		mat[i] = make([]int, 4)
	}
	mat[0][0] = 1
	mat[0][1] = 2
	mat[2][3] = 3
	mat[3][2] = 4

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tree.CountElements())
	require.Equal(t, 3, tree.FirstSuccessor(2))

	tree.SetNull(0, 0)

	assert.Equal(t, 0, tree.Get(0, 0))
	assert.False(t, tree.IsNotNull(0, 0))
	assert.Equal(t, 3, tree.CountElements())
	assert.Equal(t, []int{1}, tree.SuccessorPositions(0))

	// A single-cell query reaches the leaf and sees the cleared value.
	assert.False(t, tree.ContainsElement(0, 0, 0, 0))

	// The structural skeleton is deliberately left stale: once the whole
	// top-left quadrant is cleared, its presence bit still answers true.
	tree.SetNull(0, 1)
	assert.True(t, tree.ContainsElement(0, 1, 0, 1))
}

func TestClone(t *testing.T) {
	mat := [][]int{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	clone := tree.Clone()
	clone.SetNull(0, 1)

	assert.Equal(t, 1, tree.Get(0, 1), "clone must not share leaf storage")
	assert.Equal(t, 0, clone.Get(0, 1))
	assert.Equal(t, 2, clone.Get(2, 2))
	assert.Equal(t, treeBits(tree), treeBits(clone))
}

func TestAliases(t *testing.T) {
	mat := [][]int{
		{0, 1},
		{1, 0},
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	assert.True(t, tree.AreRelated(0, 1))
	assert.Equal(t, tree.SuccessorPositions(0), tree.Successors(0))
	assert.Equal(t, tree.PredecessorPositions(0), tree.Predecessors(0))
	assert.Equal(t, tree.PositionsInRange(0, 1, 0, 1), tree.Range(0, 1, 0, 1))
	assert.Equal(t, tree.ContainsElement(0, 0, 0, 0), tree.ContainsLink(0, 0, 0, 0))
	assert.Equal(t, tree.CountElements(), tree.CountLinks())
	assert.Equal(t, relation.KindRectangular, tree.Kind())
}

func TestDescribe(t *testing.T) {
	mat := [][]int{
		{0, 1},
		{0, 0},
	}

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	tree.Describe(&buf, true)

	out := buf.String()
	assert.Contains(t, out, "h = 1")
	assert.Contains(t, out, "numRows = 2")
	assert.Contains(t, out, "L = 0 1 0 0")
}

func TestStats(t *testing.T) {
	mat := make([][]int, 4)
	for i := range mat {
		mat[i] = make([]int, 4)
	}
	mat[3][3] = 1

	tree, err := FromMatrix(mat, 2, 2, 0)
	require.NoError(t, err)

	stats := tree.Stats()
	assert.Equal(t, 2, stats.H)
	assert.Equal(t, 4, stats.TreeBits)
	assert.Equal(t, 4, stats.LeafSlots)
	assert.Equal(t, 1, stats.Elements)
}
