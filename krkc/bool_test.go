package krkc

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/k2go/testutil"
)

// buildAllBoolModes constructs the same boolean relation through every
// builder.
func buildAllBoolModes(t *testing.T, mat [][]int, kr, kc int) map[string]*Tree[bool] {
	t.Helper()

	bmat := testutil.BoolMatrixFromMatrix(mat)
	lists := testutil.BoolListsFromMatrix(mat)

	trees := make(map[string]*Tree[bool])

	tree, err := FromBoolMatrix(bmat, kr, kc)
	require.NoError(t, err)
	trees["matrix"] = tree

	for _, mode := range []ListsMode{ListsModeLevels, ListsModeTree, ListsModeDynamic} {
		tree, err = FromBoolLists(lists, kr, kc, mode)
		require.NoError(t, err)
		trees["lists/"+mode.String()] = tree
	}

	tree, err = FromBoolPairs(testutil.PositionsFromMatrix(mat), kr, kc)
	require.NoError(t, err)
	trees["pairs"] = tree

	return trees
}

func TestBool_MatchesGeneric(t *testing.T) {
	// A generic tree with T = bool, null = false must answer exactly
	// like the bit-packed specialisation.
	rng := testutil.NewRNG(11)

	for _, tc := range []struct {
		rows, cols int
		kr, kc     int
		density    float64
	}{
		{4, 4, 2, 2, 0.25},
		{8, 8, 2, 2, 0.1},
		{6, 10, 2, 3, 0.2},
		{5, 5, 2, 2, 0},
	} {
		mat := rng.SparseMatrix(tc.rows, tc.cols, tc.density, 1)
		if tc.density > 0 {
			// Pin the far corner so that every builder derives the same
			// padded shape from its input.
			mat[tc.rows-1][tc.cols-1] = 1
		}

		generic, err := FromMatrix(testutil.BoolMatrixFromMatrix(mat), tc.kr, tc.kc, false)
		require.NoError(t, err)

		for mode, packed := range buildAllBoolModes(t, mat, tc.kr, tc.kc) {
			assert.Equal(t, treeBits(generic), treeBits(packed), "T differs in mode %s", mode)
			assert.Equal(t, leafVals(generic), leafVals(packed), "L differs in mode %s", mode)
			assert.Equal(t, generic.CountElements(), packed.CountElements())

			if packed.NumRows() != generic.NumRows() || packed.NumCols() != generic.NumCols() {
				// All-null relations may pad to different shapes
				// depending on the input form; both are empty.
				continue
			}

			for i := 0; i < generic.NumRows(); i++ {
				assert.Equal(t, generic.SuccessorPositions(i), packed.SuccessorPositions(i))
				assert.Equal(t, generic.FirstSuccessor(i), packed.FirstSuccessor(i))

				for j := 0; j < generic.NumCols(); j++ {
					require.Equal(t, generic.Get(i, j), packed.Get(i, j))
					// For boolean relations IsNotNull coincides with Get.
					require.Equal(t, packed.Get(i, j), packed.IsNotNull(i, j))
				}
			}
		}
	}
}

func TestBool_SetNull(t *testing.T) {
	mat := [][]bool{
		{true, false},
		{false, true},
	}

	tree, err := FromBoolMatrix(mat, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, tree.CountElements())

	tree.SetNull(0, 0)

	assert.False(t, tree.Get(0, 0))
	assert.Equal(t, 1, tree.CountElements())
}

func TestFromBitmap_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(13)
	mat := rng.SparseMatrix(8, 8, 0.2, 1)
	mat[7][7] = 1 // pin the shape to the full 8x8 grid

	const width = 8

	bm := roaring.New()
	for _, p := range testutil.PositionsFromMatrix(mat) {
		bm.Add(uint32(p.Row*width + p.Col))
	}

	tree, err := FromBitmap(bm, width, 2, 2)
	require.NoError(t, err)
	require.Equal(t, width, tree.NumCols())

	assert.True(t, Bitmap(tree).Equals(bm))

	for i := 0; i < 8; i++ {
		want := roaring.New()
		for j := 0; j < 8; j++ {
			if mat[i][j] != 0 {
				want.Add(uint32(j))
			}
		}
		assert.True(t, SuccessorBitmap(tree, i).Equals(want), "row %d", i)
	}
}

func TestFromBitmap_InvalidWidth(t *testing.T) {
	_, err := FromBitmap(roaring.New(), 0, 2, 2)
	assert.Error(t, err)
}

func TestFromBoolMatrixWindow(t *testing.T) {
	mat := make([][]bool, 6)
	for i := range mat {
		mat[i] = make([]bool, 6)
	}
	mat[2][2] = true
	mat[5][5] = true
	mat[0][0] = true // outside

	tree, err := FromBoolMatrixWindow(mat, 2, 2, 4, 4, 2, 2)
	require.NoError(t, err)

	assert.True(t, tree.Get(0, 0))
	assert.True(t, tree.Get(3, 3))
	assert.Equal(t, 2, tree.CountElements())
}
