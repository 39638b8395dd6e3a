package krkc

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/k2go/relation"
)

// The boolean specialisation stores one bit per cell: null is false,
// IsNotNull coincides with Get, and L is packed into a bitset kept
// apart from T. The constructors below produce a *Tree[bool] backed by the
// packed leaf store; every query behaves as in the generic case.

// FromBoolMatrix builds a boolean tree from a dense bit matrix.
func FromBoolMatrix(mat [][]bool, kr, kc int) (*Tree[bool], error) {
	return fromMatrix(mat, kr, kc, false, newBitLeaves())
}

// FromBoolMatrixWindow builds a boolean tree from the nr x nc
// submatrix of mat whose top-left cell is (x, y).
func FromBoolMatrixWindow(mat [][]bool, x, y, nr, nc, kr, kc int) (*Tree[bool], error) {
	return fromMatrixWindow(mat, x, y, nr, nc, kr, kc, false, newBitLeaves())
}

// FromBoolLists builds a boolean tree from row adjacency lists holding
// only the related columns, sorted ascending.
func FromBoolLists(lists [][]int, kr, kc int, mode ListsMode) (*Tree[bool], error) {
	return fromLists(boolLists(lists), kr, kc, mode, false, newBitLeaves())
}

// FromBoolListsWindow builds a boolean tree from the nr x nc submatrix
// of the relation described by lists whose top-left cell is (x, y).
func FromBoolListsWindow(lists [][]int, x, y, nr, nc, kr, kc int, mode ListsMode) (*Tree[bool], error) {
	return fromListsWindow(boolLists(lists), x, y, nr, nc, kr, kc, mode, false, newBitLeaves())
}

// FromBoolPairs builds a boolean tree from a flat position list in
// arbitrary order. The derived pair list is partitioned internally;
// positions is left untouched.
func FromBoolPairs(positions []relation.Position, kr, kc int) (*Tree[bool], error) {
	return fromPairs(boolPairs(positions), kr, kc, false, newBitLeaves())
}

// FromBoolPairsWindow builds a boolean tree from the nr x nc submatrix
// with top-left cell (x, y), restricted to positions[l:r].
func FromBoolPairsWindow(positions []relation.Position, x, y, nr, nc, l, r, kr, kc int) (*Tree[bool], error) {
	return fromPairsWindow(boolPairs(positions), x, y, nr, nc, l, r, kr, kc, false, newBitLeaves())
}

// FromBitmap builds a boolean tree from a roaring bitmap of linearised
// cell positions: bit row*numCols + col set means (row, col) is
// related. numCols fixes the linearisation width and must be positive.
func FromBitmap(bm *roaring.Bitmap, numCols, kr, kc int) (*Tree[bool], error) {
	if numCols <= 0 {
		return nil, fmt.Errorf("krkc: linearisation width must be positive, got %d", numCols)
	}

	pairs := make([]relation.Pair[bool], 0, bm.GetCardinality())

	it := bm.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		pairs = append(pairs, relation.Pair[bool]{Row: v / numCols, Col: v % numCols, Val: true})
	}

	return fromPairs(pairs, kr, kc, false, newBitLeaves())
}

// Bitmap exports all related positions of a boolean tree as a roaring
// bitmap of linearised positions row*NumCols + col.
func Bitmap(t *Tree[bool]) *roaring.Bitmap {
	bm := roaring.New()
	t.eachInRange(0, t.numRows-1, 0, t.numCols-1, func(dp, dq int, _ bool) {
		bm.Add(uint32(dp*t.numCols + dq))
	})

	return bm
}

// SuccessorBitmap exports the related columns of row i as a roaring
// bitmap.
func SuccessorBitmap(t *Tree[bool], i int) *roaring.Bitmap {
	bm := roaring.New()
	t.eachSuccessorIterative(i, func(col int, _ bool) {
		bm.Add(uint32(col))
	})

	return bm
}

func boolLists(lists [][]int) []relation.List[bool] {
	out := make([]relation.List[bool], len(lists))
	for i, row := range lists {
		out[i] = make(relation.List[bool], len(row))
		for j, col := range row {
			out[i][j] = relation.Entry[bool]{Col: col, Val: true}
		}
	}

	return out
}

func boolPairs(positions []relation.Position) []relation.Pair[bool] {
	out := make([]relation.Pair[bool], len(positions))
	for i, p := range positions {
		out[i] = relation.Pair[bool]{Row: p.Row, Col: p.Col, Val: true}
	}

	return out
}
