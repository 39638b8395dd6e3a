package krkc

import (
	"github.com/hupe1980/k2go/internal/mathx"
	"github.com/hupe1980/k2go/relation"
)

// ListsMode selects the algorithm used to build a tree from row
// adjacency lists. The modes produce bit-identical trees; they differ
// in construction time and peak memory.
type ListsMode int

const (
	// ListsModeLevels subdivides the padded matrix depth-first with a
	// cursor per row, buffering one bit sequence per level.
	ListsModeLevels ListsMode = iota

	// ListsModeTree inserts every cell into an explicit scratch tree
	// and emits T and L in one breadth-first pass over it.
	ListsModeTree

	// ListsModeDynamic grows T in place under a dynamic rank helper,
	// one insertion per cell.
	ListsModeDynamic
)

// String returns a string representation of the ListsMode.
func (m ListsMode) String() string {
	switch m {
	case ListsModeLevels:
		return "Levels"
	case ListsModeTree:
		return "Tree"
	case ListsModeDynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// FromLists builds a tree from row adjacency lists. Row i of the
// relation is described by lists[i], sorted by column; entries are
// expected to carry non-null values.
func FromLists[T comparable](lists []relation.List[T], kr, kc int, mode ListsMode, null T) (*Tree[T], error) {
	return fromLists(lists, kr, kc, mode, null, newSliceLeaves[T](null))
}

// FromListsWindow builds a tree from the nr x nc submatrix of the
// relation described by lists whose top-left cell is (x, y).
func FromListsWindow[T comparable](lists []relation.List[T], x, y, nr, nc, kr, kc int, mode ListsMode, null T) (*Tree[T], error) {
	return fromListsWindow(lists, x, y, nr, nc, kr, kc, mode, null, newSliceLeaves[T](null))
}

func fromLists[T comparable](lists []relation.List[T], kr, kc int, mode ListsMode, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}

	maxCol := 0
	for _, row := range lists {
		for _, e := range row {
			maxCol = max(maxCol, e.Col)
		}
	}
	numCols := maxCol + 1

	h := max(1, mathx.CeilLog(len(lists), kr), mathx.CeilLog(numCols, kc))

	t := newTree(kr, kc, h, null, leaves)

	switch mode {
	case ListsModeLevels:
		cursors := make([]int, len(lists))

		levels := make([][]bool, h-1)
		t.buildListsRec(lists, cursors, levels, t.numRows, t.numCols, 1, 0, 0)
		t.seal(levels)
	case ListsModeTree:
		t.buildListsViaTree(lists, 0, 0, t.numRows, t.numCols)
	default:
		t.buildListsDynamic(lists, 0, 0, t.numRows, t.numCols)
	}

	return t, nil
}

func fromListsWindow[T comparable](lists []relation.List[T], x, y, nr, nc, kr, kc int, mode ListsMode, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}

	h := max(1, mathx.CeilLog(nr, kr), mathx.CeilLog(nc, kc))

	t := newTree(kr, kc, h, null, leaves)
	if err := t.checkParameters(nr, nc); err != nil {
		return nil, err
	}

	switch mode {
	case ListsModeLevels:
		// Skip every row's entries left of the window.
		cursors := make([]int, len(lists))
		for i, row := range lists {
			for cursors[i] < len(row) && row[cursors[i]].Col < y {
				cursors[i]++
			}
		}

		levels := make([][]bool, h-1)
		t.buildListsRec(lists, cursors, levels, t.numRows, t.numCols, 1, x, y)
		t.seal(levels)
	case ListsModeTree:
		t.buildListsViaTree(lists, x, y, nr, nc)
	default:
		t.buildListsDynamic(lists, x, y, nr, nc)
	}

	return t, nil
}

// buildListsRec is buildMatrixRec over adjacency lists: each row
// carries a cursor that advances whenever its next entry is consumed
// into a leaf block. Rows must be sorted by column.
func (t *Tree[T]) buildListsRec(lists []relation.List[T], cursors []int, levels [][]bool, nr, nc, l, p, q int) bool {
	if l == t.h {
		block := make([]T, 0, t.kr*t.kc)
		for i := 0; i < t.kr; i++ {
			for j := 0; j < t.kc; j++ {
				v := t.null
				if row := p + i; row < len(lists) && cursors[row] < len(lists[row]) && q+j == lists[row][cursors[row]].Col {
					v = lists[row][cursors[row]].Val
					cursors[row]++
				}
				block = append(block, v)
			}
		}

		if mathx.IsAll(block, t.null) {
			return false
		}

		t.leaves.Append(block)

		return true
	}

	cr, cc := nr/t.kr, nc/t.kc

	block := make([]bool, 0, t.kr*t.kc)
	for i := 0; i < t.kr; i++ {
		for j := 0; j < t.kc; j++ {
			block = append(block, t.buildListsRec(lists, cursors, levels, cr, cc, l+1, p+i*cr, q+j*cc))
		}
	}

	if mathx.IsAll(block, false) {
		return false
	}

	levels[l-1] = append(levels[l-1], block...)

	return true
}
