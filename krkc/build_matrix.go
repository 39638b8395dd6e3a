package krkc

import (
	"github.com/hupe1980/k2go/internal/mathx"
	"github.com/hupe1980/k2go/relation"
)

// FromMatrix builds a tree from a dense relation matrix. All rows of
// mat are assumed to be equally long; cells holding null are absent
// from the relation.
func FromMatrix[T comparable](mat [][]T, kr, kc int, null T) (*Tree[T], error) {
	return fromMatrix(mat, kr, kc, null, newSliceLeaves[T](null))
}

// FromMatrixWindow builds a tree from the nr x nc submatrix of mat
// whose top-left cell is (x, y). The window dimensions must satisfy
// nr = kr^h and nc = kc^h for the derived height h.
func FromMatrixWindow[T comparable](mat [][]T, x, y, nr, nc, kr, kc int, null T) (*Tree[T], error) {
	return fromMatrixWindow(mat, x, y, nr, nc, kr, kc, null, newSliceLeaves[T](null))
}

func fromMatrix[T comparable](mat [][]T, kr, kc int, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}
	if len(mat) == 0 {
		return nil, relation.ErrEmptyMatrix
	}

	h := max(1, mathx.CeilLog(len(mat), kr), mathx.CeilLog(len(mat[0]), kc))

	t := newTree(kr, kc, h, null, leaves)

	levels := make([][]bool, h-1)
	t.buildMatrixRec(mat, levels, t.numRows, t.numCols, 1, 0, 0)
	t.seal(levels)

	return t, nil
}

func fromMatrixWindow[T comparable](mat [][]T, x, y, nr, nc, kr, kc int, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}

	h := max(1, mathx.CeilLog(nr, kr), mathx.CeilLog(nc, kc))

	t := newTree(kr, kc, h, null, leaves)
	if err := t.checkParameters(nr, nc); err != nil {
		return nil, err
	}

	levels := make([][]bool, h-1)
	t.buildMatrixRec(mat, levels, t.numRows, t.numCols, 1, x, y)
	t.seal(levels)

	return t, nil
}

// buildMatrixRec subdivides the padded matrix depth-first. At leaf
// level it emits a kr*kc value block iff any cell is non-null; at
// internal levels it emits the child-presence block into the level
// buffer iff any child subtree is non-empty. Cells past the matrix
// bounds read as null.
func (t *Tree[T]) buildMatrixRec(mat [][]T, levels [][]bool, nr, nc, l, p, q int) bool {
	if l == t.h {
		block := make([]T, 0, t.kr*t.kc)
		for i := 0; i < t.kr; i++ {
			for j := 0; j < t.kc; j++ {
				v := t.null
				if p+i < len(mat) && q+j < len(mat[p+i]) {
					v = mat[p+i][q+j]
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
			block = append(block, t.buildMatrixRec(mat, levels, cr, cc, l+1, p+i*cr, q+j*cc))
		}
	}

	if mathx.IsAll(block, false) {
		return false
	}

	levels[l-1] = append(levels[l-1], block...)

	return true
}
