// Package krkc implements the rectangular base variant of the K²-tree:
// a static, succinct representation of a sparse relation matrix with
// independent row and column arities (kr, kc) on all levels.
//
// The represented matrix is rectangular with padded edge lengths of
// NumRows x NumCols = kr^h x kc^h, where the height h is the smallest
// common exponent for which both cover the rows and columns of the
// input.
// Cells hold values of a comparable element type with one designated
// null value; the boolean specialisation packs the leaf level into a
// bitset.
//
// Trees are immutable after construction except for SetNull, which
// clears a single leaf slot without updating the internal structure;
// see SetNull for the staleness caveat.
package krkc

import (
	"fmt"
	"io"

	"github.com/hupe1980/k2go/internal/bitvector"
	"github.com/hupe1980/k2go/internal/mathx"
	"github.com/hupe1980/k2go/relation"
)

// Compile-time check to ensure Tree satisfies the relation interface.
var _ relation.Relation[int] = (*Tree[int])(nil)

// Tree is a rectangular K²-tree over cells of type T.
//
// Internally it keeps the level-order child-presence bits of all
// internal nodes (tree), a constant-time rank directory over them
// (rank), and the values of all non-empty leaf blocks (leaves).
type Tree[T comparable] struct {
	tree   *bitvector.Vector
	rank   *bitvector.Rank
	leaves leafStore[T]

	h       int // height
	kr      int // row arity
	kc      int // column arity
	numRows int // kr^h
	numCols int // kc^h

	null T
}

// newTree sets up the shape parameters; the tree/rank pair is filled in
// by the builders via seal.
func newTree[T comparable](kr, kc, h int, null T, leaves leafStore[T]) *Tree[T] {
	return &Tree[T]{
		leaves:  leaves,
		h:       h,
		kr:      kr,
		kc:      kc,
		numRows: mathx.Pow(kr, h),
		numCols: mathx.Pow(kc, h),
		null:    null,
	}
}

// seal installs the concatenated level bits as the tree's bit vector
// and (re)builds the rank directory against it.
func (t *Tree[T]) seal(levels [][]bool) {
	total := 0
	for _, lvl := range levels {
		total += len(lvl)
	}

	v := bitvector.New(total)
	i := 0
	for _, lvl := range levels {
		for _, b := range lvl {
			if b {
				v.Set(i)
			}
			i++
		}
	}

	t.tree = v
	t.rank = bitvector.NewRank(v)
}

// sealBits is seal for builders that emit a single flat bit sequence.
func (t *Tree[T]) sealBits(bits []bool) {
	t.tree = bitvector.FromBools(bits)
	t.rank = bitvector.NewRank(t.tree)
}

func checkArity(kr, kc int) error {
	if kr < 2 || kc < 2 {
		return &relation.ErrInvalidArity{Kr: kr, Kc: kc}
	}

	return nil
}

// checkParameters verifies that a window of nr x nc cells is exactly
// coverable by the derived tree shape.
func (t *Tree[T]) checkParameters(nr, nc int) error {
	if t.numRows != nr || t.numCols != nc {
		return &relation.ErrInvalidParameters{
			NR:      nr,
			NC:      nc,
			Kr:      t.kr,
			Kc:      t.kc,
			H:       t.h,
			NumRows: t.numRows,
			NumCols: t.numCols,
		}
	}

	return nil
}

// Kind returns the representation tag.
func (t *Tree[T]) Kind() relation.Kind { return relation.KindRectangular }

// H returns the height of the tree.
func (t *Tree[T]) H() int { return t.h }

// Kr returns the row arity.
func (t *Tree[T]) Kr() int { return t.kr }

// Kc returns the column arity.
func (t *Tree[T]) Kc() int { return t.kc }

// NumRows returns the padded number of rows.
func (t *Tree[T]) NumRows() int { return t.numRows }

// NumCols returns the padded number of columns.
func (t *Tree[T]) NumCols() int { return t.numCols }

// Null returns the designated null value.
func (t *Tree[T]) Null() T { return t.null }

// Stats summarises the shape and size of a tree.
type Stats struct {
	H         int
	Kr        int
	Kc        int
	NumRows   int
	NumCols   int
	TreeBits  int // |T|
	LeafSlots int // |L|
	Elements  int // non-null cells
}

// Stats returns the tree's shape and size summary.
func (t *Tree[T]) Stats() Stats {
	return Stats{
		H:         t.h,
		Kr:        t.kr,
		Kc:        t.kc,
		NumRows:   t.numRows,
		NumCols:   t.numCols,
		TreeBits:  t.tree.Len(),
		LeafSlots: t.leaves.Len(),
		Elements:  t.CountElements(),
	}
}

// IsNotNull reports whether cell (i, j) holds a non-null value.
func (t *Tree[T]) IsNotNull(i, j int) bool {
	return t.Get(i, j) != t.null
}

// Get returns the value of cell (i, j), or the null value.
func (t *Tree[T]) Get(i, j int) T {
	if t.leaves.Len() == 0 {
		return t.null
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	return t.get(nr, nc, i%nr, j%nc, (i/nr)*t.kc+j/nc)
}

func (t *Tree[T]) get(nr, nc, p, q, z int) T {
	if z >= t.tree.Len() {
		return t.leaves.Get(z - t.tree.Len())
	}
	if !t.tree.Get(z) {
		return t.null
	}

	cr, cc := nr/t.kr, nc/t.kc

	return t.get(cr, cc, p%cr, q%cc, t.rank.Rank(z+1)*t.kr*t.kc+(p/cr)*t.kc+q/cc)
}

// CountElements returns the number of non-null cells.
func (t *Tree[T]) CountElements() int {
	return t.leaves.CountNotNull(t.null)
}

// SetNull overwrites the value of cell (i, j) with null.
//
// Only the leaf slot is cleared: the child-presence bits above it and
// the rank directory stay as built. Region queries over an area
// containing (i, j) may therefore keep reporting it as non-empty even
// when every cell in it has been cleared.
func (t *Tree[T]) SetNull(i, j int) {
	if t.leaves.Len() == 0 {
		return
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc
	t.setNull(nr, nc, i%nr, j%nc, (i/nr)*t.kc+j/nc)
}

func (t *Tree[T]) setNull(nr, nc, p, q, z int) {
	if z >= t.tree.Len() {
		t.leaves.Set(z-t.tree.Len(), t.null)
		return
	}
	if !t.tree.Get(z) {
		return
	}

	cr, cc := nr/t.kr, nc/t.kc
	t.setNull(cr, cc, p%cr, q%cc, t.rank.Rank(z+1)*t.kr*t.kc+(p/cr)*t.kc+q/cc)
}

// Clone returns an independent deep copy of the tree. The rank
// directory is rebuilt against the copied bit vector.
func (t *Tree[T]) Clone() *Tree[T] {
	tree := t.tree.Clone()

	return &Tree[T]{
		tree:    tree,
		rank:    bitvector.NewRank(tree),
		leaves:  t.leaves.Clone(),
		h:       t.h,
		kr:      t.kr,
		kc:      t.kc,
		numRows: t.numRows,
		numCols: t.numCols,
		null:    t.null,
	}
}

// Describe writes a human-readable dump of the tree to w: the shape
// parameters and, with all set, the T and L sequences.
func (t *Tree[T]) Describe(w io.Writer, all bool) {
	fmt.Fprintf(w, "h = %d\n", t.h)
	fmt.Fprintf(w, "kr = %d\n", t.kr)
	fmt.Fprintf(w, "kc = %d\n", t.kc)
	fmt.Fprintf(w, "numRows = %d\n", t.numRows)
	fmt.Fprintf(w, "numCols = %d\n", t.numCols)
	fmt.Fprintf(w, "null = %v\n", t.null)

	if !all {
		return
	}

	fmt.Fprint(w, "T = ")
	for i := 0; i < t.tree.Len(); i++ {
		if t.tree.Get(i) {
			fmt.Fprint(w, "1")
		} else {
			fmt.Fprint(w, "0")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "L =")
	for i := 0; i < t.leaves.Len(); i++ {
		fmt.Fprintf(w, " %v", t.leaves.Get(i))
	}
	fmt.Fprintln(w)
}

/*
 * Method aliases using relation nomenclature.
 */

// AreRelated reports whether (i, j) is an edge of the relation.
func (t *Tree[T]) AreRelated(i, j int) bool { return t.IsNotNull(i, j) }

// Successors returns the columns related to row i.
func (t *Tree[T]) Successors(i int) []int { return t.SuccessorPositions(i) }

// Predecessors returns the rows related to column j.
func (t *Tree[T]) Predecessors(j int) []int { return t.PredecessorPositions(j) }

// Range returns the positions of all edges in [i1..i2] x [j1..j2].
func (t *Tree[T]) Range(i1, i2, j1, j2 int) []relation.Position {
	return t.PositionsInRange(i1, i2, j1, j2)
}

// ContainsLink reports whether [i1..i2] x [j1..j2] holds an edge.
func (t *Tree[T]) ContainsLink(i1, i2, j1, j2 int) bool {
	return t.ContainsElement(i1, i2, j1, j2)
}

// CountLinks returns the number of edges.
func (t *Tree[T]) CountLinks() int { return t.CountElements() }
