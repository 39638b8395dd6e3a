package k2go

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/k2go/krkc"
	"github.com/hupe1980/k2go/relation"
)

// Re-exported value types for ergonomic call sites.
type (
	// Position is a (row, column) cell address.
	Position = relation.Position

	// ValuedPosition is a cell address together with the cell's value.
	ValuedPosition[T any] relation.ValuedPosition[T]

	// Pair is one entry of a flat relation pair list.
	Pair[T any] relation.Pair[T]

	// Entry is one cell of a row adjacency list.
	Entry[T any] relation.Entry[T]

	// List is a row adjacency list, sorted by column.
	List[T any] []Entry[T]
)

// BuildFromMatrix builds a rectangular tree from a dense relation
// matrix with the given arities and null value.
func BuildFromMatrix[T comparable](mat [][]T, kr, kc int, null T, opts ...Option) (relation.Relation[T], error) {
	o := applyOptions(opts)

	var (
		t   *krkc.Tree[T]
		err error
	)

	if w := o.window; w != nil {
		t, err = krkc.FromMatrixWindow(mat, w.X, w.Y, w.NR, w.NC, kr, kc, null)
	} else {
		t, err = krkc.FromMatrix(mat, kr, kc, null)
	}
	if err != nil {
		return nil, err
	}

	logBuild(o.logger, "matrix", t.Stats())

	return t, nil
}

// BuildFromLists builds a rectangular tree from row adjacency lists,
// each sorted by column. The algorithm is selected via WithListsMode.
func BuildFromLists[T comparable](lists []List[T], kr, kc int, null T, opts ...Option) (relation.Relation[T], error) {
	o := applyOptions(opts)

	var (
		t   *krkc.Tree[T]
		err error
	)

	rlists := make([]relation.List[T], len(lists))
	for i, l := range lists {
		rl := make(relation.List[T], len(l))
		for j, e := range l {
			rl[j] = relation.Entry[T](e)
		}
		rlists[i] = rl
	}

	if w := o.window; w != nil {
		t, err = krkc.FromListsWindow(rlists, w.X, w.Y, w.NR, w.NC, kr, kc, o.listsMode, null)
	} else {
		t, err = krkc.FromLists(rlists, kr, kc, o.listsMode, null)
	}
	if err != nil {
		return nil, err
	}

	logBuild(o.logger, "lists", t.Stats())

	return t, nil
}

// BuildFromPairs builds a rectangular tree from a flat pair list in
// arbitrary order. The slice is partitioned in place.
func BuildFromPairs[T comparable](pairs []Pair[T], kr, kc int, null T, opts ...Option) (relation.Relation[T], error) {
	o := applyOptions(opts)

	var (
		t   *krkc.Tree[T]
		err error
	)

	rpairs := make([]relation.Pair[T], len(pairs))
	for i, p := range pairs {
		rpairs[i] = relation.Pair[T](p)
	}

	if w := o.window; w != nil {
		t, err = krkc.FromPairsWindow(rpairs, w.X, w.Y, w.NR, w.NC, 0, len(rpairs), kr, kc, null)
	} else {
		t, err = krkc.FromPairs(rpairs, kr, kc, null)
	}

	for i, p := range rpairs {
		pairs[i] = Pair[T](p)
	}

	if err != nil {
		return nil, err
	}

	logBuild(o.logger, "pairs", t.Stats())

	return t, nil
}

// BuildFromBoolMatrix builds a boolean tree from a dense bit matrix.
// The leaf level is packed into a bitset.
func BuildFromBoolMatrix(mat [][]bool, kr, kc int, opts ...Option) (relation.Relation[bool], error) {
	o := applyOptions(opts)

	var (
		t   *krkc.Tree[bool]
		err error
	)

	if w := o.window; w != nil {
		t, err = krkc.FromBoolMatrixWindow(mat, w.X, w.Y, w.NR, w.NC, kr, kc)
	} else {
		t, err = krkc.FromBoolMatrix(mat, kr, kc)
	}
	if err != nil {
		return nil, err
	}

	logBuild(o.logger, "bool matrix", t.Stats())

	return t, nil
}

// BuildFromBitmap builds a boolean tree from a roaring bitmap of
// linearised cell positions row*numCols + col.
func BuildFromBitmap(bm *roaring.Bitmap, numCols, kr, kc int, opts ...Option) (relation.Relation[bool], error) {
	o := applyOptions(opts)

	t, err := krkc.FromBitmap(bm, numCols, kr, kc)
	if err != nil {
		return nil, err
	}

	logBuild(o.logger, "bitmap", t.Stats())

	return t, nil
}

func logBuild(logger *Logger, source string, stats krkc.Stats) {
	logger.WithKind(relation.KindRectangular.String()).Debug("built tree",
		"source", source,
		"h", stats.H,
		"kr", stats.Kr,
		"kc", stats.Kc,
		"num_rows", stats.NumRows,
		"num_cols", stats.NumCols,
		"tree_bits", stats.TreeBits,
		"leaf_slots", stats.LeafSlots,
		"elements", stats.Elements,
	)
}
