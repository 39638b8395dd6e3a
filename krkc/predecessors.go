package krkc

import "github.com/hupe1980/k2go/relation"

// PredecessorElements returns the values of all non-null cells in
// column j, in row order.
func (t *Tree[T]) PredecessorElements(j int) []T {
	var preds []T
	t.eachPredecessor(j, func(_ int, val T) {
		preds = append(preds, val)
	})

	return preds
}

// PredecessorPositions returns the rows of all non-null cells in
// column j, in row order.
func (t *Tree[T]) PredecessorPositions(j int) []int {
	var preds []int
	t.eachPredecessor(j, func(row int, _ T) {
		preds = append(preds, row)
	})

	return preds
}

// PredecessorValuedPositions returns position and value of all
// non-null cells in column j, in row order.
func (t *Tree[T]) PredecessorValuedPositions(j int) []relation.ValuedPosition[T] {
	var preds []relation.ValuedPosition[T]
	t.eachPredecessor(j, func(row int, val T) {
		preds = append(preds, relation.ValuedPosition[T]{Row: row, Col: j, Val: val})
	})

	return preds
}

// eachPredecessor descends along the fixed column q, iterating the kr
// row children of every live node.
func (t *Tree[T]) eachPredecessor(q int, yield func(row int, val T)) {
	if t.leaves.Len() == 0 {
		return
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	y := q / nc
	for i := 0; i < t.kr; i++ {
		t.predecessorsRec(nr, nc, q%nc, nr*i, y+i*t.kc, yield)
	}
}

func (t *Tree[T]) predecessorsRec(nr, nc, q, p, z int, yield func(row int, val T)) {
	if z >= t.tree.Len() {
		if v := t.leaves.Get(z - t.tree.Len()); v != t.null {
			yield(p, v)
		}

		return
	}

	if !t.tree.Get(z) {
		return
	}

	cr, cc := nr/t.kr, nc/t.kc

	y := t.rank.Rank(z+1)*t.kr*t.kc + q/cc
	for i := 0; i < t.kr; i++ {
		t.predecessorsRec(cr, cc, q%cc, p+cr*i, y+i*t.kc, yield)
	}
}
