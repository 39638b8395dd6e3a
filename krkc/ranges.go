package krkc

import "github.com/hupe1980/k2go/relation"

// ElementsInRange returns the values of all non-null cells in
// [i1..i2] x [j1..j2].
func (t *Tree[T]) ElementsInRange(i1, i2, j1, j2 int) []T {
	var elements []T
	t.eachInRange(i1, i2, j1, j2, func(_, _ int, val T) {
		elements = append(elements, val)
	})

	return elements
}

// PositionsInRange returns the positions of all non-null cells in
// [i1..i2] x [j1..j2].
func (t *Tree[T]) PositionsInRange(i1, i2, j1, j2 int) []relation.Position {
	var positions []relation.Position
	t.eachInRange(i1, i2, j1, j2, func(dp, dq int, _ T) {
		positions = append(positions, relation.Position{Row: dp, Col: dq})
	})

	return positions
}

// ValuedPositionsInRange returns position and value of all non-null
// cells in [i1..i2] x [j1..j2].
func (t *Tree[T]) ValuedPositionsInRange(i1, i2, j1, j2 int) []relation.ValuedPosition[T] {
	var positions []relation.ValuedPosition[T]
	t.eachInRange(i1, i2, j1, j2, func(dp, dq int, val T) {
		positions = append(positions, relation.ValuedPosition[T]{Row: dp, Col: dq, Val: val})
	})

	return positions
}

// AllElements returns the values of all non-null cells.
func (t *Tree[T]) AllElements() []T {
	return t.ElementsInRange(0, t.numRows-1, 0, t.numCols-1)
}

// AllPositions returns the positions of all non-null cells.
func (t *Tree[T]) AllPositions() []relation.Position {
	return t.PositionsInRange(0, t.numRows-1, 0, t.numCols-1)
}

// AllValuedPositions returns position and value of all non-null cells.
func (t *Tree[T]) AllValuedPositions() []relation.ValuedPosition[T] {
	return t.ValuedPositionsInRange(0, t.numRows-1, 0, t.numCols-1)
}

// eachInRange descends every node whose covered submatrix intersects
// [p1..p2] x [q1..q2], clipping the range to each child, and yields
// every non-null leaf with its absolute coordinates.
func (t *Tree[T]) eachInRange(p1, p2, q1, q2 int, yield func(dp, dq int, val T)) {
	if t.leaves.Len() == 0 {
		return
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	for i := p1 / nr; i <= p2/nr; i++ {
		p1c, p2c := clip(p1, p2, i, nr)
		for j := q1 / nc; j <= q2/nc; j++ {
			q1c, q2c := clip(q1, q2, j, nc)
			t.rangeRec(nr, nc, p1c, p2c, q1c, q2c, nr*i, nc*j, t.kc*i+j, yield)
		}
	}
}

func (t *Tree[T]) rangeRec(nr, nc, p1, p2, q1, q2, dp, dq, z int, yield func(dp, dq int, val T)) {
	if z >= t.tree.Len() {
		if v := t.leaves.Get(z - t.tree.Len()); v != t.null {
			yield(dp, dq, v)
		}

		return
	}

	if !t.tree.Get(z) {
		return
	}

	cr, cc := nr/t.kr, nc/t.kc

	y := t.rank.Rank(z+1) * t.kr * t.kc
	for i := p1 / cr; i <= p2/cr; i++ {
		p1c, p2c := clip(p1, p2, i, cr)
		for j := q1 / cc; j <= q2/cc; j++ {
			q1c, q2c := clip(q1, q2, j, cc)
			t.rangeRec(cr, cc, p1c, p2c, q1c, q2c, dp+cr*i, dq+cc*j, y+t.kc*i+j, yield)
		}
	}
}

// clip maps the range [lo, hi] onto child i of width w: interior
// children cover their whole span, the boundary children are cut at
// the range ends.
func clip(lo, hi, i, w int) (int, int) {
	clo := 0
	if i == lo/w {
		clo = lo % w
	}

	chi := w - 1
	if i == hi/w {
		chi = hi % w
	}

	return clo, chi
}

// ContainsElement reports whether [i1..i2] x [j1..j2] holds at least
// one non-null cell. A node whose covered region is entirely inside
// the range answers true without descending: it is only present in T
// because some descendant is non-null.
//
// After SetNull this short-circuit may report a region as non-empty
// even though every cell in it has been cleared.
func (t *Tree[T]) ContainsElement(i1, i2, j1, j2 int) bool {
	if t.leaves.Len() == 0 {
		return false
	}

	if i1 == 0 && j1 == 0 && i2 == t.numRows-1 && j2 == t.numCols-1 {
		return true
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	for i := i1 / nr; i <= i2/nr; i++ {
		p1c, p2c := clip(i1, i2, i, nr)
		for j := j1 / nc; j <= j2/nc; j++ {
			q1c, q2c := clip(j1, j2, j, nc)
			if t.containsRec(nr, nc, p1c, p2c, q1c, q2c, t.kc*i+j) {
				return true
			}
		}
	}

	return false
}

func (t *Tree[T]) containsRec(nr, nc, p1, p2, q1, q2, z int) bool {
	if z >= t.tree.Len() {
		return t.leaves.Get(z-t.tree.Len()) != t.null
	}

	if !t.tree.Get(z) {
		return false
	}

	if p1 == 0 && q1 == 0 && p2 == nr-1 && q2 == nc-1 {
		return true
	}

	cr, cc := nr/t.kr, nc/t.kc

	y := t.rank.Rank(z+1) * t.kr * t.kc
	for i := p1 / cr; i <= p2/cr; i++ {
		p1c, p2c := clip(p1, p2, i, cr)
		for j := q1 / cc; j <= q2/cc; j++ {
			q1c, q2c := clip(q1, q2, j, cc)
			if t.containsRec(cr, cc, p1c, p2c, q1c, q2c, y+t.kc*i+j) {
				return true
			}
		}
	}

	return false
}
