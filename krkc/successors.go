package krkc

import "github.com/hupe1980/k2go/relation"

// subrow is one frontier entry of the iterative row traversal: a
// running column offset plus a candidate index into T.
type subrow struct {
	dq int
	z  int
}

// SuccessorElements returns the values of all non-null cells in row i,
// in column order.
func (t *Tree[T]) SuccessorElements(i int) []T {
	var succs []T
	t.eachSuccessorIterative(i, func(_ int, val T) {
		succs = append(succs, val)
	})

	return succs
}

// SuccessorPositions returns the columns of all non-null cells in row
// i, in column order.
func (t *Tree[T]) SuccessorPositions(i int) []int {
	var succs []int
	t.eachSuccessorIterative(i, func(col int, _ T) {
		succs = append(succs, col)
	})

	return succs
}

// SuccessorValuedPositions returns position and value of all non-null
// cells in row i, in column order.
func (t *Tree[T]) SuccessorValuedPositions(i int) []relation.ValuedPosition[T] {
	var succs []relation.ValuedPosition[T]
	t.eachSuccessorIterative(i, func(col int, val T) {
		succs = append(succs, relation.ValuedPosition[T]{Row: i, Col: col, Val: val})
	})

	return succs
}

// eachSuccessorIterative walks row p with an explicit per-level
// frontier instead of recursion. Each level expands every live frontier
// entry into the kc children on the row's band; when the frontier
// reaches the leaf level it yields the non-null cells.
func (t *Tree[T]) eachSuccessorIterative(p int, yield func(col int, val T)) {
	if t.leaves.Len() == 0 {
		return
	}

	lenT := t.tree.Len()

	if lenT == 0 {
		// Single-level tree: L is the whole padded matrix.
		offset := p * t.numCols
		for i := 0; i < t.numCols; i++ {
			if v := t.leaves.Get(offset + i); v != t.null {
				yield(i, v)
			}
		}

		return
	}

	nr := t.numRows / t.kr
	nc := t.numCols / t.kc
	relP := p

	queue := make([]subrow, 0, t.kc)
	for j, dq, z := 0, 0, t.kc*(relP/nr); j < t.kc; j, dq, z = j+1, dq+nc, z+1 {
		queue = append(queue, subrow{dq: dq, z: z})
	}

	relP %= nr
	nr /= t.kr
	nc /= t.kc
	for ; nr > 1; relP, nr, nc = relP%nr, nr/t.kr, nc/t.kc {
		next := make([]subrow, 0, len(queue))

		for _, cur := range queue {
			if !t.tree.Get(cur.z) {
				continue
			}

			y := t.rank.Rank(cur.z+1)*t.kr*t.kc + t.kc*(relP/nr)
			for j, dq := 0, cur.dq; j < t.kc; j, dq, y = j+1, dq+nc, y+1 {
				next = append(next, subrow{dq: dq, z: y})
			}
		}

		queue = next
	}

	// The frontier now holds the last internal level; its children are
	// leaf slots in L.
	for _, cur := range queue {
		if !t.tree.Get(cur.z) {
			continue
		}

		y := t.rank.Rank(cur.z+1)*t.kr*t.kc + t.kc*(relP/nr) - lenT
		for j, dq := 0, cur.dq; j < t.kc; j, dq, y = j+1, dq+nc, y+1 {
			if v := t.leaves.Get(y); v != t.null {
				yield(dq, v)
			}
		}
	}
}

// eachSuccessorRecursive is the depth-first twin of
// eachSuccessorIterative. On a single row both visit the columns left
// to right; it is kept for cross-checking.
func (t *Tree[T]) eachSuccessorRecursive(p int, yield func(col int, val T)) {
	if t.leaves.Len() == 0 {
		return
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	y := t.kc * (p / nr)
	for j := 0; j < t.kc; j++ {
		t.successorsRec(nr, nc, p%nr, nc*j, y+j, yield)
	}
}

func (t *Tree[T]) successorsRec(nr, nc, p, q, z int, yield func(col int, val T)) {
	if z >= t.tree.Len() {
		if v := t.leaves.Get(z - t.tree.Len()); v != t.null {
			yield(q, v)
		}

		return
	}

	if !t.tree.Get(z) {
		return
	}

	cr, cc := nr/t.kr, nc/t.kc

	y := t.rank.Rank(z+1)*t.kr*t.kc + t.kc*(p/cr)
	for j := 0; j < t.kc; j++ {
		t.successorsRec(cr, cc, p%cr, q+cc*j, y+j, yield)
	}
}

// successorFrame is one stack frame of the iterative first-successor
// walk: the child submatrix dimensions, the local row, the running
// column offset, the next candidate index and the child counter.
type successorFrame struct {
	nr int
	nc int
	p  int
	dq int
	z  int
	j  int
}

// FirstSuccessor returns the smallest column j with (i, j) non-null,
// or NumCols() if row i is empty. The walk visits children in column
// order, so the first non-null leaf found is the answer.
func (t *Tree[T]) FirstSuccessor(i int) int {
	if t.leaves.Len() == 0 {
		return t.numCols
	}

	lenT := t.tree.Len()

	if lenT == 0 {
		offset := i * t.numCols
		for j := 0; j < t.numCols; j++ {
			if t.leaves.Get(offset+j) != t.null {
				return j
			}
		}

		return t.numCols
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	stack := []successorFrame{{nr: nr, nc: nc, p: i % nr, dq: 0, z: t.kc * (i / nr), j: 0}}
	for len(stack) > 0 {
		cur := &stack[len(stack)-1]

		if cur.j == t.kc {
			stack = stack[:len(stack)-1]
			continue
		}

		var push *successorFrame

		if cur.z >= lenT {
			if t.leaves.Get(cur.z-lenT) != t.null {
				return cur.dq
			}
		} else if t.tree.Get(cur.z) {
			cr, cc := cur.nr/t.kr, cur.nc/t.kc
			push = &successorFrame{
				nr: cr,
				nc: cc,
				p:  cur.p % cr,
				dq: cur.dq,
				z:  t.rank.Rank(cur.z+1)*t.kr*t.kc + t.kc*(cur.p/cr),
				j:  0,
			}
		}

		cur.dq += cur.nc
		cur.z++
		cur.j++

		if push != nil {
			stack = append(stack, *push)
		}
	}

	return t.numCols
}

// firstSuccessorRecursive is the recursive twin of FirstSuccessor,
// kept for cross-checking.
func (t *Tree[T]) firstSuccessorRecursive(p int) int {
	if t.leaves.Len() == 0 {
		return t.numCols
	}

	nr, nc := t.numRows/t.kr, t.numCols/t.kc

	pos := t.numCols
	y := t.kc * (p / nr)
	for j := 0; j < t.kc && pos == t.numCols; j++ {
		pos = t.firstSuccessorRec(nr, nc, p%nr, nc*j, y+j)
	}

	return pos
}

func (t *Tree[T]) firstSuccessorRec(nr, nc, p, q, z int) int {
	if z >= t.tree.Len() {
		if t.leaves.Get(z-t.tree.Len()) != t.null {
			return q
		}

		return t.numCols
	}

	if !t.tree.Get(z) {
		return t.numCols
	}

	cr, cc := nr/t.kr, nc/t.kc

	pos := t.numCols
	y := t.rank.Rank(z+1)*t.kr*t.kc + t.kc*(p/cr)
	for j := 0; j < t.kc && pos == t.numCols; j++ {
		pos = t.firstSuccessorRec(cr, cc, p%cr, q+cc*j, y+j)
	}

	return pos
}
