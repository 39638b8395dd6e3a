package krkc

import (
	"github.com/hupe1980/k2go/internal/mathx"
	"github.com/hupe1980/k2go/relation"
)

// subproblem describes a rectangular submatrix together with the
// pair-list range [left, right) whose entries fall in it.
type subproblem struct {
	firstRow int
	lastRow  int
	firstCol int
	lastCol  int
	left     int
	right    int
}

// FromPairs builds a tree from a flat pair list in arbitrary order.
// The slice is partitioned in place by a counting sort per subproblem;
// callers that need the original order must pass a copy.
func FromPairs[T comparable](pairs []relation.Pair[T], kr, kc int, null T) (*Tree[T], error) {
	return fromPairs(pairs, kr, kc, null, newSliceLeaves[T](null))
}

// FromPairsWindow builds a tree from the nr x nc submatrix with
// top-left cell (x, y), restricted to the pair range [l, r). Like
// FromPairs it permutes pairs[l:r] in place.
func FromPairsWindow[T comparable](pairs []relation.Pair[T], x, y, nr, nc, l, r, kr, kc int, null T) (*Tree[T], error) {
	return fromPairsWindow(pairs, x, y, nr, nc, l, r, kr, kc, null, newSliceLeaves[T](null))
}

func fromPairs[T comparable](pairs []relation.Pair[T], kr, kc int, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}

	maxRow, maxCol := 0, 0
	for _, p := range pairs {
		maxRow = max(maxRow, p.Row)
		maxCol = max(maxCol, p.Col)
	}

	h := max(1, mathx.CeilLog(maxRow+1, kr), mathx.CeilLog(maxCol+1, kc))

	t := newTree(kr, kc, h, null, leaves)

	if len(pairs) == 0 {
		t.sealBits(nil)
		return t, nil
	}

	t.buildPairsInplace(pairs, 0, 0, t.numRows, t.numCols, 0, len(pairs))

	return t, nil
}

func fromPairsWindow[T comparable](pairs []relation.Pair[T], x, y, nr, nc, l, r, kr, kc int, null T, leaves leafStore[T]) (*Tree[T], error) {
	if err := checkArity(kr, kc); err != nil {
		return nil, err
	}

	h := max(1, mathx.CeilLog(nr, kr), mathx.CeilLog(nc, kc))

	t := newTree(kr, kc, h, null, leaves)
	if err := t.checkParameters(nr, nc); err != nil {
		return nil, err
	}

	if l == r {
		t.sealBits(nil)
		return t, nil
	}

	t.buildPairsInplace(pairs, x, y, nr, nc, l, r)

	return t, nil
}

// buildPairsInplace partitions the pair range breadth-first over
// subproblems. Internal subproblems counting-sort their slice by child
// key and emit one presence bit per child; leaf subproblems scatter
// their pairs into a null-initialised value block.
func (t *Tree[T]) buildPairsInplace(pairs []relation.Pair[T], x, y, nr, nc, l, r int) {
	kk := t.kr * t.kc
	intervals := make([][2]int, kk)

	var bits []bool

	queue := []subproblem{{x, x + nr - 1, y, y + nc - 1, l, r}}
	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]

		sr := sp.lastRow - sp.firstRow + 1
		sc := sp.lastCol - sp.firstCol + 1

		if sr > t.kr {
			t.countingSort(pairs, intervals, sp, sr/t.kr, sc/t.kc)

			for i := 0; i < kk; i++ {
				if intervals[i][0] >= intervals[i][1] {
					bits = append(bits, false)
					continue
				}

				bits = append(bits, true)
				queue = append(queue, subproblem{
					firstRow: sp.firstRow + (i/t.kc)*(sr/t.kr),
					lastRow:  sp.firstRow + (i/t.kc+1)*(sr/t.kr) - 1,
					firstCol: sp.firstCol + (i%t.kc)*(sc/t.kc),
					lastCol:  sp.firstCol + (i%t.kc+1)*(sc/t.kc) - 1,
					left:     sp.left + intervals[i][0],
					right:    sp.left + intervals[i][1],
				})
			}

			continue
		}

		block := make([]T, kk)
		for i := range block {
			block[i] = t.null
		}
		for i := sp.left; i < sp.right; i++ {
			block[(pairs[i].Row-sp.firstRow)*t.kc+pairs[i].Col-sp.firstCol] = pairs[i].Val
		}

		t.leaves.Append(block)
	}

	t.sealBits(bits)
}

// countingSort stably reorders the subproblem's pair slice by child
// key and records each key's interval relative to sp.left.
func (t *Tree[T]) countingSort(pairs []relation.Pair[T], intervals [][2]int, sp subproblem, widthRow, widthCol int) {
	key := func(p relation.Pair[T]) int {
		return ((p.Row-sp.firstRow)/widthRow)*t.kc + (p.Col-sp.firstCol)/widthCol
	}

	counts := make([]int, t.kr*t.kc)
	for i := sp.left; i < sp.right; i++ {
		counts[key(pairs[i])]++
	}

	total := 0
	for k := range counts {
		c := counts[k]
		counts[k] = total
		total += c

		intervals[k][0] = counts[k]
		intervals[k][1] = total
	}

	tmp := make([]relation.Pair[T], sp.right-sp.left)
	for i := sp.left; i < sp.right; i++ {
		p := pairs[i]
		tmp[counts[key(p)]] = p
		counts[key(p)]++
	}

	copy(pairs[sp.left:sp.right], tmp)
}
