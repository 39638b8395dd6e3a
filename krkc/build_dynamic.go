package krkc

import (
	"slices"

	"github.com/hupe1980/k2go/internal/dynrank"
	"github.com/hupe1980/k2go/internal/mathx"
	"github.com/hupe1980/k2go/relation"
)

// buildListsDynamic builds the tree one cell at a time, growing T in
// place under a naive dynamic rank helper. The helper is scratch: the
// static rank directory replaces it when the bits are sealed.
func (t *Tree[T]) buildListsDynamic(lists []relation.List[T], x, y, nr, nc int) {
	if t.h == 1 {
		block := make([]T, t.kr*t.kc)
		for i := range block {
			block[i] = t.null
		}

		for i := x; i < x+nr && i < len(lists); i++ {
			for _, e := range lists[i] {
				if y <= e.Col && e.Col < y+nc {
					block[(i-x)*t.kc+e.Col-y] = e.Val
				}
			}
		}

		if !mathx.IsAll(block, t.null) {
			t.leaves.Append(block)
		}
		t.sealBits(nil)

		return
	}

	b := &dynBuilder[T]{t: t}

	for i := x; i < x+nr && i < len(lists); i++ {
		for _, e := range lists[i] {
			if y <= e.Col && e.Col < y+nc {
				b.insertInit(i-x, e.Col-y, e.Val)
			}
		}
	}

	t.sealBits(b.bits)
}

// dynBuilder carries the growing bit sequence and its rank view.
type dynBuilder[T comparable] struct {
	t    *Tree[T]
	bits []bool
	rank *dynrank.Rank
}

func (b *dynBuilder[T]) insertInit(p, q int, val T) {
	t := b.t

	if len(b.bits) == 0 {
		b.bits = make([]bool, t.kr*t.kc)
		b.rank = dynrank.New(t.kr * t.kc)
	}

	cr, cc := t.numRows/t.kr, t.numCols/t.kc
	b.insert(cr, cc, p%cr, q%cc, val, (p/cr)*t.kc+q/cc, 1)
}

func (b *dynBuilder[T]) insert(nr, nc, p, q int, val T, z, l int) {
	t := b.t
	kk := t.kr * t.kc
	cr, cc := nr/t.kr, nc/t.kc

	if !b.bits[z] {
		b.bits[z] = true
		b.rank.IncreaseFrom(z + 1)

		y := b.rank.Rank(z+1)*kk + (p/cr)*t.kc + q/cc

		if l+1 == t.h {
			t.leaves.InsertNulls(b.rank.Rank(z+1)*kk-len(b.bits), kk)
			t.leaves.Set(y-len(b.bits), val)
		} else {
			at := b.rank.Rank(z+1) * kk
			b.bits = slices.Insert(b.bits, at, make([]bool, kk)...)
			b.rank.Insert(at+1, kk)

			b.insert(cr, cc, p%cr, q%cc, val, y, l+1)
		}

		return
	}

	y := b.rank.Rank(z+1)*kk + (p/cr)*t.kc + q/cc

	if l+1 == t.h {
		t.leaves.Set(y-len(b.bits), val)
	} else {
		b.insert(cr, cc, p%cr, q%cc, val, y, l+1)
	}
}
