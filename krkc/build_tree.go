package krkc

import "github.com/hupe1980/k2go/relation"

// buildListsViaTree builds an explicit scratch tree from the window
// (x, y, nr, nc) of the relation lists and then emits T and L in one
// breadth-first pass over it.
func (t *Tree[T]) buildListsViaTree(lists []relation.List[T], x, y, nr, nc int) {
	root := &node[T]{label: t.null}

	for i := x; i < x+nr && i < len(lists); i++ {
		for _, e := range lists[i] {
			if y <= e.Col && e.Col < y+nc {
				t.insertScratch(root, nr, nc, i-x, e.Col-y, e.Val)
			}
		}
	}

	if root.isLeaf() {
		t.sealBits(nil)
		return
	}

	var bits []bool

	queue := []*node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for i := 0; i < t.kr*t.kc; i++ {
			child := n.children[i]

			if child != nil && child.isLeaf() {
				t.leaves.AppendOne(child.label)
			} else {
				bits = append(bits, child != nil)
				if child != nil {
					queue = append(queue, child)
				}
			}
		}
	}

	t.sealBits(bits)
}

// insertScratch descends from n, creating internal nodes on demand,
// until the submatrix has shrunk to a single kr x kc block, and
// installs the value as a leaf there.
func (t *Tree[T]) insertScratch(n *node[T], nr, nc, p, q int, val T) {
	if nr == t.kr {
		if n.isLeaf() {
			n.turnInternal(t.kr*t.kc, true)
		}
		n.addChild(p*t.kc+q, val)

		return
	}

	if n.isLeaf() {
		n.turnInternal(t.kr*t.kc, false)
	}

	cr, cc := nr/t.kr, nc/t.kc
	z := (p/cr)*t.kc + q/cc

	child := n.children[z]
	if child == nil {
		child = n.addChild(z, t.null)
	}

	t.insertScratch(child, cr, cc, p%cr, q%cc, val)
}
