// Package k2go provides succinct K²-tree representations of sparse
// two-dimensional relations.
//
// A relation is a rectangular matrix with a distinguished null value;
// the compressed form supports random access, neighbourhood
// enumeration and range queries without decompression. The rectangular
// base variant subdivides rows and columns by independent arities
// (kr, kc), so the matrix may be rectangular.
//
// # Quick Start
//
// Build from a dense matrix and query in place:
//
//	mat := [][]int{
//		{0, 7, 0, 0},
//		{0, 0, 0, 0},
//		{0, 0, 0, 3},
//		{0, 0, 5, 0},
//	}
//
//	rel, _ := k2go.BuildFromMatrix(mat, 2, 2, 0)
//	rel.Get(0, 1)              // 7
//	rel.SuccessorPositions(2)  // [3]
//	rel.CountElements()        // 3
//
// Sparse inputs avoid materialising the matrix:
//
//	pairs := []k2go.Pair[int]{{Row: 0, Col: 1, Val: 7}, {Row: 2, Col: 3, Val: 3}}
//	rel, _ := k2go.BuildFromPairs(pairs, 2, 2, 0)
//
// Boolean relations pack the leaf level into a bitset and interoperate
// with roaring bitmaps:
//
//	rel, _ := k2go.BuildFromBitmap(bm, 64, 2, 2)
//
// Trees are immutable after construction; all queries are safe for
// concurrent use. The only mutator is SetNull, which clears a single
// cell without updating the internal structure — see the krkc package
// for the staleness caveat.
package k2go
