package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/k2go/relation"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SparseMatrix generates a rows x cols matrix in which each cell is
// non-null (drawn from [1, maxVal]) with the given density. 0 is the
// null value.
func (r *RNG) SparseMatrix(rows, cols int, density float64, maxVal int) [][]int {
	mat := make([][]int, rows)
	for i := range mat {
		mat[i] = make([]int, cols)
		for j := range mat[i] {
			if r.Float64() < density {
				mat[i][j] = 1 + r.Intn(maxVal)
			}
		}
	}

	return mat
}

// ListsFromMatrix converts a matrix with null value 0 into row
// adjacency lists sorted by column.
func ListsFromMatrix(mat [][]int) []relation.List[int] {
	lists := make([]relation.List[int], len(mat))
	for i, row := range mat {
		for j, v := range row {
			if v != 0 {
				lists[i] = append(lists[i], relation.Entry[int]{Col: j, Val: v})
			}
		}
	}

	return lists
}

// PairsFromMatrix converts a matrix with null value 0 into a flat pair
// list in row-major order.
func PairsFromMatrix(mat [][]int) []relation.Pair[int] {
	var pairs []relation.Pair[int]
	for i, row := range mat {
		for j, v := range row {
			if v != 0 {
				pairs = append(pairs, relation.Pair[int]{Row: i, Col: j, Val: v})
			}
		}
	}

	return pairs
}

// BoolMatrixFromMatrix converts a matrix with null value 0 into a bit
// matrix.
func BoolMatrixFromMatrix(mat [][]int) [][]bool {
	out := make([][]bool, len(mat))
	for i, row := range mat {
		out[i] = make([]bool, len(row))
		for j, v := range row {
			out[i][j] = v != 0
		}
	}

	return out
}

// BoolListsFromMatrix converts a matrix with null value 0 into column
// lists sorted ascending.
func BoolListsFromMatrix(mat [][]int) [][]int {
	lists := make([][]int, len(mat))
	for i, row := range mat {
		for j, v := range row {
			if v != 0 {
				lists[i] = append(lists[i], j)
			}
		}
	}

	return lists
}

// PositionsFromMatrix converts a matrix with null value 0 into a
// position list in row-major order.
func PositionsFromMatrix(mat [][]int) []relation.Position {
	var positions []relation.Position
	for i, row := range mat {
		for j, v := range row {
			if v != 0 {
				positions = append(positions, relation.Position{Row: i, Col: j})
			}
		}
	}

	return positions
}
