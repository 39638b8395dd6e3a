package krkc

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// leafStore holds the leaf-level blocks of the tree (the L sequence).
// One parametric query engine serves both specialisations: the generic
// tree stores values in a slice, the boolean tree packs them into a
// bitset where "non-null" coincides with "bit set".
type leafStore[T comparable] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
	Append(block []T)
	AppendOne(v T)
	// InsertNulls splices count null slots in front of position i.
	// Only used by the dynamic-bitmap builder.
	InsertNulls(i, count int)
	CountNotNull(null T) int
	Clone() leafStore[T]
}

// sliceLeaves is the generic leaf store.
type sliceLeaves[T comparable] struct {
	vals []T
	null T
}

func newSliceLeaves[T comparable](null T) *sliceLeaves[T] {
	return &sliceLeaves[T]{null: null}
}

func (s *sliceLeaves[T]) Len() int         { return len(s.vals) }
func (s *sliceLeaves[T]) Get(i int) T      { return s.vals[i] }
func (s *sliceLeaves[T]) Set(i int, v T)   { s.vals[i] = v }
func (s *sliceLeaves[T]) Append(block []T) { s.vals = append(s.vals, block...) }
func (s *sliceLeaves[T]) AppendOne(v T)    { s.vals = append(s.vals, v) }

func (s *sliceLeaves[T]) InsertNulls(i, count int) {
	nulls := make([]T, count)
	for j := range nulls {
		nulls[j] = s.null
	}
	s.vals = slices.Insert(s.vals, i, nulls...)
}

func (s *sliceLeaves[T]) CountNotNull(null T) int {
	count := 0
	for _, v := range s.vals {
		if v != null {
			count++
		}
	}

	return count
}

func (s *sliceLeaves[T]) Clone() leafStore[T] {
	return &sliceLeaves[T]{vals: slices.Clone(s.vals), null: s.null}
}

// bitLeaves is the boolean leaf store, packing L into a bitset.
type bitLeaves struct {
	bits   *bitset.BitSet
	length int
}

func newBitLeaves() *bitLeaves {
	return &bitLeaves{bits: bitset.New(0)}
}

func (b *bitLeaves) Len() int       { return b.length }
func (b *bitLeaves) Get(i int) bool { return b.bits.Test(uint(i)) }

func (b *bitLeaves) Set(i int, v bool) {
	if v {
		b.bits.Set(uint(i))
	} else {
		b.bits.Clear(uint(i))
	}
}

func (b *bitLeaves) Append(block []bool) {
	for j, v := range block {
		if v {
			b.bits.Set(uint(b.length + j))
		}
	}
	b.length += len(block)
}

func (b *bitLeaves) AppendOne(v bool) {
	if v {
		b.bits.Set(uint(b.length))
	}
	b.length++
}

func (b *bitLeaves) InsertNulls(i, count int) {
	for j := 0; j < count; j++ {
		b.bits.InsertAt(uint(i))
	}
	b.length += count
}

func (b *bitLeaves) CountNotNull(null bool) int {
	count := int(b.bits.Count())
	if null {
		return b.length - count
	}

	return count
}

func (b *bitLeaves) Clone() leafStore[bool] {
	return &bitLeaves{bits: b.bits.Clone(), length: b.length}
}
