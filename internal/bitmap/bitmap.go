// Package bitmap provides a compressed set of record positions.
//
// It wraps a 32-bit Roaring Bitmap and is used to track which positions of a
// store's full record slice survive the active persistent filters.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of record positions.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Range creates a set holding every position in [0, n).
func Range(n int) *Set {
	s := New()
	s.AddRange(0, n)
	return s
}

// Add adds a position.
func (s *Set) Add(pos int) {
	s.rb.Add(uint32(pos))
}

// AddRange adds every position in [lo, hi).
func (s *Set) AddRange(lo, hi int) {
	if hi <= lo {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi))
}

// Remove removes a position.
func (s *Set) Remove(pos int) {
	s.rb.Remove(uint32(pos))
}

// Contains reports whether pos is in the set.
func (s *Set) Contains(pos int) bool {
	return s.rb.Contains(uint32(pos))
}

// IsEmpty reports whether the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (s *Set) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And intersects s with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Equals reports whether both sets hold the same positions.
func (s *Set) Equals(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// All iterates positions in ascending order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Clear removes every position.
func (s *Set) Clear() {
	s.rb.Clear()
}
