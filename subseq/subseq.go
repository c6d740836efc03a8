// Package subseq provides a constant-time, copy-free window over an
// owning slice.
//
// A SubSeq is a triple (owner, start, stop): every slicing operation
// produces a new SubSeq over the same backing array instead of copying
// elements, which is the substrate the suffix-array, suffix-tree and
// BWT constructions in this module build on to avoid O(n) allocations
// per edge label or per recursive call.
package subseq

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a SubSeq is constructed, or sliced,
// with bounds outside [0, len(owner)] or start > stop. Violating it is a
// programming error, not a recoverable input condition.
var ErrIndexOutOfRange = errors.New("subseq: index out of range")

// SubSeq is an immutable, O(1)-constructible window into an owning
// slice. The zero value is not useful; construct with New.
type SubSeq[T any] struct {
	owner      []T
	start, end int
}

// normalize resolves possibly-negative start/stop against ownerLen the
// way Python slicing does, then validates the result.
func normalize(ownerLen, start, stop int) (int, int, error) {
	if start < 0 {
		start += ownerLen
	}
	if stop < 0 {
		stop += ownerLen
	}
	if start > stop || start < 0 || stop < 0 || start > ownerLen || stop > ownerLen {
		return 0, 0, fmt.Errorf("%w: start=%d stop=%d len=%d", ErrIndexOutOfRange, start, stop, ownerLen)
	}
	return start, stop, nil
}

// New constructs a SubSeq over owner[start:stop]. Negative start/stop are
// interpreted relative to len(owner), as in Python slicing.
func New[T any](owner []T, start, stop int) (SubSeq[T], error) {
	s, e, err := normalize(len(owner), start, stop)
	if err != nil {
		return SubSeq[T]{}, err
	}
	return SubSeq[T]{owner: owner, start: s, end: e}, nil
}

// Full returns a SubSeq spanning the whole of owner.
func Full[T any](owner []T) SubSeq[T] {
	return SubSeq[T]{owner: owner, start: 0, end: len(owner)}
}

// Len returns the number of elements in the window.
func (s SubSeq[T]) Len() int { return s.end - s.start }

// Empty reports whether the window has no elements.
func (s SubSeq[T]) Empty() bool { return s.start >= s.end }

// At returns the element at index i within the window.
// Panics with ErrIndexOutOfRange if i is outside [0, Len()).
func (s SubSeq[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, s.Len()))
	}
	return s.owner[s.start+i]
}

// First returns the element at the head of the window; callers must
// ensure the window is non-empty.
func (s SubSeq[T]) First() T { return s.owner[s.start] }

// Slice returns a new window over the same owner, further sliced
// relative to this window's own bounds. Negative start/stop are
// relative to Len().
func (s SubSeq[T]) Slice(start, stop int) (SubSeq[T], error) {
	a, b, err := normalize(s.Len(), start, stop)
	if err != nil {
		return SubSeq[T]{}, err
	}
	return SubSeq[T]{owner: s.owner, start: s.start + a, end: s.start + b}, nil
}

// From returns the suffix of the window starting at i (equivalent to
// Slice(i, Len())), panicking on an out-of-range i since this primitive
// is used on the hot path of every suffix-tree and BWT construction.
func (s SubSeq[T]) From(i int) SubSeq[T] {
	r, err := s.Slice(i, s.Len())
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the elements of the window as a freshly allocated slice.
// Use sparingly: unlike the rest of SubSeq's API this does copy.
func (s SubSeq[T]) All() []T {
	out := make([]T, s.Len())
	copy(out, s.owner[s.start:s.end])
	return out
}

// ForEach calls f for every element of the window in order, stopping
// early if f returns false.
func (s SubSeq[T]) ForEach(f func(i int, v T) bool) {
	for i := s.start; i < s.end; i++ {
		if !f(i-s.start, s.owner[i]) {
			return
		}
	}
}

// Equal reports whether s and other have the same length and are
// element-wise equal.
func Equal[T comparable](s SubSeq[T], other []T) bool {
	if s.Len() != len(other) {
		return false
	}
	for i, v := range other {
		if s.owner[s.start+i] != v {
			return false
		}
	}
	return true
}

// EqualSeq reports whether two SubSeqs (possibly over different owners)
// are element-wise equal.
func EqualSeq[T comparable](a, b SubSeq[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.owner[a.start+i] != b.owner[b.start+i] {
			return false
		}
	}
	return true
}

// Compare lexicographically compares a and b, returning -1, 0, or 1.
// On a prefix tie the shorter sequence is less.
func Compare[T cmp.Ordered](a, b SubSeq[T]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		av, bv := a.owner[a.start+i], b.owner[b.start+i]
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Less reports whether a sorts strictly before b.
func Less[T cmp.Ordered](a, b SubSeq[T]) bool {
	return Compare(a, b) < 0
}

// MSubSeq is a SubSeq that additionally supports indexed and
// broadcast writes into the shared owner.
type MSubSeq[T any] struct {
	SubSeq[T]
}

// NewMutable constructs a mutable window over owner[start:stop].
func NewMutable[T any](owner []T, start, stop int) (MSubSeq[T], error) {
	s, err := New(owner, start, stop)
	if err != nil {
		return MSubSeq[T]{}, err
	}
	return MSubSeq[T]{SubSeq: s}, nil
}

// FullMutable returns a mutable SubSeq spanning the whole of owner.
func FullMutable[T any](owner []T) MSubSeq[T] {
	return MSubSeq[T]{SubSeq: Full(owner)}
}

// Set writes v at index i within the window.
func (s MSubSeq[T]) Set(i int, v T) { s.owner[s.start+i] = v }

// SetAll broadcasts v to every element in the window.
func (s MSubSeq[T]) SetAll(v T) {
	for i := s.start; i < s.end; i++ {
		s.owner[i] = v
	}
}

// SetSlice broadcasts v to the window's [start, stop) range (relative to
// the window's own bounds).
func (s MSubSeq[T]) SetSlice(start, stop int, v T) error {
	a, b, err := normalize(s.Len(), start, stop)
	if err != nil {
		return err
	}
	for i := s.start + a; i < s.start+b; i++ {
		s.owner[i] = v
	}
	return nil
}

// Slice returns a mutable window over the same owner.
func (s MSubSeq[T]) Slice(start, stop int) (MSubSeq[T], error) {
	sub, err := s.SubSeq.Slice(start, stop)
	if err != nil {
		return MSubSeq[T]{}, err
	}
	return MSubSeq[T]{SubSeq: sub}, nil
}
