package treaps

/*
BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
)

// Seq is a positional sequence of elements, organized as a treap with
// implicit keys: the position of an element is given by the number of
// elements preceding it in the tree.
//
// A sequence created by
//
//	Seq[T]{}
//
// is a valid object and behaves like an empty sequence with a default seed.
// Sequences must not be copied by value after first use; use Clone, Move or
// Swap instead.
//
// Positions are 0-based.
type Seq[T any] struct {
	t tree[T]
}

// New creates an empty sequence.
func New[T any](opts ...Option) *Seq[T] {
	c := configure(opts)
	s := &Seq[T]{}
	s.t.init(c.seed)
	return s
}

// Size returns the number of elements of s.
func (s *Seq[T]) Size() int {
	return s.t.len()
}

// Empty returns true for a sequence without elements.
func (s *Seq[T]) Empty() bool {
	return s.t.root == nil
}

// SetSeed re-seeds the random generator of s. This affects the priorities of
// future elements only.
func (s *Seq[T]) SetSeed(seed uint64) {
	s.t.seed(seed)
}

// Insert inserts value at position pos and returns a reference to the
// stored element. Positions beyond the end of s are clamped to the end,
// negative positions to the front.
//
// Iterators of s stay valid.
func (s *Seq[T]) Insert(value T, pos int) *T {
	pos = max(0, min(pos, s.Size()))
	n := s.t.newNode(value)
	l, r := splitAt(s.t.root, pos)
	s.t.setRoot(merge(merge(l, n), r))
	return &n.payload
}

// PushBack appends value at the end of s.
func (s *Seq[T]) PushBack(value T) *T {
	return s.Insert(value, s.Size())
}

// PushFront prepends value at the front of s.
func (s *Seq[T]) PushFront(value T) *T {
	return s.Insert(value, 0)
}

// Erase removes the element at position pos. pos has to be a valid position
// within s.
//
// Iterators pointing to the removed element become invalid, all others stay
// valid.
func (s *Seq[T]) Erase(pos int) {
	assert(pos >= 0 && pos < s.Size(), ErrIndexOutOfBounds)
	l, rest := splitAt(s.t.root, pos)
	n, r := splitAt(rest, 1)
	n.unlink()
	s.t.setRoot(merge(l, r))
}

// At returns the element at position pos.
func (s *Seq[T]) At(pos int) T {
	return *s.Ref(pos)
}

// Ref returns a reference to the element at position pos, which clients may
// use to modify the element in place.
func (s *Seq[T]) Ref(pos int) *T {
	assert(pos >= 0 && pos < s.Size(), ErrIndexOutOfBounds)
	return &nth(s.t.root, pos).payload
}

// Set replaces the element at position pos.
func (s *Seq[T]) Set(pos int, value T) {
	*s.Ref(pos) = value
}

// Extract removes the range [start, end) from s and returns it as a new
// sequence. The random generator of the new sequence is seeded with a draw
// from the generator of s. start ≤ end ≤ Size() must hold.
//
// Iterators to elements within the range move with their elements to the
// new sequence, all others stay valid for s.
func (s *Seq[T]) Extract(start, end int) *Seq[T] {
	assert(start >= 0 && start <= end && end <= s.Size(), ErrIndexOutOfBounds)
	out := New[T](WithSeed(s.t.draw()))
	if start == end {
		return out
	}
	l, rest := splitAt(s.t.root, start)
	mid, r := splitAt(rest, end-start)
	s.t.setRoot(merge(l, r))
	out.t.setRoot(mid)
	tracer().Debugf("treaps: extracted [%d,%d), %d elements remaining", start, end, s.Size())
	return out
}

// Concatenate appends all elements of other to the end of s, leaving other
// empty. Concatenating a sequence to itself is illegal.
func (s *Seq[T]) Concatenate(other *Seq[T]) {
	assert(s != other, ErrSelfConcatenation)
	if other == nil || other.t.root == nil {
		return
	}
	s.t.setRoot(merge(s.t.root, other.t.root))
	other.t.root = nil
	tracer().Debugf("treaps: concatenated to %d elements", s.Size())
}

// Rotate rotates the elements of range [begin, end) such that the element
// at newBegin becomes the first element of the range. Rotate(b, m, e)
// yields the same arrangement as moving range [m, e) in front of [b, m).
// begin ≤ newBegin ≤ end ≤ Size() must hold.
func (s *Seq[T]) Rotate(begin, newBegin, end int) {
	assert(begin >= 0 && begin <= newBegin && newBegin <= end && end <= s.Size(),
		ErrIndexOutOfBounds)
	if newBegin == begin || newBegin == end {
		return
	}
	prefix, rest := splitAt(s.t.root, begin)
	a, rest := splitAt(rest, newBegin-begin)
	b, suffix := splitAt(rest, end-newBegin)
	s.t.setRoot(merge(merge(prefix, merge(b, a)), suffix))
}

// RotateBy cyclically rotates the whole sequence by count positions.
// Positive counts rotate to the right, i.e. the last count elements move to
// the front, negative counts rotate to the left. The amount of rotation is
// taken modulo Size().
func (s *Seq[T]) RotateBy(count int) {
	n := s.Size()
	if n == 0 || count%n == 0 {
		return
	}
	count %= n
	if count < 0 {
		count += n
	}
	s.Rotate(0, n-count, n)
}

// Clear removes all elements from s.
func (s *Seq[T]) Clear() {
	s.t.root = nil
}

// Swap exchanges the contents and random generators of s and other in O(1).
func (s *Seq[T]) Swap(other *Seq[T]) {
	s.t.swap(&other.t)
}

// Move transfers all elements and the random generator of s to a new
// sequence. s is left empty with a fresh default generator.
func (s *Seq[T]) Move() *Seq[T] {
	out := New[T]()
	s.t.swap(&out.t)
	return out
}

// Clone creates a deep copy of s in O(n). The copy has the same shape as s.
// Its random generator is seeded with a draw from the generator of s.
func (s *Seq[T]) Clone() *Seq[T] {
	out := New[T](WithSeed(s.t.draw()))
	out.t.setRoot(clone(s.t.root))
	return out
}

// Slice returns the elements of s as a slice, in order.
func (s *Seq[T]) Slice() []T {
	out := make([]T, 0, s.Size())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// All iterates over the elements of s, in order.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := leftmost(s.t.root); n != nil; n, _ = successor(n) {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// Backward iterates over the elements of s in reverse order.
func (s *Seq[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := rightmost(s.t.root); n != nil; n = predecessor(n) {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// Height returns the height of the tree holding the elements of s. An empty
// sequence has height 0.
func (s *Seq[T]) Height() int {
	return height(s.t.root)
}

// Check validates the internal structure of s.
func (s *Seq[T]) Check() error {
	return s.t.check(nil)
}
