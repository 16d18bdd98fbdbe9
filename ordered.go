package treaps

/*
BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

type entry[K, V any] struct {
	key   K
	value V
}

// Map is an ordered associative container, organized as a treap over the
// keys. Keys are unique.
//
// Maps must not be copied by value after first use.
type Map[K, V any] struct {
	t   tree[entry[K, V]]
	cmp func(K, K) int
}

// NewMap creates an empty map ordered by the natural order of its keys.
func NewMap[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewMapFunc[K, V](cmp.Compare[K], opts...)
}

// NewMapFunc creates an empty map ordered by a comparison function, which
// has to establish a strict weak order on keys, returning a negative number
// for a < b, 0 for a == b and a positive number for a > b.
func NewMapFunc[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	assert(cmp != nil, ErrNoComparison)
	c := configure(opts)
	m := &Map[K, V]{cmp: cmp}
	m.t.init(c.seed)
	return m
}

// Size returns the number of entries of m.
func (m *Map[K, V]) Size() int {
	return m.t.len()
}

// Empty returns true for a map without entries.
func (m *Map[K, V]) Empty() bool {
	return m.t.root == nil
}

// SetSeed re-seeds the random generator of m. This affects the priorities of
// future entries only.
func (m *Map[K, V]) SetSeed(seed uint64) {
	m.t.seed(seed)
}

func (m *Map[K, V]) find(key K) *node[entry[K, V]] {
	n := m.t.root
	for n != nil {
		c := m.cmp(key, n.payload.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert inserts an entry for key, if key is not yet present in m. Insert
// returns a reference to the value stored for key. If key had been present,
// the existing value is left unchanged.
func (m *Map[K, V]) Insert(key K, value V) *V {
	if n := m.find(key); n != nil {
		return &n.payload.value
	}
	n := m.t.newNode(entry[K, V]{key: key, value: value})
	var parent *node[entry[K, V]]
	cur := m.t.root
	// descend along the search path while priorities are higher than ours
	for cur != nil && cur.priority > n.priority {
		cur.size++
		parent = cur
		if m.cmp(key, cur.payload.key) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	l, r := splitBy(cur, func(e entry[K, V]) bool {
		return m.cmp(e.key, key) < 0
	})
	n.setLeft(l)
	n.setRight(r)
	n.update()
	if parent == nil {
		m.t.setRoot(n)
	} else if m.cmp(key, parent.payload.key) < 0 {
		parent.setLeft(n)
	} else {
		parent.setRight(n)
	}
	return &n.payload.value
}

// Put sets the value for key, overwriting an existing value.
func (m *Map[K, V]) Put(key K, value V) {
	*m.Insert(key, value) = value
}

// Find returns a reference to the value stored for key, or nil if key is not
// present in m.
func (m *Map[K, V]) Find(key K) *V {
	if n := m.find(key); n != nil {
		return &n.payload.value
	}
	return nil
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.payload.value, true
	}
	var zero V
	return zero, false
}

// Contains returns true if key is present in m.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

// Erase removes the entry for key. It returns false if key has not been
// present in m.
//
// Iterators pointing to the removed entry become invalid, all others stay
// valid.
func (m *Map[K, V]) Erase(key K) bool {
	n := m.find(key)
	if n == nil {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		p.size--
	}
	joined := merge(n.left, n.right)
	if !replaceChild(n, joined) {
		m.t.setRoot(joined)
	}
	n.unlink()
	return true
}

// Rank returns the 0-based position of key within the ordered keys of m,
// and whether key is present. For absent keys, Rank returns the position key
// would be inserted at.
func (m *Map[K, V]) Rank(key K) (int, bool) {
	pos := 0
	n := m.t.root
	for n != nil {
		c := m.cmp(key, n.payload.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			pos += size(n.left) + 1
			n = n.right
		default:
			return pos + size(n.left), true
		}
	}
	return pos, false
}

// At returns the entry at 0-based position i of the ordered keys of m.
func (m *Map[K, V]) At(i int) (K, V) {
	assert(i >= 0 && i < m.Size(), ErrIndexOutOfBounds)
	n := nth(m.t.root, i)
	return n.payload.key, n.payload.value
}

// Clear removes all entries from m.
func (m *Map[K, V]) Clear() {
	m.t.root = nil
}

// Swap exchanges the contents, key orderings and random generators of m and
// other in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.t.swap(&other.t)
	m.cmp, other.cmp = other.cmp, m.cmp
}

// All iterates over the entries of m in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := leftmost(m.t.root); n != nil; n, _ = successor(n) {
			if !yield(n.payload.key, n.payload.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Height returns the height of the tree holding the entries of m.
func (m *Map[K, V]) Height() int {
	return height(m.t.root)
}

// Check validates the internal structure of m, including the order of keys.
func (m *Map[K, V]) Check() error {
	return m.t.check(func(a, b entry[K, V]) bool {
		return m.cmp(a.key, b.key) < 0
	})
}
