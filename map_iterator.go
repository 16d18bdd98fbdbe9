package treaps

// MapIterator is a bidirectional iterator over the entries of a Map in key
// order, allowing modification of values. Keys are read-only.
//
// Map iterators support random access jumps by rank, as Seq iterators do.
type MapIterator[K, V any] struct {
	c cursor[entry[K, V]]
}

// ConstMapIterator is a read-only iterator over the entries of a Map.
type ConstMapIterator[K, V any] struct {
	c cursor[entry[K, V]]
}

// Begin returns an iterator to the entry with the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{begin(&m.t)}
}

// End returns a past-the-end iterator of m.
func (m *Map[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{end(&m.t)}
}

// CBegin returns a read-only iterator to the entry with the smallest key.
func (m *Map[K, V]) CBegin() ConstMapIterator[K, V] {
	return ConstMapIterator[K, V]{begin(&m.t)}
}

// CEnd returns a read-only past-the-end iterator of m.
func (m *Map[K, V]) CEnd() ConstMapIterator[K, V] {
	return ConstMapIterator[K, V]{end(&m.t)}
}

// Locate returns an iterator to the entry for key, or End() if key is not
// present.
func (m *Map[K, V]) Locate(key K) MapIterator[K, V] {
	if n := m.find(key); n != nil {
		return MapIterator[K, V]{cursor[entry[K, V]]{node: n}}
	}
	return m.End()
}

// Key returns the key of the entry the iterator points to.
func (it MapIterator[K, V]) Key() K {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload.key
}

// Value returns the value of the entry the iterator points to.
func (it MapIterator[K, V]) Value() V {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload.value
}

// Pointer returns a reference to the value of the entry.
func (it MapIterator[K, V]) Pointer() *V {
	assert(it.c.node != nil, ErrIteratorRange)
	return &it.c.node.payload.value
}

// AtEnd returns true for a past-the-end iterator.
func (it MapIterator[K, V]) AtEnd() bool {
	return it.c.atEnd()
}

// Next moves the iterator to the entry with the next larger key.
func (it *MapIterator[K, V]) Next() {
	it.c.next()
}

// Prev moves the iterator to the entry with the next smaller key.
func (it *MapIterator[K, V]) Prev() {
	it.c.prev()
}

// Add returns an iterator k entries further.
func (it MapIterator[K, V]) Add(k int) MapIterator[K, V] {
	return MapIterator[K, V]{it.c.add(k)}
}

// Sub returns the number of entries from other to it.
func (it MapIterator[K, V]) Sub(other MapIterator[K, V]) int {
	return it.c.sub(other.c)
}

// Index returns the rank of the entry's key.
func (it MapIterator[K, V]) Index() int {
	return it.c.rank() - 1
}

// Equal is true if it and other point to the same entry, or are both
// past-the-end of the same map.
func (it MapIterator[K, V]) Equal(other MapIterator[K, V]) bool {
	return it.c.equal(other.c)
}

// Const converts it to a read-only iterator.
func (it MapIterator[K, V]) Const() ConstMapIterator[K, V] {
	return ConstMapIterator[K, V](it)
}

func (it ConstMapIterator[K, V]) Key() K {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload.key
}

func (it ConstMapIterator[K, V]) Value() V {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload.value
}

func (it ConstMapIterator[K, V]) AtEnd() bool {
	return it.c.atEnd()
}

func (it *ConstMapIterator[K, V]) Next() {
	it.c.next()
}

func (it *ConstMapIterator[K, V]) Prev() {
	it.c.prev()
}

func (it ConstMapIterator[K, V]) Add(k int) ConstMapIterator[K, V] {
	return ConstMapIterator[K, V]{it.c.add(k)}
}

func (it ConstMapIterator[K, V]) Sub(other ConstMapIterator[K, V]) int {
	return it.c.sub(other.c)
}

func (it ConstMapIterator[K, V]) Index() int {
	return it.c.rank() - 1
}

func (it ConstMapIterator[K, V]) Equal(other ConstMapIterator[K, V]) bool {
	return it.c.equal(other.c)
}
