package treaps

// cursor implements navigation for all iterator types of this package.
//
// A cursor either points to a node or is past-the-end. For past-the-end
// cursors host references the container. For cursors pointing to a node the
// container is derived from the node's current root, so cursors follow their
// node when it moves to another container.
type cursor[P any] struct {
	node *node[P]
	host *tree[P]
}

func (c cursor[P]) tree() *tree[P] {
	if c.node == nil {
		return c.host
	}
	return ownerOf(c.node)
}

func (c cursor[P]) atEnd() bool {
	return c.node == nil
}

// rank returns the 1-based position of the cursor. Past-the-end has rank
// size+1.
func (c cursor[P]) rank() int {
	if c.node == nil {
		return c.host.len() + 1
	}
	r, _ := rank(c.node)
	return r
}

func (c *cursor[P]) next() {
	assert(c.node != nil, ErrIteratorRange)
	next, root := successor(c.node)
	if next == nil {
		c.host = root.owner
	}
	c.node = next
}

func (c *cursor[P]) prev() {
	if c.node == nil {
		assert(c.host != nil && c.host.root != nil, ErrIteratorRange)
		c.node = rightmost(c.host.root)
		return
	}
	prev := predecessor(c.node)
	assert(prev != nil, ErrIteratorRange)
	c.node = prev
}

func (c cursor[P]) add(k int) cursor[P] {
	if k == 0 {
		return c
	}
	var t *tree[P]
	var r int
	if c.node == nil {
		t = c.host
		r = t.len() + 1
	} else {
		var root *node[P]
		r, root = rank(c.node)
		t = root.owner
	}
	r += k
	n := t.len()
	assert(r >= 1 && r <= n+1, ErrIteratorRange)
	if r == n+1 {
		return cursor[P]{host: t}
	}
	return cursor[P]{node: nth(t.root, r-1)}
}

func (c cursor[P]) equal(other cursor[P]) bool {
	if checks {
		assert(c.tree() == other.tree(), ErrForeignIterator)
	}
	if c.node == nil {
		return other.node == nil && c.host == other.host
	}
	return c.node == other.node
}

func (c cursor[P]) sub(other cursor[P]) int {
	if checks {
		assert(c.tree() == other.tree(), ErrForeignIterator)
	}
	return c.rank() - other.rank()
}

func begin[P any](t *tree[P]) cursor[P] {
	if t.root == nil {
		return cursor[P]{host: t}
	}
	return cursor[P]{node: leftmost(t.root)}
}

func end[P any](t *tree[P]) cursor[P] {
	return cursor[P]{host: t}
}

// --- Sequence iterators ----------------------------------------------------

// Iterator is a random access iterator for a Seq, allowing modification of
// elements.
//
// An iterator stays valid until the element it points to is erased or its
// sequence is cleared. If the element is moved to another sequence by
// Extract or Concatenate, the iterator follows it. A past-the-end iterator
// stays past-the-end of its sequence.
type Iterator[T any] struct {
	c cursor[T]
}

// ConstIterator is a random access iterator for a Seq, which does not allow
// modification of elements.
type ConstIterator[T any] struct {
	c cursor[T]
}

// Begin returns an iterator to the first element of s, or End() for an
// empty sequence.
func (s *Seq[T]) Begin() Iterator[T] {
	return Iterator[T]{begin(&s.t)}
}

// End returns a past-the-end iterator of s.
func (s *Seq[T]) End() Iterator[T] {
	return Iterator[T]{end(&s.t)}
}

// IteratorAt returns an iterator to position pos, with 0 ≤ pos ≤ Size().
func (s *Seq[T]) IteratorAt(pos int) Iterator[T] {
	assert(pos >= 0 && pos <= s.Size(), ErrIndexOutOfBounds)
	if pos == s.Size() {
		return s.End()
	}
	return Iterator[T]{cursor[T]{node: nth(s.t.root, pos)}}
}

// CBegin returns a read-only iterator to the first element of s.
func (s *Seq[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{begin(&s.t)}
}

// CEnd returns a read-only past-the-end iterator of s.
func (s *Seq[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{end(&s.t)}
}

// Value returns the element the iterator points to.
func (it Iterator[T]) Value() T {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload
}

// Pointer returns a reference to the element the iterator points to.
func (it Iterator[T]) Pointer() *T {
	assert(it.c.node != nil, ErrIteratorRange)
	return &it.c.node.payload
}

// Set replaces the element the iterator points to.
func (it Iterator[T]) Set(value T) {
	*it.Pointer() = value
}

// AtEnd returns true for a past-the-end iterator.
func (it Iterator[T]) AtEnd() bool {
	return it.c.atEnd()
}

// Next moves the iterator to the next element. Moving past-the-end
// iterators is illegal.
func (it *Iterator[T]) Next() {
	it.c.next()
}

// Prev moves the iterator to the previous element. Moving a past-the-end
// iterator makes it point to the last element. Moving before the first
// element is illegal.
func (it *Iterator[T]) Prev() {
	it.c.prev()
}

// Add returns an iterator k positions further (or before, for negative k).
// The resulting position must be within the sequence or past-the-end.
func (it Iterator[T]) Add(k int) Iterator[T] {
	return Iterator[T]{it.c.add(k)}
}

// Sub returns the distance between it and other, i.e. the number of
// elements from other to it.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.c.sub(other.c)
}

// Index returns the 0-based position of the iterator, or the size of the
// sequence for past-the-end iterators.
func (it Iterator[T]) Index() int {
	return it.c.rank() - 1
}

// Equal is true if it and other point to the same element, or are both
// past-the-end of the same sequence.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.c.equal(other.c)
}

// Const converts it to a read-only iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

// Value returns the element the iterator points to.
func (it ConstIterator[T]) Value() T {
	assert(it.c.node != nil, ErrIteratorRange)
	return it.c.node.payload
}

// AtEnd returns true for a past-the-end iterator.
func (it ConstIterator[T]) AtEnd() bool {
	return it.c.atEnd()
}

// Next moves the iterator to the next element.
func (it *ConstIterator[T]) Next() {
	it.c.next()
}

// Prev moves the iterator to the previous element.
func (it *ConstIterator[T]) Prev() {
	it.c.prev()
}

// Add returns an iterator k positions further (or before, for negative k).
func (it ConstIterator[T]) Add(k int) ConstIterator[T] {
	return ConstIterator[T]{it.c.add(k)}
}

// Sub returns the distance between it and other.
func (it ConstIterator[T]) Sub(other ConstIterator[T]) int {
	return it.c.sub(other.c)
}

// Index returns the 0-based position of the iterator.
func (it ConstIterator[T]) Index() int {
	return it.c.rank() - 1
}

// Equal is true if it and other point to the same element, or are both
// past-the-end of the same sequence.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.c.equal(other.c)
}
