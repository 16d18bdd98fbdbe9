package treaps

// FromSlice creates a sequence holding the elements of items, in order.
// Construction takes O(n).
func FromSlice[T any](items []T, opts ...Option) *Seq[T] {
	s := New[T](opts...)
	var sp spine[T]
	for _, item := range items {
		sp.push(s.t.newNode(item))
	}
	s.t.setRoot(sp.finish())
	tracer().Debugf("treaps: built sequence of %d elements", len(items))
	return s
}

// Builder incrementally stages elements and finalizes them into a Seq.
//
// Appended elements are linked into the tree right away, as they arrive in
// order. Prepended elements are staged and linked when Seq() is called.
// Building takes O(n) overall.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended elements in reverse logical order.
	front []T
	back  spine[T]
	seq   *Seq[T]
	opts  []Option
	done  bool
}

// NewBuilder creates a new and empty sequence builder. Options are applied to
// the sequence under construction.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	return &Builder[T]{seq: New[T](opts...), opts: opts}
}

// Seq returns the sequence built from all staged elements.
//
// It is illegal to continue adding elements after Seq has been called, but
// Seq may be called multiple times.
func (b *Builder[T]) Seq() *Seq[T] {
	if b == nil {
		return New[T]()
	}
	b.init()
	if !b.done {
		b.done = true
		back := b.back.finish()
		if len(b.front) > 0 {
			var sp spine[T]
			for i := len(b.front) - 1; i >= 0; i-- {
				sp.push(b.seq.t.newNode(b.front[i]))
			}
			back = merge(sp.finish(), back)
			b.front = nil
		}
		b.seq.t.setRoot(back)
		if b.seq.Empty() {
			tracer().Debugf("sequence builder: sequence is empty")
		}
	}
	return b.seq
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = spine[T]{}
	b.seq = nil
	b.done = false
}

// Append appends elements to the staged build.
func (b *Builder[T]) Append(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSeqCompleted
	}
	b.init()
	for _, item := range items {
		b.back.push(b.seq.t.newNode(item))
	}
	return nil
}

// Prepend prepends elements to the staged build. After
//
//	b.Prepend(1, 2)
//	b.Prepend(0)
//
// the sequence starts with 0, 1, 2.
func (b *Builder[T]) Prepend(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSeqCompleted
	}
	for i := len(items) - 1; i >= 0; i-- {
		b.front = append(b.front, items[i])
	}
	return nil
}

func (b *Builder[T]) init() {
	if b.seq == nil {
		b.seq = New[T](b.opts...)
	}
}

// InsertSlice inserts items at position pos, keeping their order. Positions
// are clamped as for Insert. For k items this takes O(k + log n).
func (s *Seq[T]) InsertSlice(items []T, pos int) {
	if len(items) == 0 {
		return
	}
	pos = max(0, min(pos, s.Size()))
	var sp spine[T]
	for _, item := range items {
		sp.push(s.t.newNode(item))
	}
	l, r := splitAt(s.t.root, pos)
	s.t.setRoot(merge(merge(l, sp.finish()), r))
}
