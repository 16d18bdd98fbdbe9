package text

import (
	"strings"

	"github.com/npillmayer/treaps"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Buffer is an editable text, organized as a sequence of grapheme clusters.
//
// Fragments are segmented into grapheme clusters when they enter the buffer.
// Clusters are never re-segmented across the boundaries of edits, i.e.
// inserting a combining mark will not join it with the preceding cluster.
type Buffer struct {
	seq *treaps.Seq[string]
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...treaps.Option) *Buffer {
	return &Buffer{seq: treaps.New[string](opts...)}
}

// FromString creates a buffer holding the text s.
func FromString(s string, opts ...treaps.Option) *Buffer {
	return &Buffer{seq: treaps.FromSlice(clusters(s), opts...)}
}

func clusters(s string) []string {
	if s == "" {
		return nil
	}
	setup()
	gstr := grapheme.StringFromString(s)
	out := make([]string, gstr.Len())
	for i := range out {
		out[i] = gstr.Nth(i)
	}
	return out
}

// Len returns the number of grapheme clusters of b.
func (b *Buffer) Len() int {
	return b.seq.Size()
}

// String returns the complete text of b.
func (b *Buffer) String() string {
	var sb strings.Builder
	for c := range b.seq.All() {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the display width of b on a fixed-width output device, in
// 'en's, using the East Asian width context ctx. If ctx is nil,
// uax11.LatinContext is used.
func (b *Buffer) Width(ctx *uax11.Context) int {
	if b.seq.Empty() {
		return 0
	}
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setup()
	return uax11.StringWidth(grapheme.StringFromString(b.String()), ctx)
}

// Cluster returns the grapheme cluster at position pos.
func (b *Buffer) Cluster(pos int) string {
	if pos < 0 || pos >= b.Len() {
		return ""
	}
	return b.seq.At(pos)
}

// Insert inserts text s at cluster position pos. Positions beyond the end of
// b append s.
func (b *Buffer) Insert(pos int, s string) {
	b.seq.InsertSlice(clusters(s), pos)
}

// Append appends text s to the end of b.
func (b *Buffer) Append(s string) {
	b.seq.InsertSlice(clusters(s), b.Len())
}

// Delete removes the clusters [from, to) from b.
func (b *Buffer) Delete(from, to int) error {
	_, err := b.Cut(from, to)
	return err
}

// Cut removes the clusters [from, to) from b and returns them as a new buffer.
func (b *Buffer) Cut(from, to int) (*Buffer, error) {
	if from < 0 || from > to || to > b.Len() {
		return nil, treaps.ErrIndexOutOfBounds
	}
	cut := &Buffer{seq: b.seq.Extract(from, to)}
	tracer().Debugf("text buffer: cut %d clusters", cut.Len())
	return cut, nil
}

// Paste moves the contents of other into b at cluster position pos, leaving
// other empty. Positions beyond the end of b append other.
func (b *Buffer) Paste(pos int, other *Buffer) {
	if other == nil || other == b || other.seq.Empty() {
		return
	}
	pos = max(0, min(pos, b.Len()))
	tail := b.seq.Extract(pos, b.Len())
	b.seq.Concatenate(other.seq)
	b.seq.Concatenate(tail)
}

// Move moves the clusters [from, to) to position dest, where dest is a
// position of b before the move and must not lie within (from, to).
func (b *Buffer) Move(from, to, dest int) error {
	if from < 0 || from > to || to > b.Len() || dest < 0 || dest > b.Len() ||
		(dest > from && dest < to) {
		return treaps.ErrIndexOutOfBounds
	}
	switch {
	case dest <= from:
		b.seq.Rotate(dest, from, to)
	default:
		b.seq.Rotate(from, to, dest)
	}
	return nil
}
