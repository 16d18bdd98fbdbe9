package text

import (
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treaps"
	"github.com/stretchr/testify/require"
)

func TestBufferFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	b := FromString("Hello World", treaps.WithSeed(1))
	require.Equal(t, 11, b.Len())
	require.Equal(t, "Hello World", b.String())
	require.Equal(t, "W", b.Cluster(6))
	require.Equal(t, "", b.Cluster(11))
	require.Equal(t, 11, b.Width(nil))
}

func TestBufferEditing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	b := FromString("Hello World")
	b.Insert(5, ",")
	require.Equal(t, "Hello, World", b.String())
	b.Append("!")
	require.Equal(t, "Hello, World!", b.String())
	require.NoError(t, b.Delete(0, 7))
	require.Equal(t, "World!", b.String())
	require.ErrorIs(t, b.Delete(3, 99), treaps.ErrIndexOutOfBounds)
	b.Insert(100, "?")
	require.Equal(t, "World!?", b.String())
}

func TestBufferCutPaste(t *testing.T) {
	b := FromString("the quick brown fox")
	cut, err := b.Cut(4, 10)
	require.NoError(t, err)
	require.Equal(t, "quick ", cut.String())
	require.Equal(t, "the brown fox", b.String())
	b.Paste(b.Len(), FromString(" "))
	b.Paste(b.Len(), cut)
	require.Equal(t, "the brown fox quick ", b.String())
	require.Equal(t, 0, cut.Len())
}

func TestBufferMove(t *testing.T) {
	b := FromString("abcdef")
	require.NoError(t, b.Move(4, 6, 1))
	require.Equal(t, "aefbcd", b.String())
	require.NoError(t, b.Move(0, 2, 6))
	require.Equal(t, "fbcdae", b.String())
	require.Error(t, b.Move(1, 4, 2))
}

func TestBufferReader(t *testing.T) {
	b := FromString("some text to read")
	r := b.Reader()
	b.Append(" later")
	p := make([]byte, 5)
	var out []byte
	for {
		n, err := r.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, "some text to read", string(out))
}
