package text

import (
	"io"

	"github.com/npillmayer/treaps"
)

// Reader returns a reader for the bytes of b. The reader reflects a snapshot
// of b at the time of the call to Reader.
func (b *Buffer) Reader() io.Reader {
	return &bufferReader{it: b.seq.Clone().CBegin()}
}

type bufferReader struct {
	it      treaps.ConstIterator[string]
	pending string
}

func (br *bufferReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if br.pending == "" {
			if br.it.AtEnd() {
				break
			}
			br.pending = br.it.Value()
			br.it.Next()
		}
		k := copy(p[n:], br.pending)
		br.pending = br.pending[k:]
		n += k
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
