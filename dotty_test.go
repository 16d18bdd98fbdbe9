package treaps

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSeq2Dot(t *testing.T) {
	s := FromSlice([]string{"a", "b", "\"c\""}, WithSeed(1))
	var buf bytes.Buffer
	if err := Seq2Dot(s, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT graph:\n%s", dot)
	}
	if !strings.Contains(dot, `\"c\"`) {
		t.Errorf("labels should be escaped")
	}
	if c := strings.Count(dot, "->"); c < 2 {
		t.Errorf("expected at least 2 edges, have %d", c)
	}
}

func TestMap2Dot(t *testing.T) {
	m := NewMap[int, bool]()
	var buf bytes.Buffer
	if err := Map2Dot(m, &buf); err != nil || buf.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("unexpected DOT for empty map: %q", buf.String())
	}
}

// failingWriter fails on its n-th call to Write.
type failingWriter struct {
	calls, n int
}

var errWrite = errors.New("write failed")

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.calls++
	if fw.calls == fw.n {
		return 0, errWrite
	}
	return len(p), nil
}

func TestSeq2DotReportsWriteErrors(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"}, WithSeed(1))
	for n := 1; n <= 5; n++ {
		if err := Seq2Dot(s, &failingWriter{n: n}); !errors.Is(err, errWrite) {
			t.Errorf("write %d failed, but Seq2Dot returned %v", n, err)
		}
	}
}
