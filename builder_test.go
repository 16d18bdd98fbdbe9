package treaps

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromSliceBuildsValidTreap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	for _, n := range []int{0, 1, 2, 3, 10, 1000} {
		s := FromSlice(intRange(0, n), WithSeed(uint64(n)))
		if err := s.Check(); err != nil {
			t.Fatalf("FromSlice with %d elements: %v", n, err)
		}
		assertElements(t, s, intRange(0, n))
	}
}

func TestBuilderAppendPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	b := NewBuilder[int](WithSeed(3))
	b.Append(4, 5)
	b.Prepend(2, 3)
	b.Append(6)
	b.Prepend(0, 1)
	s := b.Seq()
	assertElements(t, s, intRange(0, 7))
	if err := s.Check(); err != nil {
		t.Error(err)
	}
	if s2 := b.Seq(); s2 != s {
		t.Errorf("Seq() should return the same sequence when called repeatedly")
	}
	if err := b.Append(7); !errors.Is(err, ErrSeqCompleted) {
		t.Errorf("expected error for append after completion, got %v", err)
	}
}

func TestBuilderMatchesFromSlice(t *testing.T) {
	var b Builder[int]
	for i := 0; i < 300; i++ {
		if err := b.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	built := b.Seq()
	direct := FromSlice(intRange(0, 300))
	if built.Height() != direct.Height() {
		t.Errorf("same seed and elements should give the same shape")
	}
	b.Reset()
	b.Prepend(1)
	assertElements(t, b.Seq(), []int{1})
	var nilBuilder *Builder[int]
	if err := nilBuilder.Append(1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected error for nil builder")
	}
}

func TestInsertSlice(t *testing.T) {
	s := FromSlice([]int{0, 1, 5, 6})
	s.InsertSlice([]int{2, 3, 4}, 2)
	s.InsertSlice([]int{7, 8}, 99)
	s.InsertSlice(nil, 0)
	assertElements(t, s, intRange(0, 9))
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}
