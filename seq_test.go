package treaps

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSeqInsertRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	back, front := New[int](WithSeed(1)), New[int](WithSeed(2))
	for i := 0; i < 200; i++ {
		back.Insert(i, back.Size())
		front.Insert(i, 0)
	}
	assertElements(t, back, intRange(0, 200))
	reversed := intRange(0, 200)
	slices.Reverse(reversed)
	assertElements(t, front, reversed)
	if err := back.Check(); err != nil {
		t.Error(err)
	}
	if err := front.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqInsertClampsPosition(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	s.Insert(4, 100)
	s.Insert(0, -5)
	assertElements(t, s, []int{0, 1, 2, 3, 4})
}

func TestSeqInsertReturnsReference(t *testing.T) {
	s := FromSlice([]string{"a", "c"})
	p := s.Insert("b", 1)
	if *p != "b" {
		t.Fatalf("expected reference to inserted element, got %q", *p)
	}
	*p = "B"
	assertElements(t, s, []string{"a", "B", "c"})
}

func TestSeqIndexedAccess(t *testing.T) {
	s := FromSlice(intRange(0, 10))
	s.Set(3, 33)
	*s.Ref(4) = 44
	if s.At(3) != 33 || s.At(4) != 44 || s.At(9) != 9 {
		t.Errorf("indexed access broken: %v", s.Slice())
	}
}

func TestSeqEraseInAnyOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(7, 7))
	s := FromSlice(intRange(0, 300), WithSeed(99))
	model := intRange(0, 300)
	for !s.Empty() {
		pos := rnd.IntN(s.Size())
		before := s.Size()
		s.Erase(pos)
		model = slices.Delete(model, pos, pos+1)
		if s.Size() != before-1 {
			t.Fatalf("erase did not decrement size")
		}
		if s.Size()%50 == 0 {
			if err := s.Check(); err != nil {
				t.Fatal(err)
			}
			assertElements(t, s, model)
		}
	}
	if s.Size() != 0 || !s.Empty() {
		t.Errorf("expected sequence to be empty")
	}
}

func TestSeqEraseOutOfRangePanics(t *testing.T) {
	if !checks {
		t.Skip("contract checks are disabled")
	}
	s := FromSlice([]int{1, 2, 3})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("expected panic with ErrIndexOutOfBounds, got %v", r)
		}
	}()
	s.Erase(3)
}

func TestSeqExtract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	x := s.Extract(4, 7)
	assertElements(t, s, []int{1, 2, 3, 4, 8, 9})
	assertElements(t, x, []int{5, 6, 7})
	if err := s.Check(); err != nil {
		t.Error(err)
	}
	if err := x.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqExtractEmptyRange(t *testing.T) {
	s := FromSlice(intRange(0, 10))
	for _, p := range []int{0, 5, 10} {
		x := s.Extract(p, p)
		if !x.Empty() {
			t.Errorf("Extract(%d,%d) should be empty", p, p)
		}
		assertElements(t, s, intRange(0, 10))
	}
	empty := New[int]()
	if x := empty.Extract(0, 0); !x.Empty() || !empty.Empty() {
		t.Errorf("extracting from empty sequence should yield empty sequences")
	}
}

func TestSeqExtractConcatenateLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	source := FromSlice(intRange(0, 77), WithSeed(5))
	root := source.t.root
	target := New[int]()
	target.Concatenate(source.Extract(0, source.Size()))
	assertElements(t, target, intRange(0, 77))
	if !source.Empty() {
		t.Errorf("source should be empty after extracting everything")
	}
	if target.t.root != root {
		t.Errorf("extracting the full range should move the root")
	}
	if err := target.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqConcatenate(t *testing.T) {
	a := FromSlice(intRange(0, 5), WithSeed(1))
	b := FromSlice(intRange(5, 10), WithSeed(2))
	a.Concatenate(b)
	assertElements(t, a, intRange(0, 10))
	if !b.Empty() {
		t.Errorf("concatenated sequence should be empty")
	}
	a.Concatenate(New[int]())
	assertElements(t, a, intRange(0, 10))
	if err := a.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqSelfConcatenationPanics(t *testing.T) {
	if !checks {
		t.Skip("contract checks are disabled")
	}
	s := FromSlice([]int{1})
	defer func() {
		if r := recover(); r != ErrSelfConcatenation {
			t.Errorf("expected panic for self-concatenation, got %v", r)
		}
	}()
	s.Concatenate(s)
}

func TestSeqRotatePartOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	s.Rotate(2, 3, 6)
	assertElements(t, s, []int{1, 2, 4, 5, 6, 3, 7, 8, 9})
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqRotateAllRanges(t *testing.T) {
	items := intRange(0, 8)
	for b := 0; b <= len(items); b++ {
		for m := b; m <= len(items); m++ {
			for e := m; e <= len(items); e++ {
				s := FromSlice(items, WithSeed(uint64(b*100+m*10+e)))
				s.Rotate(b, m, e)
				assertElements(t, s, rotateSlice(items, b, m, e))
				if err := s.Check(); err != nil {
					t.Fatalf("Rotate(%d,%d,%d): %v", b, m, e, err)
				}
			}
		}
	}
}

func TestSeqRotateNoOps(t *testing.T) {
	s := FromSlice(intRange(0, 10))
	s.Rotate(0, 0, 10)
	s.Rotate(5, 5, 10)
	s.Rotate(2, 2, 6)
	s.Rotate(3, 7, 7)
	s.Rotate(10, 10, 10)
	assertElements(t, s, intRange(0, 10))
	empty := New[int]()
	empty.Rotate(0, 0, 0)
	empty.RotateBy(3)
	if !empty.Empty() {
		t.Errorf("empty sequence should stay empty")
	}
}

func TestSeqRotateBy(t *testing.T) {
	cases := []struct {
		count    int
		expected []int
	}{
		{0, []int{0, 1, 2, 3, 4}},
		{2, []int{3, 4, 0, 1, 2}},
		{-2, []int{2, 3, 4, 0, 1}},
		{7, []int{3, 4, 0, 1, 2}},
		{-5, []int{0, 1, 2, 3, 4}},
		{-11, []int{1, 2, 3, 4, 0}},
	}
	for _, c := range cases {
		s := FromSlice(intRange(0, 5))
		s.RotateBy(c.count)
		assertElements(t, s, c.expected)
	}
}

func TestSeqClearSwapMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	a := FromSlice(intRange(0, 4))
	b := FromSlice(intRange(10, 13))
	a.Swap(b)
	assertElements(t, a, intRange(10, 13))
	assertElements(t, b, intRange(0, 4))
	if a.Check() != nil || b.Check() != nil {
		t.Errorf("swap broke ownership of roots")
	}
	a.Swap(a)
	assertElements(t, a, intRange(10, 13))
	//
	c := a.Move()
	assertElements(t, c, intRange(10, 13))
	if !a.Empty() {
		t.Errorf("moved-from sequence should be empty")
	}
	a.PushBack(1)
	assertElements(t, a, []int{1})
	//
	c.Clear()
	if !c.Empty() || c.Size() != 0 {
		t.Errorf("cleared sequence should be empty")
	}
	c.PushFront(5)
	assertElements(t, c, []int{5})
}

func TestSeqClone(t *testing.T) {
	s := FromSlice(intRange(0, 40), WithSeed(11))
	c := s.Clone()
	if c.Height() != s.Height() {
		t.Errorf("clone should have the same shape")
	}
	c.Set(0, 100)
	c.Erase(39)
	assertElements(t, s, intRange(0, 40))
	if c.At(0) != 100 || c.Size() != 39 {
		t.Errorf("clone is not independent")
	}
	if err := c.Check(); err != nil {
		t.Error(err)
	}
}

func TestSeqZeroValue(t *testing.T) {
	var s Seq[string]
	if !s.Empty() {
		t.Fatalf("zero value should be empty")
	}
	s.PushBack("b")
	s.PushFront("a")
	assertElements(t, &s, []string{"a", "b"})
}

func TestSeqSeedReproducible(t *testing.T) {
	a := FromSlice(intRange(0, 500), WithSeed(1234))
	b := New[int](WithSeed(1234))
	for i := 0; i < 500; i++ {
		b.PushBack(i)
	}
	var pa, pb []uint64
	for n := range a.Nodes() {
		pa = append(pa, n.Priority)
	}
	for n := range b.Nodes() {
		pb = append(pb, n.Priority)
	}
	if !slices.Equal(pa, pb) {
		t.Errorf("identical seeds should draw identical priorities")
	}
	if a.Height() != b.Height() {
		t.Errorf("priorities determine the shape, heights differ: %d != %d",
			a.Height(), b.Height())
	}
}

func TestSeqSetSeedKeepsShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treaps")
	defer teardown()
	//
	s := FromSlice(intRange(0, 100), WithSeed(1))
	before := slices.Collect(s.Nodes())
	s.SetSeed(77)
	after := slices.Collect(s.Nodes())
	if !slices.Equal(before, after) {
		t.Fatalf("re-seeding must not change existing nodes")
	}
	s.PushBack(100)
	ref := New[int](WithSeed(77))
	ref.PushBack(0)
	var last, first NodeInfo
	for n := range s.Nodes() {
		last = n
	}
	for n := range ref.Nodes() {
		first = n
	}
	if last.Label != "100" {
		t.Fatalf("expected last node to be 100, is %s", last.Label)
	}
	if last.Priority != first.Priority {
		t.Errorf("next priority after SetSeed(77) is %d, fresh generator draws %d",
			last.Priority, first.Priority)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestTracingAfterTracedTest(t *testing.T) {
	t.Run("traced", func(t *testing.T) {
		teardown := gotestingadapter.QuickConfig(t, "treaps")
		defer teardown()
		s := FromSlice(intRange(0, 10))
		s.Extract(2, 5)
	})
	// the traced sub-test has completed; tracing must not reach its *testing.T
	s := FromSlice(intRange(0, 10))
	out := s.Extract(2, 5)
	out.Concatenate(s)
	if out.Size() != 10 {
		t.Errorf("expected 10 elements, have %d", out.Size())
	}
}

func TestSeqBackward(t *testing.T) {
	s := FromSlice(intRange(0, 20))
	var back []int
	for v := range s.Backward() {
		back = append(back, v)
	}
	expected := intRange(0, 20)
	slices.Reverse(expected)
	if !slices.Equal(back, expected) {
		t.Errorf("backward iteration is %v", back)
	}
}

func TestSeqHeightIsLogarithmic(t *testing.T) {
	const n = 4096 // log2(n) = 12
	for seed := uint64(1); seed <= 20; seed++ {
		rnd := rand.New(rand.NewPCG(seed, 0))
		s := New[int](WithSeed(seed))
		for i := 0; i < n; i++ {
			s.Insert(i, rnd.IntN(s.Size()+1))
		}
		if h := s.Height(); h > 4*12 {
			t.Errorf("seed %d: height %d exceeds expected bound", seed, h)
		}
	}
}

func rotateSlice(items []int, b, m, e int) []int {
	out := make([]int, 0, len(items))
	out = append(out, items[:b]...)
	out = append(out, items[m:e]...)
	out = append(out, items[b:m]...)
	return append(out, items[e:]...)
}
