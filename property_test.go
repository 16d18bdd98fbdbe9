package treaps

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// runOperations applies a random sequence of operations to a Seq and to a
// plain slice, and compares both after every step.
func runOperations(t *testing.T, rnd *rand.Rand, steps int) {
	t.Helper()
	s := New[int](WithSeed(rnd.Uint64()))
	var model []int
	next := 0
	for step := 0; step < steps; step++ {
		n := len(model)
		switch op := rnd.IntN(7); {
		case op <= 1 || n == 0:
			pos := rnd.IntN(n + 1)
			s.Insert(next, pos)
			model = slices.Insert(model, pos, next)
			next++
		case op == 2:
			pos := rnd.IntN(n)
			s.Erase(pos)
			model = slices.Delete(model, pos, pos+1)
		case op == 3:
			a, b := ordered2(rnd, n)
			x := s.Extract(a, b)
			expected := slices.Clone(model[a:b])
			model = slices.Delete(model, a, b)
			assertElements(t, x, expected)
			if rnd.IntN(2) == 0 { // put it back at the end
				s.Concatenate(x)
				model = append(model, expected...)
			}
		case op == 4:
			b, e := ordered2(rnd, n)
			m := b + rnd.IntN(e-b+1)
			s.Rotate(b, m, e)
			model = rotateSlice(model, b, m, e)
		case op == 5:
			k := rnd.IntN(2*n+1) - n
			s.RotateBy(k)
			if k = k % n; k < 0 {
				k += n
			}
			model = rotateSlice(model, 0, n-k, n)
		default:
			pos := rnd.IntN(n)
			s.Set(pos, -s.At(pos))
			model[pos] = -model[pos]
		}
		if err := s.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		assertElements(t, s, model)
	}
}

func ordered2(rnd *rand.Rand, n int) (int, int) {
	a, b := rnd.IntN(n+1), rnd.IntN(n+1)
	if a > b {
		a, b = b, a
	}
	return a, b
}

func TestSeqRandomOperations(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		runOperations(t, rand.New(rand.NewPCG(seed, 1)), 400)
	}
}

func FuzzSeqOperations(f *testing.F) {
	f.Add(uint64(1), uint64(2))
	f.Add(uint64(5489), uint64(0))
	f.Fuzz(func(t *testing.T, a, b uint64) {
		runOperations(t, rand.New(rand.NewPCG(a, b)), 100)
	})
}
