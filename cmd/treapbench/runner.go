package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/treaps"
	"github.com/rs/zerolog"
)

const progressInterval = 100_000

// Runner executes a plan against a sequence and a map.
type Runner struct {
	Log     zerolog.Logger
	Plan    *Plan
	Metrics *Metrics
	Seq     *treaps.Seq[int]
	Map     *treaps.Map[int, int]
	rnd     *rand.Rand
	next    int // next value to insert into the sequence
	done    int // operations executed so far
}

// NewRunner prepares a run of plan.
func NewRunner(plan *Plan, log zerolog.Logger) *Runner {
	return &Runner{
		Log:     log,
		Plan:    plan,
		Metrics: NewMetrics(plan.Name),
		Map:     treaps.NewMap[int, int](treaps.WithSeed(plan.Seed + 1)),
		rnd:     rand.New(rand.NewPCG(plan.Seed, plan.Seed)),
	}
}

// Run executes all steps of the plan.
func (r *Runner) Run() error {
	since := time.Now()
	initial := make([]int, r.Plan.Initial)
	for i := range initial {
		initial[i] = i
	}
	r.next = len(initial)
	r.Seq = treaps.FromSlice(initial, treaps.WithSeed(r.Plan.Seed))
	r.Log.Info().Msgf("built sequence of %s elements in %s",
		humanize.Comma(int64(r.Seq.Size())), time.Since(since))
	for i, step := range r.Plan.Steps {
		start := time.Now()
		if err := r.runStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		d := time.Since(start)
		r.Metrics.observeStep(step.Op, step.Count, d)
		r.Log.Info().
			Str("op", step.Op).
			Str("count", humanize.Comma(int64(step.Count))).
			Dur("took", d).
			Msg("step done")
	}
	r.updateGauges()
	if err := r.Seq.Check(); err != nil {
		return err
	}
	return r.Map.Check()
}

func (r *Runner) runStep(step Step) error {
	for i := 0; i < step.Count; i++ {
		if err := r.op(step.Op); err != nil {
			return err
		}
		r.done++
		if r.done%progressInterval == 0 {
			r.updateGauges()
			r.Log.Debug().Msgf("executed %s operations; sequence size %s, height %d",
				humanize.Comma(int64(r.done)),
				humanize.Comma(int64(r.Seq.Size())),
				r.Seq.Height())
		}
	}
	return nil
}

func (r *Runner) op(op string) error {
	n := r.Seq.Size()
	switch op {
	case OpInsert:
		r.Seq.Insert(r.next, r.rnd.IntN(n+1))
		r.next++
	case OpErase:
		if n > 0 {
			r.Seq.Erase(r.rnd.IntN(n))
		}
	case OpAt:
		if n > 0 {
			_ = r.Seq.At(r.rnd.IntN(n))
		}
	case OpRotate:
		b, e := r.rnd.IntN(n+1), r.rnd.IntN(n+1)
		if b > e {
			b, e = e, b
		}
		r.Seq.Rotate(b, b+r.rnd.IntN(e-b+1), e)
	case OpExtract:
		b, e := r.rnd.IntN(n+1), r.rnd.IntN(n+1)
		if b > e {
			b, e = e, b
		}
		r.Seq.Concatenate(r.Seq.Extract(b, e))
	case OpJump:
		if n > 0 {
			from, to := r.rnd.IntN(n), r.rnd.IntN(n)
			it := r.Seq.IteratorAt(from).Add(to - from)
			if it.Index() != to {
				return fmt.Errorf("iterator jump from %d to %d landed at %d", from, to, it.Index())
			}
		}
	case OpMapInsert:
		k := r.key()
		r.Map.Insert(k, k)
	case OpMapErase:
		r.Map.Erase(r.key())
	case OpMapFind:
		_ = r.Map.Find(r.key())
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidPlan, op)
	}
	return nil
}

func (r *Runner) key() int {
	if r.Plan.KeySpace == 0 {
		return r.rnd.Int()
	}
	return r.rnd.IntN(r.Plan.KeySpace)
}

func (r *Runner) updateGauges() {
	r.Metrics.SeqSize.Set(float64(r.Seq.Size()))
	r.Metrics.SeqHeight.Set(float64(r.Seq.Height()))
	r.Metrics.MapSize.Set(float64(r.Map.Size()))
	r.Metrics.MapHeight.Set(float64(r.Map.Height()))
}

// Report writes the metrics of the run and memory statistics to w.
func (r *Runner) Report(w io.Writer) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	fmt.Fprintf(w, "plan %q, seed %d\n", r.Plan.Name, r.Plan.Seed)
	if err := r.Metrics.Summary(w); err != nil {
		r.Log.Error().Err(err).Msg("cannot gather metrics")
	}
	fmt.Fprintf(w, "memory in use: %s, total allocated: %s\n",
		humanize.Bytes(memStats.Alloc), humanize.Bytes(memStats.TotalAlloc))
}

// WriteDot writes the tree of the sequence in Graphviz DOT format to a file.
func (r *Runner) WriteDot(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := treaps.Seq2Dot(r.Seq, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
