package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testPlan = `
name: small
seed: 42
initial: 1000
key_space: 500
steps:
  - op: insert
    count: 500
  - op: rotate
    count: 100
  - op: extract
    count: 100
  - op: jump
    count: 200
  - op: erase
    count: 300
  - op: at
    count: 100
  - op: map-insert
    count: 400
  - op: map-find
    count: 100
  - op: map-erase
    count: 100
`

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(testPlan))
	require.NoError(t, err)
	require.Equal(t, "small", plan.Name)
	require.Equal(t, uint64(42), plan.Seed)
	require.Len(t, plan.Steps, 9)
	require.Equal(t, Step{Op: OpInsert, Count: 500}, plan.Steps[0])

	_, err = ParsePlan([]byte("steps:\n  - op: shuffle\n    count: 1\n"))
	require.ErrorIs(t, err, ErrInvalidPlan)
	_, err = ParsePlan([]byte("name: empty\n"))
	require.ErrorIs(t, err, ErrInvalidPlan)
	_, err = ParsePlan([]byte("steps: [[["))
	require.ErrorIs(t, err, ErrInvalidPlan)
}

func TestExamplePlanRoundTrip(t *testing.T) {
	bz, err := ExamplePlan().Marshal()
	require.NoError(t, err)
	plan, err := ParsePlan(bz)
	require.NoError(t, err)
	require.Equal(t, ExamplePlan(), plan)
	scaled := plan.Scaled(2)
	require.Equal(t, 2*plan.Steps[0].Count, scaled.Steps[0].Count)
	require.Equal(t, ExamplePlan().Steps[0].Count, plan.Steps[0].Count)
}

func TestRunner(t *testing.T) {
	plan, err := ParsePlan([]byte(testPlan))
	require.NoError(t, err)
	runner := NewRunner(plan, zerolog.New(io.Discard))
	require.NoError(t, runner.Run())
	require.Equal(t, 1000+500-300, runner.Seq.Size())
	require.LessOrEqual(t, runner.Map.Size(), 500)

	var out bytes.Buffer
	runner.Report(&out)
	report := out.String()
	require.Contains(t, report, "treapbench_seq_size")
	require.Contains(t, report, "1,200")
	require.Contains(t, report, "treapbench_operations_total{insert}")

	dot := filepath.Join(t.TempDir(), "seq.dot")
	require.NoError(t, runner.WriteDot(dot))
	bz, err := os.ReadFile(dot)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(bz), "strict digraph"))
}

func TestRunCommand(t *testing.T) {
	name := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(name, []byte(testPlan), 0o644))
	root := RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run", "--seed", "3", name})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), `plan "small", seed 3`)
}
