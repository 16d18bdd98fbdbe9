package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operations a plan may contain.
const (
	OpInsert    = "insert"     // insert at random positions of the sequence
	OpErase     = "erase"      // erase at random positions of the sequence
	OpAt        = "at"         // indexed reads
	OpRotate    = "rotate"     // rotate random ranges
	OpExtract   = "extract"    // extract a random range and append it again
	OpJump      = "jump"       // random access iterator jumps
	OpMapInsert = "map-insert" // insert random keys into the map
	OpMapErase  = "map-erase"  // erase random keys from the map
	OpMapFind   = "map-find"   // look up random keys in the map
)

var knownOps = map[string]bool{
	OpInsert: true, OpErase: true, OpAt: true, OpRotate: true, OpExtract: true,
	OpJump: true, OpMapInsert: true, OpMapErase: true, OpMapFind: true,
}

// ErrInvalidPlan is returned for plans which cannot be run.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan is a workload for treapbench.
type Plan struct {
	Name     string `yaml:"name"`
	Seed     uint64 `yaml:"seed"`
	Initial  int    `yaml:"initial"`   // size of the initial sequence, built in bulk
	KeySpace int    `yaml:"key_space"` // keys of map operations are drawn from [0, key_space)
	Steps    []Step `yaml:"steps"`
}

// Step is a number of operations of the same kind.
type Step struct {
	Op    string `yaml:"op"`
	Count int    `yaml:"count"`
}

// LoadPlan reads a plan from a YAML file.
func LoadPlan(name string) (*Plan, error) {
	bz, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParsePlan(bz)
}

// ParsePlan parses and validates a plan in YAML format.
func ParsePlan(bz []byte) (*Plan, error) {
	plan := &Plan{}
	if err := yaml.Unmarshal(bz, plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate checks a plan for unknown operations and negative counts.
func (p *Plan) Validate() error {
	if p.Initial < 0 || p.KeySpace < 0 {
		return fmt.Errorf("%w: negative sizes", ErrInvalidPlan)
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: plan has no steps", ErrInvalidPlan)
	}
	for i, step := range p.Steps {
		if !knownOps[step.Op] {
			return fmt.Errorf("%w: step %d has unknown operation %q", ErrInvalidPlan, i, step.Op)
		}
		if step.Count < 0 {
			return fmt.Errorf("%w: step %d has negative count", ErrInvalidPlan, i)
		}
	}
	return nil
}

// Scaled returns a copy of p with all counts multiplied by factor.
func (p *Plan) Scaled(factor int) *Plan {
	out := *p
	out.Initial *= factor
	out.KeySpace *= factor
	out.Steps = make([]Step, len(p.Steps))
	for i, step := range p.Steps {
		out.Steps[i] = Step{Op: step.Op, Count: step.Count * factor}
	}
	return &out
}

// Marshal serializes p as YAML.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// ExamplePlan returns a plan exercising all operations.
func ExamplePlan() *Plan {
	return &Plan{
		Name:     "mixed",
		Seed:     5489,
		Initial:  100_000,
		KeySpace: 50_000,
		Steps: []Step{
			{Op: OpInsert, Count: 50_000},
			{Op: OpAt, Count: 100_000},
			{Op: OpRotate, Count: 10_000},
			{Op: OpExtract, Count: 10_000},
			{Op: OpJump, Count: 10_000},
			{Op: OpErase, Count: 50_000},
			{Op: OpMapInsert, Count: 50_000},
			{Op: OpMapFind, Count: 100_000},
			{Op: OpMapErase, Count: 25_000},
		},
	}
}
