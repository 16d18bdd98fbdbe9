// Command treapbench runs workload plans against treap containers and reports
// timings and tree statistics.
//
//	treapbench run plan.yaml
//	treapbench run --seed 7 --scale 10 plan.yaml
//	treapbench example > plan.yaml
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCommand creates the command tree of treapbench.
func RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "treapbench",
		Short: "Benchmark treap containers",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress at debug level")
	root.AddCommand(runCommand(&verbose), exampleCommand())
	return root
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}).
		Level(level).
		With().Timestamp().Logger()
}

func runCommand(verbose *bool) *cobra.Command {
	var (
		seed  uint64
		scale int
		dot   string
	)
	cmd := &cobra.Command{
		Use:   "run [plan-file]",
		Short: "Run a workload plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := LoadPlan(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				plan.Seed = seed
			}
			if scale > 1 {
				plan = plan.Scaled(scale)
			}
			runner := NewRunner(plan, newLogger(*verbose))
			if err := runner.Run(); err != nil {
				return err
			}
			runner.Report(cmd.OutOrStdout())
			if dot != "" {
				return runner.WriteDot(dot)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the seed of the plan")
	cmd.Flags().IntVar(&scale, "scale", 1, "multiply all operation counts")
	cmd.Flags().StringVar(&dot, "dot", "", "write the final sequence tree as Graphviz DOT to this file")
	return cmd
}

func exampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example workload plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := ExamplePlan().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}
}
