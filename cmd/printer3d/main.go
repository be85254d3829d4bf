// Command printer3d runs print jobs through the typestate printer.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/logging"
	"github.com/nativemen/teach-rs-xw/internal/printer3d"
)

func main() {
	cli.Main(newRootCmd(printer3d.RandomSensor))
}

func newRootCmd(sensor printer3d.FilamentSensor) *cobra.Command {
	root, _ := cli.NewRoot("printer3d", "Run print jobs on a simulated 3D printer")

	var jobs int
	root.Flags().IntVarP(&jobs, "jobs", "n", 100, "Number of print jobs to run")
	root.Args = cobra.NoArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if jobs < 0 {
			return fmt.Errorf("--jobs must not be negative, got %d", jobs)
		}
		printer := printer3d.New(
			printer3d.WithLogger(logging.Get(logging.CategoryPrinter)),
			printer3d.WithFilamentSensor(sensor),
		)
		for range jobs {
			printer, _ = printer3d.RunJob(printer)
		}
		stats := printer.Stats()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d jobs: %d completed, %d out of filament\n",
			jobs, stats.Completed, stats.Failed)
		return err
	}
	return root
}
