// Command fizzbuzz prints FizzBuzz for 1..count.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/fizzbuzz"
	"github.com/nativemen/teach-rs-xw/internal/logging"
)

func main() {
	cli.Main(newRootCmd())
}

func newRootCmd() *cobra.Command {
	root, _ := cli.NewRoot("fizzbuzz", "Print FizzBuzz")

	var count uint32
	root.Flags().Uint32VarP(&count, "count", "n", 100, "Count up to this number")
	root.Args = cobra.NoArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		logging.Get(logging.CategoryFizzBuzz).Debug("counting", zap.Uint32("count", count))
		return fizzbuzz.Write(cmd.OutOrStdout(), count)
	}
	return root
}
