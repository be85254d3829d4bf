// Command configreader loads a JSON or YAML config file, chosen by its
// extension, and prints the result.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/config"
)

func main() {
	cli.Main(newRootCmd())
}

func newRootCmd() *cobra.Command {
	root, _ := cli.NewRoot("configreader <path>", "Read a .json, .yml or .yaml config file")
	root.Args = cobra.ExactArgs(1)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg)
		return err
	}
	return root
}
