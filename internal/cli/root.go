// Package cli builds the cobra root command shared by the exercise binaries.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nativemen/teach-rs-xw/internal/logging"
)

// Flags holds the persistent flags every binary understands.
type Flags struct {
	Verbose bool
	JSONLog bool
	// LogCategories restricts logging to these categories when non-empty.
	LogCategories []string
}

func (f *Flags) loggingConfig() (logging.Config, error) {
	cfg := logging.Config{Verbose: f.Verbose, Console: !f.JSONLog}
	if len(f.LogCategories) > 0 {
		only, err := logging.OnlyCategories(f.LogCategories)
		if err != nil {
			return cfg, err
		}
		cfg.Categories = only
	}
	return cfg, nil
}

// NewRoot returns a root command with --verbose, --json-log and
// --log-categories wired to the logging package. Logging is initialized
// before any RunE and synced after.
func NewRoot(use, short string) (*cobra.Command, *Flags) {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loggingConfig()
			if err != nil {
				return err
			}
			return logging.Initialize(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.JSONLog, "json-log", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringSliceVar(&flags.LogCategories, "log-categories", nil,
		"Only log these categories (boot, quiz, config, printer, expr, fizzbuzz)")
	return cmd, flags
}

// Main executes cmd and exits with status 1 if it fails.
func Main(cmd *cobra.Command) {
	os.Exit(Run(cmd, os.Args[1:], os.Stderr))
}

// Run executes cmd with args, reporting a failure to stderr. It returns the
// process exit code.
func Run(cmd *cobra.Command, args []string, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
