package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/gscan/rule"
)

const defaultDir = "."

// NewRootCommand builds the command line of a rule binary: one optional
// directory argument, defaulting to the current directory.
func NewRootCommand(name string, r rule.Rule) *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:          name + " [dir]",
		Short:        fmt.Sprintf("%s - run a single scan rule over a directory tree", name),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultDir
			if len(args) > 0 {
				dir = args[0]
			}
			if noColor {
				color.NoColor = true
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			runScan(cmd.OutOrStdout(), logger, r, dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file diagnostics to stderr")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// Execute runs the rule binary against the directory given on the
// command line. A completed scan always exits 0; only usage errors exit
// non-zero.
func Execute(name string, r rule.Rule) {
	root := NewRootCommand(name, r)
	root.SetOut(color.Output)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
