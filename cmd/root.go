package cmd

import (
	"context"
	"os"
	"os/signal"

	"srcbundle/pkg/logging"
	"srcbundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the srcbundle command tree. Running the root command
// without a subcommand writes the bundle. A nil logger means one is built
// from the --debug flag before the command runs.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &bundleFlags{}

	rootCmd := &cobra.Command{
		Use:   "srcbundle",
		Short: "srcbundle bundles a fixed list of project files into one Markdown document",
		Long: `srcbundle reads a fixed, ordered list of source files from the project root,
numbers their lines and writes them into a single Markdown report, listing any
files that could not be found. Designed for handing a whole feature area to a
reviewer or a language model as one artifact.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			l, err := logging.Setup(opts.debug, version.AppName, version.Get().Version)
			logger = l
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, opts, logger)
		},
	}

	opts.register(rootCmd)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments. An interrupt
// stops the run before the output file is written.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd(nil).ExecuteContext(ctx)
}
