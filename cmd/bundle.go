package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bundleFlags holds the root command's flag values.
type bundleFlags struct {
	root     string
	manifest string
	output   string
	strict   bool
	debug    bool
}

func (f *bundleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.root, "root", "r", "", "Project root (default: current directory)")
	cmd.Flags().StringVarP(&f.manifest, "manifest", "m", "", "YAML or TOML file describing the bundle (default: built-in auth bundle)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output filename relative to the project root")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on files that are not valid UTF-8 instead of substituting U+FFFD")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable development logging")
}

// profile resolves the bundle profile from the manifest and flag overrides.
func (f *bundleFlags) profile() (bundle.Profile, error) {
	p := bundle.DefaultProfile()
	if f.manifest != "" {
		var err error
		if p, err = bundle.LoadManifest(f.manifest); err != nil {
			return bundle.Profile{}, err
		}
	}
	if f.output != "" {
		p.Output = f.output
	}
	if f.strict {
		p.Decoding = bundle.DecodeStrict
	}
	return p, p.Validate()
}

func runBundle(cmd *cobra.Command, f *bundleFlags, logger *zap.Logger) error {
	profile, err := f.profile()
	if err != nil {
		logger.Error("Invalid bundle configuration", zap.String("manifest", f.manifest), zap.Error(err))
		return fmt.Errorf("invalid bundle configuration: %w", err)
	}

	root := f.root
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	result, err := bundle.Run(cmd.Context(), bundle.Options{Root: root, Profile: profile}, logger)
	if err != nil {
		return fmt.Errorf("bundle failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.OutputPath)
	return nil
}
