package main

import (
	"github.com/nauticalab/buildenv/internal/cli"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the build environment",
	Long: `Validate the build-time feature flags.

All invalid flags are reported together, along with the recognized
options and how to set them. The command exits non-zero on any error.

Examples:
  buildenv validate
  GITHUB_PAGES=true buildenv validate -o yaml
  buildenv validate --mode test --env-file ./ci.env`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ValidateRun(streams(), cli.ValidateOptions{
			EnvOptions: envOptions(),
			Output:     output,
			Verbose:    verbose,
		})
	},
}

func init() {
	// Validate command specific flags
	validateCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")
}
