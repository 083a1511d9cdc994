package main

import (
	"github.com/nauticalab/buildenv/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Plan command flags
	projectFile string
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the build plan derived from the environment",
	Long: `Show the base path, plugins and artifacts the build will use.

The environment is validated first; an invalid environment stops here
with the same diagnostic as "buildenv validate".

Examples:
  buildenv plan
  GITHUB_PAGES=true ANALYZE=true buildenv plan -o json
  buildenv plan --project-file ./site.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.PlanRun(streams(), planOptions())
	},
}

func planOptions() cli.PlanOptions {
	return cli.PlanOptions{
		EnvOptions:  envOptions(),
		ProjectFile: projectFile,
		Output:      output,
	}
}

func init() {
	// Plan command specific flags
	planCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")
	planCmd.Flags().StringVar(&projectFile, "project-file", "", "Project config file (default <dir>/buildenv.yaml)")
}
