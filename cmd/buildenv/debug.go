package main

import (
	"github.com/nauticalab/buildenv/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Debug command flags
	htmlDir string
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Show the debug page contents",
	Long: `Show what the application's debug page reports: version, build time,
the resolved flags, the build plan and host details.

Examples:
  buildenv debug
  buildenv debug --html-dir ./public`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.DebugRun(streams(), cli.DebugOptions{
			PlanOptions: planOptions(),
			HTMLDir:     htmlDir,
		})
	},
}

func init() {
	// Debug command specific flags
	debugCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")
	debugCmd.Flags().StringVar(&projectFile, "project-file", "", "Project config file (default <dir>/buildenv.yaml)")
	debugCmd.Flags().StringVar(&htmlDir, "html-dir", "", "Also write debug.html into this directory")
}
