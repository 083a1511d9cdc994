package main

import (
	"fmt"
	"os"

	"github.com/nauticalab/buildenv/internal/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose  bool
	dir      string
	mode     string
	envFiles []string
	noDotenv bool

	// Shared by the commands that print a result
	output string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "buildenv",
	Short: "Validate the build-time environment of the front-end",
	Long: `buildenv reads the feature flags that control the front-end build
(VITE_ENABLE_PWA, GITHUB_PAGES, ANALYZE, VITE_ENABLE_DEVTOOLS) from the
process environment and the project's .env files, validates them, and
derives the build plan from the result.

Every flag must be exactly "true" or "false". Unset flags take their
defaults; anything else stops the build with a diagnostic.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyDefaults,
}

// applyDefaults wires logging and fills flags not given on the command line
// from ~/.buildenv/config.yaml and BUILDENV_* variables.
func applyDefaults(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cliConfig, err := cli.LoadCLIConfig()
	if err != nil {
		return fmt.Errorf("failed to load CLI config: %w", err)
	}

	if !cmd.Flags().Changed("mode") {
		mode = cliConfig.Mode
	}
	if f := cmd.Flags().Lookup("output"); f != nil && !f.Changed {
		output = cliConfig.Output
	}

	log.WithFields(log.Fields{
		"dir":    dir,
		"mode":   mode,
		"output": output,
	}).Debug("resolved CLI settings")
	return nil
}

func streams() cli.Streams {
	return cli.Streams{Out: os.Stdout, Err: os.Stderr}
}

func envOptions() cli.EnvOptions {
	return cli.EnvOptions{
		Dir:      dir,
		Mode:     mode,
		EnvFiles: envFiles,
		Environ:  os.Environ(),
		NoDotenv: noDotenv,
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Project directory containing buildenv.yaml and .env files")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "", "Build mode selecting .env.<mode> files (default production)")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "Additional dotenv file to load (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&noDotenv, "no-dotenv", false, "Do not load .env files from the project directory")

	// Add subcommands to root
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}
