package cli

import (
	"fmt"

	"github.com/nauticalab/buildenv/internal/config"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	EnvOptions
	Output  string
	Verbose bool
}

// ValidateRun validates the build environment and prints the resolved configuration
func ValidateRun(streams Streams, opts ValidateOptions) error {
	if err := checkFormat(opts.Output, FormatText, FormatYAML, FormatJSON); err != nil {
		return err
	}

	cfg, err := resolveConfig(streams, opts.EnvOptions)
	if err != nil {
		return err
	}

	if opts.Output != FormatText {
		return writeStructured(streams.Out, opts.Output, cfg)
	}

	printBuildConfig(streams, cfg, opts.Verbose)
	return nil
}

// printBuildConfig prints the resolved flags in a user-friendly format
func printBuildConfig(streams Streams, cfg *config.BuildConfig, verbose bool) {
	st := newStyles(streams.Out)
	fmt.Fprintln(streams.Out, st.ok.Render("✅ Environment is valid"))

	for _, v := range cfg.Values() {
		line := fmt.Sprintf("  %-22s%t", v.Env, v.Value)
		if v.IsDefault() {
			line = fmt.Sprintf("  %-22s%-6t%s", v.Env, v.Value, st.dim.Render("(default)"))
		}
		fmt.Fprintln(streams.Out, line)
		if verbose {
			fmt.Fprintf(streams.Out, "    %s\n", v.Description)
		}
	}
}
