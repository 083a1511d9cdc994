package cli

import (
	"fmt"
	"time"

	"github.com/nauticalab/buildenv/internal/config"
	"github.com/nauticalab/buildenv/internal/plan"
)

// PlanOptions holds configuration for the plan command
type PlanOptions struct {
	EnvOptions
	// ProjectFile overrides <Dir>/buildenv.yaml
	ProjectFile string
	Output      string
	// BuildTime is recorded in the plan; zero means now
	BuildTime time.Time
}

// PlanRun prints the build plan derived from the environment and project file
func PlanRun(streams Streams, opts PlanOptions) error {
	if err := checkFormat(opts.Output, FormatText, FormatYAML, FormatJSON); err != nil {
		return err
	}

	p, _, _, err := buildPlan(streams, opts)
	if err != nil {
		return err
	}

	if opts.Output != FormatText {
		return writeStructured(streams.Out, opts.Output, p)
	}

	printPlan(streams, p)
	return nil
}

// buildPlan validates the environment once and hands the result to every consumer
func buildPlan(streams Streams, opts PlanOptions) (*plan.Plan, *config.BuildConfig, *config.ProjectConfig, error) {
	cfg, err := resolveConfig(streams, opts.EnvOptions)
	if err != nil {
		return nil, nil, nil, err
	}

	project, err := loadProject(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	p := plan.New(project, cfg, plan.Options{Mode: opts.Mode, BuildTime: opts.BuildTime})
	return p, cfg, project, nil
}

func loadProject(opts PlanOptions) (*config.ProjectConfig, error) {
	if opts.ProjectFile != "" {
		return config.LoadProjectConfigFromPath(opts.ProjectFile)
	}
	return config.LoadProjectConfig(opts.Dir)
}

func printPlan(streams Streams, p *plan.Plan) {
	st := newStyles(streams.Out)
	fmt.Fprintln(streams.Out, st.ok.Render(fmt.Sprintf("🏗️  Build plan (%s)", p.Mode)))
	fmt.Fprintf(streams.Out, "  Base:      %s\n", p.Base)
	fmt.Fprintf(streams.Out, "  Out dir:   %s\n", p.OutDir)
	fmt.Fprintf(streams.Out, "  Sourcemap: %t\n", p.Sourcemap)

	fmt.Fprintln(streams.Out, "  Plugins:")
	for _, plugin := range p.Plugins {
		fmt.Fprintf(streams.Out, "    - %-16s%s\n", plugin.Name, st.dim.Render(plugin.Purpose))
	}

	fmt.Fprintln(streams.Out, "  Artifacts:")
	for _, artifact := range p.Artifacts {
		fmt.Fprintf(streams.Out, "    - %s\n", p.AssetURL(artifact))
	}
}
