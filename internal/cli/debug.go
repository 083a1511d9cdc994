package cli

import (
	"fmt"
	"time"

	"github.com/nauticalab/buildenv/internal/git"
	"github.com/nauticalab/buildenv/internal/site"
	"github.com/nauticalab/buildenv/internal/templates"
	log "github.com/sirupsen/logrus"
)

// DebugOptions holds configuration for the debug command
type DebugOptions struct {
	PlanOptions
	// HTMLDir, when set, receives a rendered debug.html
	HTMLDir string
	// Now is the report time; zero means now
	Now time.Time
}

// DebugRun prints the debug page contents and optionally writes debug.html
func DebugRun(streams Streams, opts DebugOptions) error {
	if err := checkFormat(opts.Output, FormatText, FormatYAML, FormatJSON); err != nil {
		return err
	}

	p, cfg, project, err := buildPlan(streams, opts.PlanOptions)
	if err != nil {
		return err
	}

	gitInfo, err := git.GetInfo(opts.Dir)
	if err != nil {
		log.WithError(err).Debug("no git metadata for debug report")
		gitInfo = nil
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	report := site.NewDebugReport(project.Name, cfg, p, gitInfo, now)

	if opts.Output != FormatText {
		if err := writeStructured(streams.Out, opts.Output, report); err != nil {
			return err
		}
	} else {
		renderer := templates.NewRenderer("")
		if err := renderer.Render(streams.Out, templates.DebugText, report); err != nil {
			return err
		}
	}

	if opts.HTMLDir != "" {
		path, err := templates.NewRenderer(opts.HTMLDir).RenderToFile(templates.DebugHTML, report)
		if err != nil {
			return fmt.Errorf("failed to write debug page: %w", err)
		}
		st := newStyles(streams.Err)
		fmt.Fprintln(streams.Err, st.ok.Render("✅ Generated "+path))
	}

	return nil
}
