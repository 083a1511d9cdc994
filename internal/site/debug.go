package site

import (
	"runtime"
	"time"

	"github.com/nauticalab/buildenv/internal/config"
	"github.com/nauticalab/buildenv/internal/git"
	"github.com/nauticalab/buildenv/internal/plan"
)

// TimeLayout is used for every timestamp on the debug page
const TimeLayout = "2006-01-02 15:04:05 MST"

// DebugReport is everything the debug page displays
type DebugReport struct {
	App    AppInfo    `yaml:"app" json:"app"`
	Flags  []FlagRow  `yaml:"flags" json:"flags"`
	Build  BuildInfo  `yaml:"build" json:"build"`
	Host   HostInfo   `yaml:"host" json:"host"`
	Git    *git.Info  `yaml:"git,omitempty" json:"git,omitempty"`
	Layout RootLayout `yaml:"layout" json:"layout"`
}

// AppInfo is the application section
type AppInfo struct {
	Name      string `yaml:"name" json:"name"`
	Version   string `yaml:"version" json:"version"`
	BuildTime string `yaml:"buildTime" json:"buildTime"`
}

// FlagRow is one build-time flag as displayed
type FlagRow struct {
	Name        string `yaml:"name" json:"name"`
	Value       bool   `yaml:"value" json:"value"`
	Default     bool   `yaml:"default" json:"default"`
	Description string `yaml:"description" json:"description"`
}

// BuildInfo summarises the build plan
type BuildInfo struct {
	Mode    string   `yaml:"mode" json:"mode"`
	Base    string   `yaml:"base" json:"base"`
	Plugins []string `yaml:"plugins" json:"plugins"`
}

// HostInfo describes the machine that produced the report
type HostInfo struct {
	GoVersion string `yaml:"goVersion" json:"goVersion"`
	Platform  string `yaml:"platform" json:"platform"`
	Now       string `yaml:"now" json:"now"`
}

// NewDebugReport assembles the debug page. gitInfo may be nil when the
// project is not inside a repository.
func NewDebugReport(name string, cfg *config.BuildConfig, p *plan.Plan, gitInfo *git.Info, now time.Time) DebugReport {
	report := DebugReport{
		App: AppInfo{
			Name:      name,
			Version:   p.Define["__APP_VERSION__"],
			BuildTime: formatBuildTime(p, now.Location()),
		},
		Build: BuildInfo{
			Mode: p.Mode,
			Base: p.Base,
		},
		Host: HostInfo{
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			Now:       now.Format(TimeLayout),
		},
		Git:    gitInfo,
		Layout: Layout(cfg, p.Mode),
	}

	for _, v := range cfg.Values() {
		report.Flags = append(report.Flags, FlagRow{
			Name:        v.Env,
			Value:       v.Value,
			Default:     v.Default,
			Description: v.Description,
		})
	}
	for _, plugin := range p.Plugins {
		report.Build.Plugins = append(report.Build.Plugins, plugin.Name)
	}

	return report
}

// formatBuildTime falls back to the raw value when it cannot be parsed
func formatBuildTime(p *plan.Plan, loc *time.Location) string {
	bt, err := p.BuildTime()
	if err != nil {
		return p.Define["__BUILD_TIME__"]
	}
	return bt.In(loc).Format(TimeLayout)
}
