// Package plan turns a validated BuildConfig and the project settings into
// the concrete decisions the front-end build makes: which base path asset
// URLs use, which optional build steps run, and what gets emitted.
package plan

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/nauticalab/buildenv/internal/config"
)

// Plugin names as they appear in the plan
const (
	PluginReact      = "react"
	PluginRouter     = "tanstack-router"
	PluginPWA        = "pwa"
	PluginVisualizer = "visualizer"
)

// Default build modes
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Options holds the per-invocation inputs that are not part of either configuration
type Options struct {
	Mode      string
	BuildTime time.Time
}

// Plugin is one step of the build pipeline
type Plugin struct {
	Name    string `yaml:"name" json:"name"`
	Purpose string `yaml:"purpose" json:"purpose"`
}

// Plan is the resolved build configuration
type Plan struct {
	Mode      string            `yaml:"mode" json:"mode"`
	Base      string            `yaml:"base" json:"base"`
	OutDir    string            `yaml:"outDir" json:"outDir"`
	Sourcemap bool              `yaml:"sourcemap" json:"sourcemap"`
	Plugins   []Plugin          `yaml:"plugins" json:"plugins"`
	Artifacts []string          `yaml:"artifacts" json:"artifacts"`
	Define    map[string]string `yaml:"define" json:"define"`
	ClientEnv map[string]string `yaml:"clientEnv" json:"clientEnv"`
	Server    ServerPlan        `yaml:"server" json:"server"`
}

// ServerPlan mirrors the development server settings
type ServerPlan struct {
	Port int  `yaml:"port" json:"port"`
	Open bool `yaml:"open" json:"open"`
}

// New builds a Plan. Both configurations are read, never modified.
func New(project *config.ProjectConfig, cfg *config.BuildConfig, opts Options) *Plan {
	mode := opts.Mode
	if mode == "" {
		mode = ModeProduction
	}
	buildTime := opts.BuildTime
	if buildTime.IsZero() {
		buildTime = time.Now()
	}

	p := &Plan{
		Mode:      mode,
		Base:      project.Base,
		OutDir:    project.OutDir,
		Sourcemap: project.Sourcemap,
		Plugins: []Plugin{
			{Name: PluginReact, Purpose: "JSX transform and fast refresh"},
			{Name: PluginRouter, Purpose: "file-based route generation"},
		},
		Artifacts: []string{"index.html"},
		Define: map[string]string{
			"__APP_VERSION__": project.Version,
			"__BUILD_TIME__":  buildTime.UTC().Format(time.RFC3339),
		},
		ClientEnv: map[string]string{},
		Server: ServerPlan{
			Port: project.Server.Port,
			Open: project.Server.Open,
		},
	}

	if cfg.IsGitHubPagesBuild {
		p.Base = project.PagesBase
	}
	if cfg.EnablePWA {
		p.Plugins = append(p.Plugins, Plugin{Name: PluginPWA, Purpose: "web app manifest and service worker"})
		p.Artifacts = append(p.Artifacts, "manifest.webmanifest", "sw.js")
	}
	if cfg.EnableBundleAnalysis {
		p.Plugins = append(p.Plugins, Plugin{Name: PluginVisualizer, Purpose: "bundle size report"})
		p.Artifacts = append(p.Artifacts, "stats.html")
	}

	for _, v := range cfg.Values() {
		if v.Client() {
			p.ClientEnv[v.Env] = fmt.Sprintf("%t", v.Value)
		}
	}

	return p
}

// HasPlugin reports whether the named plugin is part of the plan
func (p *Plan) HasPlugin(name string) bool {
	for _, plugin := range p.Plugins {
		if plugin.Name == name {
			return true
		}
	}
	return false
}

// AssetURL returns the URL of an emitted asset under the plan's base path
func (p *Plan) AssetURL(asset string) string {
	return path.Join(p.Base, strings.TrimPrefix(asset, "/"))
}

// BuildTime returns the build time recorded in the plan
func (p *Plan) BuildTime() (time.Time, error) {
	return time.Parse(time.RFC3339, p.Define["__BUILD_TIME__"])
}
