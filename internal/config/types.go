package config

import "strings"

// Environment is a snapshot of raw environment variables. A key that is
// present is "set", even when its value is the empty string.
type Environment map[string]string

// BuildConfig is the validated set of boolean build and runtime flags.
// It is produced once by Validate and is read-only afterwards.
type BuildConfig struct {
	EnablePWA            bool `yaml:"enablePwa" json:"enablePwa"`
	IsGitHubPagesBuild   bool `yaml:"isGithubPagesBuild" json:"isGithubPagesBuild"`
	EnableBundleAnalysis bool `yaml:"enableBundleAnalysis" json:"enableBundleAnalysis"`
	EnableRouterDevtools bool `yaml:"enableRouterDevtools" json:"enableRouterDevtools"`
}

// Option describes one recognized environment variable
type Option struct {
	// Env is the environment variable name, e.g. VITE_ENABLE_PWA
	Env string
	// Key is the configuration key used in YAML/JSON output
	Key string
	// Default is applied when the variable is not set
	Default bool
	// Description is a short human-readable explanation
	Description string
}

// Client reports whether the option is exposed to client-side code.
// Only VITE_-prefixed variables are embedded into the application bundle.
func (o Option) Client() bool {
	return strings.HasPrefix(o.Env, ClientPrefix)
}

// OptionValue pairs an option with its resolved value
type OptionValue struct {
	Option
	Value bool
}

// IsDefault reports whether the resolved value equals the option default
func (v OptionValue) IsDefault() bool {
	return v.Value == v.Default
}

// Warning represents a non-fatal environment issue
type Warning struct {
	// Variable is the environment variable the warning is about
	Variable string
	// Message is a human-readable warning description
	Message string
}

// ProjectConfig holds the static build-tool settings that the environment
// flags select between.
type ProjectConfig struct {
	Name      string       `yaml:"name" validate:"required"`
	Version   string       `yaml:"version" validate:"required"`
	Base      string       `yaml:"base" validate:"required,base_path"`      // Asset base for regular builds
	PagesBase string       `yaml:"pagesBase" validate:"required,base_path"` // Asset base for GitHub Pages builds
	OutDir    string       `yaml:"outDir" validate:"required"`
	Sourcemap bool         `yaml:"sourcemap"`
	Server    ServerConfig `yaml:"server"`
}

// ServerConfig represents the development server settings
type ServerConfig struct {
	Port int  `yaml:"port" validate:"min=1,max=65535"`
	Open bool `yaml:"open"`
}

// NewProjectConfigWithDefaults returns a ProjectConfig populated with the
// built-in defaults. YAML values are unmarshalled on top of it.
func NewProjectConfigWithDefaults() ProjectConfig {
	return ProjectConfig{
		Name:      DefaultProjectName,
		Version:   DefaultVersion,
		Base:      "/",
		PagesBase: "/" + DefaultPagesRepo + "/",
		OutDir:    "dist",
		Sourcemap: true,
		Server: ServerConfig{
			Port: 3000,
			Open: true,
		},
	}
}

const (
	// DefaultProjectName is the project name used when buildenv.yaml omits it
	DefaultProjectName = "study-github-agent"
	// DefaultVersion is the application version used when buildenv.yaml omits it
	DefaultVersion = "0.1.0"
	// DefaultPagesRepo is the repository name GitHub Pages serves the site under
	DefaultPagesRepo = "study_github_agent"
	// ProjectFileName is the project configuration file looked up in a directory
	ProjectFileName = "buildenv.yaml"
)
