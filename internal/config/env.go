package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Recognized environment variables
const (
	EnvEnablePWA      = "VITE_ENABLE_PWA"
	EnvGitHubPages    = "GITHUB_PAGES"
	EnvAnalyze        = "ANALYZE"
	EnvEnableDevtools = "VITE_ENABLE_DEVTOOLS"

	// ClientPrefix marks variables that are embedded into client code
	ClientPrefix = "VITE_"
)

// options is ordered; diagnostics, listings and error reports follow it.
var options = []Option{
	{
		Env:         EnvEnablePWA,
		Key:         "enablePwa",
		Default:     true,
		Description: "enable installable-app (PWA) packaging",
	},
	{
		Env:         EnvGitHubPages,
		Key:         "isGithubPagesBuild",
		Default:     false,
		Description: "build for GitHub Pages (non-root base path)",
	},
	{
		Env:         EnvAnalyze,
		Key:         "enableBundleAnalysis",
		Default:     false,
		Description: "emit a bundle-size visualization",
	},
	{
		Env:         EnvEnableDevtools,
		Key:         "enableRouterDevtools",
		Default:     false,
		Description: "show the in-app router developer panel",
	},
}

var recognized = func() sets.Set[string] {
	s := sets.New[string]()
	for _, opt := range options {
		s.Insert(opt.Env)
	}
	return s
}()

// rawEnv holds the raw values of the recognized variables. A nil pointer
// means the variable is not set; only set values are checked.
type rawEnv struct {
	EnablePWA      *string `env:"VITE_ENABLE_PWA" validate:"omitnil,oneof=true false"`
	GitHubPages    *string `env:"GITHUB_PAGES" validate:"omitnil,oneof=true false"`
	Analyze        *string `env:"ANALYZE" validate:"omitnil,oneof=true false"`
	EnableDevtools *string `env:"VITE_ENABLE_DEVTOOLS" validate:"omitnil,oneof=true false"`
}

// Options returns the recognized options in their canonical order
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Defaults returns the configuration produced from an empty environment
func Defaults() BuildConfig {
	var cfg BuildConfig
	for _, opt := range options {
		cfg.set(opt.Env, opt.Default)
	}
	return cfg
}

// Validate turns a raw environment into a BuildConfig.
//
// Every recognized variable that is absent takes its default. A variable that
// is present must be exactly "true" or "false"; anything else, including the
// empty string, is invalid. All invalid variables are reported together in a
// *ConfigurationError and no configuration is returned. Unrecognized
// variables are ignored.
func Validate(env Environment) (*BuildConfig, error) {
	raw := rawEnv{
		EnablePWA:      lookup(env, EnvEnablePWA),
		GitHubPages:    lookup(env, EnvGitHubPages),
		Analyze:        lookup(env, EnvAnalyze),
		EnableDevtools: lookup(env, EnvEnableDevtools),
	}

	if err := validate.Struct(&raw); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("failed to validate environment: %w", err)
		}
		return nil, newConfigurationError(validationErrors)
	}

	cfg := Defaults()
	for name, value := range map[string]*string{
		EnvEnablePWA:      raw.EnablePWA,
		EnvGitHubPages:    raw.GitHubPages,
		EnvAnalyze:        raw.Analyze,
		EnvEnableDevtools: raw.EnableDevtools,
	} {
		if value != nil {
			cfg.set(name, *value == "true")
		}
	}

	log.WithFields(log.Fields{
		"enablePwa":            cfg.EnablePWA,
		"isGithubPagesBuild":   cfg.IsGitHubPagesBuild,
		"enableBundleAnalysis": cfg.EnableBundleAnalysis,
		"enableRouterDevtools": cfg.EnableRouterDevtools,
	}).Debug("environment validated")

	return &cfg, nil
}

// Lint reports VITE_-prefixed variables that are not recognized. Such
// variables are usually typos of a recognized option; they never affect
// the outcome of Validate.
func Lint(env Environment) []Warning {
	unknown := sets.New[string]()
	for name := range env {
		if strings.HasPrefix(name, ClientPrefix) && !recognized.Has(name) {
			unknown.Insert(name)
		}
	}

	var warnings []Warning
	for _, name := range sets.List(unknown) {
		warnings = append(warnings, Warning{
			Variable: name,
			Message:  fmt.Sprintf("%s is not a recognized option and will be ignored", name),
		})
	}
	return warnings
}

// Values returns each option with its resolved value, in canonical order
func (c *BuildConfig) Values() []OptionValue {
	values := make([]OptionValue, 0, len(options))
	for _, opt := range options {
		values = append(values, OptionValue{Option: opt, Value: c.get(opt.Env)})
	}
	return values
}

// Lookup returns the resolved value of a recognized variable
func (c *BuildConfig) Lookup(name string) (bool, bool) {
	if !recognized.Has(name) {
		return false, false
	}
	return c.get(name), true
}

func (c *BuildConfig) get(name string) bool {
	switch name {
	case EnvEnablePWA:
		return c.EnablePWA
	case EnvGitHubPages:
		return c.IsGitHubPagesBuild
	case EnvAnalyze:
		return c.EnableBundleAnalysis
	case EnvEnableDevtools:
		return c.EnableRouterDevtools
	}
	return false
}

func (c *BuildConfig) set(name string, value bool) {
	switch name {
	case EnvEnablePWA:
		c.EnablePWA = value
	case EnvGitHubPages:
		c.IsGitHubPagesBuild = value
	case EnvAnalyze:
		c.EnableBundleAnalysis = value
	case EnvEnableDevtools:
		c.EnableRouterDevtools = value
	}
}

func lookup(env Environment, name string) *string {
	value, ok := env[name]
	if !ok {
		return nil
	}
	return &value
}
