// Package config provides functionality for resolving the build environment
// of the application: a small, closed set of boolean flags read from
// environment variables, plus the static project settings those flags select
// between.
//
// # Basic Usage
//
// The main entry point is [Validate], which takes an explicit [Environment]
// and returns a fully populated [BuildConfig]:
//
//	env := config.FromEnviron(os.Environ())
//	cfg, err := config.Validate(env)
//	if err != nil {
//	    // err is a *config.ConfigurationError listing every bad variable
//	}
//
//	if cfg.IsGitHubPagesBuild {
//	    // select the GitHub Pages base path
//	}
//
// Callers construct the configuration once and pass it to every consumer;
// the package keeps no global configuration state.
//
// # Recognized Variables
//
//	VITE_ENABLE_PWA       default true
//	GITHUB_PAGES          default false
//	ANALYZE               default false
//	VITE_ENABLE_DEVTOOLS  default false
//
// A variable that is not set takes its default. A variable that is set must
// be exactly "true" or "false" (case-sensitive). Defaults are never
// substituted for malformed values. Unrecognized variables are ignored;
// [Lint] warns about unrecognized VITE_ variables.
//
// # Environment Sources
//
// [EnvFilesForMode] and [LoadEnvFiles] read dotenv files the way the
// front-end build tool does (.env, .env.local, .env.<mode>,
// .env.<mode>.local). [Merge] layers them under the process environment.
//
// # Project Configuration
//
// [LoadProjectConfig] reads buildenv.yaml on top of built-in defaults:
//
//	name: study-github-agent
//	version: 0.1.0
//	base: /
//	pagesBase: /study_github_agent/
//	outDir: dist
//	sourcemap: true
//	server:
//	  port: 3000
//	  open: true
//
// A missing file yields the defaults.
package config
