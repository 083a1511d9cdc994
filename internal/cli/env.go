package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nauticalab/buildenv/internal/config"
	"github.com/nauticalab/buildenv/internal/templates"
	log "github.com/sirupsen/logrus"
)

// ErrReported is returned after a failure has already been rendered for the
// user; the entry point should exit non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

// SourceProcess labels the process environment in diagnostics
const SourceProcess = "process environment"

// Streams are the writers a command prints to
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// EnvOptions selects where environment values are read from
type EnvOptions struct {
	// Dir is the project directory holding buildenv.yaml and .env files
	Dir string
	// Mode is the build mode (production, development, test)
	Mode string
	// EnvFiles are extra dotenv files loaded after the mode files
	EnvFiles []string
	// Environ is the process environment as KEY=VALUE pairs
	Environ []string
	// NoDotenv skips the mode files in Dir
	NoDotenv bool
}

// gatherEnvironment layers dotenv files under the process environment and
// returns the merged result together with the list of sources used.
func gatherEnvironment(opts EnvOptions) (config.Environment, []string, error) {
	var files []string
	if !opts.NoDotenv {
		files = append(files, config.EnvFilesForMode(opts.Dir, opts.Mode)...)
	}
	files = append(files, opts.EnvFiles...)

	fileEnv, err := config.LoadEnvFiles(files...)
	if err != nil {
		return nil, nil, err
	}

	sources := append(files, SourceProcess)
	log.WithFields(log.Fields{
		"mode":    opts.Mode,
		"sources": sources,
	}).Debug("environment gathered")

	return config.Merge(fileEnv, config.FromEnviron(opts.Environ)), sources, nil
}

// resolveConfig gathers the environment and validates it exactly once.
// Warnings go to stderr; on a validation failure the diagnostic is rendered
// to stderr and the returned error wraps both ErrReported and the
// *config.ConfigurationError.
func resolveConfig(streams Streams, opts EnvOptions) (*config.BuildConfig, error) {
	env, sources, err := gatherEnvironment(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to gather environment: %w", err)
	}

	st := newStyles(streams.Err)
	for _, warning := range config.Lint(env) {
		fmt.Fprintln(streams.Err, st.warn.Render("⚠️  Warning: "+warning.Message))
	}

	cfg, err := config.Validate(env)
	if err != nil {
		var cerr *config.ConfigurationError
		if !errors.As(err, &cerr) {
			return nil, err
		}
		renderer := templates.NewRenderer("")
		if rerr := renderer.Render(streams.Err, templates.Diagnostic, templates.NewDiagnostic(cerr, sources)); rerr != nil {
			return nil, fmt.Errorf("%w (rendering diagnostic: %v)", cerr, rerr)
		}
		return nil, fmt.Errorf("%w: %w", ErrReported, cerr)
	}

	return cfg, nil
}
