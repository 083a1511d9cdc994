package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nauticalab/buildenv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testStreams() (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{Out: &out, Err: &errOut}, &out, &errOut
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateRun_Defaults(t *testing.T) {
	streams, out, errOut := testStreams()

	err := ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{Dir: t.TempDir(), Mode: "production"},
		Output:     FormatText,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "✅ Environment is valid")
	assert.Contains(t, out.String(), "  VITE_ENABLE_PWA       true  (default)\n")
	assert.Contains(t, out.String(), "  GITHUB_PAGES          false (default)\n")
	assert.Empty(t, errOut.String())
}

func TestValidateRun_ProcessEnvironment(t *testing.T) {
	streams, out, _ := testStreams()

	err := ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{
			Dir:     t.TempDir(),
			Environ: []string{"GITHUB_PAGES=true", "HOME=/root"},
		},
		Output:  FormatText,
		Verbose: true,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "  GITHUB_PAGES          true\n")
	assert.Contains(t, out.String(), "    build for GitHub Pages (non-root base path)\n")
}

func TestValidateRun_Structured(t *testing.T) {
	environ := []string{"VITE_ENABLE_PWA=false", "GITHUB_PAGES=true", "ANALYZE=true", "VITE_ENABLE_DEVTOOLS=true"}
	expected := config.BuildConfig{
		EnablePWA:            false,
		IsGitHubPagesBuild:   true,
		EnableBundleAnalysis: true,
		EnableRouterDevtools: true,
	}

	t.Run("yaml", func(t *testing.T) {
		streams, out, _ := testStreams()
		require.NoError(t, ValidateRun(streams, ValidateOptions{
			EnvOptions: EnvOptions{Dir: t.TempDir(), Environ: environ},
			Output:     FormatYAML,
		}))

		var got config.BuildConfig
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, expected, got)
		assert.Contains(t, out.String(), "isGithubPagesBuild: true")
	})

	t.Run("json", func(t *testing.T) {
		streams, out, _ := testStreams()
		require.NoError(t, ValidateRun(streams, ValidateOptions{
			EnvOptions: EnvOptions{Dir: t.TempDir(), Environ: environ},
			Output:     FormatJSON,
		}))

		var got config.BuildConfig
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, expected, got)
		assert.Contains(t, out.String(), `"enablePwa": false`)
	})
}

func TestValidateRun_Invalid(t *testing.T) {
	streams, out, errOut := testStreams()

	err := ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{
			Dir:     t.TempDir(),
			Environ: []string{"ANALYZE=maybe", "VITE_ENABLE_PWA=yes"},
		},
		Output: FormatText,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReported)
	assert.True(t, config.IsConfigurationError(err))

	var cerr *config.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"VITE_ENABLE_PWA", "ANALYZE"}, cerr.Fields())

	assert.Empty(t, out.String(), "nothing printed to stdout on failure")
	diag := errOut.String()
	assert.Contains(t, diag, "❌ Environment validation failed")
	assert.Contains(t, diag, `  - ANALYZE: "maybe" must be 'true' or 'false'`)
	assert.Contains(t, diag, `  - VITE_ENABLE_PWA: "yes" must be 'true' or 'false'`)
	assert.Contains(t, diag, "  export GITHUB_PAGES=false")
	assert.Contains(t, diag, "  - "+SourceProcess)
	assert.Contains(t, diag, "2 errors found")
}

func TestValidateRun_EnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ANALYZE=true\nGITHUB_PAGES=true\n")
	writeFile(t, dir, ".env.local", "GITHUB_PAGES=false\n")
	writeFile(t, dir, ".env.test", "VITE_ENABLE_PWA=false\n")

	cases := []struct {
		name     string
		opts     EnvOptions
		expected config.BuildConfig
	}{
		{
			name: "production reads .env and .env.local",
			opts: EnvOptions{Dir: dir, Mode: "production"},
			expected: config.BuildConfig{
				EnablePWA:            true,
				EnableBundleAnalysis: true,
			},
		},
		{
			name: "test mode skips .env.local",
			opts: EnvOptions{Dir: dir, Mode: "test"},
			expected: config.BuildConfig{
				IsGitHubPagesBuild:   true,
				EnableBundleAnalysis: true,
			},
		},
		{
			name: "process environment wins",
			opts: EnvOptions{Dir: dir, Mode: "production", Environ: []string{"ANALYZE=false"}},
			expected: config.BuildConfig{
				EnablePWA: true,
			},
		},
		{
			name:     "dotenv disabled",
			opts:     EnvOptions{Dir: dir, Mode: "production", NoDotenv: true},
			expected: config.Defaults(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			streams, out, _ := testStreams()
			require.NoError(t, ValidateRun(streams, ValidateOptions{EnvOptions: tc.opts, Output: FormatYAML}))

			var got config.BuildConfig
			require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestValidateRun_ExplicitEnvFile(t *testing.T) {
	dir := t.TempDir()
	extra := writeFile(t, t.TempDir(), "ci.env", "VITE_ENABLE_DEVTOOLS=true\n")

	streams, out, _ := testStreams()
	require.NoError(t, ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{Dir: dir, EnvFiles: []string{extra}},
		Output:     FormatJSON,
	}))
	assert.Contains(t, out.String(), `"enableRouterDevtools": true`)

	streams, _, _ = testStreams()
	err := ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{Dir: dir, EnvFiles: []string{filepath.Join(dir, "missing.env")}},
		Output:     FormatText,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReported)
	assert.Contains(t, err.Error(), "failed to gather environment")
}

func TestValidateRun_Warnings(t *testing.T) {
	streams, out, errOut := testStreams()

	require.NoError(t, ValidateRun(streams, ValidateOptions{
		EnvOptions: EnvOptions{Dir: t.TempDir(), Environ: []string{"VITE_ENABLE_PWAA=false"}},
		Output:     FormatText,
	}))

	assert.Contains(t, errOut.String(), "⚠️  Warning: VITE_ENABLE_PWAA is not a recognized option")
	assert.Contains(t, out.String(), "✅ Environment is valid")
}

func TestValidateRun_BadFormat(t *testing.T) {
	streams, _, _ := testStreams()
	err := ValidateRun(streams, ValidateOptions{Output: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "xml"`)
}
