package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromEnviron(t *testing.T) {
	env := FromEnviron([]string{
		"GITHUB_PAGES=true",
		"EMPTY=",
		"WITH_EQUALS=a=b",
		"NOEQUALS",
		"=orphan",
	})

	assert.Equal(t, Environment{
		"GITHUB_PAGES": "true",
		"EMPTY":        "",
		"WITH_EQUALS":  "a=b",
	}, env)

	// An empty value is "set" and therefore validated
	_, present := env["EMPTY"]
	assert.True(t, present)
}

func TestEnvFilesForMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ANALYZE=false\n")
	writeFile(t, dir, ".env.local", "ANALYZE=true\n")
	writeFile(t, dir, ".env.production", "GITHUB_PAGES=true\n")
	writeFile(t, dir, ".env.test", "VITE_ENABLE_PWA=false\n")
	writeFile(t, dir, ".env.test.local", "VITE_ENABLE_DEVTOOLS=true\n")

	cases := []struct {
		name string
		mode string
		want []string
	}{
		{"production", "production", []string{".env", ".env.local", ".env.production"}},
		{"test skips .env.local", "test", []string{".env", ".env.test", ".env.test.local"}},
		{"no mode", "", []string{".env", ".env.local"}},
		{"unknown mode", "staging", []string{".env", ".env.local"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var want []string
			for _, name := range tc.want {
				want = append(want, filepath.Join(dir, name))
			}
			assert.Equal(t, want, EnvFilesForMode(dir, tc.mode))
		})
	}
}

func TestEnvFilesForMode_EmptyDir(t *testing.T) {
	assert.Empty(t, EnvFilesForMode(t.TempDir(), "production"))
}

func TestLoadEnvFiles_LaterOverrides(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, ".env", "# defaults\nANALYZE=false\nGITHUB_PAGES=false\n")
	second := writeFile(t, dir, ".env.production", "GITHUB_PAGES=true\nexport VITE_ENABLE_PWA=\"false\"\n")

	env, err := LoadEnvFiles(first, second)
	require.NoError(t, err)

	assert.Equal(t, Environment{
		"ANALYZE":         "false",
		"GITHUB_PAGES":    "true",
		"VITE_ENABLE_PWA": "false",
	}, env)
}

func TestLoadEnvFiles_Missing(t *testing.T) {
	_, err := LoadEnvFiles(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}

func TestLoadEnvFiles_None(t *testing.T) {
	env, err := LoadEnvFiles()
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestMerge(t *testing.T) {
	files := Environment{"ANALYZE": "true", "GITHUB_PAGES": "true"}
	process := Environment{"GITHUB_PAGES": "false"}

	merged := Merge(files, process)
	assert.Equal(t, Environment{"ANALYZE": "true", "GITHUB_PAGES": "false"}, merged)

	// inputs untouched
	assert.Equal(t, "true", files["GITHUB_PAGES"])
}

func TestMerge_ThenValidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ANALYZE=maybe\n")

	fileEnv, err := LoadEnvFiles(EnvFilesForMode(dir, "production")...)
	require.NoError(t, err)

	// Process environment fixes the bad file value
	cfg, err := Validate(Merge(fileEnv, Environment{"ANALYZE": "true"}))
	require.NoError(t, err)
	assert.True(t, cfg.EnableBundleAnalysis)

	_, err = Validate(fileEnv)
	require.Error(t, err)
}
