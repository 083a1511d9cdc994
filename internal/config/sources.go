package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ModeTest is the build mode under which .env.local is not loaded
const ModeTest = "test"

// FromEnviron converts KEY=VALUE pairs (as returned by os.Environ) into an
// Environment. Only the first '=' separates key and value; malformed
// entries are skipped.
func FromEnviron(environ []string) Environment {
	env := make(Environment, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// EnvFilesForMode returns the dotenv files present in dir for the given
// mode, in load order (later files override earlier ones):
//
//	.env
//	.env.local          (not in test mode)
//	.env.<mode>
//	.env.<mode>.local
func EnvFilesForMode(dir, mode string) []string {
	candidates := []string{".env"}
	if mode != ModeTest {
		candidates = append(candidates, ".env.local")
	}
	if mode != "" {
		candidates = append(candidates, ".env."+mode, ".env."+mode+".local")
	}

	var files []string
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			files = append(files, path)
		}
	}
	return files
}

// LoadEnvFiles reads dotenv files in order; later files override earlier
// ones. Every named file must exist.
func LoadEnvFiles(paths ...string) (Environment, error) {
	env := Environment{}
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		log.WithFields(log.Fields{
			"path": path,
			"keys": len(values),
		}).Debug("env file loaded")

		for key, value := range values {
			env[key] = value
		}
	}
	return env, nil
}

// Merge combines environments; values from later layers win.
func Merge(layers ...Environment) Environment {
	merged := Environment{}
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}
