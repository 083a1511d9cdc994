package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/nauticalab/buildenv/internal/cli"
)

// Build-time variables (set with -ldflags "-X main.version=...")
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
	goVersion = runtime.Version()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Validation failures have already been rendered as a diagnostic
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
