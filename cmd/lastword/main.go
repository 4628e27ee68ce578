// Package main is the entry point for the lastword CLI.
package main

import (
	"os"

	"github.com/mrz1836/lastword/internal/cli"
)

// Set by the linker: -X main.version=... -X main.commit=... -X main.date=...
//
//nolint:gochecknoglobals // linker-injected build metadata
var (
	version string
	commit  string
	date    string
)

func main() {
	err := cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	os.Exit(cli.ExitCode(err))
}
