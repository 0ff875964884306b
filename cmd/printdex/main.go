// Package main provides the entry point for the printdex CLI tool.
package main

import (
	"github.com/printdex/printdex/cmd/printdex/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
