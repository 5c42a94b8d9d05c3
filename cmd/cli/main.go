// Package main is the entry point for the jenkinsctl CLI.
// The CLI is the human-facing counterpart of the MCP tool surface.
package main

import (
	"os"

	"jenkinsmcp/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
