// Package main is the entry point for the gitstrap CLI.
//
// gitstrap is a one-shot bootstrap tool that provisions a developer
// machine's git identity and stores a GitHub credential so HTTPS operations
// authenticate without further prompts.
//
// Commands: setup, doctor, version, completion.
//
// For detailed usage information, run:
//
//	gitstrap --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/gitstrap/cmd/gitstrap/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
