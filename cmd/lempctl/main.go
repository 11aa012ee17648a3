// Package main is the entry point for the lempctl CLI.
//
// lempctl provisions a complete LEMP stack (nginx, MySQL, PHP-FPM,
// phpMyAdmin) on a single Debian-family host in one non-interactive
// pass, ending with hardened database credentials and a validated
// reverse proxy configuration.
//
// Commands: init, provision, doctor, version, completion.
//
// For detailed usage information, run:
//
//	lempctl --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lempctl/lempctl/cmd/lempctl/commands"
	"github.com/lempctl/lempctl/internal/util/prerequisites"
)

// Exit codes. The privilege failure gets its own code so wrappers can
// tell "re-run with sudo" apart from a mid-run failure.
const (
	exitFailure   = 1
	exitPrivilege = 2
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
		if errors.Is(err, prerequisites.ErrNotRoot) {
			os.Exit(exitPrivilege)
		}
		os.Exit(exitFailure)
	}
}
