// SPDX-License-Identifier: MIT

// validate is a CLI tool to check arxiv-sanity settings files.
//
// Usage:
//
//	validate -f arxiv-sanity.cfg
//	validate --file arxiv-sanity.cfg
//
// Exit codes:
//   - 0: Configuration is valid
//   - 1: Configuration is invalid (unreadable file, missing section or key)
//   - 2: Usage error (unknown flag)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/openpapers/arxiv-sanity/internal/config"
	"github.com/openpapers/arxiv-sanity/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	var showVersion bool
	fs.StringVar(&file, "file", config.DefaultPath, "path to settings file")
	fs.StringVar(&file, "f", config.DefaultPath, "path to settings file (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Version)
		return 0
	}

	if _, err := config.Load(file); err != nil {
		fmt.Fprintf(stderr, "Configuration error in %s:\n", file)
		fmt.Fprintf(stderr, "  %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "✓ %s is valid\n", file)
	return 0
}
