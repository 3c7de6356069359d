// SPDX-License-Identifier: MIT

// configgen writes a starter arxiv-sanity settings file with every
// required key present.
//
// Usage:
//
//	configgen -o arxiv-sanity.cfg -data data
//
// The target is written atomically and never replaced unless -force is
// given.
//
// Exit codes:
//   - 0: File written
//   - 1: Target exists without -force, or the write failed
//   - 2: Usage error (unknown flag)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/openpapers/arxiv-sanity/internal/atomicfile"
	"github.com/openpapers/arxiv-sanity/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("configgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var out string
	var dataRoot string
	var force bool
	flags.StringVar(&out, "o", config.DefaultPath, "output path")
	flags.StringVar(&dataRoot, "data", "data", "data root seeded into path values")
	flags.BoolVar(&force, "force", false, "replace an existing file")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if !force {
		_, err := os.Stat(out)
		switch {
		case err == nil:
			fmt.Fprintf(stderr, "configgen: %s already exists (use -force to replace)\n", out)
			return 1
		case !errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(stderr, "configgen: %v\n", err)
			return 1
		}
	}

	data, err := config.Template(dataRoot)
	if err != nil {
		fmt.Fprintf(stderr, "configgen: %v\n", err)
		return 1
	}
	if err := atomicfile.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(stderr, "configgen: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "wrote %s\n", out)
	return 0
}
