// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --scenario, --headless, --theme, --verbose, --version

package main

import (
	"flag"
	"fmt"
	"strings"
)

// scenarios lists the runnable demos in help order.
var scenarios = []string{"alert", "confirm", "prompt", "select", "loader", "queue"}

type cliArgs struct {
	scenario string
	headless bool
	theme    string
	verbose  bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.scenario, "scenario", "alert",
		fmt.Sprintf("Demo to run (%s)", strings.Join(scenarios, ", ")))
	flag.BoolVar(&args.headless, "headless", false, "Skip terminal rendering; dialogs auto-resolve")
	flag.StringVar(&args.theme, "theme", "", "Built-in theme name or path to a theme YAML file")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
