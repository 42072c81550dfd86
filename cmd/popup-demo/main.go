// ABOUTME: Demo binary exercising the popup dialog library end to end
// ABOUTME: Parses flags, resolves the theme, installs the terminal renderer, runs a scenario

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/popup-go/internal/btea"
	"github.com/mauromedda/popup-go/internal/log"
	"github.com/mauromedda/popup-go/internal/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("popup-demo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the theme, installs the renderer, and dispatches the scenario.
func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	th, err := resolveTheme(args.theme)
	if err != nil {
		return err
	}

	if !args.headless {
		if !btea.Install(th) {
			log.Info("stdout is not a terminal; falling back to headless rendering")
		}
	}

	switch args.scenario {
	case "alert":
		return runAlert()
	case "confirm":
		return runConfirm()
	case "prompt":
		return runPrompt()
	case "select":
		return runSelect()
	case "loader":
		return runLoader()
	case "queue":
		return runQueue()
	default:
		return fmt.Errorf("unknown scenario %q (available: %s)", args.scenario, strings.Join(scenarios, ", "))
	}
}

// resolveTheme maps the --theme flag to a theme: empty means default,
// a built-in name wins over a file path.
func resolveTheme(name string) (*theme.Theme, error) {
	if name == "" {
		return nil, nil
	}
	if th := theme.Builtin(name); th != nil {
		return th, nil
	}
	th, err := theme.Load(name)
	if err != nil {
		return nil, fmt.Errorf("resolving theme %q: %w", name, err)
	}
	return th, nil
}
