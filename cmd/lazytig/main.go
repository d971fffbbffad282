// Package main is the entry point for the lazytig application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/hughdbrown/lazytig/internal/app"
	"github.com/hughdbrown/lazytig/internal/buildinfo"
	"github.com/hughdbrown/lazytig/internal/config"
	"github.com/hughdbrown/lazytig/internal/git"
	"github.com/hughdbrown/lazytig/internal/log"
	"github.com/hughdbrown/lazytig/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	urfavecli.VersionPrinter = printVersion

	cliApp := &urfavecli.App{
		Name:                 "lazytig",
		Usage:                "Browse git history, diffs and the working tree from the terminal",
		ArgsUsage:            "[path]",
		Version:              buildinfo.Current().Version,
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Action: runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runTUI launches the TUI on the repository containing path (or the
// working directory when no path is given).
func runTUI(c *urfavecli.Context) error {
	// Set up debug logging before loading config
	if debugLog := c.String("debug-log"); debugLog != "" {
		path := debugLog
		if expanded, err := config.ExpandPath(debugLog); err == nil {
			path = expanded
		}
		if err := log.SetFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	// If debug log wasn't set via flag, check if it's in the config
	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(cfg.DebugLog); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	if name := c.String("theme"); name != "" {
		cfg.Theme = name
	}
	thm, err := theme.ByName(cfg.ThemeOrDefault())
	if err != nil {
		_ = log.Close()
		return err
	}
	if err := thm.ApplyColors(cfg.Colors); err != nil {
		_ = log.Close()
		return fmt.Errorf("config colors: %w", err)
	}

	if chunk := c.Int("chunk-size"); chunk > 0 {
		cfg.ChunkSize = chunk
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		_ = log.Close()
		return fmt.Errorf("lazytig needs a terminal to run")
	}

	repo, err := git.Discover(c.Args().First())
	if err != nil {
		_ = log.Close()
		return err
	}
	log.Printf("starting on %s (git dir %s)", repo.Root, repo.GitDir)

	model := app.NewModel(cfg, thm, repo)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseSupport {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	_, err = p.Run()
	model.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		_ = log.Close()
		return err
	}

	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}

	return nil
}

// printVersion prints version information.
func printVersion(_ *urfavecli.Context) {
	fmt.Println(buildinfo.Current().Summary())
}
