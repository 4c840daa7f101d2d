package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/todo/internal/app"
	"github.com/idilsaglam/todo/internal/cli"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "output theme: "+strings.Join(ui.ThemeNames, ", ")+" (overrides config)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	ui.SetTheme(cfg.UI.Theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()

	// the full-screen list owns the terminal, so its logs go nowhere unless a file is set
	var fallback io.Writer = os.Stderr
	if len(args) == 0 || args[0] == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := app.NewLogger(cfg.Log, fallback)
	if err != nil {
		ui.Fail("log: " + err.Error())
		os.Exit(1)
	}

	code := cli.Run(args, cli.Options{Config: cfg, Logger: logger})
	_ = closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
