package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/idilsaglam/todo/internal/app"
	"github.com/idilsaglam/todo/internal/command"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Options carry what every subcommand needs.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	// Interactive starts the full-screen list; replaced in tests.
	Interactive func(config.Config, *slog.Logger) error
}

var aliases = map[string]string{
	"rm":  "delete",
	"del": "delete",
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Interactive == nil {
		opt.Interactive = tui.Run
	}
	if len(args) == 0 {
		return doInteractive(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ls":
		return doList(opt)
	case "tui":
		return doInteractive(opt)
	}

	name := cmd
	if alias, ok := aliases[cmd]; ok {
		name = alias
	}
	n, err := command.ParseName(name)
	if err != nil {
		ui.Fail("unknown subcommand: " + cmd)
		PrintHelp()
		return 2
	}

	switch n {
	case command.NameAdd:
		if len(a) == 0 {
			ui.Fail("usage: todo add <text...>")
			return 2
		}
		return doAdd(strings.Join(a, " "), opt)
	case command.NameDelete:
		if len(a) == 0 {
			ui.Fail("usage: todo rm <text...>")
			return 2
		}
		return doRemove(strings.Join(a, " "), opt)
	case command.NameUndo:
		ui.Fail("undo: history lives only for one session; use it inside `todo tui`")
		return 2
	}
	ui.Fail("unknown subcommand: " + cmd)
	return 2
}

func PrintHelp() {
	ui.Info(`todo - a tiny list keeper

Usage:
  todo [subcommand] [args]

Subcommands:
  (none) | tui       Open the interactive list (a add, d delete, u undo, q quit)
  add <text...>      Add an item (text can be multiple words)
  rm <text...>       Remove the item with exactly this text
  ls                 List items
  help               Show this help

Examples:
  todo add "Buy milk"
  todo ls
  todo rm Buy milk`)
}

// -------------- subcommand impls ----------------

func open(opt Options, input command.InputSource) (*app.App, bool) {
	a, err := app.New(opt.Config, input, opt.Logger)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, false
	}
	return a, true
}

func doInteractive(opt Options) int {
	if err := opt.Interactive(opt.Config, opt.Logger); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	a, ok := open(opt, nil)
	if !ok {
		return 1
	}
	defer a.Close()

	lines := ui.ListLines(a.Store.Items().Texts())
	lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(text string, opt Options) int {
	in := &command.StaticInput{Text: text}
	a, ok := open(opt, in)
	if !ok {
		return 1
	}
	defer a.Close()

	before := a.Store.Len()
	if err := a.Execute(command.Add()); err != nil {
		ui.Fail("add: " + err.Error())
		return 1
	}
	switch {
	case strings.TrimSpace(text) == "":
		ui.Fail("add: empty text")
		return 2
	case a.Store.Len() == before:
		ui.Info(fmt.Sprintf("%q is already in the list", strings.TrimSpace(text)))
		return 0
	}
	ui.OK("added")
	return 0
}

func doRemove(text string, opt Options) int {
	a, ok := open(opt, nil)
	if !ok {
		return 1
	}
	defer a.Close()

	before := a.Store.Len()
	if err := a.Execute(command.Delete(text)); err != nil {
		ui.Fail("rm: " + err.Error())
		return 1
	}
	if a.Store.Len() == before {
		ui.Fail(fmt.Sprintf("rm: no item %q", text))
		ui.Info("Hint: run `todo ls` to see the exact texts")
		return 2
	}
	ui.OK("removed")
	return 0
}
