// Package app wires the store, history, persistence and dispatcher together.
package app

import (
	"fmt"
	"log/slog"

	"github.com/idilsaglam/todo/internal/command"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/history"
	"github.com/idilsaglam/todo/internal/storage"
	"github.com/idilsaglam/todo/internal/store"
)

// App is one running list. Observers run in the order History, Persister,
// then whatever the front end subscribes.
type App struct {
	Store      *store.Store
	History    *history.Manager
	Persister  *storage.Persister
	Dispatcher *command.Dispatcher

	slot storage.Slot
}

// New opens storage, wires observers and loads the saved list.
// input feeds ADD commands and may be nil for read-only callers.
func New(cfg config.Config, input command.InputSource, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	slot, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	s := store.New(store.WithLogger(logger.With("component", "store")))
	h := history.New(s,
		history.WithMaxSnapshots(cfg.History.MaxSnapshots),
		history.WithLogger(logger.With("component", "history")),
	)
	p := storage.NewPersister(slot, s, storage.WithLogger(logger.With("component", "storage")))

	h.Attach(s)
	s.AddObserver(p)

	if err := p.Load(); err != nil {
		_ = slot.Close()
		return nil, err
	}

	return &App{
		Store:      s,
		History:    h,
		Persister:  p,
		Dispatcher: command.NewDispatcher(s, h, input, command.WithLogger(logger.With("component", "dispatcher"))),
		slot:       slot,
	}, nil
}

// Execute forwards cmd to the dispatcher.
func (a *App) Execute(cmd command.Command) error {
	return a.Dispatcher.Execute(cmd)
}

func (a *App) Close() error {
	return a.slot.Close()
}
