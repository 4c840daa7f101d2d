package command

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/idilsaglam/todo/internal/model"
)

// Store is the part of the store the dispatcher drives.
type Store interface {
	Add(item model.Item) error
	Delete(item model.Item) error
	Find(item model.Item) (model.Item, bool)
	ReplaceList(snap model.Snapshot) error
}

// History yields the state to restore on undo.
type History interface {
	StepBack() (model.Snapshot, bool)
}

// Option mutates dispatcher configuration.
type Option func(*Dispatcher)

// WithLogger injects a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher is the only entry point for mutating the collection.
// Execute calls are serialized so that each mutation, its notification
// fan-out and its snapshot complete before the next command starts.
type Dispatcher struct {
	logger  *slog.Logger
	store   Store
	history History
	input   InputSource

	mu sync.Mutex
}

// NewDispatcher wires the dispatcher to its collaborators. input may be nil
// when no ADD commands will be issued.
func NewDispatcher(store Store, history History, input InputSource, options ...Option) *Dispatcher {
	d := &Dispatcher{
		logger:  slog.Default(),
		store:   store,
		history: history,
		input:   input,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Execute runs cmd to completion. Policy rejections (blank input, duplicate,
// missing target, nothing to undo) return nil without touching the store.
// Observer failures and unknown command names are returned.
func (d *Dispatcher) Execute(cmd Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.logger.Debug("execute", "command", cmd.String())

	switch cmd.Name {
	case NameAdd:
		return d.add()
	case NameDelete:
		return d.delete(cmd.Args)
	case NameUndo:
		return d.undo()
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd.Name))
}

func (d *Dispatcher) add() error {
	if d.input == nil {
		return fmt.Errorf("add: no input source")
	}
	item := model.NewItem(d.input.Value())
	if item.IsBlank() {
		d.logger.Debug("add ignored: empty input")
		return nil
	}
	if _, found := d.store.Find(item); found {
		d.logger.Debug("add ignored: duplicate", "text", item.Text)
		return nil
	}
	d.input.Clear()
	if err := d.store.Add(item); err != nil {
		return fmt.Errorf("add %q: %w", item.Text, err)
	}
	return nil
}

func (d *Dispatcher) delete(args []string) error {
	if len(args) == 0 {
		d.logger.Debug("delete ignored: no target")
		return nil
	}
	target, found := d.store.Find(model.Item{Text: args[0]})
	if !found {
		d.logger.Debug("delete ignored: not found", "text", args[0])
		return nil
	}
	if err := d.store.Delete(target); err != nil {
		return fmt.Errorf("delete %q: %w", target.Text, err)
	}
	return nil
}

func (d *Dispatcher) undo() error {
	prev, ok := d.history.StepBack()
	if !ok {
		return nil
	}
	if err := d.store.ReplaceList(prev); err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	return nil
}
