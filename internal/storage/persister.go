package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/todo/internal/model"
)

// Key is the slot key the collection is saved under.
const Key = "todoList"

// Collection is what the persister reads and writes.
type Collection interface {
	Items() model.Snapshot
	Add(item model.Item) error
}

// Option mutates persister configuration.
type Option func(*Persister)

// WithLogger injects a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Persister) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Persister saves the whole collection on every notification.
type Persister struct {
	logger *slog.Logger
	slot   Slot
	coll   Collection
}

func NewPersister(slot Slot, coll Collection, options ...Option) *Persister {
	p := &Persister{logger: slog.Default(), slot: slot, coll: coll}
	for _, option := range options {
		option(p)
	}
	return p
}

// Notify writes the current collection to the slot.
func (p *Persister) Notify() error {
	return p.Save()
}

// Save serializes the collection as [{"text": ...}, ...].
func (p *Persister) Save() error {
	items := p.coll.Items().Items()
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := p.slot.Set(Key, b); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	p.logger.Debug("collection saved", "items", len(items))
	return nil
}

// Load replays Add for every stored entry. A missing slot is an empty list.
// Entries with blank text are skipped.
func (p *Persister) Load() error {
	b, ok, err := p.slot.Get(Key)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !ok || len(b) == 0 {
		return nil
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	loaded := 0
	for _, it := range items {
		it = model.NewItem(it.Text)
		if it.IsBlank() {
			continue
		}
		if err := p.coll.Add(it); err != nil {
			return fmt.Errorf("load %q: %w", it.Text, err)
		}
		loaded++
	}
	p.logger.Debug("collection loaded", "items", loaded)
	return nil
}
