// Package store owns the authoritative todo collection and announces every
// successful change to its observers.
package store

import (
	"log/slog"
	"sync"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/observer"
)

// Option mutates store configuration.
type Option func(*Store)

// WithLogger injects a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the single owner of the live collection. Build one at startup and
// pass it to whoever needs it.
type Store struct {
	logger   *slog.Logger
	notifier observer.Notifier

	mu    sync.RWMutex
	items []model.Item
}

// New creates an empty store.
func New(options ...Option) *Store {
	s := &Store{logger: slog.Default()}
	for _, option := range options {
		option(s)
	}
	return s
}

// Items returns a snapshot of the current collection in insertion order.
func (s *Store) Items() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.NewSnapshot(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Find returns the stored item equal to item, if any.
func (s *Store) Find(item model.Item) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(item); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Add inserts item and notifies observers. Adding a blank item or one that
// is already present does nothing and notifies no one.
func (s *Store) Add(item model.Item) error {
	if item.IsBlank() {
		s.logger.Debug("add skipped: blank text")
		return nil
	}
	s.mu.Lock()
	if s.indexOf(item) >= 0 {
		s.mu.Unlock()
		s.logger.Debug("add skipped: duplicate", "text", item.Text)
		return nil
	}
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.logger.Debug("item added", "text", item.Text)
	return s.notifier.Notify()
}

// Delete removes the item equal to item and notifies observers. A missing
// item is ignored.
func (s *Store) Delete(item model.Item) error {
	s.mu.Lock()
	i := s.indexOf(item)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("delete skipped: not found", "text", item.Text)
		return nil
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.mu.Unlock()

	s.logger.Debug("item deleted", "text", item.Text)
	return s.notifier.Notify()
}

// ReplaceList swaps the whole collection for snap and notifies observers.
// Duplicate texts in snap collapse to their first occurrence.
func (s *Store) ReplaceList(snap model.Snapshot) error {
	next := make([]model.Item, 0, snap.Len())
	for _, it := range snap.Items() {
		dup := false
		for _, kept := range next {
			if kept.Equal(it) {
				dup = true
				break
			}
		}
		if !dup {
			next = append(next, it)
		}
	}

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()

	s.logger.Debug("collection replaced", "items", len(next))
	return s.notifier.Notify()
}

// AddObserver subscribes o to change notifications.
func (s *Store) AddObserver(o observer.Observer) { s.notifier.Subscribe(o) }

// RemoveObserver unsubscribes o.
func (s *Store) RemoveObserver(o observer.Observer) { s.notifier.Unsubscribe(o) }

// caller holds mu
func (s *Store) indexOf(item model.Item) int {
	for i, it := range s.items {
		if it.Equal(item) {
			return i
		}
	}
	return -1
}
