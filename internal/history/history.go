// Package history records a snapshot of the store after every change so the
// user can step back through earlier states.
package history

import (
	"log/slog"
	"sync"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/observer"
)

const (
	// DefaultMaxSnapshots is the default number of snapshots kept.
	DefaultMaxSnapshots = 100
	// MaxSnapshots is the absolute maximum number of snapshots allowed.
	MaxSnapshots = 10000
)

// Source is what the manager snapshots and subscribes to.
type Source interface {
	Items() model.Snapshot
}

// Option mutates manager configuration.
type Option func(*Manager)

// WithLogger injects a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMaxSnapshots bounds the log. Values <= 0 select DefaultMaxSnapshots;
// values above MaxSnapshots are clamped.
func WithMaxSnapshots(n int) Option {
	return func(m *Manager) {
		if n <= 0 {
			n = DefaultMaxSnapshots
		}
		if n > MaxSnapshots {
			n = MaxSnapshots
		}
		m.maxSize = n
	}
}

// Manager is a linear, bounded log of collection snapshots, oldest first.
//
// Every notification is captured, including the one fired by the replace that
// follows StepBack. The top of the log therefore always mirrors the live
// collection, and a second StepBack moves one further into the past.
type Manager struct {
	logger  *slog.Logger
	source  Source
	maxSize int

	mu        sync.Mutex
	snapshots []model.Snapshot
}

// New creates a manager that snapshots source. Call Attach to start recording.
func New(source Source, options ...Option) *Manager {
	m := &Manager{
		logger:  slog.Default(),
		source:  source,
		maxSize: DefaultMaxSnapshots,
	}
	for _, option := range options {
		option(m)
	}
	m.snapshots = make([]model.Snapshot, 0, min(m.maxSize, 16))
	return m
}

// Subject is anything the manager can subscribe to.
type Subject interface {
	AddObserver(o observer.Observer)
}

// Attach subscribes the manager to s so every change is captured.
// Attaching twice to the same subject records once.
func (m *Manager) Attach(s Subject) {
	s.AddObserver(m)
}

// Notify captures the current collection.
func (m *Manager) Notify() error {
	m.push(m.source.Items())
	return nil
}

func (m *Manager) push(s model.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) >= m.maxSize {
		copy(m.snapshots, m.snapshots[1:])
		m.snapshots[len(m.snapshots)-1] = s
	} else {
		m.snapshots = append(m.snapshots, s)
	}
	m.logger.Debug("snapshot captured", "items", s.Len(), "depth", len(m.snapshots))
}

// StepBack drops the newest snapshot (the state just produced) and hands back
// the one before it. It reports false, leaving the log untouched, when fewer
// than two snapshots exist.
func (m *Manager) StepBack() (model.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) <= 1 {
		m.logger.Debug("nothing to undo", "depth", len(m.snapshots))
		return model.Snapshot{}, false
	}
	n := len(m.snapshots)
	prev := m.snapshots[n-2]
	m.snapshots = m.snapshots[:n-2]
	m.logger.Debug("stepped back", "items", prev.Len(), "depth", len(m.snapshots))
	return prev, true
}

// CanStepBack reports whether StepBack would return a snapshot.
func (m *Manager) CanStepBack() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots) > 1
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots)
}

// Snapshots returns a copy of the log, oldest first.
func (m *Manager) Snapshots() []model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Snapshot, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}

// Clear empties the log.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = m.snapshots[:0]
}
