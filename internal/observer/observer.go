// Package observer holds the change-notification primitive shared by anything
// that wants to announce "my state changed" to a set of subscribers.
package observer

import (
	"fmt"
	"reflect"
	"sync"
)

// Observer is called with no arguments after the subject changes.
// Subscribing the same comparable observer twice is a no-op. Values of
// non-comparable types (func types, structs holding funcs) are always treated
// as distinct: each Subscribe adds them and Unsubscribe cannot find them.
type Observer interface {
	Notify() error
}

type funcObserver struct {
	fn func() error
}

func (f *funcObserver) Notify() error { return f.fn() }

// Func wraps fn as an Observer. Keep the returned value to unsubscribe later;
// two calls with the same fn yield two distinct subscribers.
func Func(fn func() error) Observer {
	return &funcObserver{fn: fn}
}

// Notifier keeps an ordered set of observers.
type Notifier struct {
	mu        sync.Mutex
	observers []Observer
}

// Subscribe adds o at the end of the notification order. Adding an observer
// that is already subscribed does nothing.
func (n *Notifier) Subscribe(o Observer) {
	if o == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, existing := range n.observers {
		if same(existing, o) {
			return
		}
	}
	n.observers = append(n.observers, o)
}

// Unsubscribe removes o. Removing an unknown observer is fine.
func (n *Notifier) Unsubscribe(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, existing := range n.observers {
		if same(existing, o) {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return
		}
	}
}

// same compares observers without panicking on non-comparable types.
// Interface equality only inspects values when the dynamic types match, so
// checking o's type is enough.
func same(existing, o Observer) bool {
	return reflect.TypeOf(o).Comparable() && existing == o
}

// Len returns the number of subscribed observers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

// Notify calls every observer in subscription order. The first failing
// observer stops the fan-out; later observers are not called.
func (n *Notifier) Notify() error {
	n.mu.Lock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mu.Unlock()

	for i, o := range observers {
		if err := o.Notify(); err != nil {
			return fmt.Errorf("observer %d: %w", i, err)
		}
	}
	return nil
}
