// Package command turns user intents into store and history operations.
package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for a command name outside the known set.
// It signals an integration bug, not a user mistake.
var ErrUnknownCommand = errors.New("unknown command")

// Name identifies which operation a Command performs.
type Name string

const (
	NameAdd    Name = "ADD"
	NameDelete Name = "DELETE"
	NameUndo   Name = "UNDO"
)

// ParseName maps a case-insensitive name onto a known Name.
func ParseName(s string) (Name, error) {
	switch n := Name(strings.ToUpper(strings.TrimSpace(s))); n {
	case NameAdd, NameDelete, NameUndo:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Command is a single request for the dispatcher. Build it with Add, Delete
// or Undo; it is consumed once.
type Command struct {
	Name Name
	Args []string
}

// Add asks to store the text currently held by the input source.
func Add() Command { return Command{Name: NameAdd} }

// Delete asks to remove the item with the given text.
func Delete(text string) Command { return Command{Name: NameDelete, Args: []string{text}} }

// Undo asks to restore the previous collection.
func Undo() Command { return Command{Name: NameUndo} }

func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Name)
	}
	return fmt.Sprintf("%s %q", c.Name, c.Args)
}

// InputSource is the pending text the user is typing. ADD reads it and clears
// it once the item has been accepted.
type InputSource interface {
	Value() string
	Clear()
}

// StaticInput is an InputSource holding a fixed string, for callers without
// an interactive input field.
type StaticInput struct {
	Text string
}

func (s *StaticInput) Value() string { return s.Text }
func (s *StaticInput) Clear()        { s.Text = "" }
