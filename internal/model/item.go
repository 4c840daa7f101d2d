package model

import "strings"

// Item is the domain model for a todo entry.
// Two items are the same entry when their text matches exactly.
type Item struct {
	Text string `json:"text"`
}

// NewItem trims surrounding whitespace from text.
func NewItem(text string) Item {
	return Item{Text: strings.TrimSpace(text)}
}

// Equal reports whether both items carry the same text (case-sensitive).
func (i Item) Equal(other Item) bool { return i.Text == other.Text }

// IsBlank reports whether the item has no text to store.
func (i Item) IsBlank() bool { return i.Text == "" }
