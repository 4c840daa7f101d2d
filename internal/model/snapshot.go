package model

// Snapshot is a frozen copy of a collection, oldest insertion first.
// It never shares backing storage with the live collection.
type Snapshot struct {
	items []Item
}

// NewSnapshot copies items into a new Snapshot.
func NewSnapshot(items []Item) Snapshot {
	out := make([]Item, len(items))
	copy(out, items)
	return Snapshot{items: out}
}

// Items returns a copy of the snapshot contents.
func (s Snapshot) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s Snapshot) Len() int { return len(s.items) }

// Texts lists the item texts in insertion order.
func (s Snapshot) Texts() []string {
	out := make([]string, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Text)
	}
	return out
}

func (s Snapshot) Contains(item Item) bool {
	for _, it := range s.items {
		if it.Equal(item) {
			return true
		}
	}
	return false
}

// Equal compares two snapshots as sets of text, ignoring order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, it := range s.items {
		if !other.Contains(it) {
			return false
		}
	}
	return true
}
