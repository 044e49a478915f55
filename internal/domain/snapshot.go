package domain

import (
	"fmt"
	"sort"
)

// Snapshot is the persisted form of a list: item data only, no rendering state.
type Snapshot struct {
	Items map[string]*Item `json:"items" yaml:"items"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{Items: make(map[string]*Item)}
}

// deep copy
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot()
	if s == nil {
		return out
	}
	for id, item := range s.Items {
		if item == nil {
			continue
		}
		out.Items[id] = item.Clone()
	}
	return out
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// IDs returns the item ids in ascending order.
func (s *Snapshot) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.Items))
	for id := range s.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks that every entry is keyed by its own id and carries
// non-blank text. An entry without id takes its key. Duplicate texts are
// allowed here; only Add rejects them.
func (s *Snapshot) Validate() error {
	if s == nil {
		return nil
	}
	for _, key := range s.IDs() {
		item := s.Items[key]
		if item == nil {
			return fmt.Errorf("item %q is null", key)
		}
		if item.ID != "" && item.ID != key {
			return fmt.Errorf("item key %q does not match id %q", key, item.ID)
		}

		keyed := *item
		keyed.ID = key
		if err := keyed.Validate(); err != nil {
			return fmt.Errorf("item %q: %w", key, err)
		}
	}
	return nil
}
