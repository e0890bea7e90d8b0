package deck

import (
	"fmt"
	"slices"
)

// Item is anything with a stable identity. The store never mutates items.
type Item interface {
	ID() string
}

// Store is the ordered collection plus the cursor pointing at the top card.
// 0 <= cursor <= Len(); cursor == Len() means the deck is exhausted.
type Store struct {
	items      []Item
	cursor     int
	generation uint64
}

func NewStore(items []Item) (*Store, error) {
	s := &Store{}
	if err := s.Replace(items); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace swaps in a snapshot of items and resets the cursor. On a
// duplicate identity the store is left unchanged.
func (s *Store) Replace(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := it.ID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w %q at index %d", ErrDuplicateItem, id, i)
		}
		seen[id] = struct{}{}
	}
	s.items = slices.Clone(items)
	s.cursor = 0
	s.generation++
	return nil
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Cursor() int { return s.cursor }

// Generation increments on every successful Replace.
func (s *Store) Generation() uint64 { return s.generation }

func (s *Store) Exhausted() bool { return s.cursor >= len(s.items) }

// At returns the item at index i, if any.
func (s *Store) At(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// Current returns the item under the cursor.
func (s *Store) Current() (Item, bool) { return s.At(s.cursor) }

// Items returns a copy of the collection.
func (s *Store) Items() []Item { return slices.Clone(s.items) }

func (s *Store) advance() bool {
	if s.cursor >= len(s.items) {
		return false
	}
	s.cursor++
	return true
}

func (s *Store) retreat() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}
