package deck

// MaxVisible is the number of cards ever materialized at once.
const MaxVisible = 2

// Window returns the renderable items, bottom first: [cursor+1, cursor].
// The top, interactive card is the last element. Only the two indexes are
// read, whatever the deck size.
func Window(s *Store) []Item {
	out := make([]Item, 0, MaxVisible)
	if next, ok := s.At(s.cursor + 1); ok {
		out = append(out, next)
	}
	if top, ok := s.Current(); ok {
		out = append(out, top)
	}
	return out
}
