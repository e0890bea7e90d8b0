package deck

// Card is one visible card as handed to a renderer.
type Card struct {
	Item   Item
	Top    bool
	Action Action
	Visual Visual
}

// Render calls fn once per visible card, bottom first, and collects the
// results. The remote is whatever is attached to c, possibly nil.
func Render[V any](c *Controller, fn func(Card, *Remote) V) []V {
	cards := c.Cards()
	out := make([]V, 0, len(cards))
	for _, card := range cards {
		out = append(out, fn(card, c.remote))
	}
	return out
}
