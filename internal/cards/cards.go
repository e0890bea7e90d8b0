// Package cards loads deck files and provides the card type shown by the
// terminal app.
package cards

import (
	"math/rand/v2"
	"slices"

	"github.com/jask/swipedeck/internal/deck"
)

// Card is one entry of a deck file.
type Card struct {
	Key      string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Body     string   `yaml:"body,omitempty" json:"body,omitempty"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

func (c Card) ID() string { return c.Key }

// Deck is a titled card list as read from disk.
type Deck struct {
	Title string `yaml:"title" json:"title"`
	Cards []Card `yaml:"cards" json:"cards"`
	// Path is where the deck was loaded from, empty for the sample deck.
	Path string `yaml:"-" json:"-"`
}

// Items converts the cards for the controller.
func (d Deck) Items() []deck.Item {
	out := make([]deck.Item, len(d.Cards))
	for i, c := range d.Cards {
		out[i] = c
	}
	return out
}

// Shuffled returns a copy of d with the cards permuted by r.
func (d Deck) Shuffled(r *rand.Rand) Deck {
	out := d
	out.Cards = slices.Clone(d.Cards)
	r.Shuffle(len(out.Cards), func(i, j int) {
		out.Cards[i], out.Cards[j] = out.Cards[j], out.Cards[i]
	})
	return out
}
