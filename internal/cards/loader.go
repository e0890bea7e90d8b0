package cards

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

var (
	ErrUnknownFormat = errors.New("unknown deck format")
	ErrDuplicateCard = errors.New("duplicate card id")
	ErrEmptyTitle    = errors.New("card without title")
)

// idSpace namespaces derived card ids.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("swipedeck:card"))

//go:embed sample.yaml
var sampleDeck []byte

// Load reads a deck file; the extension picks YAML or JSON.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	ext := filepath.Ext(path)
	d, err := parse(data, ext, strings.TrimSuffix(filepath.Base(path), ext))
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Sample returns the built-in demo deck.
func Sample() Deck {
	d, err := Parse(sampleDeck, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("sample deck: %v", err))
	}
	return d
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".json")
// and fills in missing card ids. Derived ids depend only on the deck title,
// the card's position and its title, so they survive reloads.
func Parse(data []byte, ext string) (Deck, error) {
	return parse(data, ext, "")
}

// parse is Parse with a title used when the document has none.
func parse(data []byte, ext, fallbackTitle string) (Deck, error) {
	var d Deck
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Deck{}, fmt.Errorf("decode yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return Deck{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return Deck{}, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if d.Title == "" {
		d.Title = fallbackTitle
	}

	seen := make(map[string]int, len(d.Cards))
	for i := range d.Cards {
		c := &d.Cards[i]
		c.Title = strings.TrimSpace(c.Title)
		if c.Title == "" {
			return Deck{}, fmt.Errorf("%w at index %d", ErrEmptyTitle, i)
		}
		if c.Key == "" {
			c.Key = uuid.NewSHA1(idSpace, []byte(d.Title+"\x00"+strconv.Itoa(i)+"\x00"+c.Title)).String()
		}
		if prev, dup := seen[c.Key]; dup {
			return Deck{}, fmt.Errorf("%w %q at index %d and %d", ErrDuplicateCard, c.Key, prev, i)
		}
		seen[c.Key] = i
	}
	return d, nil
}
