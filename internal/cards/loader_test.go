package cards

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/deck"
)

func TestParseYAMLDerivesStableIDs(t *testing.T) {
	data := []byte(`
title: Films
cards:
  - title: Alien
  - id: fixed
    title: Heat
    tags: [crime]
  - title: Alien
`)
	d, err := Parse(data, ".yml")
	require.NoError(t, err)
	require.Equal(t, "Films", d.Title)
	require.Len(t, d.Cards, 3)
	require.Equal(t, "fixed", d.Cards[1].ID())
	require.Equal(t, []string{"crime"}, d.Cards[1].Tags)
	require.NotEqual(t, d.Cards[0].ID(), d.Cards[2].ID(), "same title at different positions")

	again, err := Parse(data, ".yaml")
	require.NoError(t, err)
	require.Equal(t, d.Cards[0].ID(), again.Cards[0].ID())
}

func TestParseJSON(t *testing.T) {
	d, err := Parse([]byte(`{"title":"J","cards":[{"id":"a","title":"One","body":"b"}]}`), ".json")
	require.NoError(t, err)
	require.Equal(t, "a", d.Cards[0].ID())
	require.Equal(t, "b", d.Cards[0].Body)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`cards: [{id: a, title: x}, {id: a, title: y}]`), ".yaml")
	require.ErrorIs(t, err, ErrDuplicateCard)

	_, err = Parse([]byte(`cards: [{id: a}]`), ".yaml")
	require.ErrorIs(t, err, ErrEmptyTitle)

	_, err = Parse([]byte(`title = "x"`), ".toml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Parse([]byte(`{`), ".json")
	require.Error(t, err)
}

func TestLoadUsesFileNameAsTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dinner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  - title: Tacos\n"), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dinner", d.Title)
	require.Equal(t, path, d.Path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSampleAndShuffle(t *testing.T) {
	d := Sample()
	require.Equal(t, "Weekend picks", d.Title)
	require.Len(t, d.Cards, 6)

	items := d.Items()
	require.Len(t, items, 6)
	_, err := deck.NewStore(items)
	require.NoError(t, err)

	s := d.Shuffled(rand.New(rand.NewPCG(1, 2)))
	require.Len(t, s.Cards, 6)
	require.ElementsMatch(t, d.Cards, s.Cards)
	require.Equal(t, "hike", d.Cards[0].ID(), "original order untouched")
}

func TestLoadDerivesIDsFromFileNameTitle(t *testing.T) {
	dir := t.TempDir()
	body := []byte("cards:\n  - title: Tacos\n")
	dinner := filepath.Join(dir, "dinner.yaml")
	lunch := filepath.Join(dir, "lunch.yaml")
	require.NoError(t, os.WriteFile(dinner, body, 0o600))
	require.NoError(t, os.WriteFile(lunch, body, 0o600))

	d, err := Load(dinner)
	require.NoError(t, err)
	l, err := Load(lunch)
	require.NoError(t, err)
	require.NotEqual(t, d.Cards[0].ID(), l.Cards[0].ID())

	titled, err := Parse([]byte("title: dinner\ncards:\n  - title: Tacos\n"), ".yaml")
	require.NoError(t, err)
	require.Equal(t, titled.Cards[0].ID(), d.Cards[0].ID())
}
