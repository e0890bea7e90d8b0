package tui

import (
	"time"

	"github.com/jask/swipedeck/internal/cards"
	"github.com/jask/swipedeck/internal/deck"
	"github.com/jask/swipedeck/internal/service"
)

// animationDoneMsg carries a controller completion through the event loop.
type animationDoneMsg deck.Completion

type frameMsg time.Time

type deckLoadedMsg cards.Deck

// summaryMsg is a journal tally for one session; tallies for a session
// that has since been replaced are dropped.
type summaryMsg struct {
	session string
	sum     service.Summary
}

type statusMsg string

type errMsg struct{ error }
