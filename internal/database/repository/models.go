package repository

import "time"

// Session represents one run over a deck.
type Session struct {
	ID        string
	DeckTitle string
	DeckFile  string
	CardCount int
	StartedAt time.Time
}

// Decision represents a journal row: a commit or a rollback.
type Decision struct {
	ID        string
	SessionID string
	ItemID    string
	Kind      string
	Outcome   string
	Position  int
	CreatedAt time.Time
}

const (
	KindCommit   = "commit"
	KindRollback = "rollback"
)

// OutcomeCount is one (kind, outcome) bucket of a session.
type OutcomeCount struct {
	Kind    string
	Outcome string
	Count   int
}
