package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/deck"
)

// Summary is the net tally of a session. Undone decisions are subtracted
// from the bucket they were counted in.
type Summary struct {
	Accepted int
	Rejected int
	Skipped  int
	Undone   int
}

// Decided is the number of cards currently carrying a decision.
func (s Summary) Decided() int { return s.Accepted + s.Rejected }

// JournalService records the deck's commit and rollback notifications.
// It holds no session state; callers pass the session id explicitly.
type JournalService struct {
	Sessions  *repository.SessionRepo
	Decisions *repository.DecisionRepo
}

// Begin allocates a new session for one deck load. It does not touch the
// database; Start persists it.
func (s *JournalService) Begin(title, file string, cards int) repository.Session {
	return repository.Session{ID: uuid.NewString(), DeckTitle: title, DeckFile: file, CardCount: cards}
}

// Start registers the session row.
func (s *JournalService) Start(ctx context.Context, sess repository.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("journal: start session: empty id")
	}
	if err := s.Sessions.Upsert(ctx, sess); err != nil {
		return fmt.Errorf("journal: start session: %w", err)
	}
	return nil
}

// RecordCommit stores a commit of item at position.
func (s *JournalService) RecordCommit(ctx context.Context, sessionID string, item deck.Item, outcome deck.Action, position int) error {
	d := repository.Decision{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ItemID:    item.ID(),
		Kind:      repository.KindCommit,
		Outcome:   outcome.String(),
		Position:  position,
	}
	if err := s.Decisions.Insert(ctx, d); err != nil {
		return fmt.Errorf("journal: record commit: %w", err)
	}
	return nil
}

// RecordRollback stores the undo of the card restored at position. The
// undone outcome comes from the matching commit; without one it falls
// back to the rollback direction.
func (s *JournalService) RecordRollback(ctx context.Context, sessionID string, dir deck.Direction, position int) error {
	d := repository.Decision{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Kind:      repository.KindRollback,
		Outcome:   dir.Action().String(),
		Position:  position,
	}
	prev, err := s.Decisions.LastCommit(ctx, sessionID, position)
	if err != nil {
		return fmt.Errorf("journal: find undone commit: %w", err)
	}
	if prev != nil {
		d.ItemID = prev.ItemID
		d.Outcome = prev.Outcome
	}
	if err := s.Decisions.Insert(ctx, d); err != nil {
		return fmt.Errorf("journal: record rollback: %w", err)
	}
	return nil
}

// Summary tallies one session.
func (s *JournalService) Summary(ctx context.Context, sessionID string) (Summary, error) {
	counts, err := s.Decisions.CountByOutcome(ctx, sessionID)
	if err != nil {
		return Summary{}, fmt.Errorf("journal: summary: %w", err)
	}
	var sum Summary
	for _, c := range counts {
		sign := 1
		if c.Kind == repository.KindRollback {
			sign = -1
			sum.Undone += c.Count
		}
		switch c.Outcome {
		case deck.ActionAccept.String():
			sum.Accepted += sign * c.Count
		case deck.ActionReject.String():
			sum.Rejected += sign * c.Count
		default:
			sum.Skipped += sign * c.Count
		}
	}
	return sum, nil
}

// History returns the session's rows in order.
func (s *JournalService) History(ctx context.Context, sessionID string) ([]repository.Decision, error) {
	return s.Decisions.ListBySession(ctx, sessionID)
}
