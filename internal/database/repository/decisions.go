package repository

import (
	"context"
	"database/sql"
)

// DecisionRepo handles the decision journal.
type DecisionRepo struct {
	db *sql.DB
}

func NewDecisionRepo(db *sql.DB) *DecisionRepo { return &DecisionRepo{db: db} }

const decisionColumns = `id, session_id, item_id, kind, outcome, position, created_at`

func (r *DecisionRepo) Insert(ctx context.Context, d Decision) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decisions(id, session_id, item_id, kind, outcome, position, created_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, d.ID, d.SessionID, d.ItemID, d.Kind, d.Outcome, d.Position)
	return err
}

// ListBySession returns decisions in the order they were recorded.
func (r *DecisionRepo) ListBySession(ctx context.Context, sessionID string) ([]Decision, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+decisionColumns+` FROM decisions WHERE session_id = ? ORDER BY rowid`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Decision
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// LastCommit returns the most recent decisive commit at position, or nil.
func (r *DecisionRepo) LastCommit(ctx context.Context, sessionID string, position int) (*Decision, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT `+decisionColumns+` FROM decisions
	WHERE session_id = ? AND position = ? AND kind = 'commit' AND outcome != 'none'
	ORDER BY rowid DESC LIMIT 1`, sessionID, position)
	d, err := scanDecision(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// CountByOutcome groups a session's rows by kind and outcome.
func (r *DecisionRepo) CountByOutcome(ctx context.Context, sessionID string) ([]OutcomeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT kind, outcome, COUNT(*) FROM decisions
	WHERE session_id = ?
	GROUP BY kind, outcome
	ORDER BY kind, outcome`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Kind, &c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(s scanner) (Decision, error) {
	var d Decision
	err := s.Scan(&d.ID, &d.SessionID, &d.ItemID, &d.Kind, &d.Outcome, &d.Position, &d.CreatedAt)
	return d, err
}
