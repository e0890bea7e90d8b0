package repository

import (
	"context"
	"database/sql"
)

// SessionRepo handles sessions.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Upsert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, deck_title, deck_file, card_count, started_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	  deck_title=excluded.deck_title,
	  deck_file=excluded.deck_file,
	  card_count=excluded.card_count;
	`, s.ID, s.DeckTitle, s.DeckFile, s.CardCount)
	return err
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, deck_title, deck_file, card_count, started_at FROM sessions WHERE id = ?`, id)
	var s Session
	if err := row.Scan(&s.ID, &s.DeckTitle, &s.DeckFile, &s.CardCount, &s.StartedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// List returns sessions newest first.
func (r *SessionRepo) List(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, deck_title, deck_file, card_count, started_at FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.DeckTitle, &s.DeckFile, &s.CardCount, &s.StartedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the session and, by cascade, its decisions.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}
