package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Load(ctx context.Context, id string) (*SessionDoc, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT owner_id, data, updated_at FROM sessions WHERE session_id = ?`, id)

	var (
		doc       = SessionDoc{SessionID: id}
		data      []byte
		updatedAt string
	)
	if err := row.Scan(&doc.OwnerID, &data, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	doc.Data = data

	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("load session: parse updated_at: %w", err)
	}
	doc.UpdatedAt = t
	return &doc, nil
}

func (r *sessionRepo) Save(ctx context.Context, doc *SessionDoc) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, owner_id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET owner_id = excluded.owner_id,
			data = excluded.data, updated_at = excluded.updated_at`,
		doc.SessionID, doc.OwnerID, string(doc.Data), now)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) DeleteInactive(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE updated_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("delete inactive sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete inactive sessions: %w", err)
	}
	return int(n), nil
}
