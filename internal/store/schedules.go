package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type scheduleRepo struct {
	db *sql.DB
}

func (r *scheduleRepo) Load(ctx context.Context, ownerID string) (*ScheduleDoc, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT version, data, updated_at FROM schedules WHERE owner_id = ?`, ownerID)

	var (
		doc       = ScheduleDoc{OwnerID: ownerID}
		data      []byte
		updatedAt string
	)
	if err := row.Scan(&doc.Version, &data, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	doc.Data = data

	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("load schedule: parse updated_at: %w", err)
	}
	doc.UpdatedAt = t
	return &doc, nil
}

func (r *scheduleRepo) Save(ctx context.Context, doc *ScheduleDoc) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if doc.Version == 0 {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedules (owner_id, version, data, updated_at) VALUES (?, 1, ?, ?)`,
			doc.OwnerID, string(doc.Data), now)
		if err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
		doc.Version = 1
		return nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE schedules SET version = version + 1, data = ?, updated_at = ?
		 WHERE owner_id = ? AND version = ?`,
		string(doc.Data), now, doc.OwnerID, doc.Version)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	doc.Version++
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM schedules WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
