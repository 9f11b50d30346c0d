// Package audit — repository.go appends and reads audit_log rows.
package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository writes and reads the audit_log table.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Append inserts one audit entry.
func (r *Repository) Append(ctx context.Context, action string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_log (action, payload)
		VALUES ($1, $2)
	`, action, payload)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// Tail returns the most recent N entries, newest first.
func (r *Repository) Tail(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, action, payload, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Action, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, nil
}
