// Package revenue — repository.go appends revenue_events rows and
// aggregates them by month for baocao.
package revenue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists revenue events.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Append inserts one revenue event.
func (r *Repository) Append(ctx context.Context, ev *Event) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO revenue_events (channel, kind, amount, note, chat_id, person_name, person_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ev.Channel, ev.Kind, ev.Amount, ev.Note, ev.ChatID, ev.PersonName, ev.PersonEmail)
	if err != nil {
		return fmt.Errorf("failed to append revenue event: %w", err)
	}
	return nil
}

// MonthlyTotals sums amounts per channel for one year-month key
// ("2026-09"). Rows bucket by the bookkeeping zone, not the DB session
// zone, so the key agrees with the one CurrentMonth computes.
// Returns the per-channel map and the overall total.
func (r *Repository) MonthlyTotals(ctx context.Context, month, zone string) (map[string]int64, int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT channel, COALESCE(SUM(amount), 0)
		FROM revenue_events
		WHERE to_char(created_at AT TIME ZONE $2, 'YYYY-MM') = $1
		GROUP BY channel
	`, month, zone)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int64)
	var overall int64
	for rows.Next() {
		var channel string
		var sum int64
		if err := rows.Scan(&channel, &sum); err != nil {
			return nil, 0, fmt.Errorf("failed to scan revenue total: %w", err)
		}
		totals[channel] = sum
		overall += sum
	}
	return totals, overall, nil
}
