// Package invite — repository.go persists invites and check-in snapshots.
package invite

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository performs invite mutations against PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const inviteColumns = `id, channel, name, email, invited_at, due_at, status,
	chat_id, last_reminded_at, reward_amount, done_at, created_at`

// Create inserts a pending invite and returns it with its row id.
func (r *Repository) Create(ctx context.Context, inv *Invite) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO invites (channel, name, email, invited_at, due_at, status, chat_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, inv.Channel, inv.Name, inv.Email, inv.InvitedAt, inv.DueAt, StatusPending, inv.ChatID,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	inv.Status = StatusPending
	return nil
}

// ListPending returns all pending invites sorted by due date ascending.
func (r *Repository) ListPending(ctx context.Context) ([]*Invite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+inviteColumns+`
		FROM invites
		WHERE status = $1
		ORDER BY due_at ASC, id ASC
	`, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	defer rows.Close()
	return scanInvites(rows)
}

// Complete flips one invite pending → done. The status guard in the WHERE
// clause makes a second completion a no-op, reported via the bool.
func (r *Repository) Complete(ctx context.Context, id int64, reward int64, doneAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE invites
		SET status = $2, reward_amount = $3, done_at = $4
		WHERE id = $1 AND status = $5
	`, id, StatusDone, reward, doneAt, StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to complete invite: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// AppendCheckinReward writes the immutable completion snapshot.
func (r *Repository) AppendCheckinReward(ctx context.Context, rec *CheckinReward) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO checkin_rewards (invite_id, channel, name, email, due_at, reward)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.InviteID, rec.Channel, rec.Name, rec.Email, rec.DueAt, rec.Reward)
	if err != nil {
		return fmt.Errorf("failed to append checkin reward: %w", err)
	}
	return nil
}

// MarkReminded stamps last_reminded_at, gating the sweep to one reminder
// per calendar day.
func (r *Repository) MarkReminded(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE invites SET last_reminded_at = $2 WHERE id = $1
	`, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark invite reminded: %w", err)
	}
	return nil
}

// MonthlyCounts returns how many invites were created and completed in
// the given year-month ("2026-09"), keyed on invited_at bucketed in the
// bookkeeping zone.
func (r *Repository) MonthlyCounts(ctx context.Context, month, zone string) (created, done int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $2)
		FROM invites
		WHERE to_char(invited_at AT TIME ZONE $3, 'YYYY-MM') = $1
	`, month, StatusDone, zone).Scan(&created, &done)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count invites: %w", err)
	}
	return created, done, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
}

func scanInvites(rows rowScanner) ([]*Invite, error) {
	var invites []*Invite
	for rows.Next() {
		var inv Invite
		err := rows.Scan(
			&inv.ID, &inv.Channel, &inv.Name, &inv.Email,
			&inv.InvitedAt, &inv.DueAt, &inv.Status, &inv.ChatID,
			&inv.LastRemindedAt, &inv.RewardAmount, &inv.DoneAt, &inv.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &inv)
	}
	return invites, nil
}
