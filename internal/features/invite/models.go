// Package invite tracks outreach invites and their 14-day check-in.
// models.go declares the rows plus the pure matching and reminder rules,
// kept free of storage so they are testable in isolation.
package invite

import (
	"strings"
	"time"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// DueDays is the fixed check-in waiting period. Policy, not config.
const DueDays = 14

// Invite statuses.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Invite is one tracked outreach. Mutable: pending → done exactly once.
type Invite struct {
	ID             int64      `db:"id"`
	Channel        string     `db:"channel"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	InvitedAt      time.Time  `db:"invited_at"`
	DueAt          time.Time  `db:"due_at"`
	Status         string     `db:"status"`
	ChatID         int64      `db:"chat_id"`
	LastRemindedAt *time.Time `db:"last_reminded_at"`
	RewardAmount   *int64     `db:"reward_amount"`
	DoneAt         *time.Time `db:"done_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Overdue reports whether the invite's due date has passed.
func (i *Invite) Overdue(now time.Time) bool {
	return i.DueAt.Before(now)
}

// CheckinReward is the immutable snapshot written when an invite
// completes, duplicating the facts for audit.
type CheckinReward struct {
	ID        int64     `db:"id"`
	InviteID  int64     `db:"invite_id"`
	Channel   string    `db:"channel"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	DueAt     time.Time `db:"due_at"`
	Reward    int64     `db:"reward"`
	CreatedAt time.Time `db:"created_at"`
}

// matchPending picks the pending invite a check-in completes.
//
// Best-effort fuzzy match, deliberately loose: an invite matches when its
// channel matches and either its email equals the given email
// (case-insensitive) or, failing that, its name equals the given name
// (case-insensitive). Ties — two people sharing a name on one channel —
// break by most recent invited-at. Returns nil when nothing matches.
func matchPending(invites []*Invite, channel, name, email string) *Invite {
	channel = strings.ToLower(strings.TrimSpace(channel))
	var best *Invite
	for _, inv := range invites {
		if inv.Status != StatusPending || inv.Channel != channel {
			continue
		}
		emailMatch := email != "" && strings.EqualFold(inv.Email, email)
		nameMatch := name != "" && strings.EqualFold(inv.Name, name)
		if !emailMatch && !nameMatch {
			continue
		}
		if best == nil || inv.InvitedAt.After(best.InvitedAt) {
			best = inv
		}
	}
	return best
}

// shouldRemind applies the sweep guards to one invite:
// pending, due date reached, and not already reminded today (calendar-day
// granularity in loc — the exactly-once-per-day throttle).
func shouldRemind(inv *Invite, now time.Time, loc *time.Location) bool {
	if inv.Status != StatusPending {
		return false
	}
	if inv.DueAt.IsZero() || now.Before(inv.DueAt) {
		return false
	}
	if inv.LastRemindedAt != nil && common.SameDay(*inv.LastRemindedAt, now, loc) {
		return false
	}
	return true
}
