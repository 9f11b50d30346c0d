// Package invite — service.go holds the invite lifecycle:
// create with a 14-day due date, list pending, complete on check-in
// (posting the reward as revenue), and the due-date sweep.
package invite

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
)

// Service manages invites.
type Service struct {
	repo    *Repository
	revenue *revenue.Service
	audit   *audit.Service
	loc     *time.Location
}

func NewService(repo *Repository, revenueService *revenue.Service, auditService *audit.Service, loc *time.Location) *Service {
	return &Service{repo: repo, revenue: revenueService, audit: auditService, loc: loc}
}

// Create records a new invite, due exactly DueDays after now.
func (s *Service) Create(ctx context.Context, channel, name, email string, chatID int64) (*Invite, error) {
	now := time.Now().In(s.loc)
	inv := &Invite{
		Channel:   revenue.NormalizeChannel(channel),
		Name:      name,
		Email:     email,
		InvitedAt: now,
		DueAt:     now.AddDate(0, 0, DueDays),
		ChatID:    chatID,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, audit.ActionInviteCreate, map[string]any{
		"channel": inv.Channel, "name": name, "email": email, "due_at": inv.DueAt,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after invite create")
	}

	log.WithFields(log.Fields{
		"channel": inv.Channel,
		"name":    name,
		"due_at":  inv.DueAt,
	}).Info("invite created")
	return inv, nil
}

// CompleteCheckin finds the pending invite for (channel, person) and
// completes it with the reward:
//  1. fuzzy match (email first, name fallback, most recent wins)
//  2. append the checkin_rewards snapshot
//  3. post a checkin_reward revenue event
//  4. flip the invite to done — exactly once
//
// A second completion for the same person finds no pending match and
// fails with ErrInviteNotFound before any mutation.
func (s *Service) CompleteCheckin(ctx context.Context, channel, name, email string, reward int64, chatID int64) (*Invite, error) {
	if reward <= 0 {
		return nil, common.ErrInvalidAmount
	}

	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	inv := matchPending(pending, revenue.NormalizeChannel(channel), name, email)
	if inv == nil {
		return nil, common.ErrInviteNotFound
	}

	if err := s.repo.AppendCheckinReward(ctx, &CheckinReward{
		InviteID: inv.ID,
		Channel:  inv.Channel,
		Name:     inv.Name,
		Email:    inv.Email,
		DueAt:    inv.DueAt,
		Reward:   reward,
	}); err != nil {
		return nil, err
	}

	if err := s.revenue.Post(ctx, &revenue.Event{
		Channel:     inv.Channel,
		Kind:        revenue.KindCheckinReward,
		Amount:      reward,
		Note:        fmt.Sprintf("check-in %s", inv.Name),
		ChatID:      chatID,
		PersonName:  inv.Name,
		PersonEmail: inv.Email,
	}); err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	completed, err := s.repo.Complete(ctx, inv.ID, reward, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		// lost the race to another completion of the same row
		return nil, common.ErrInviteNotFound
	}
	inv.Status = StatusDone
	inv.RewardAmount = &reward
	inv.DoneAt = &now

	if err := s.audit.Record(ctx, audit.ActionInviteCheckin, map[string]any{
		"invite_id": inv.ID, "channel": inv.Channel, "name": inv.Name, "reward": reward,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after checkin")
	}

	return inv, nil
}

// ListPending returns pending invites sorted by due date ascending.
func (s *Service) ListPending(ctx context.Context) ([]*Invite, error) {
	return s.repo.ListPending(ctx)
}

// MonthlyCounts exposes created/done counts for the report, bucketed
// in the bookkeeping zone.
func (s *Service) MonthlyCounts(ctx context.Context, month string) (created, done int, err error) {
	return s.repo.MonthlyCounts(ctx, month, s.loc.String())
}

// SweepDue walks every pending invite and fires the remind callback for
// the due ones, at most once per calendar day per invite. The callback
// opens the check-in conversation and sends the prompt; only when it
// succeeds is last_reminded_at stamped. Per-invite failures are logged
// and the sweep continues.
func (s *Service) SweepDue(ctx context.Context, remind func(inv *Invite) error) error {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return err
	}

	now := time.Now().In(s.loc)
	reminded := 0
	for _, inv := range pending {
		if !shouldRemind(inv, now, s.loc) {
			continue
		}

		if err := remind(inv); err != nil {
			log.WithError(err).WithField("invite_id", inv.ID).Error("reminder failed")
			continue
		}
		if err := s.repo.MarkReminded(ctx, inv.ID, now); err != nil {
			log.WithError(err).WithField("invite_id", inv.ID).Error("failed to stamp reminder")
			continue
		}
		reminded++
	}

	if reminded > 0 {
		log.WithFields(log.Fields{
			"pending":  len(pending),
			"reminded": reminded,
		}).Info("due-date sweep complete")
	}
	return nil
}
