// Package jobs schedules the background sweeps.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/config"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/db/postgres"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/invite"
)

const lastSweepKey = "last_sweep_at"

// Reminder delivers one due-invite notification. Returning an error
// leaves the invite unstamped so the next sweep retries it.
type Reminder interface {
	RemindInvite(inv *invite.Invite) error
}

// Scheduler runs the due-invite sweep: once at the configured daily
// hour, and hourly as a catch-up for invites that came due in between.
// The per-invite calendar-day throttle keeps the hourly pass from
// re-sending what the daily pass already delivered.
type Scheduler struct {
	cron    *cron.Cron
	db      *pgxpool.Pool
	invites *invite.Service
	bot     Reminder
}

func NewScheduler(cfg *config.Config, loc *time.Location, db *pgxpool.Pool, invites *invite.Service, bot Reminder) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		db:      db,
		invites: invites,
		bot:     bot,
	}

	daily := fmt.Sprintf("0 %d * * *", cfg.SweepDailyHour)
	if _, err := s.cron.AddFunc(daily, s.sweep); err != nil {
		return nil, fmt.Errorf("failed to schedule daily sweep: %w", err)
	}
	if _, err := s.cron.AddFunc("0 * * * *", s.sweep); err != nil {
		return nil, fmt.Errorf("failed to schedule hourly sweep: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if last, ok, err := postgres.GetSetting(ctx, s.db, lastSweepKey); err != nil {
		log.WithError(err).Warn("failed to read last sweep timestamp")
	} else if ok {
		log.WithField("last_sweep_at", last).Info("resuming sweep schedule")
	}

	s.cron.Start()
	log.Info("job scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("job scheduler stopped")
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.invites.SweepDue(ctx, s.bot.RemindInvite); err != nil {
		log.WithError(err).Error("due-invite sweep failed")
		return
	}

	if err := postgres.SetSetting(ctx, s.db, lastSweepKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		log.WithError(err).Warn("failed to record sweep timestamp")
	}
}
