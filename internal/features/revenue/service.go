// Package revenue — service.go posts income events.
// Revenue postings are channel totals, not wallet-backed: no wallet
// balance moves when income is recorded.
package revenue

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
)

// Service posts revenue events.
type Service struct {
	repo  *Repository
	audit *audit.Service
	loc   *time.Location
}

func NewService(repo *Repository, auditService *audit.Service, loc *time.Location) *Service {
	return &Service{repo: repo, audit: auditService, loc: loc}
}

// Post appends one revenue event.
func (s *Service) Post(ctx context.Context, ev *Event) error {
	if ev.Amount <= 0 {
		return common.ErrInvalidAmount
	}
	ev.Channel = NormalizeChannel(ev.Channel)

	if err := s.repo.Append(ctx, ev); err != nil {
		return err
	}
	if err := s.audit.Record(ctx, audit.ActionRevenuePost, map[string]any{
		"channel": ev.Channel, "kind": ev.Kind, "amount": ev.Amount, "note": ev.Note,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after revenue post")
	}

	log.WithFields(log.Fields{
		"channel": ev.Channel,
		"kind":    ev.Kind,
		"amount":  ev.Amount,
	}).Info("revenue posted")
	return nil
}

// MonthlyTotals exposes the per-channel sums for the report, bucketed
// in the bookkeeping zone.
func (s *Service) MonthlyTotals(ctx context.Context, month string) (map[string]int64, int64, error) {
	return s.repo.MonthlyTotals(ctx, month, s.loc.String())
}
