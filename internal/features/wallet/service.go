// Package wallet — service.go holds the wallet business rules.
package wallet

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
)

// Service manages wallet balances.
type Service struct {
	repo  *Repository
	audit *audit.Service
}

func NewService(repo *Repository, auditService *audit.Service) *Service {
	return &Service{repo: repo, audit: auditService}
}

// GetBalance returns the current balance, lazily creating the wallet.
func (s *Service) GetBalance(ctx context.Context, name string) (int64, error) {
	return s.repo.GetBalance(ctx, name)
}

// Adjust applies a signed delta (positive credit, negative debit) and
// returns the new balance. Called by device/lot wallet assignment and any
// other wallet-affecting operation.
func (s *Service) Adjust(ctx context.Context, name string, delta int64, ref, note string) (int64, error) {
	newBalance, err := s.repo.Adjust(ctx, name, delta, ref, note)
	if err != nil {
		return 0, err
	}
	if err := s.audit.Record(ctx, audit.ActionWalletAdjust, map[string]any{
		"wallet": name, "delta": delta, "ref": ref, "note": note,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after wallet adjust")
	}
	return newBalance, nil
}

// AdminSet overrides the balance to an absolute target, logging the
// implied delta. Permission is checked by the handler before this runs.
func (s *Service) AdminSet(ctx context.Context, name string, target int64) (delta int64, err error) {
	delta, err = s.repo.SetBalance(ctx, name, target, "admin override")
	if err != nil {
		return 0, err
	}
	if err := s.audit.Record(ctx, audit.ActionWalletAdminSet, map[string]any{
		"wallet": name, "target": target, "delta": delta,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after admin set")
	}

	log.WithFields(log.Fields{
		"wallet": name,
		"target": target,
		"delta":  delta,
	}).Info("wallet balance overridden")
	return delta, nil
}
