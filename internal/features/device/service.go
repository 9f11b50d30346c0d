// Package device — service.go holds the three-step device lifecycle.
// The wallet debit happens when the wallet becomes known, not at
// purchase time.
package device

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

// Service manages the device lifecycle.
type Service struct {
	repo   *Repository
	wallet *wallet.Service
	audit  *audit.Service
	loc    *time.Location
}

func NewService(repo *Repository, walletService *wallet.Service, auditService *audit.Service, loc *time.Location) *Service {
	return &Service{repo: repo, wallet: walletService, audit: auditService, loc: loc}
}

// Purchase records a bought device. The funding wallet is not yet known;
// the caller opens the wallet question.
func (s *Service) Purchase(ctx context.Context, code string, price int64, chatID int64) (*Device, error) {
	d := &Device{
		Code:         code,
		Price:        price,
		PurchaseDate: time.Now().In(s.loc),
		ChatID:       chatID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, audit.ActionDeviceBuy, map[string]any{
		"code": code, "price": price,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after device buy")
	}

	log.WithFields(log.Fields{"code": code, "price": price}).Info("device bought")
	return d, nil
}

// AssignWallet stores the funding wallet on the most recent device with
// this code and debits the wallet by the purchase price. Returns the new
// wallet balance.
func (s *Service) AssignWallet(ctx context.Context, code, walletName string) (int64, error) {
	d, err := s.repo.FindLatestByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	if err := s.repo.AssignWallet(ctx, d.ID, walletName); err != nil {
		return 0, err
	}

	newBalance, err := s.wallet.Adjust(ctx, walletName, -d.Price,
		code, fmt.Sprintf("mua máy %s", code))
	if err != nil {
		return 0, err
	}

	if err := s.audit.Record(ctx, audit.ActionDeviceWallet, map[string]any{
		"code": code, "wallet": walletName, "price": d.Price,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after device wallet assign")
	}
	return newBalance, nil
}

// Resolve closes out the most recent device with this code: profit is the
// game amount minus the recorded purchase price (loss allowed), the row
// goes to status ok and a profit snapshot is written.
func (s *Service) Resolve(ctx context.Context, code, channel string, gameAmount int64) (*Device, int64, error) {
	d, err := s.repo.FindLatestByCode(ctx, code)
	if err != nil {
		return nil, 0, err
	}

	channel = revenue.NormalizeChannel(channel)
	profit := profitOf(gameAmount, d.Price)

	now := time.Now().In(s.loc)
	if err := s.repo.Resolve(ctx, d.ID, channel, gameAmount, profit, now); err != nil {
		return nil, 0, err
	}
	d.Status = StatusOK
	d.Channel = &channel
	d.GameAmount = &gameAmount
	d.Profit = &profit
	d.ResolvedAt = &now

	if err := s.audit.Record(ctx, audit.ActionDeviceResolve, map[string]any{
		"code": code, "channel": channel, "game_amount": gameAmount, "profit": profit,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after device resolve")
	}

	log.WithFields(log.Fields{
		"code":   code,
		"profit": profit,
	}).Info("device resolved")
	return d, profit, nil
}
