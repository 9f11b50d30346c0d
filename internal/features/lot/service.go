// Package lot — service.go parallels the device lifecycle at batch
// granularity: buy a lot, assign the funding wallet, record outcomes.
package lot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

// Service manages the lot lifecycle.
type Service struct {
	repo   *Repository
	wallet *wallet.Service
	audit  *audit.Service
	loc    *time.Location
}

func NewService(repo *Repository, walletService *wallet.Service, auditService *audit.Service, loc *time.Location) *Service {
	return &Service{repo: repo, wallet: walletService, audit: auditService, loc: loc}
}

// Purchase records a lot of qty devices for totalCost. The lot gets a
// generated identifier; the funding wallet comes in the follow-up answer.
func (s *Service) Purchase(ctx context.Context, qty int, totalCost int64, chatID int64) (*Lot, error) {
	l := &Lot{
		Code:         uuid.NewString()[:8],
		Qty:          qty,
		TotalCost:    totalCost,
		PurchaseDate: time.Now().In(s.loc),
		ChatID:       chatID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, audit.ActionLotBuy, map[string]any{
		"lot": l.Code, "qty": qty, "total_cost": totalCost,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after lot buy")
	}

	log.WithFields(log.Fields{"lot": l.Code, "qty": qty, "cost": totalCost}).Info("lot bought")
	return l, nil
}

// AssignWallet stores the funding wallet on the lot and debits it by the
// total cost. Returns the new wallet balance.
func (s *Service) AssignWallet(ctx context.Context, lotCode, walletName string) (int64, error) {
	l, err := s.repo.FindByCode(ctx, lotCode)
	if err != nil {
		return 0, err
	}

	if err := s.repo.AssignWallet(ctx, l.ID, walletName); err != nil {
		return 0, err
	}

	newBalance, err := s.wallet.Adjust(ctx, walletName, -l.TotalCost,
		l.Code, fmt.Sprintf("mua lô %d máy", l.Qty))
	if err != nil {
		return 0, err
	}

	if err := s.audit.Record(ctx, audit.ActionLotWallet, map[string]any{
		"lot": l.Code, "wallet": walletName, "total_cost": l.TotalCost,
	}); err != nil {
		log.WithError(err).Warn("audit append failed after lot wallet assign")
	}
	return newBalance, nil
}

// RecordResult appends an outcome for the latest lot. okCount and reward
// come pre-shaped from the command grammar (with a reward the ok count is
// N−tach; without, it is N). Profit = reward − total cost, only when the
// reward is known.
func (s *Service) RecordResult(ctx context.Context, okCount, tachCount int, channel string, reward *int64) (*Result, error) {
	l, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{
		LotID:     l.ID,
		LotCode:   l.Code,
		Qty:       l.Qty,
		TotalCost: l.TotalCost,
		OkCount:   okCount,
		TachCount: tachCount,
		Channel:   revenue.NormalizeChannel(channel),
		Reward:    reward,
		Profit:    profitOf(reward, l.TotalCost),
	}
	if err := s.repo.AppendResult(ctx, res); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"lot": l.Code, "ok": okCount, "tach": tachCount, "channel": res.Channel,
	}
	if reward != nil {
		payload["reward"] = *reward
	}
	if err := s.audit.Record(ctx, audit.ActionLotResult, payload); err != nil {
		log.WithError(err).Warn("audit append failed after lot result")
	}

	log.WithFields(log.Fields{
		"lot":  l.Code,
		"ok":   okCount,
		"tach": tachCount,
	}).Info("lot result recorded")
	return res, nil
}
