// Package report renders the monthly summary for `baocao`:
// revenue per channel plus invite counts. Pure reads, no mutation.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/invite"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

// Service aggregates the monthly report.
type Service struct {
	revenue *revenue.Service
	invites *invite.Service
	wallets *wallet.Service
	loc     *time.Location
}

func NewService(revenueService *revenue.Service, inviteService *invite.Service, walletService *wallet.Service, loc *time.Location) *Service {
	return &Service{revenue: revenueService, invites: inviteService, wallets: walletService, loc: loc}
}

// Monthly returns the formatted report for one year-month key.
func (s *Service) Monthly(ctx context.Context, month string) (string, error) {
	totals, overall, err := s.revenue.MonthlyTotals(ctx, month)
	if err != nil {
		return "", err
	}
	created, done, err := s.invites.MonthlyCounts(ctx, month)
	if err != nil {
		return "", err
	}

	balances := make(map[string]int64, 3)
	for _, name := range []string{wallet.WalletMomo, wallet.WalletBank, wallet.WalletTienMat} {
		balance, err := s.wallets.GetBalance(ctx, name)
		if err != nil {
			return "", err
		}
		balances[name] = balance
	}

	return renderReport(month, totals, overall, created, done, balances), nil
}

// CurrentMonth returns this month's key in the bookkeeping zone.
func (s *Service) CurrentMonth() string {
	return common.MonthKey(time.Now(), s.loc)
}

// renderReport builds the report text. Channels render in a fixed order
// with free-form labels appended alphabetically after them.
func renderReport(month string, totals map[string]int64, overall int64, invitesCreated, invitesDone int, balances map[string]int64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Báo cáo %s\n", month))

	known := []string{revenue.ChannelHQ, revenue.ChannelDB, revenue.ChannelQR, revenue.ChannelOther}
	seen := make(map[string]bool, len(known))
	for _, ch := range known {
		seen[ch] = true
		if sum, ok := totals[ch]; ok {
			sb.WriteString(fmt.Sprintf("%s: %s\n", ch, common.FormatAmount(sum)))
		}
	}

	var extra []string
	for ch := range totals {
		if !seen[ch] {
			extra = append(extra, ch)
		}
	}
	sort.Strings(extra)
	for _, ch := range extra {
		sb.WriteString(fmt.Sprintf("%s: %s\n", ch, common.FormatAmount(totals[ch])))
	}

	sb.WriteString(fmt.Sprintf("Tổng: %s\n", common.FormatAmount(overall)))
	sb.WriteString(fmt.Sprintf("Lời mời: %d tạo, %d xong\n", invitesCreated, invitesDone))

	sb.WriteString("💰 Số dư ví:\n")
	for _, name := range []string{wallet.WalletMomo, wallet.WalletBank, wallet.WalletTienMat} {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", name, common.FormatAmount(balances[name])))
	}
	return strings.TrimRight(sb.String(), "\n")
}
