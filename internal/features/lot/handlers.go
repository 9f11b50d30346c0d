// Package lot — handlers.go answers the lot commands:
// `mua 5may 500k` buys (then asks which wallet),
// `5may hopqua800k tach2` / `5may hq ok tach2` record results.
package lot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/session"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

// Handler handles lot commands.
type Handler struct {
	service  *Service
	sessions *session.Store
	bot      *tgbotapi.BotAPI
}

func NewHandler(service *Service, sessions *session.Store, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, sessions: sessions, bot: bot}
}

// HandlePurchase records the lot and opens the wallet question.
func (h *Handler) HandlePurchase(ctx context.Context, chatID int64, qty int, totalCost int64) {
	l, err := h.service.Purchase(ctx, qty, totalCost, chatID)
	if err != nil {
		log.WithError(err).Error("lot purchase failed")
		h.sendMessage(chatID, "❌ Không ghi được lô máy, thử lại sau")
		return
	}

	h.sessions.Set(chatID, &session.Pending{
		Kind:   session.KindLotWallet,
		Code:   l.Code,
		Amount: l.TotalCost,
	})
	h.sendMessage(chatID, fmt.Sprintf("📦 Lô %s: %d máy - %s. Mua bằng ví nào? (%s)",
		l.Code, l.Qty, common.FormatAmount(l.TotalCost), wallet.Names()))
}

// HandleWalletAnswer consumes the wallet answer for a lot purchase.
func (h *Handler) HandleWalletAnswer(ctx context.Context, chatID int64, p *session.Pending, answer string) {
	name, err := wallet.ParseName(answer)
	if err != nil {
		h.sendMessage(chatID, fmt.Sprintf("❌ Ví không hợp lệ. Chọn: %s", wallet.Names()))
		return
	}

	newBalance, err := h.service.AssignWallet(ctx, p.Code, name)
	if err != nil {
		if err == common.ErrLotNotFound {
			h.sessions.Clear(chatID)
			h.sendMessage(chatID, "❌ "+common.ErrLotNotFound.Error())
			return
		}
		log.WithError(err).Error("lot wallet assign failed")
		h.sendMessage(chatID, "❌ Không trừ được ví, thử lại")
		return
	}

	h.sessions.Clear(chatID)
	h.sendMessage(chatID, fmt.Sprintf("✅ Đã trừ ví %s %s. Số dư: %s",
		name, common.FormatAmount(p.Amount), common.FormatAmount(newBalance)))
}

// HandleResult records a lot outcome for the latest lot.
func (h *Handler) HandleResult(ctx context.Context, chatID int64, okCount, tachCount int, channel string, reward *int64) {
	res, err := h.service.RecordResult(ctx, okCount, tachCount, channel, reward)
	if err != nil {
		if err == common.ErrLotNotFound {
			h.sendMessage(chatID, "❌ "+common.ErrLotNotFound.Error())
			return
		}
		log.WithError(err).Error("lot result failed")
		h.sendMessage(chatID, "❌ Không ghi được kết quả lô, thử lại")
		return
	}

	text := fmt.Sprintf("✅ Lô %s: %d ok, %d tách", res.LotCode, res.OkCount, res.TachCount)
	if res.Reward != nil {
		outcome := fmt.Sprintf("lãi %s", common.FormatAmount(*res.Profit))
		if *res.Profit < 0 {
			outcome = fmt.Sprintf("lỗ %s", common.FormatAmount(-*res.Profit))
		}
		text += fmt.Sprintf(", thu %s, %s", common.FormatAmount(*res.Reward), outcome)
	} else {
		text += ", chưa có thưởng"
	}
	h.sendMessage(chatID, text)
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
