// Package device — handlers.go answers the device commands:
// `<code> <amount>` buys (then asks which wallet), `<code> ok hopqua100k`
// resolves.
package device

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/session"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

// Handler handles device commands.
type Handler struct {
	service  *Service
	sessions *session.Store
	bot      *tgbotapi.BotAPI
}

func NewHandler(service *Service, sessions *session.Store, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, sessions: sessions, bot: bot}
}

// HandlePurchase records the bought device and opens the wallet question.
func (h *Handler) HandlePurchase(ctx context.Context, chatID int64, code string, price int64) {
	d, err := h.service.Purchase(ctx, code, price, chatID)
	if err != nil {
		log.WithError(err).Error("device purchase failed")
		h.sendMessage(chatID, "❌ Không ghi được máy, thử lại sau")
		return
	}

	h.sessions.Set(chatID, &session.Pending{
		Kind:   session.KindDeviceWallet,
		Code:   d.Code,
		Amount: d.Price,
	})
	h.sendMessage(chatID, fmt.Sprintf("📱 Máy %s - %s. Mua bằng ví nào? (%s)",
		d.Code, common.FormatAmount(d.Price), wallet.Names()))
}

// HandleWalletAnswer consumes the wallet answer for a device purchase.
// An unknown wallet re-prompts and keeps the question open.
func (h *Handler) HandleWalletAnswer(ctx context.Context, chatID int64, p *session.Pending, answer string) {
	name, err := wallet.ParseName(answer)
	if err != nil {
		h.sendMessage(chatID, fmt.Sprintf("❌ Ví không hợp lệ. Chọn: %s", wallet.Names()))
		return
	}

	newBalance, err := h.service.AssignWallet(ctx, p.Code, name)
	if err != nil {
		if err == common.ErrDeviceNotFound {
			// row vanished under us; nothing left to answer
			h.sessions.Clear(chatID)
			h.sendMessage(chatID, "❌ "+common.ErrDeviceNotFound.Error())
			return
		}
		log.WithError(err).Error("device wallet assign failed")
		h.sendMessage(chatID, "❌ Không trừ được ví, thử lại")
		return
	}

	h.sessions.Clear(chatID)
	h.sendMessage(chatID, fmt.Sprintf("✅ Đã trừ ví %s %s. Số dư: %s",
		name, common.FormatAmount(p.Amount), common.FormatAmount(newBalance)))
}

// HandleResolve closes out a device with its game amount.
func (h *Handler) HandleResolve(ctx context.Context, chatID int64, code, channel string, gameAmount int64) {
	d, profit, err := h.service.Resolve(ctx, code, channel, gameAmount)
	if err != nil {
		if err == common.ErrDeviceNotFound {
			h.sendMessage(chatID, "❌ "+common.ErrDeviceNotFound.Error())
			return
		}
		log.WithError(err).Error("device resolve failed")
		h.sendMessage(chatID, "❌ Không ghi được kết quả máy, thử lại")
		return
	}

	outcome := fmt.Sprintf("lãi %s", common.FormatAmount(profit))
	if profit < 0 {
		outcome = fmt.Sprintf("lỗ %s", common.FormatAmount(-profit))
	}
	h.sendMessage(chatID, fmt.Sprintf("✅ Máy %s xong: thu %s, %s",
		d.Code, common.FormatAmount(gameAmount), outcome))
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
