// Package wallet — handlers.go answers the `chinh <wallet> <amount>`
// command. chinh is the only admin-gated command: it hard-sets a balance.
package wallet

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// Handler handles wallet commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
	adminID int64
}

func NewHandler(service *Service, bot *tgbotapi.BotAPI, adminID int64) *Handler {
	return &Handler{service: service, bot: bot, adminID: adminID}
}

// HandleAdminSet handles `chinh <wallet> <amount>`. Non-admin senders get
// a denial and no mutation happens. AdminID 0 means nobody is admin.
func (h *Handler) HandleAdminSet(ctx context.Context, chatID, userID int64, walletName string, target int64) {
	if h.adminID == 0 || userID != h.adminID {
		h.sendMessage(chatID, "⛔ "+common.ErrNotAdmin.Error())
		return
	}

	name, err := ParseName(walletName)
	if err != nil {
		h.sendMessage(chatID, fmt.Sprintf("❌ Ví không hợp lệ. Chọn: %s", Names()))
		return
	}

	delta, err := h.service.AdminSet(ctx, name, target)
	if err != nil {
		log.WithError(err).Error("admin set failed")
		h.sendMessage(chatID, "❌ Không chỉnh được ví, thử lại sau")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Ví %s: %s (chênh lệch %s)",
		name, common.FormatAmount(target), common.FormatSigned(delta)))
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
