// Package revenue — handlers.go answers the income commands:
// `db 100k`, `hq 57k`, `qr 60k`, `them 120000`.
package revenue

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// Handler handles revenue commands.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleIncome posts a revenue event and confirms the amount.
func (h *Handler) HandleIncome(ctx context.Context, chatID int64, channel, kind string, amount int64) {
	err := h.service.Post(ctx, &Event{
		Channel: channel,
		Kind:    kind,
		Amount:  amount,
		ChatID:  chatID,
	})
	if err != nil {
		if err == common.ErrInvalidAmount {
			h.sendMessage(chatID, "❌ "+common.ErrInvalidAmount.Error())
			return
		}
		log.WithError(err).Error("revenue post failed")
		h.sendMessage(chatID, "❌ Không ghi được, thử lại sau")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Đã ghi %s (%s)",
		common.FormatSigned(amount), NormalizeChannel(channel)))
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
