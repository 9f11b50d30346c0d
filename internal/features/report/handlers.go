// Package report — handlers.go answers `baocao [YYYY-MM]`.
package report

import (
	"context"
	"regexp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Handler handles the report command.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleReport renders the monthly report. An empty month means the
// current month in the bookkeeping zone.
func (h *Handler) HandleReport(ctx context.Context, chatID int64, month string) {
	if month == "" {
		month = h.service.CurrentMonth()
	}
	if !monthPattern.MatchString(month) {
		h.sendMessage(chatID, "❌ Tháng không hợp lệ. Ví dụ: baocao 2026-09")
		return
	}

	text, err := h.service.Monthly(ctx, month)
	if err != nil {
		log.WithError(err).Error("monthly report failed")
		h.sendMessage(chatID, "❌ Không đọc được báo cáo, thử lại sau")
		return
	}
	h.sendMessage(chatID, text)
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
