// Package invite — handlers.go answers invite commands:
// `hq <name> <email>` / `qr <name> <email>` create, `pending` lists,
// and the check-in answer closes the loop.
package invite

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/session"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
)

// pendingListCap limits the rendered pending list; the rest is a count.
const pendingListCap = 50

// Handler handles invite commands.
type Handler struct {
	service  *Service
	sessions *session.Store
	bot      *tgbotapi.BotAPI
	loc      *time.Location
}

func NewHandler(service *Service, sessions *session.Store, bot *tgbotapi.BotAPI, loc *time.Location) *Handler {
	return &Handler{service: service, sessions: sessions, bot: bot, loc: loc}
}

// HandleCreate records an invite and replies with the check-in date.
func (h *Handler) HandleCreate(ctx context.Context, chatID int64, channel, name, email string) {
	inv, err := h.service.Create(ctx, channel, name, email, chatID)
	if err != nil {
		log.WithError(err).Error("invite create failed")
		h.sendMessage(chatID, "❌ Không tạo được lời mời, thử lại sau")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Đã tạo lời mời %s cho %s (%s). Hẹn check-in: %s",
		revenue.ChannelLabel(inv.Channel), inv.Name, inv.Email,
		common.FormatDate(inv.DueAt, h.loc)))
}

// HandlePending lists pending invites sorted by due date.
func (h *Handler) HandlePending(ctx context.Context, chatID int64) {
	pending, err := h.service.ListPending(ctx)
	if err != nil {
		log.WithError(err).Error("pending list failed")
		h.sendMessage(chatID, "❌ Không đọc được danh sách, thử lại sau")
		return
	}
	h.sendMessage(chatID, renderPending(pending, time.Now().In(h.loc), h.loc))
}

// HandleCheckinAnswer consumes the reward-amount answer for a due invite.
// A bad amount re-prompts and keeps the question open; the session clears
// only on a validated answer.
func (h *Handler) HandleCheckinAnswer(ctx context.Context, chatID int64, p *session.Pending, answer string) {
	reward, err := common.ParseAmount(answer)
	if err != nil || reward <= 0 {
		h.sendMessage(chatID, fmt.Sprintf("❌ Số tiền không hợp lệ. Nhận được bao nhiêu cho %s - %s? (vd: 60k)",
			revenue.ChannelLabel(p.Channel), p.Name))
		return
	}

	inv, err := h.service.CompleteCheckin(ctx, p.Channel, p.Name, p.Email, reward, chatID)
	if err != nil {
		if err == common.ErrInviteNotFound {
			// nothing pending anymore; closing the question is the only sane move
			h.sessions.Clear(chatID)
			h.sendMessage(chatID, "❌ "+common.ErrInviteNotFound.Error())
			return
		}
		log.WithError(err).Error("checkin failed")
		h.sendMessage(chatID, "❌ Không ghi được check-in, thử lại")
		return
	}

	h.sessions.Clear(chatID)
	h.sendMessage(chatID, fmt.Sprintf("✅ Check-in %s: %s (%s)",
		inv.Name, common.FormatSigned(reward), inv.Channel))
}

// renderPending builds the pending list text: due date ascending, overdue
// marker, capped at pendingListCap with a remainder count.
func renderPending(pending []*Invite, now time.Time, loc *time.Location) string {
	if len(pending) == 0 {
		return "📋 Không có lời mời nào đang chờ"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 %d lời mời đang chờ:\n", len(pending)))

	shown := pending
	if len(shown) > pendingListCap {
		shown = shown[:pendingListCap]
	}
	for i, inv := range shown {
		line := fmt.Sprintf("%d. %s (%s) - hạn %s",
			i+1, inv.Name, inv.Channel, common.FormatDate(inv.DueAt, loc))
		if inv.Overdue(now) {
			line += " ⚠️ QUÁ HẠN"
		}
		sb.WriteString(line + "\n")
	}
	if rest := len(pending) - len(shown); rest > 0 {
		sb.WriteString(fmt.Sprintf("... và %d lời mời khác\n", rest))
	}
	return sb.String()
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
