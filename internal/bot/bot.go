// Package bot runs the Telegram update loop and routes inbound text to
// the feature handlers. One goroutine per update, but updates for the
// same chat are serialized so a pending question and its answer can
// never interleave.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/middleware"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/session"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/config"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/device"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/invite"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/lot"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/report"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
)

const undoTailLimit = 5

// Handlers bundles the per-feature handlers the bot dispatches to.
type Handlers struct {
	Revenue *revenue.Handler
	Invite  *invite.Handler
	Device  *device.Handler
	Lot     *lot.Handler
	Wallet  *wallet.Handler
	Report  *report.Handler
}

type Bot struct {
	api        *tgbotapi.BotAPI
	cfg        *config.Config
	sessions   *session.Store
	serializer *middleware.ChatSerializer
	handlers   Handlers
	audit      *audit.Service
	loc        *time.Location
	inflight   chan struct{}
}

func New(api *tgbotapi.BotAPI, cfg *config.Config, sessions *session.Store, handlers Handlers, auditService *audit.Service, loc *time.Location) *Bot {
	return &Bot{
		api:        api,
		cfg:        cfg,
		sessions:   sessions,
		serializer: middleware.NewChatSerializer(),
		handlers:   handlers,
		audit:      auditService,
		loc:        loc,
		inflight:   make(chan struct{}, cfg.BotMaxInflight),
	}
}

// Start runs the update loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Hướng dẫn sử dụng"},
		tgbotapi.BotCommand{Command: "help", Description: "Hướng dẫn sử dụng"},
		tgbotapi.BotCommand{Command: "baocao", Description: "Báo cáo tháng"},
		tgbotapi.BotCommand{Command: "pending", Description: "Lời mời chờ check-in"},
		tgbotapi.BotCommand{Command: "undo", Description: "Xem thao tác gần nhất"},
	)
	if _, err := b.api.Request(commands); err != nil {
		log.WithError(err).Warn("failed to register bot commands")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.cfg.BotUpdateTimeoutSeconds
	updates := b.api.GetUpdatesChan(updateConfig)

	log.WithField("username", b.api.Self.UserName).Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.serializer.Close()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.inflight <- struct{}{}
			go func(update tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, update)
			}(update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	message := update.Message
	if message == nil || message.From == nil || message.Text == "" {
		return
	}
	middleware.LogMessage(message)

	chatID := message.Chat.ID
	release := b.serializer.Acquire(chatID)
	defer release()

	// A pending question swallows the whole message as its answer.
	if p := b.sessions.Get(chatID); p != nil {
		b.handleAnswer(ctx, chatID, p, message.Text)
		return
	}

	cmd := parseCommand(message.Text)
	b.route(ctx, chatID, message.From.ID, cmd)
}

func (b *Bot) handleAnswer(ctx context.Context, chatID int64, p *session.Pending, answer string) {
	switch p.Kind {
	case session.KindDeviceWallet:
		b.handlers.Device.HandleWalletAnswer(ctx, chatID, p, answer)
	case session.KindLotWallet:
		b.handlers.Lot.HandleWalletAnswer(ctx, chatID, p, answer)
	case session.KindCheckinReward:
		b.handlers.Invite.HandleCheckinAnswer(ctx, chatID, p, answer)
	default:
		log.WithField("kind", p.Kind).Error("unknown pending question kind")
		b.sessions.Clear(chatID)
	}
}

func (b *Bot) route(ctx context.Context, chatID, userID int64, cmd command) {
	switch cmd.kind {
	case cmdHelp:
		b.sendMessage(chatID, helpText)
	case cmdUndo:
		b.handleUndo(ctx, chatID)
	case cmdReport:
		b.handlers.Report.HandleReport(ctx, chatID, cmd.month)
	case cmdPending:
		b.handlers.Invite.HandlePending(ctx, chatID)
	case cmdRevenue:
		b.handlers.Revenue.HandleIncome(ctx, chatID, cmd.channel, cmd.revKind, cmd.amount)
	case cmdInviteCreate:
		b.handlers.Invite.HandleCreate(ctx, chatID, cmd.channel, cmd.name, cmd.email)
	case cmdAdminSet:
		b.handlers.Wallet.HandleAdminSet(ctx, chatID, userID, cmd.wallet, cmd.amount)
	case cmdDeviceBuy:
		b.handlers.Device.HandlePurchase(ctx, chatID, cmd.code, cmd.amount)
	case cmdDeviceResolve:
		b.handlers.Device.HandleResolve(ctx, chatID, cmd.code, cmd.channel, cmd.amount)
	case cmdLotBuy:
		b.handlers.Lot.HandlePurchase(ctx, chatID, cmd.qty, cmd.amount)
	case cmdLotResult:
		b.handlers.Lot.HandleResult(ctx, chatID, cmd.okCount, cmd.tach, cmd.channel, cmd.reward)
	default:
		b.sendMessage(chatID, "🤔 Không hiểu lệnh. Gõ /help để xem cú pháp.")
	}
}

// handleUndo shows the tail of the audit log. Operations are not
// reversed automatically: the operator reads the last entries and
// corrects by hand (chinh / them).
func (b *Bot) handleUndo(ctx context.Context, chatID int64) {
	entries, err := b.audit.Tail(ctx, undoTailLimit)
	if err != nil {
		log.WithError(err).Error("failed to read audit tail")
		b.sendMessage(chatID, "❌ Không đọc được nhật ký.")
		return
	}
	if len(entries) == 0 {
		b.sendMessage(chatID, "Chưa có thao tác nào.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🧾 Thao tác gần nhất:\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("• %s %s %s\n",
			common.FormatDateTime(e.CreatedAt, b.loc), e.Action, string(e.Payload)))
	}
	sb.WriteString("\nSửa số dư bằng: chinh <ví> <số tiền>")
	b.sendMessage(chatID, sb.String())
}

// RemindInvite delivers one due-invite reminder and opens the
// check-in question for that chat. Used as the sweep callback; the
// error return tells the sweep whether to stamp the reminder.
func (b *Bot) RemindInvite(inv *invite.Invite) error {
	release := b.serializer.Acquire(inv.ChatID)
	defer release()

	// Never clobber a question already in flight for this chat.
	if b.sessions.Get(inv.ChatID) != nil {
		return fmt.Errorf("chat %d has a pending question", inv.ChatID)
	}

	text := fmt.Sprintf("⏰ %s - %s đến hạn check-in (%s). Nhận được bao nhiêu? (vd: 60k)",
		inv.Name, inv.Email, revenue.ChannelLabel(inv.Channel))
	msg := tgbotapi.NewMessage(inv.ChatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	b.sessions.Set(inv.ChatID, &session.Pending{
		Kind:    session.KindCheckinReward,
		Channel: inv.Channel,
		Name:    inv.Name,
		Email:   inv.Email,
	})
	return nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).Error("failed to send message")
	}
}

const helpText = `📒 Sổ thu nhập TikTok Lite

Thu nhập:
  hopqua 100k / hq 100k — thưởng hộp quà
  dabong 60k / db 60k — thưởng đá bóng
  qr 45k — thưởng quét QR
  them 500k — thu nhập khác

Lời mời:
  hq <tên> <email> — tạo lời mời (hẹn check-in 14 ngày)
  pending — danh sách chờ check-in

Máy:
  <mã máy> 35k — mua máy
  <mã máy> ok hopqua60k — máy xong, ghi thưởng

Lô máy:
  mua 5may 350k — mua lô 5 máy
  5may hopqua800k tach2 — kết quả lô: thưởng 800k, 2 máy tách
  5may hq ok tach1 — kết quả lô chưa có thưởng

Khác:
  baocao [yyyy-mm] — báo cáo tháng
  chinh momo 1000k — đặt lại số dư ví (admin)
  undo — xem thao tác gần nhất`
