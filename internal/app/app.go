// Package app is the assembly point: it builds the DB pool, the
// repositories, services and handlers, and wires everything into one
// Bot plus its job scheduler.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/bot/session"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/config"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/db/postgres"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/audit"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/device"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/invite"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/lot"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/report"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/wallet"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/jobs"
)

// App holds the assembled application components.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
}

// New builds the application. Initialization order matters: the
// components depend on each other bottom-up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc := common.LoadZone(cfg.AppTimezone)

	// === 1. Database ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create Telegram API: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Authorized as @%s", botAPI.Self.UserName)

	// === 3. Repositories ===
	auditRepo := audit.NewRepository(pool)
	walletRepo := wallet.NewRepository(pool)
	revenueRepo := revenue.NewRepository(pool)
	inviteRepo := invite.NewRepository(pool)
	deviceRepo := device.NewRepository(pool)
	lotRepo := lot.NewRepository(pool)

	if err := walletRepo.EnsureAccounts(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed wallets: %w", err)
	}

	// === 4. Services ===
	auditService := audit.NewService(auditRepo)
	walletService := wallet.NewService(walletRepo, auditService)
	revenueService := revenue.NewService(revenueRepo, auditService, loc)
	inviteService := invite.NewService(inviteRepo, revenueService, auditService, loc)
	deviceService := device.NewService(deviceRepo, walletService, auditService, loc)
	lotService := lot.NewService(lotRepo, walletService, auditService, loc)
	reportService := report.NewService(revenueService, inviteService, walletService, loc)

	// === 5. Handlers ===
	sessions := session.NewStore()
	handlers := bot.Handlers{
		Revenue: revenue.NewHandler(revenueService, botAPI),
		Invite:  invite.NewHandler(inviteService, sessions, botAPI, loc),
		Device:  device.NewHandler(deviceService, sessions, botAPI),
		Lot:     lot.NewHandler(lotService, sessions, botAPI),
		Wallet:  wallet.NewHandler(walletService, botAPI, cfg.AdminID),
		Report:  report.NewHandler(reportService, botAPI),
	}

	// === 6. Bot and scheduler ===
	b := bot.New(botAPI, cfg, sessions, handlers, auditService, loc)

	scheduler, err := jobs.NewScheduler(cfg, loc, pool, inviteService, b)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to build scheduler: %w", err)
	}

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
	}, nil
}

// runMigrations applies all SQL migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.InitMigrations(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Wallets},
		{2, migration002Revenue},
		{3, migration003Invites},
		{4, migration004Devices},
		{5, migration005Lots},
		{6, migration006Audit},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		log.Infof("Migration %d applied", m.version)
	}

	return nil
}
