// Package main is the bot entry point.
// Loads configuration, assembles the application and runs it.
// Supports graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/app"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/config"
)

func main() {
	setupLogging()

	log.Info("=== Bot starting ===")

	// Local development convenience; in containers the env is injected.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.AppLogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}
	defer application.DB.Close()

	application.Scheduler.Start()
	defer application.Scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Bot.Start(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("Bot stopped unexpectedly")
			quit <- syscall.SIGTERM
		}
	}()

	log.Info("=== Bot ready ===")

	sig := <-quit
	log.Infof("Received signal %s, shutting down...", sig)

	cancel()

	log.Info("=== Bot stopped ===")
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
