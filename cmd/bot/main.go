package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeworkbot/internal/config"
	"homeworkbot/internal/practicum"
	"homeworkbot/internal/service"
	"homeworkbot/internal/telegram"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Homework Status Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		notifyConfigFailure(cfg, logger)
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize Telegram notifier
	notifier, err := telegram.NewNotifier(cfg.BotToken, cfg.ChatID, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize API client and poller
	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	poller := service.NewPoller(client, notifier, cfg.PollInterval, time.Now().Unix(), logger)

	// Run until interrupted
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	poller.Run(ctx)

	logger.Info("Bot stopped gracefully")
}

// notifyConfigFailure makes one best-effort attempt to report broken
// configuration to the chat before the process exits. It can only work when
// the bot credentials themselves were loaded; otherwise it fails silently.
func notifyConfigFailure(cfg *config.Config, logger *zap.Logger) {
	if cfg == nil || cfg.BotToken == "" || cfg.ChatID == 0 {
		return
	}

	notifier, err := telegram.NewNotifier(cfg.BotToken, cfg.ChatID, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Warn("Could not report config failure to Telegram", zap.Error(err))
		return
	}
	notifier.Send("Отсутствует одна из переменных окружения")
}
