package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/config"
	"github.com/oliverwhitby/elevenplus-bot/internal/delivery/telegram"
	"github.com/oliverwhitby/elevenplus-bot/internal/infra/csvfile"
	"github.com/oliverwhitby/elevenplus-bot/internal/infra/postgres"
	pgrepo "github.com/oliverwhitby/elevenplus-bot/internal/infra/postgres/repository"
	"github.com/oliverwhitby/elevenplus-bot/internal/logger"
	"github.com/oliverwhitby/elevenplus-bot/internal/service"
	"github.com/oliverwhitby/elevenplus-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("telegram auth failed", zap.Error(err))
	}
	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "quiz", Description: "Start a new vocabulary quiz"},
		{Command: "progress", Description: "Show your progress report"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the word store for the configured backend.
	var wordRepo service.WordRepository
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			zl.Fatal("connect to postgres", zap.Error(err))
		}
		defer pool.Close()
		wordRepo = pgrepo.NewWordRepository(pool)
	default:
		wordRepo = csvfile.NewRepository(cfg.Storage.WordsCSVPath)
	}

	quizService := service.NewQuizService(wordRepo, zl)
	sessions := storage.NewSessionStorage()

	handler := telegram.NewHandler(bot, zl, quizService, sessions)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
