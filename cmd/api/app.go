package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"board-chatbot/internal/board"
	"board-chatbot/internal/config"
	"board-chatbot/internal/formatter"
	"board-chatbot/internal/intent"
	"board-chatbot/internal/llm"
	"board-chatbot/internal/logging"
	"board-chatbot/internal/service"
	"board-chatbot/internal/storage"
)

// app holds the wired components shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	chat    service.ChatService
	posts   *service.PostService
	queries storage.QueryStore // nil when the query log is disabled
	db      *sql.DB
}

// newApp loads configuration and wires the pipeline.
func newApp(ctx context.Context, configFile string) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)

	return wire(ctx, cfg, logger)
}

// wire builds the pipeline from an already loaded configuration.
func wire(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	completer, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	logger.Debug("LLM configuration",
		zap.String("provider", cfg.LLMProvider),
		zap.String("base_url", cfg.LLMBaseURL),
		zap.String("model", cfg.LLMModelName),
	)

	summarizer, err := formatter.New(cfg, completer)
	if err != nil {
		return nil, err
	}

	boardClient := board.NewClient(cfg.BoardBaseURL, cfg.BoardTimeout)

	a := &app{
		cfg:    cfg,
		logger: logger,
		posts:  service.NewPostService(boardClient),
	}

	// A nil interface value keeps the chat service from recording.
	var recorder service.QueryRecorder
	if cfg.QueryLogPath != "" {
		db, err := storage.New(cfg.QueryLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open query log: %w", err)
		}
		if err := storage.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate query log: %w", err)
		}
		repo := storage.NewQueryLogRepo(db)
		a.db = db
		a.queries = repo
		recorder = repo
		logger.Info("query log enabled", zap.String("path", cfg.QueryLogPath))
	}

	a.chat = service.NewChatService(intent.NewClassifier(completer), boardClient, summarizer, recorder)
	return a, nil
}

// Close releases the query log database and flushes the logger. Failures are
// logged since nothing is left to act on them during shutdown.
func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close query log", zap.Error(err))
		}
	}
	// Sync on stdout/stderr fails on some platforms; it is not worth reporting.
	_ = a.logger.Sync()
}
