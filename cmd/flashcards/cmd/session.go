package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards/internal/adapter/postgres"
	lessonrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/lesson"
	wordrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/word"
	"github.com/heartmarshall/flashcards/internal/app"
	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

type vocabularyService interface {
	AddWords(ctx context.Context, input vocabulary.AddWordsInput) (*vocabulary.Result, error)
	ImportWords(ctx context.Context, input vocabulary.ImportInput) (*vocabulary.Result, error)
}

// session is everything a word command needs for one run.
type session struct {
	ctx   context.Context
	svc   vocabularyService
	close func()
}

// openSession is replaced in tests.
var openSession = openDBSession

// loadConfig reads configuration and installs the default logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func openDBSession(cmd *cobra.Command) (*session, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Import.Timeout)
	ctx = ctxutil.WithRunID(ctx, uuid.NewString())

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.DebugContext(ctx, "session opened",
		ctxutil.RunIDAttr(ctx),
		slog.String("command", cmd.Name()),
		slog.String("version", app.Version),
	)

	svc := vocabulary.NewService(
		logger,
		lessonrepo.New(pool),
		wordrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Lesson,
	)

	return &session{
		ctx: ctx,
		svc: svc,
		close: func() {
			pool.Close()
			cancel()
		},
	}, nil
}
