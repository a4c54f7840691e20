package main

import (
	"context"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
)

// store is the process-scoped persistence layer for the configured driver
type store struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	ping       func(ctx context.Context) error
	close      func()
}

func openStore(ctx context.Context) (*store, error) {
	if cfg.Database.Driver == config.DriverSQLite {
		db, err := database.OpenSQLite(ctx, cfg.Database.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return &store{
			categories: sqlite.NewCategoryRepository(db),
			questions:  sqlite.NewQuestionRepository(db),
			ping:       db.PingContext,
			close:      func() { db.Close() },
		}, nil
	}

	pool, err := database.ConnectPostgres(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return &store{
		categories: postgres.NewCategoryRepository(pool),
		questions:  postgres.NewQuestionRepository(pool),
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}
