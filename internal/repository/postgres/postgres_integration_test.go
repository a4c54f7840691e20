//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("trivia_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, dsn, zerolog.Nop()))
	// A second run finds nothing to apply.
	require.NoError(t, database.Migrate(ctx, dsn, zerolog.Nop()))

	pool, err := database.ConnectPostgresDSN(ctx, dsn, 4, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)
	categories := NewCategoryRepository(pool)
	questions := NewQuestionRepository(pool)

	list, err := categories.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "Science", list[0].Type)

	_, err = categories.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	n, err := database.Seed(ctx, questions)
	require.NoError(t, err)
	assert.Equal(t, len(database.SampleQuestions()), n)

	n, err = database.Seed(ctx, questions)
	require.NoError(t, err)
	assert.Zero(t, n)

	found, err := questions.SearchQuestions(ctx, "TITLE")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = questions.SearchQuestions(ctx, "100%")
	require.NoError(t, err)
	assert.Empty(t, found)

	sports, err := questions.ListQuestionsByCategory(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, sports, 2)

	q := &domain.Question{Question: "Who wrote Hamlet?", Answer: "Shakespeare", Category: 2, Difficulty: 1}
	require.NoError(t, questions.CreateQuestion(ctx, q))
	got, err := questions.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, *q, *got)

	require.NoError(t, questions.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, questions.DeleteQuestion(ctx, q.ID), domain.ErrQuestionNotFound)

	err = questions.CreateQuestion(ctx, &domain.Question{Question: "Q", Answer: "A", Category: 1, Difficulty: 7})
	assert.Error(t, err)

	count, err := questions.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(database.SampleQuestions()), count)
}
