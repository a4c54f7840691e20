package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "trivia.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(openTestDB(t))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, domain.Category{ID: 1, Type: "Science"}, categories[0])
	assert.Equal(t, domain.Category{ID: 6, Type: "Sports"}, categories[5])

	c, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", c.Type)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestQuestionRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	q := &domain.Question{Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1}
	require.NoError(t, repo.CreateQuestion(ctx, q))
	assert.NotZero(t, q.ID)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, *q, *got)

	count, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, repo.DeleteQuestion(ctx, q.ID), domain.ErrQuestionNotFound)

	_, err = repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionRepositoryRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	err := repo.CreateQuestion(ctx, &domain.Question{Question: "Q", Answer: "A", Category: 99, Difficulty: 1})
	require.Error(t, err)

	count, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQuestionRepositoryQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	require.NoError(t, repo.BulkCreateQuestions(ctx, []*domain.Question{
		{Question: "What was the TITLE of the film?", Answer: "A", Category: 5, Difficulty: 2},
		{Question: "Who scored 100% in the final?", Answer: "B", Category: 6, Difficulty: 3},
		{Question: "Which book is entitled Dune?", Answer: "C", Category: 5, Difficulty: 1},
		{Question: "Name a snake_case language", Answer: "D", Category: 1, Difficulty: 4},
	}))

	all, err := repo.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Less(t, all[0].ID, all[1].ID)

	byCategory, err := repo.ListQuestionsByCategory(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	none, err := repo.ListQuestionsByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	tests := []struct {
		term string
		want int
	}{
		{"title", 2},
		{"Title", 2},
		{"TITLE", 2},
		{"%", 1},
		{"_", 1},
		{"", 4},
		{"nothing here", 0},
	}
	for _, tt := range tests {
		found, err := repo.SearchQuestions(ctx, tt.term)
		require.NoError(t, err)
		assert.Len(t, found, tt.want, tt.term)
	}
}
