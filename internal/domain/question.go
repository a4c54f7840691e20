package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// Valid difficulty bounds for a question
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// ListQuestions retrieves every question in store order
	ListQuestions(ctx context.Context) ([]Question, error)

	// ListQuestionsByCategory retrieves the questions of one category
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// SearchQuestions retrieves questions whose text contains term, ignoring case
	SearchQuestions(ctx context.Context, term string) ([]Question, error)

	// CountQuestions returns the number of stored questions
	CountQuestions(ctx context.Context) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// CreateQuestion creates a new question and assigns its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion deletes a question
	DeleteQuestion(ctx context.Context, id int) error

	// BulkCreateQuestions creates multiple questions in a single transaction
	BulkCreateQuestions(ctx context.Context, questions []*Question) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
