// Package handler exposes the trivia operations over HTTP.
package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaService defines the operations the HTTP handlers depend on
type TriviaService interface {
	Categories(ctx context.Context) (map[int]string, error)
	ListQuestions(ctx context.Context, page int) (*service.QuestionPage, error)
	DeleteQuestion(ctx context.Context, id int) (int, error)
	CreateQuestion(ctx context.Context, req service.CreateQuestionRequest) (*service.CreatedQuestion, error)
	SearchQuestions(ctx context.Context, term string, page int) (*service.QuestionPage, error)
	QuestionsByCategory(ctx context.Context, categoryID, page int) (*service.QuestionPage, error)
	NextQuizQuestion(ctx context.Context, req service.QuizRequest) (*domain.Question, error)
}

// QuestionsResponse is the body of every question listing
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
	Categories      map[int]string    `json:"categories,omitempty"`
}

func newQuestionsResponse(page *service.QuestionPage) QuestionsResponse {
	return QuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		CurrentCategory: page.CurrentCategory,
		Categories:      page.Categories,
	}
}

func pageParam(c echo.Context) int {
	return service.ParsePage(c.QueryParam("page"))
}
