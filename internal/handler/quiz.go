package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/errs"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	trivia TriviaService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(trivia TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	e.POST("/quizzes", h.NextQuestion)
}

// QuizResponse carries the next quiz question
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// NextQuestion draws a question that was not asked yet
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req service.QuizRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return errs.NewBadRequestError(errs.MsgBadRequest)
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
