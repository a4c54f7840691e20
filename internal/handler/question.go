package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/errs"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	trivia TriviaService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(trivia TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	g := e.Group("/questions")
	g.GET("", h.ListQuestions)
	g.POST("", h.CreateQuestion)
	g.POST("/search", h.SearchQuestions)
	g.DELETE("/:id", h.DeleteQuestion)
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// CreateResponse confirms a creation
type CreateResponse struct {
	Success        bool   `json:"success"`
	Created        string `json:"created"`
	TotalQuestions int    `json:"total_questions"`
}

// SearchRequest is the body of a search request
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions returns one page of all questions
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page, err := h.trivia.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newQuestionsResponse(page))
}

// DeleteQuestion deletes a question by id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errs.NewNotFoundError(err)
	}

	deleted, err := h.trivia.DeleteQuestion(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Success: true,
		Deleted: deleted,
	})
}

// CreateQuestion stores a new question
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req service.CreateQuestionRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return errs.NewValidationError("request body must be a JSON object with question, answer, category and difficulty")
	}

	created, err := h.trivia.CreateQuestion(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateResponse{
		Success:        true,
		Created:        created.Created(),
		TotalQuestions: created.TotalQuestions,
	})
}

// SearchQuestions returns one page of the questions containing the term
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return errs.NewBadRequestError(errs.MsgBadRequest)
	}

	page, err := h.trivia.SearchQuestions(c.Request().Context(), req.SearchTerm, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newQuestionsResponse(page))
}
