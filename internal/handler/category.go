package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/errs"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	trivia TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(trivia TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	g := e.Group("/categories")
	g.GET("", h.ListCategories)
	g.GET("/:id/questions", h.ListQuestionsByCategory)
}

// CategoriesResponse maps category ids to display names
type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// ListCategories returns every category
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListQuestionsByCategory returns one page of the questions in a category
func (h *CategoryHandler) ListQuestionsByCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errs.NewNotFoundError(err)
	}

	page, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newQuestionsResponse(page))
}
