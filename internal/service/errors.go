package service

import (
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/errs"
)

// Client-facing messages for rejected requests
const (
	msgNotInteger         = "category and difficulty must be integers"
	msgQuizCategoryID     = "quiz_category.id must be an integer"
	msgEmptyQuizRequest   = "previous_questions or quiz_category is required"
	msgUnknownCategory    = "category %d does not exist"
	msgInvalidQuestion    = "invalid question: %s"
	msgNoQuizQuestion     = "no questions left for this quiz"
	msgNoMatchingQuestion = "no questions match the search term"
)

func invalidQuestion(cause error) *errs.Error {
	return errs.NewValidationError(fmt.Sprintf(msgInvalidQuestion, cause))
}

func notFound(message string) *errs.Error {
	e := errs.NewNotFoundError(nil)
	e.Message = message
	return e
}
