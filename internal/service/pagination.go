package service

import (
	"strconv"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionsPerPage is the fixed page size of every question listing
const QuestionsPerPage = 10

// AllCategoriesLabel is the current_category value of unfiltered listings
const AllCategoriesLabel = "ALL"

// ParsePage reads a page query value. Absent, unparseable and non-positive
// values all select the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the window [(page-1)*QuestionsPerPage, page*QuestionsPerPage)
// of items, clamped to its bounds. The result is empty, never nil, when the
// window lies past the end.
func Paginate(items []domain.Question, page int) []domain.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []domain.Question{}
	}
	end := min(start+QuestionsPerPage, len(items))

	return items[start:end]
}
