package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// AllCategories is the quiz category id that selects every question
const AllCategories = 0

// Seeded category ids
const (
	MinCategory = 1
	MaxCategory = 6
)

// CategoryRepository defines read access to categories. Categories are
// seeded by migrations and never modified through the API.
type CategoryRepository interface {
	// ListCategories retrieves all categories ordered by ID
	ListCategories(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// Category groups questions under a display name
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap indexes category display names by id.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
