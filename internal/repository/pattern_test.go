package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"":         "%%",
		"title":    "%title%",
		"100%":     `%100\%%`,
		"snake_ok": `%snake\_ok%`,
		`a\b`:      `%a\\b%`,
	}

	for term, want := range tests {
		assert.Equal(t, want, ContainsPattern(term), term)
	}
}
