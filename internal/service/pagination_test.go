package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"1":   1,
		"2":   2,
		" 7 ": 7,
		"1.5": 1,
	}

	for raw, want := range tests {
		assert.Equal(t, want, ParsePage(raw), "page %q", raw)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]domain.Question, 23)
	for i := range items {
		items[i].ID = i + 1
	}

	tests := []struct {
		page      int
		wantLen   int
		wantFirst int
	}{
		{page: 1, wantLen: 10, wantFirst: 1},
		{page: 2, wantLen: 10, wantFirst: 11},
		{page: 3, wantLen: 3, wantFirst: 21},
		{page: 4, wantLen: 0},
		{page: 0, wantLen: 10, wantFirst: 1},
		{page: -1, wantLen: 10, wantFirst: 1},
	}

	for _, tt := range tests {
		got := Paginate(items, tt.page)
		assert.NotNil(t, got)
		assert.Len(t, got, tt.wantLen, "page %d", tt.page)
		if tt.wantLen > 0 {
			assert.Equal(t, tt.wantFirst, got[0].ID, "page %d", tt.page)
		}
	}
}

func TestPaginateWindowLength(t *testing.T) {
	for total := 0; total <= 35; total++ {
		items := make([]domain.Question, total)
		for page := 1; page <= 5; page++ {
			want := min(max(total-(page-1)*QuestionsPerPage, 0), QuestionsPerPage)
			assert.Len(t, Paginate(items, page), want, "total %d page %d", total, page)
		}
	}
}
