package service

import (
	"context"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// MockCategoryRepository serves a fixed category list
type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// MockQuestionRepository keeps questions in memory in id order
type MockQuestionRepository struct {
	Questions []domain.Question
	NextID    int
	// WriteErr fails every create and delete
	WriteErr error
	CountErr error
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return append([]domain.Question{}, m.Questions...), nil
}

func (m *MockQuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	out := []domain.Question{}
	for _, q := range m.Questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *MockQuestionRepository) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	out := []domain.Question{}
	for _, q := range m.Questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *MockQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.Questions), nil
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	for _, q := range m.Questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	return m.BulkCreateQuestions(ctx, []*domain.Question{question})
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i, q := range m.Questions {
		if q.ID == id {
			m.Questions = append(m.Questions[:i], m.Questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

func (m *MockQuestionRepository) BulkCreateQuestions(ctx context.Context, questions []*domain.Question) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for _, q := range questions {
		m.NextID++
		q.ID = m.NextID
		m.Questions = append(m.Questions, *q)
	}
	return nil
}

type publishedEvent struct {
	Type     string
	Category int
	Payload  any
}

// MockPublisher records published events
type MockPublisher struct {
	Events []publishedEvent
}

func (m *MockPublisher) Publish(eventType string, category int, payload any) {
	m.Events = append(m.Events, publishedEvent{Type: eventType, Category: category, Payload: payload})
}

var testCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// newQuestionRepository stores n questions spread over categories 1 to 5
func newQuestionRepository(n int) *MockQuestionRepository {
	repo := &MockQuestionRepository{}
	for i := 0; i < n; i++ {
		q := &domain.Question{
			Question:   "Question number " + string(rune('A'+i%26)),
			Answer:     "Answer",
			Category:   i%5 + 1,
			Difficulty: i%5 + 1,
		}
		repo.BulkCreateQuestions(context.Background(), []*domain.Question{q})
	}
	return repo
}
