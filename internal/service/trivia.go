package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/errs"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// Events published after a successful mutation
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// Publisher receives question events. The websocket hub implements it.
type Publisher interface {
	Publish(eventType string, category int, payload any)
}

// QuestionPage is one page of a question listing
type QuestionPage struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory string
	Categories      map[int]string
}

// CreatedQuestion is the result of CreateQuestion
type CreatedQuestion struct {
	Question       domain.Question
	TotalQuestions int
}

// Created renders the confirmation text returned to clients.
func (c *CreatedQuestion) Created() string {
	return fmt.Sprintf("%s, id: %d", c.Question.Question, c.Question.ID)
}

// CreateQuestionRequest is the body of a question creation request
type CreateQuestionRequest struct {
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	Category   validation.Int `json:"category"`
	Difficulty validation.Int `json:"difficulty"`
}

type newQuestion struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required,min=1,max=6"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
}

// QuizRequest is the body of a quiz question request
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizCategory selects the quiz category. An ID of 0 means all categories.
type QuizCategory struct {
	ID   validation.Int `json:"id"`
	Type string         `json:"type"`
}

func (r *QuizRequest) empty() bool {
	if len(r.PreviousQuestions) > 0 {
		return false
	}
	return r.QuizCategory == nil || (!r.QuizCategory.ID.Present && r.QuizCategory.Type == "")
}

// Option configures a TriviaService
type Option func(*TriviaService)

// WithPublisher sends question events to p
func WithPublisher(p Publisher) Option {
	return func(s *TriviaService) {
		s.publisher = p
	}
}

// WithLogger sets the logger for failures that do not fail the request
func WithLogger(logger zerolog.Logger) Option {
	return func(s *TriviaService) {
		s.logger = logger
	}
}

// WithRandom replaces the source used to draw quiz questions. intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *TriviaService) {
		s.intn = intn
	}
}

// TriviaService implements the trivia API operations over the repositories
type TriviaService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	publisher  Publisher
	logger     zerolog.Logger

	mu   sync.Mutex
	intn func(n int) int
}

// NewTriviaService creates a new trivia service
func NewTriviaService(categories domain.CategoryRepository, questions domain.QuestionRepository, opts ...Option) *TriviaService {
	s := &TriviaService{
		categories: categories,
		questions:  questions,
		logger:     zerolog.Nop(),
		intn:       rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns every category display name keyed by id
func (s *TriviaService) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errs.NewNotFoundError(nil)
	}
	return domain.CategoryMap(categories), nil
}

// ListQuestions returns one page of all questions with the category mapping
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	window := Paginate(questions, page)
	if len(window) == 0 {
		return nil, errs.NewNotFoundError(nil)
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       window,
		TotalQuestions:  len(questions),
		CurrentCategory: AllCategoriesLabel,
		Categories:      domain.CategoryMap(categories),
	}, nil
}

// DeleteQuestion deletes the question with the given id and returns the id
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) (int, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return 0, errs.NewNotFoundError(err)
		}
		return 0, errs.NewStoreError(err)
	}

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		// Lost a race with another delete.
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return 0, errs.NewNotFoundError(err)
		}
		return 0, errs.NewStoreError(err)
	}

	s.publish(EventQuestionDeleted, question.Category, map[string]int{"id": id})
	return id, nil
}

// CreateQuestion validates and stores a new question
func (s *TriviaService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*CreatedQuestion, error) {
	if !req.Category.Parsed || !req.Difficulty.Parsed {
		return nil, errs.NewValidationError(msgNotInteger)
	}

	candidate := newQuestion{
		Question:   strings.TrimSpace(req.Question),
		Answer:     strings.TrimSpace(req.Answer),
		Category:   req.Category.Value,
		Difficulty: req.Difficulty.Value,
	}
	if err := validation.Struct(candidate); err != nil {
		return nil, invalidQuestion(err)
	}

	if _, err := s.categories.GetByID(ctx, candidate.Category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, errs.NewValidationError(fmt.Sprintf(msgUnknownCategory, candidate.Category))
		}
		return nil, err
	}

	question := &domain.Question{
		Question:   candidate.Question,
		Answer:     candidate.Answer,
		Category:   candidate.Category,
		Difficulty: candidate.Difficulty,
	}
	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		return nil, errs.NewStoreError(err)
	}

	s.publish(EventQuestionCreated, question.Category, question)

	// The question is committed; a failed count only degrades the total.
	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Int("question_id", question.ID).Msg("failed to count questions after create")
		total = 0
	}

	return &CreatedQuestion{Question: *question, TotalQuestions: total}, nil
}

// SearchQuestions returns one page of the questions containing term
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, notFound(msgNoMatchingQuestion)
	}

	return &QuestionPage{
		Questions:       Paginate(matches, page),
		TotalQuestions:  len(matches),
		CurrentCategory: AllCategoriesLabel,
	}, nil
}

// QuestionsByCategory returns one page of the questions in a category
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID, page int) (*QuestionPage, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, errs.NewNotFoundError(err)
		}
		return nil, err
	}

	questions, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	window := Paginate(questions, page)
	if len(window) == 0 {
		return nil, errs.NewNotFoundError(nil)
	}

	return &QuestionPage{
		Questions:       window,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion draws a random question from the quiz category that was
// not asked yet
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req QuizRequest) (*domain.Question, error) {
	if req.empty() {
		return nil, errs.NewBadRequestError(msgEmptyQuizRequest)
	}

	if req.QuizCategory == nil || !req.QuizCategory.ID.Parsed {
		return nil, errs.NewBadRequestError(msgQuizCategoryID)
	}
	categoryID := req.QuizCategory.ID.Value

	var (
		candidates []domain.Question
		err        error
	)
	if categoryID == domain.AllCategories {
		candidates, err = s.questions.ListQuestions(ctx)
	} else {
		candidates, err = s.questions.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	candidates = excludeAsked(candidates, req.PreviousQuestions)
	if len(candidates) == 0 {
		return nil, notFound(msgNoQuizQuestion)
	}

	question := candidates[s.draw(len(candidates))]
	return &question, nil
}

func excludeAsked(questions []domain.Question, asked []int) []domain.Question {
	if len(asked) == 0 {
		return questions
	}

	seen := make(map[int]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	remaining := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

func (s *TriviaService) draw(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intn(n)
}

func (s *TriviaService) publish(eventType string, category int, payload any) {
	if s.publisher != nil {
		s.publisher.Publish(eventType, category, payload)
	}
}
