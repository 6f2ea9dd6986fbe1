package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuizService picks the next quiz question for a game.
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	validator  *validation.Validator
	policy     domain.SelectionPolicy
}

// NewQuizService creates a QuizService selecting questions with policy.
func NewQuizService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	policy domain.SelectionPolicy,
) QuizService {
	return &quizService{
		questions:  questions,
		categories: categories,
		validator:  validation.NewValidator(),
		policy:     policy,
	}
}

// NextQuestion returns a question not in req.PreviousQuestions. An id of 1 or
// more restricts the pool to that category, which must exist. An exhausted
// pool yields a response without a question rather than an error.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if err := s.validator.ValidateQuizRequest(req); err != nil {
		return nil, err
	}

	criteria := domain.QuizCriteria{
		CategoryID:        req.QuizCategory.ID.Value,
		PreviousQuestions: req.PreviousQuestions,
		Policy:            s.policy,
	}

	if criteria.FiltersByCategory() {
		category, err := s.categories.GetCategoryByID(ctx, criteria.CategoryID)
		if err != nil {
			return nil, domain.NewInternalError("failed to look up category", err)
		}
		if category == nil {
			return nil, domain.NewInvalidCategoryError(criteria.CategoryID)
		}
	}

	question, err := s.questions.FindQuizQuestion(ctx, criteria)
	if err != nil {
		return nil, domain.NewInternalError("failed to select quiz question", err)
	}
	if question == nil {
		logger.Get().Debug("Quiz pool exhausted",
			zap.Int64("category_id", criteria.CategoryID),
			zap.Int("previous_questions", len(criteria.PreviousQuestions)))
		return &dto.QuizResponse{Success: true}, nil
	}

	return &dto.QuizResponse{
		Success: true,
		Question: &dto.QuizQuestion{
			ID:       question.ID,
			Question: question.Question,
			Answer:   question.Answer,
		},
	}, nil
}
