package validation

import (
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// Validator checks request shapes before they reach the store.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestionRequest returns the first failing field check in the
// order question, answer, difficulty, category. Category existence is left to
// the caller.
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return domain.NewMissingFieldError("question")
	}
	if strings.TrimSpace(req.Answer) == "" {
		return domain.NewMissingFieldError("answer")
	}
	if !req.Difficulty.Set {
		return domain.NewMissingFieldError("difficulty")
	}
	if d := req.Difficulty.Value; d < domain.MinDifficulty || d > domain.MaxDifficulty {
		return domain.NewOutOfRangeError("difficulty", clampToInt(d), domain.MinDifficulty, domain.MaxDifficulty)
	}
	if !req.Category.Set {
		return domain.NewMissingFieldError("category")
	}
	if req.Category.Value < 1 {
		return domain.NewInvalidCategoryError(req.Category.Value)
	}
	return nil
}

// ValidateQuizRequest requires a quiz_category carrying an id.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) error {
	if req.QuizCategory == nil {
		return domain.NewMissingFieldError("quiz_category")
	}
	if !req.QuizCategory.ID.Set {
		return domain.NewMissingFieldError("quiz_category.id")
	}
	return nil
}

// ValidateSearchRequest requires a searchTerm; an empty string matches everything.
func (v *Validator) ValidateSearchRequest(req *dto.SearchQuestionsRequest) error {
	if req.SearchTerm == nil {
		return domain.NewUnprocessableError("searchTerm is required", nil)
	}
	return nil
}

func clampToInt(v int64) int {
	const maxInt = int64(^uint(0) >> 1)
	switch {
	case v > maxInt:
		return int(maxInt)
	case v < -maxInt-1:
		return int(-maxInt - 1)
	}
	return int(v)
}
