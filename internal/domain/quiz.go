package domain

import (
	"fmt"
	"strings"
)

const (
	// MinDifficulty and MaxDifficulty bound Question.Difficulty.
	MinDifficulty = 1
	MaxDifficulty = 5

	// AllCategories is the quiz category id meaning "no category filter".
	AllCategories int64 = 0
)

// Category represents a trivia category
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, categoryID int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// Validate checks the field-level invariants of a question.
// Category existence is checked against the store by the caller.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewMissingFieldError("question")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return NewMissingFieldError("answer")
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewOutOfRangeError("difficulty", q.Difficulty, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// QuestionFilter narrows a question listing. Zero value means all questions.
type QuestionFilter struct {
	CategoryID *int64
	SearchTerm string
}

// SelectionPolicy decides which eligible question the quiz endpoint serves.
type SelectionPolicy string

const (
	// SelectRandom picks uniformly among eligible questions.
	SelectRandom SelectionPolicy = "random"
	// SelectFirst picks the eligible question with the lowest id.
	SelectFirst SelectionPolicy = "first"
)

// ParseSelectionPolicy converts a config value into a SelectionPolicy
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch SelectionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SelectRandom:
		return SelectRandom, nil
	case SelectFirst:
		return SelectFirst, nil
	default:
		return "", fmt.Errorf("unknown quiz selection policy %q", s)
	}
}

// QuizCriteria describes which question the quiz endpoint may serve next.
type QuizCriteria struct {
	CategoryID        int64 // AllCategories (or any value < 1) disables the filter
	PreviousQuestions []int64
	Policy            SelectionPolicy
}

// FiltersByCategory reports whether the criteria restrict to one category.
func (c QuizCriteria) FiltersByCategory() bool {
	return c.CategoryID >= 1
}
