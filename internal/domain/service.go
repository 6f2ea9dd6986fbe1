package domain

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by id
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)

	// GetCategoryByType returns nil, nil when no category has that label
	GetCategoryByType(ctx context.Context, categoryType string) (*Category, error)

	// SaveCategory persists a new category and sets its ID
	SaveCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns up to limit questions matching filter, ordered by id,
	// skipping the first offset.
	ListQuestions(ctx context.Context, filter QuestionFilter, offset, limit int) ([]*Question, error)

	// CountQuestions returns how many questions match filter.
	CountQuestions(ctx context.Context, filter QuestionFilter) (int, error)

	// SaveQuestion inserts a question and sets its ID from the insert itself.
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question. It reports false when no row had that id.
	DeleteQuestion(ctx context.Context, id int64) (bool, error)

	// QuestionExists reports whether a question with the same text exists in a category.
	QuestionExists(ctx context.Context, categoryID int64, text string) (bool, error)

	// FindQuizQuestion returns one question satisfying criteria, or nil, nil
	// when none is left.
	FindQuizQuestion(ctx context.Context, criteria QuizCriteria) (*Question, error)
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
