package dto

// QuestionResponse is the wire form of a question.
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryMap maps category id to its type label.
type CategoryMap map[int64]string

// CategoriesResponse represents GET /categories
// @Description All categories keyed by id
type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

// QuestionListResponse is one page of questions plus the category map.
// CurrentCategory is null when no category filter applies.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      CategoryMap        `json:"categories"`
	CurrentCategory *int64             `json:"current_category"`
}

// CreateQuestionRequest represents POST /questions
// @Description difficulty and category accept integers or numeric strings
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty FlexInt `json:"difficulty" swaggertype:"integer"`
	Category   FlexInt `json:"category" swaggertype:"integer"`
}

type CreateQuestionResponse struct {
	Success       bool  `json:"success"`
	NewQuestionID int64 `json:"new_question_id"`
}

type DeleteQuestionResponse struct {
	Success   bool  `json:"success"`
	DeletedID int64 `json:"deleted_id"`
}

// SearchQuestionsRequest represents POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Page       FlexInt `json:"page" swaggertype:"integer"`
}

type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}
