package dto

import "encoding/json"

// QuizCategory selects the quiz pool. An id of 0 means all categories.
type QuizCategory struct {
	ID   FlexInt `json:"id" swaggertype:"integer"`
	Type string  `json:"type"`
}

// QuizRequest represents POST /quizzes
// @Description previous_questions holds ids already served in this game
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

type QuizQuestion struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizResponse carries the next question, or false in "question" once the
// pool is exhausted.
type QuizResponse struct {
	Success  bool          `json:"success"`
	Question *QuizQuestion `json:"question" swaggertype:"object"`
}

func (r QuizResponse) MarshalJSON() ([]byte, error) {
	var question interface{} = false
	if r.Question != nil {
		question = r.Question
	}
	return json.Marshal(struct {
		Success  bool        `json:"success"`
		Question interface{} `json:"question"`
	}{r.Success, question})
}

// HealthResponse represents GET /healthz
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
