package handler

import (
	"net/http"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// largeID does not fit a 32-bit integer.
const largeID = int64(9999999999)

func TestLargeIDs(t *testing.T) {
	s := newTestServer()

	s.questions.On("CreateQuestion", mock.Anything, mock.MatchedBy(func(req *dto.CreateQuestionRequest) bool {
		return req.Category == dto.NewFlexInt(largeID)
	})).Return(nil, domain.NewInvalidCategoryError(largeID)).Once()
	s.questions.On("ListQuestionsByCategory", mock.Anything, largeID, 1).
		Return(nil, domain.NewNotFoundError("no questions on this page")).Once()
	s.questions.On("DeleteQuestion", mock.Anything, largeID).
		Return(nil, domain.NewQuestionNotFoundError(largeID)).Once()
	s.quiz.On("NextQuestion", mock.Anything, mock.MatchedBy(func(req *dto.QuizRequest) bool {
		return req.QuizCategory != nil && req.QuizCategory.ID == dto.NewFlexInt(largeID)
	})).Return(nil, domain.NewInvalidCategoryError(largeID)).Once()
	s.quiz.On("NextQuestion", mock.Anything, mock.MatchedBy(func(req *dto.QuizRequest) bool {
		return req.QuizCategory != nil && req.QuizCategory.ID == dto.NewFlexInt(0) &&
			assert.ObjectsAreEqual([]int64{largeID}, req.PreviousQuestions)
	})).Return(&dto.QuizResponse{Success: true}, nil).Once()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"create in unknown category", http.MethodPost, "/questions",
			`{"question":"q","answer":"a","difficulty":1,"category":9999999999}`, http.StatusBadRequest},
		{"list unknown category", http.MethodGet, "/categories/9999999999/questions", "", http.StatusNotFound},
		{"delete unknown question", http.MethodDelete, "/questions/9999999999", "", http.StatusNotFound},
		{"quiz in unknown category", http.MethodPost, "/quizzes",
			`{"quiz_category":{"type":"Nope","id":9999999999},"previous_questions":[]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.do(t, tt.method, tt.path, tt.body)
			assertEnvelope(t, status, body, tt.want)
		})
	}

	status, body := s.do(t, http.MethodPost, "/quizzes",
		`{"quiz_category":{"type":"click","id":0},"previous_questions":[9999999999]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["question"])

	s.questions.AssertExpectations(t)
	s.quiz.AssertExpectations(t)
}
