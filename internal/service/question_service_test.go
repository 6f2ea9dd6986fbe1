package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type questionFixture struct {
	questions  *MockQuestionRepository
	categories *MockCategoryRepository
	svc        QuestionService
}

func newQuestionFixture() *questionFixture {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	return &questionFixture{
		questions:  questions,
		categories: categories,
		svc:        NewQuestionService(questions, categories, NewCategoryService(categories, nil, time.Minute), 10),
	}
}

func makeQuestions(from, n int) []*domain.Question {
	out := make([]*domain.Question, n)
	for i := range out {
		id := int64(from + i)
		out[i] = &domain.Question{ID: id, Question: fmt.Sprintf("Question %d", id), Answer: "Answer", CategoryID: 1, Difficulty: 2}
	}
	return out
}

func TestQuestionService_ListQuestions(t *testing.T) {
	f := newQuestionFixture()
	all := domain.QuestionFilter{}

	f.questions.On("CountQuestions", mock.Anything, all).Return(19, nil)
	f.questions.On("ListQuestions", mock.Anything, all, 10, 10).Return(makeQuestions(11, 9), nil).Once()
	f.categories.On("GetAllCategories", mock.Anything).Return(seededCategories, nil).Once()

	resp, err := f.svc.ListQuestions(context.Background(), 2)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Questions, 9)
	assert.Equal(t, int64(11), resp.Questions[0].ID)
	assert.Equal(t, 19, resp.TotalQuestions)
	assert.Nil(t, resp.CurrentCategory)
	assert.Len(t, resp.Categories, 3)
	f.questions.AssertExpectations(t)
}

func TestQuestionService_ListQuestions_NotFound(t *testing.T) {
	f := newQuestionFixture()
	all := domain.QuestionFilter{}
	f.questions.On("CountQuestions", mock.Anything, all).Return(19, nil)

	for _, page := range []int{0, -3, 3, 1000} {
		_, err := f.svc.ListQuestions(context.Background(), page)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err), "page %d", page)
	}
	f.questions.AssertNotCalled(t, "ListQuestions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionService_ListQuestions_EmptyStore(t *testing.T) {
	f := newQuestionFixture()
	f.questions.On("CountQuestions", mock.Anything, domain.QuestionFilter{}).Return(0, nil)

	_, err := f.svc.ListQuestions(context.Background(), 1)

	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestQuestionService_ListQuestions_StoreError(t *testing.T) {
	f := newQuestionFixture()
	f.questions.On("CountQuestions", mock.Anything, mock.Anything).Return(0, errors.New("timeout"))

	_, err := f.svc.ListQuestions(context.Background(), 1)

	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}

func TestQuestionService_ListQuestionsByCategory(t *testing.T) {
	f := newQuestionFixture()
	categoryID := int64(1)
	filter := domain.QuestionFilter{CategoryID: &categoryID}

	f.questions.On("CountQuestions", mock.Anything, filter).Return(3, nil)
	f.questions.On("ListQuestions", mock.Anything, filter, 0, 10).Return(makeQuestions(20, 3), nil)
	f.categories.On("GetAllCategories", mock.Anything).Return(seededCategories, nil)

	resp, err := f.svc.ListQuestionsByCategory(context.Background(), categoryID, 1)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalQuestions)
	require.NotNil(t, resp.CurrentCategory)
	assert.Equal(t, categoryID, *resp.CurrentCategory)
}

func TestQuestionService_ListQuestionsByCategory_Empty(t *testing.T) {
	f := newQuestionFixture()
	f.questions.On("CountQuestions", mock.Anything, mock.Anything).Return(0, nil)

	_, err := f.svc.ListQuestionsByCategory(context.Background(), 42, 1)

	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestQuestionService_SearchQuestions(t *testing.T) {
	f := newQuestionFixture()
	term := "world"
	filter := domain.QuestionFilter{SearchTerm: term}

	f.questions.On("CountQuestions", mock.Anything, filter).Return(12, nil)
	f.questions.On("ListQuestions", mock.Anything, filter, 10, 10).Return(makeQuestions(30, 2), nil)

	resp, err := f.svc.SearchQuestions(context.Background(), &dto.SearchQuestionsRequest{SearchTerm: &term, Page: dto.NewFlexInt(2)}, 1)

	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Equal(t, 12, resp.TotalQuestions)
}

func TestQuestionService_SearchQuestions_QueryPageFallback(t *testing.T) {
	f := newQuestionFixture()
	term := "title"
	filter := domain.QuestionFilter{SearchTerm: term}

	f.questions.On("CountQuestions", mock.Anything, filter).Return(15, nil)
	f.questions.On("ListQuestions", mock.Anything, filter, 10, 10).Return(makeQuestions(40, 5), nil).Once()

	_, err := f.svc.SearchQuestions(context.Background(), &dto.SearchQuestionsRequest{SearchTerm: &term}, 2)

	require.NoError(t, err)
	f.questions.AssertExpectations(t)
}

func TestQuestionService_SearchQuestions_Errors(t *testing.T) {
	f := newQuestionFixture()

	_, err := f.svc.SearchQuestions(context.Background(), &dto.SearchQuestionsRequest{}, 1)
	assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))

	term := "zzzz"
	f.questions.On("CountQuestions", mock.Anything, domain.QuestionFilter{SearchTerm: term}).Return(0, nil)
	_, err = f.svc.SearchQuestions(context.Background(), &dto.SearchQuestionsRequest{SearchTerm: &term}, 1)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	_, err = f.svc.SearchQuestions(context.Background(), &dto.SearchQuestionsRequest{SearchTerm: &term, Page: dto.NewFlexInt(-1)}, 1)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func validCreateRequest() *dto.CreateQuestionRequest {
	return &dto.CreateQuestionRequest{
		Question:   "Which is the only team to play in every soccer World Cup tournament?",
		Answer:     "Brazil",
		Difficulty: dto.NewFlexInt(3),
		Category:   dto.NewFlexInt(6),
	}
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	f := newQuestionFixture()
	req := validCreateRequest()

	f.categories.On("GetCategoryByID", mock.Anything, int64(6)).Return(&domain.Category{ID: 6, Type: "Sports"}, nil)
	f.questions.On("SaveQuestion", mock.Anything, mock.MatchedBy(func(q *domain.Question) bool {
		return q.Question == req.Question && q.Answer == "Brazil" && q.CategoryID == 6 && q.Difficulty == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Question).ID = 24
	}).Return(nil).Once()

	resp, err := f.svc.CreateQuestion(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, &dto.CreateQuestionResponse{Success: true, NewQuestionID: 24}, resp)
	f.questions.AssertExpectations(t)
}

func TestQuestionService_CreateQuestion_BadRequest(t *testing.T) {
	f := newQuestionFixture()
	f.categories.On("GetCategoryByID", mock.Anything, int64(1000)).Return(nil, nil)

	cases := map[string]func(r *dto.CreateQuestionRequest){
		"empty question":       func(r *dto.CreateQuestionRequest) { r.Question = "" },
		"empty answer":         func(r *dto.CreateQuestionRequest) { r.Answer = "" },
		"difficulty too high":  func(r *dto.CreateQuestionRequest) { r.Difficulty = dto.NewFlexInt(9) },
		"nonexistent category": func(r *dto.CreateQuestionRequest) { r.Category = dto.NewFlexInt(1000) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(req)
			_, err := f.svc.CreateQuestion(context.Background(), req)
			assert.Equal(t, domain.CodeBadRequest, domain.CodeOf(err))
		})
	}
	f.questions.AssertNotCalled(t, "SaveQuestion", mock.Anything, mock.Anything)
}

func TestQuestionService_CreateQuestion_StoreFailure(t *testing.T) {
	f := newQuestionFixture()

	f.categories.On("GetCategoryByID", mock.Anything, int64(6)).Return(&domain.Category{ID: 6, Type: "Sports"}, nil)
	f.questions.On("SaveQuestion", mock.Anything, mock.Anything).Return(errors.New("commit failed"))

	_, err := f.svc.CreateQuestion(context.Background(), validCreateRequest())

	assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	f := newQuestionFixture()

	f.questions.On("DeleteQuestion", mock.Anything, int64(5)).Return(true, nil).Once()
	f.questions.On("DeleteQuestion", mock.Anything, int64(1000)).Return(false, nil).Once()
	f.questions.On("DeleteQuestion", mock.Anything, int64(7)).Return(false, errors.New("lock timeout")).Once()

	resp, err := f.svc.DeleteQuestion(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &dto.DeleteQuestionResponse{Success: true, DeletedID: 5}, resp)

	_, err = f.svc.DeleteQuestion(context.Background(), 1000)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	_, err = f.svc.DeleteQuestion(context.Background(), 7)
	assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))

	f.questions.AssertExpectations(t)
}
