package handler

import (
	"context"

	"trivia-api/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoriesResponse), args.Error(1)
}

func (m *MockCategoryService) CategoryMap(ctx context.Context) (dto.CategoryMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(dto.CategoryMap), args.Error(1)
}

func (m *MockCategoryService) InvalidateCategoryCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionListResponse), args.Error(1)
}

func (m *MockQuestionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionListResponse, error) {
	args := m.Called(ctx, categoryID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionListResponse), args.Error(1)
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.SearchQuestionsResponse, error) {
	args := m.Called(ctx, req, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchQuestionsResponse), args.Error(1)
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateQuestionResponse), args.Error(1)
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteQuestionResponse), args.Error(1)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}
