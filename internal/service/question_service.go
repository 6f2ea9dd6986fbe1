package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuestionsPerPage is the page size used when none is configured.
const QuestionsPerPage = 10

// QuestionService lists, searches, creates and deletes questions.
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.SearchQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	categorySv CategoryService
	validator  *validation.Validator
	pageSize   int
}

// NewQuestionService creates a QuestionService. A pageSize below 1 falls
// back to QuestionsPerPage.
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	categorySv CategoryService,
	pageSize int,
) QuestionService {
	if pageSize < 1 {
		pageSize = QuestionsPerPage
	}
	return &questionService{
		questions:  questions,
		categories: categories,
		categorySv: categorySv,
		validator:  validation.NewValidator(),
		pageSize:   pageSize,
	}
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	return s.listWithCategories(ctx, domain.QuestionFilter{}, page)
}

func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionListResponse, error) {
	return s.listWithCategories(ctx, domain.QuestionFilter{CategoryID: &categoryID}, page)
}

func (s *questionService) listWithCategories(ctx context.Context, filter domain.QuestionFilter, page int) (*dto.QuestionListResponse, error) {
	questions, total, err := s.page(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	categories, err := s.categorySv.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: filter.CategoryID,
	}, nil
}

// SearchQuestions takes the page from the body when present, else page.
func (s *questionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.SearchQuestionsResponse, error) {
	if err := s.validator.ValidateSearchRequest(req); err != nil {
		return nil, err
	}
	if req.Page.Set {
		page = clampPage(req.Page.Value)
	}

	questions, total, err := s.page(ctx, domain.QuestionFilter{SearchTerm: *req.SearchTerm}, page)
	if err != nil {
		return nil, err
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
	}, nil
}

// page returns the requested page of questions matching filter and the total
// match count. Any empty page is reported as not found.
func (s *questionService) page(ctx context.Context, filter domain.QuestionFilter, page int) ([]dto.QuestionResponse, int, error) {
	start, _, ok := util.PageWindow(page, s.pageSize)
	if !ok {
		return nil, 0, domain.NewNotFoundError("page out of range")
	}

	total, err := s.questions.CountQuestions(ctx, filter)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to count questions", err)
	}
	if start >= total {
		return nil, 0, domain.NewNotFoundError("no questions on this page")
	}

	questions, err := s.questions.ListQuestions(ctx, filter, start, s.pageSize)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list questions", err)
	}
	if len(questions) == 0 {
		return nil, 0, domain.NewNotFoundError("no questions on this page")
	}

	return toQuestionResponses(questions), total, nil
}

// CreateQuestion validates in field order, then checks the category exists.
// Store failures on insert are reported as unprocessable.
func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if err := s.validator.ValidateCreateQuestionRequest(req); err != nil {
		return nil, err
	}

	categoryID := req.Category.Value
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewInvalidCategoryError(categoryID)
	}

	question := domain.NewQuestion(req.Question, req.Answer, categoryID, int(req.Difficulty.Value))
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewUnprocessableError("failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.Int64("category_id", categoryID))

	return &dto.CreateQuestionResponse{Success: true, NewQuestionID: question.ID}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	deleted, err := s.questions.DeleteQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to delete question", err)
	}
	if !deleted {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return &dto.DeleteQuestionResponse{Success: true, DeletedID: id}, nil
}

func toQuestionResponses(questions []*domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = dto.QuestionResponse{
			ID:         q.ID,
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   q.CategoryID,
			Difficulty: q.Difficulty,
		}
	}
	return out
}

// clampPage maps a body-supplied page into int range; anything below 1
// becomes 0 so it is rejected as out of range.
func clampPage(p int64) int {
	const maxPage = int64(^uint(0) >> 1)
	switch {
	case p < 1:
		return 0
	case p > maxPage:
		return int(maxPage)
	}
	return int(p)
}
