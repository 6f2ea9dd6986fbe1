package handler

import (
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category keyed by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.categories.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary List questions in a category
// @Description Returns one page of questions belonging to the category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.questions.ListQuestionsByCategory(c.UserContext(), categoryID, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
