package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions ordered by id, with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeBadRequest, "invalid request body", err)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search on question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number, used when the body has none" default(1)
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("invalid request body", err)
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), &req, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
