package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// PlayQuiz godoc
// @Summary Get the next quiz question
// @Description Returns a question not in previous_questions, or question=false when none is left.
// @Description quiz_category.id 0 means all categories.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeBadRequest, "invalid request body", err)
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
