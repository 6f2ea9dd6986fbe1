package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the trivia endpoints on router.
func RegisterRoutes(router fiber.Router, categories *CategoryHandler, questions *QuestionHandler, quiz *QuizHandler) {
	router.Get("/categories", categories.GetCategories)
	router.Get("/categories/:id<int>/questions", categories.GetCategoryQuestions)

	router.Get("/questions", questions.ListQuestions)
	router.Post("/questions", questions.CreateQuestion)
	router.Post("/questions/search", questions.SearchQuestions)
	router.Delete("/questions/:id<int>", questions.DeleteQuestion)

	router.Post("/quizzes", quiz.PlayQuiz)
}
