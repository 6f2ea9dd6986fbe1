package handler

import (
	"strconv"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// pageQuery reads ?page=, falling back to 1 when absent or not an integer.
func pageQuery(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// idParam reads an integer path parameter. Routes constrain it with <int>,
// so a failure here only happens on overflow and is treated as not found.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError(name + " is not a valid id")
	}
	return id, nil
}
