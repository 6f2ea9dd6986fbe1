package middleware

import (
	"errors"
	"net/http"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "server error",
}

// StatusCode returns the HTTP status err maps to.
func StatusCode(err error) int {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return mapDomainErrorToHTTPStatus(domainErr)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return http.StatusInternalServerError
}

// StatusMessage is the short message sent with status in the error envelope.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return strings.ToLower(utils.StatusMessage(status))
}

// ErrorHandler renders every error as {success:false, error, message}.
// Domain detail and causes are logged, never sent.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()
		status := StatusCode(err)

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.String("path", c.Path()),
			}
			if domainErr.Err != nil {
				fields = append(fields, zap.Error(domainErr.Err))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Debug("Request rejected", fields...)
			}
		case errors.As(err, &fiberErr):
			log.Debug("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
				zap.String("path", c.Path()),
			)
		default:
			log.Error("Unknown error occurred",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: StatusMessage(status),
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
