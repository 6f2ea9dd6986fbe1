package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeBadRequest    ErrorCode = "BAD_REQUEST"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewBadRequestError(message string) *DomainError {
	return NewError(CodeBadRequest, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnprocessableError(message string, err error) *DomainError {
	return NewError(CodeUnprocessable, message, err)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewMissingFieldError(field string) *DomainError {
	return NewBadRequestError(fmt.Sprintf("%s is required", field))
}

func NewInvalidFormatError(field string, value interface{}) *DomainError {
	return NewBadRequestError(fmt.Sprintf("%s has an invalid format: %v", field, value))
}

func NewOutOfRangeError(field string, value, min, max int) *DomainError {
	return NewBadRequestError(fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value))
}

func NewInvalidCategoryError(categoryID int64) *DomainError {
	return NewBadRequestError(fmt.Sprintf("category %d does not exist", categoryID))
}

func NewQuestionNotFoundError(questionID int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("question %d not found", questionID))
}

// CodeOf returns the code of the first DomainError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}
