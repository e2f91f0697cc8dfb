package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes form a closed set; callers match on Code via errors.As.
const (
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodeDuplicateTag      = "DUPLICATE_TAG"
	CodeForeignKey        = "FOREIGN_KEY_VIOLATION"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNoFieldsToUpdate  = "NO_FIELDS_TO_UPDATE"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewDuplicateUsernameError(username string) *AppError {
	return &AppError{
		Code:    CodeDuplicateUsername,
		Message: fmt.Sprintf("Username %q is already taken", username),
	}
}

func NewDuplicateTagError(name string) *AppError {
	return &AppError{
		Code:    CodeDuplicateTag,
		Message: fmt.Sprintf("Tag %q already exists and could not be re-fetched", name),
	}
}

func NewForeignKeyError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeForeignKey,
		Message: fmt.Sprintf("%s with ID %v does not exist", resource, id),
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewNoFieldsToUpdateError() *AppError {
	return &AppError{
		Code:    CodeNoFieldsToUpdate,
		Message: "No fields supplied to update",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
