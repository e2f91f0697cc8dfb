package server

import (
	"errors"
	"strconv"
	"strings"

	"juicebox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps an application error code to an HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeUnauthorized:
		status = fiber.StatusForbidden
	case models.CodeDuplicateUsername, models.CodeDuplicateTag:
		status = fiber.StatusConflict
	case models.CodeValidation, models.CodeNoFieldsToUpdate, models.CodeForeignKey:
		status = fiber.StatusBadRequest
	}
	return models.RespondWithError(c, status, err)
}

// currentUserID returns the authenticated user ID placed in locals by
// the auth middleware.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok
}

// parseIDParam parses a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// splitTagNames splits a whitespace-separated tag string into names,
// dropping empty entries.
func splitTagNames(raw string) []string {
	return strings.Fields(raw)
}
