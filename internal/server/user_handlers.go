package server

import (
	"juicebox/internal/models"
	"juicebox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetMe handles GET /api/users/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	user, err := s.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateMe handles PATCH /api/users/me
func (s *Server) UpdateMe(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateUserInput{
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
