package server

import (
	"net/url"

	"juicebox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tags": tags})
}

// GetPostsByTagName handles GET /api/tags/:tagName/posts. An unknown
// tag name returns an empty list. Tag names are hash-prefixed, so the
// param arrives percent-encoded (e.g. %23happy) and must be unescaped
// before the lookup.
func (s *Server) GetPostsByTagName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("tagName"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid tag name"))
	}

	posts, err := s.tagService.GetPostsByTagName(c.UserContext(), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
