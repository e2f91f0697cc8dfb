package server

import (
	"juicebox/internal/models"
	"juicebox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// CreatePost handles POST /api/posts. Tags arrive as a single
// whitespace-separated string, e.g. "#happy #worst-day-ever".
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     splitTagNames(req.Tags),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetUserPosts handles GET /api/users/:userId/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	posts, err := s.postService.GetUserPosts(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// UpdatePost handles PATCH /api/posts/:postId
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Active  *bool   `json:"active"`
		Tags    *string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
		Active:  req.Active,
	}
	if req.Tags != nil {
		in.Tags = splitTagNames(*req.Tags)
		if in.Tags == nil {
			// "tags" supplied but blank clears the tag set
			in.Tags = []string{}
		}
	}

	post, err := s.postService.UpdatePost(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/posts/:postId by soft-deleting the post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}
