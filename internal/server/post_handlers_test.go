package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"juicebox/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserPosts_ReachesAuthorLookup(t *testing.T) {
	var gotAuthorID uint
	repo := &handlerPostRepo{
		getByAuthorIDFn: func(_ context.Context, authorID uint) ([]*models.Post, error) {
			gotAuthorID = authorID
			return []*models.Post{{ID: 3, AuthorID: authorID, Title: "Quidditch"}}, nil
		},
	}
	s := newTestServer(repo)

	app := fiber.New()
	app.Get("/api/users/:userId/posts", s.GetUserPosts)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/7/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(7), gotAuthorID)
}

func TestGetUserPosts_InvalidID(t *testing.T) {
	s := newTestServer(&handlerPostRepo{})

	app := fiber.New()
	app.Get("/api/users/:userId/posts", s.GetUserPosts)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/abc/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
