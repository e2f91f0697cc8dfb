package service

import (
	"context"
	"testing"

	"juicebox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createTagsFn func(context.Context, []string) ([]models.Tag, error)
	getByNameFn  func(context.Context, string) (*models.Tag, error)
	listFn       func(context.Context) ([]models.Tag, error)
}

func (s *tagRepoStub) CreateTags(ctx context.Context, names []string) ([]models.Tag, error) {
	return s.createTagsFn(ctx, names)
}
func (s *tagRepoStub) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	return s.getByNameFn(ctx, name)
}
func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}

func TestTagService_CreateTags(t *testing.T) {
	var gotNames []string
	tagRepo := &tagRepoStub{
		createTagsFn: func(_ context.Context, names []string) ([]models.Tag, error) {
			gotNames = names
			return []models.Tag{{ID: 1, Name: "#happy"}, {ID: 2, Name: "#sad"}}, nil
		},
	}

	svc := NewTagService(tagRepo, noopPostRepo())
	tags, err := svc.CreateTags(context.Background(), []string{"#happy", "#sad"})
	require.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.Equal(t, []string{"#happy", "#sad"}, gotNames)
}

func TestTagService_GetPostsByTagName_UnknownTag(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByTagNameFn = func(_ context.Context, _ string) ([]*models.Post, error) {
		return []*models.Post{}, nil
	}

	svc := NewTagService(&tagRepoStub{}, postRepo)
	posts, err := svc.GetPostsByTagName(context.Background(), "#nothere")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
