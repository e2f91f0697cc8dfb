package service

import (
	"context"

	"juicebox/internal/models"
	"juicebox/internal/repository"
)

type TagService struct {
	tagRepo  repository.TagRepository
	postRepo repository.PostRepository
}

func NewTagService(tagRepo repository.TagRepository, postRepo repository.PostRepository) *TagService {
	return &TagService{tagRepo: tagRepo, postRepo: postRepo}
}

// CreateTags resolves names to tag rows, creating missing ones. Calling
// it twice with the same name never produces a duplicate row.
func (s *TagService) CreateTags(ctx context.Context, names []string) ([]models.Tag, error) {
	return s.tagRepo.CreateTags(ctx, names)
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

// GetPostsByTagName returns active posts carrying the named tag; an
// unknown name yields an empty result.
func (s *TagService) GetPostsByTagName(ctx context.Context, name string) ([]*models.Post, error) {
	return s.postRepo.GetByTagName(ctx, name)
}
