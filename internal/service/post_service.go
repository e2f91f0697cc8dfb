package service

import (
	"context"

	"juicebox/internal/models"
	"juicebox/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	AuthorID uint
	Title    string
	Content  string
	Tags     []string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   *string
	Content *string
	Active  *bool
	Tags    []string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{
		AuthorID: in.AuthorID,
		Title:    in.Title,
		Content:  in.Content,
		Active:   true,
	}
	return s.postRepo.Create(ctx, post, in.Tags)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetUserPosts(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.postRepo.GetByAuthorID(ctx, authorID)
}

// UpdatePost applies a partial patch to the caller's own post. The
// existence check runs before the ownership check, so a missing post is
// always reported as not found rather than unauthorized.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !canModify(in.UserID, post) {
		return nil, models.NewUnauthorizedError("You cannot update a post that is not yours")
	}

	return s.postRepo.Update(ctx, in.PostID, repository.PostUpdate{
		Title:   in.Title,
		Content: in.Content,
		Active:  in.Active,
		Tags:    in.Tags,
	})
}

// DeletePost soft-deletes the caller's own post by flipping its active
// flag; the row is never removed. Ordering matches UpdatePost: existence
// before ownership.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !canModify(in.UserID, post) {
		return nil, models.NewUnauthorizedError("You cannot delete a post which is not yours")
	}

	inactive := false
	return s.postRepo.Update(ctx, in.PostID, repository.PostUpdate{Active: &inactive})
}

// canModify reports whether the user owns the post.
func canModify(userID uint, post *models.Post) bool {
	return post.AuthorID == userID
}
