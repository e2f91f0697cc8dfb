package repository

import (
	"context"
	"errors"

	"juicebox/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts, including the
// post/tag association and the read compositions that attach author and
// tag data.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagNames []string) (*models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error)
	GetByTagName(ctx context.Context, name string) ([]*models.Post, error)
	Update(ctx context.Context, id uint, fields PostUpdate) (*models.Post, error)
}

// PostUpdate carries a partial patch; nil fields are left untouched.
// A non-nil Tags slice replaces the post's complete tag set.
type PostUpdate struct {
	Title   *string
	Content *string
	Active  *bool
	Tags    []string
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and resolves and links its tags as one unit of
// work; no partial linkage survives a failed statement.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tagNames []string) (*models.Post, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Tags").Create(post).Error; err != nil {
			if isForeignKeyError(err) {
				return models.NewForeignKeyError("User", post.AuthorID)
			}
			return models.NewInternalError(err)
		}

		if len(tagNames) == 0 {
			return nil
		}
		tags, err := upsertTags(tx, tagNames)
		if err != nil {
			return err
		}
		return linkTags(tx, post.ID, tags)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, post.ID)
}

// GetByID returns the post with author and tags attached regardless of
// its active flag.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Where("posts.active = ?", true).
		Order("posts.id").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Where("posts.author_id = ? AND posts.active = ?", authorID, true).
		Order("posts.id").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// GetByTagName returns active posts linked to the named tag. An unknown
// tag name yields an empty slice, not an error.
func (r *postRepository) GetByTagName(ctx context.Context, name string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.name = ? AND posts.active = ?", name, true).
		Order("posts.id").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Update applies a partial patch. When Tags is non-nil the supplied
// names become the post's complete tag set; previously linked tags
// absent from the list are unlinked.
func (r *postRepository) Update(ctx context.Context, id uint, fields PostUpdate) (*models.Post, error) {
	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Content != nil {
		updates["content"] = *fields.Content
	}
	if fields.Active != nil {
		updates["active"] = *fields.Active
	}
	if len(updates) == 0 && fields.Tags == nil {
		return nil, models.NewNoFieldsToUpdateError()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}

		if len(updates) > 0 {
			if err := tx.Model(&post).Updates(updates).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		if fields.Tags != nil {
			tags, err := upsertTags(tx, fields.Tags)
			if err != nil {
				return err
			}
			return replacePostTags(tx, post.ID, tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
