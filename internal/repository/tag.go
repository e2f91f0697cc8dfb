// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"juicebox/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	CreateTags(ctx context.Context, names []string) ([]models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// CreateTags resolves each name to a tag row, creating rows that do not
// exist yet. The result preserves input order; repeated names resolve to
// the same row. An empty input is a no-op.
func (r *tagRepository) CreateTags(ctx context.Context, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var tags []models.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		tags, txErr = upsertTags(tx, names)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// upsertTags is the insert-ignore-then-fetch upsert shared by tag and
// post creation. Races on concurrent inserts of the same name are
// resolved by the conflict clause plus the follow-up select, never by a
// check-then-act existence probe.
func upsertTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	resolved := make(map[string]models.Tag, len(names))

	for _, name := range names {
		if tag, ok := resolved[name]; ok {
			tags = append(tags, tag)
			continue
		}

		tag := models.Tag{Name: name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&tag).Error; err != nil {
			return nil, models.NewInternalError(err)
		}

		// DO NOTHING leaves the ID zero when the row already existed.
		if tag.ID == 0 {
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, models.NewDuplicateTagError(name)
				}
				return nil, models.NewInternalError(err)
			}
		}

		resolved[name] = tag
		tags = append(tags, tag)
	}
	return tags, nil
}

// linkTags associates each tag with the post, skipping pairs that are
// already linked.
func linkTags(tx *gorm.DB, postID uint, tags []models.Tag) error {
	for _, tag := range tags {
		link := models.PostTag{PostID: postID, TagID: tag.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return models.NewInternalError(err)
		}
	}
	return nil
}

// replacePostTags makes the given tag set the post's complete tag set:
// links absent from it are removed, missing ones are created.
func replacePostTags(tx *gorm.DB, postID uint, tags []models.Tag) error {
	tagIDs := make([]uint, len(tags))
	for i, tag := range tags {
		tagIDs[i] = tag.ID
	}

	del := tx.Where("post_id = ?", postID)
	if len(tagIDs) > 0 {
		del = del.Where("tag_id NOT IN ?", tagIDs)
	}
	if err := del.Delete(&models.PostTag{}).Error; err != nil {
		return models.NewInternalError(err)
	}

	return linkTags(tx, postID, tags)
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
