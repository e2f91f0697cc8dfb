package models

// Tag is a label shared across posts, created lazily the first time its
// name is referenced. Tags are never updated or deleted.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// PostTag is a row in the post/tag association table. The composite
// primary key guarantees at most one link per (post, tag) pair.
type PostTag struct {
	PostID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

// TableName matches the join table used by Post.Tags.
func (PostTag) TableName() string {
	return "post_tags"
}
