package models

import "time"

// Post represents an authored post. Posts are never removed; deletion
// flips Active to false, which hides the post from listings while
// keeping it retrievable by ID.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	Tags      []Tag     `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
