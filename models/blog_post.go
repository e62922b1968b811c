package models

import "time"

type BlogPost struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	AuthorID  int64     `gorm:"column:author_id;not null" json:"author_id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Content   string    `gorm:"column:content;type:mediumtext;not null" json:"content"`
	Published bool      `gorm:"column:published;not null;default:0" json:"published"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
