package models

import "time"

// CommunityPost keeps its counters on the row, same as comments do.
type CommunityPost struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	CommunityID  int64     `gorm:"column:community_id;not null;index" json:"community_id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Content      string    `gorm:"column:content;type:mediumtext" json:"content"`
	ImageURL     string    `gorm:"column:image_url" json:"image_url"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	Status       int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}
