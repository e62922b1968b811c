package models

import "time"

type CommunityComment struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	Status    int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CommunityComment) TableName() string {
	return "community_comments"
}
