package models

import "time"

// PostLike is the like edge for community posts.
// Unique key: post_id + user_id. status: 1=liked, 0=cleared
type PostLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index:uk_post_user,priority:1" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_post_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n PostLike) TableName() string { return "post_likes" }
