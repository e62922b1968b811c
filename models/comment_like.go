package models

import "time"

type CommentLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	CommentID int64     `gorm:"column:comment_id;not null;index:uk_comment_user,priority:1" json:"comment_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_comment_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
