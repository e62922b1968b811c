package models

import "time"

type SnippetStats struct {
	SnippetID    int64     `gorm:"column:snippet_id;primaryKey" json:"snippet_id"`
	LikeCount    int64     `gorm:"column:like_count;default:0" json:"like_count"`
	SaveCount    int64     `gorm:"column:save_count;default:0" json:"save_count"`
	CommentCount int64     `gorm:"column:comment_count;default:0" json:"comment_count"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SnippetStats) TableName() string {
	return "snippet_stats"
}
