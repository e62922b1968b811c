package models

import "time"

const (
	CommentTargetProject = "project"
	CommentTargetSnippet = "snippet"
)

// Comment is a threaded comment on a project or snippet.
// root_id=0 marks a top-level comment; replies carry the root and the direct
// parent. Counters live on the row, like the target counters live on stats.
type Comment struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id"`
	TargetType string    `gorm:"column:target_type;not null;index:idx_target,priority:1" json:"target_type"`
	TargetID   int64     `gorm:"column:target_id;not null;index:idx_target,priority:2" json:"target_id"`
	UserID     int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Content    string    `gorm:"column:content;not null" json:"content"`
	RootID     int64     `gorm:"column:root_id;not null;default:0;index" json:"root_id"`
	ParentID   int64     `gorm:"column:parent_id;not null;default:0" json:"parent_id"`
	LikeCount  int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	ReplyCount int64     `gorm:"column:reply_count;not null;default:0" json:"reply_count"`
	Status     int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
