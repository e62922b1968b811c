package types

import "time"

type CreateCommentRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=project snippet"`
	TargetID   int64  `json:"target_id" binding:"required"`
	Content    string `json:"content" binding:"required,max=2000"`
	RootID     int64  `json:"root_id"`
	ParentID   int64  `json:"parent_id"`
}

type CommentItem struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	RootID     int64       `json:"root_id"`
	ParentID   int64       `json:"parent_id"`
	Author     UserSummary `json:"author"`
	LikeCount  int64       `json:"like_count"`
	ReplyCount int64       `json:"reply_count"`
	IsLiked    bool        `json:"is_liked"`
	CreatedAt  time.Time   `json:"created_at"`
}

type CommentEvent struct {
	EventID    string `json:"event_id"`
	Action     string `json:"action"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	CommentID  int64  `json:"comment_id"`
}
