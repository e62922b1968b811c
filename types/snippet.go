package types

import "time"

type CreateSnippetRequest struct {
	Title       string   `json:"title" binding:"required,max=120"`
	Description string   `json:"description" binding:"max=2000"`
	Language    string   `json:"language" binding:"required,max=40"`
	Code        string   `json:"code" binding:"required,max=65535"`
	Tags        []string `json:"tags" binding:"max=10"`
}

type UpdateSnippetRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=120"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Language    *string  `json:"language" binding:"omitempty,max=40"`
	Code        *string  `json:"code" binding:"omitempty,max=65535"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

type SnippetItem struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Language     string      `json:"language"`
	Code         string      `json:"code"`
	Tags         []string    `json:"tags"`
	ShareID      string      `json:"share_id"`
	Author       UserSummary `json:"author"`
	LikeCount    int64       `json:"like_count"`
	SaveCount    int64       `json:"save_count"`
	CommentCount int64       `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"`
	IsSaved      bool        `json:"is_saved"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
