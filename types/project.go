package types

import "time"

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=120"`
	Description string   `json:"description" binding:"max=2000"`
	RepoURL     string   `json:"repo_url" binding:"omitempty,url"`
	DemoURL     string   `json:"demo_url" binding:"omitempty,url"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Tags        []string `json:"tags" binding:"max=10"`
}

type UpdateProjectRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=120"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	RepoURL     *string  `json:"repo_url" binding:"omitempty,url"`
	DemoURL     *string  `json:"demo_url" binding:"omitempty,url"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

// ProjectItem is the assembled view: row + author + counters + viewer flags.
type ProjectItem struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	RepoURL      string      `json:"repo_url"`
	DemoURL      string      `json:"demo_url"`
	ImageURL     string      `json:"image_url"`
	Tags         []string    `json:"tags"`
	Author       UserSummary `json:"author"`
	LikeCount    int64       `json:"like_count"`
	SaveCount    int64       `json:"save_count"`
	CommentCount int64       `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"`
	IsSaved      bool        `json:"is_saved"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
