package types

import "time"

type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=48"`
	Description string `json:"description" binding:"max=2000"`
	AvatarURL   string `json:"avatar_url" binding:"omitempty,url"`
	BannerURL   string `json:"banner_url" binding:"omitempty,url"`
}

type UpdateCommunityRequest struct {
	Description *string `json:"description" binding:"omitempty,max=2000"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
	BannerURL   *string `json:"banner_url" binding:"omitempty,url"`
}

type CommunityItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	AvatarURL    string    `json:"avatar_url"`
	BannerURL    string    `json:"banner_url"`
	MembersCount int64     `json:"members_count"`
	PostsCount   int64     `json:"posts_count"`
	IsJoined     bool      `json:"is_joined"`
	Role         int       `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SetRoleRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	Role   int   `json:"role" binding:"required,oneof=2 3"`
}

type TransferOwnerRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=160"`
	Content  string `json:"content" binding:"required,max=20000"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type PostItem struct {
	ID           int64       `json:"id"`
	CommunityID  int64       `json:"community_id"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	ImageURL     string      `json:"image_url"`
	Author       UserSummary `json:"author"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"`
	CreatedAt    time.Time   `json:"created_at"`
}

type CreatePostCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type PostCommentItem struct {
	ID        int64       `json:"id"`
	PostID    int64       `json:"post_id"`
	Content   string      `json:"content"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
}
