package types

import "time"

// UserSummary is the author block embedded in list items and details.
type UserSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	IsPro     bool   `json:"is_pro"`
}

type UserProfile struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	Nickname       string     `json:"nickname"`
	Bio            string     `json:"bio"`
	AvatarURL      string     `json:"avatar_url"`
	BannerURL      string     `json:"banner_url"`
	Website        string     `json:"website"`
	GithubURL      string     `json:"github_url"`
	IsPro          bool       `json:"is_pro"`
	ProExpiresAt   *time.Time `json:"pro_expires_at,omitempty"`
	FollowerCount  int64      `json:"follower_count"`
	FollowingCount int64      `json:"following_count"`
	LikeCount      int64      `json:"like_count"`
	IsFollowing    bool       `json:"is_following"`
	IsSelf         bool       `json:"is_self"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname" binding:"omitempty,max=32"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
	BannerURL *string `json:"banner_url" binding:"omitempty,url"`
	Website   *string `json:"website" binding:"omitempty,url"`
	GithubURL *string `json:"github_url" binding:"omitempty,url"`
}
