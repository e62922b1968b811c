package models

import "time"

const (
	UserRoleMember = "user"
	UserRoleAdmin  = "admin"
)

type Users struct {
	ID           int64      `gorm:"column:id;primary_key" json:"id"`
	Username     string     `gorm:"column:username;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	Nickname     string     `gorm:"column:nickname" json:"nickname"`
	Bio          string     `gorm:"column:bio" json:"bio"`
	AvatarURL    string     `gorm:"column:avatar_url" json:"avatar_url"`
	BannerURL    string     `gorm:"column:banner_url" json:"banner_url"`
	Website      string     `gorm:"column:website" json:"website"`
	GithubURL    string     `gorm:"column:github_url" json:"github_url"`
	Role         string     `gorm:"column:role;not null;default:user" json:"role"`
	IsPro        bool       `gorm:"column:is_pro;not null;default:0" json:"is_pro"`
	ProExpiresAt *time.Time `gorm:"column:pro_expires_at" json:"pro_expires_at"`
	IsBanned     bool       `gorm:"column:is_banned;not null;default:0" json:"is_banned"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
