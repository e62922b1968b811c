package models

import "time"

// Community carries its counters on the row. creator_id is informational;
// permissions always come from the membership role.
type Community struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Name         string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description  string    `gorm:"column:description" json:"description"`
	AvatarURL    string    `gorm:"column:avatar_url" json:"avatar_url"`
	BannerURL    string    `gorm:"column:banner_url" json:"banner_url"`
	CreatorID    int64     `gorm:"column:creator_id;not null" json:"creator_id"`
	MembersCount int64     `gorm:"column:members_count;not null;default:0" json:"members_count"`
	PostsCount   int64     `gorm:"column:posts_count;not null;default:0" json:"posts_count"`
	Status       int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Community) TableName() string {
	return "communities"
}
