package models

import "time"

// UserFollow is the follow edge. Unique key: follower_id + followee_id.
// status: 1=following 0=cleared
type UserFollow struct {
	ID         int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;index:uk_follower_followee,priority:1" json:"follower_id"`
	FolloweeID int64     `gorm:"column:followee_id;not null;index:uk_follower_followee,priority:2" json:"followee_id"`
	Status     int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

type FollowingQueryResult struct {
	UserID     int64     `gorm:"column:user_id" json:"user_id"`
	Username   string    `gorm:"column:username" json:"username"`
	Nickname   string    `gorm:"column:nickname" json:"nickname"`
	AvatarURL  string    `gorm:"column:avatar_url" json:"avatar_url"`
	FollowTime time.Time `gorm:"column:follow_time" json:"follow_time"`
	IsMutual   bool      `gorm:"-" json:"is_mutual"`
}
