package models

import "time"

const (
	MemberRoleOwner     = 1
	MemberRoleModerator = 2
	MemberRoleMember    = 3
)

// CommunityMember is the membership edge, one active row per
// (community, user). The owner row is created in the same transaction as the
// community itself, so role is the only authority for moderation rights.
type CommunityMember struct {
	ID          int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	CommunityID int64     `gorm:"column:community_id;not null;index:uk_community_user,priority:1" json:"community_id"`
	UserID      int64     `gorm:"column:user_id;not null;index:uk_community_user,priority:2" json:"user_id"`
	Role        int       `gorm:"column:role;not null;default:3" json:"role"`
	Status      int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CommunityMember) TableName() string {
	return "community_members"
}

type MemberItem struct {
	ID        int64  `gorm:"column:id" json:"id"`
	UserID    int64  `gorm:"column:user_id" json:"user_id"`
	Role      int    `gorm:"column:role" json:"role"`
	Username  string `gorm:"column:username" json:"username"`
	Nickname  string `gorm:"column:nickname" json:"nickname"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}
