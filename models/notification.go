package models

import "time"

const (
	NotifyTypeFollow       = "follow"
	NotifyTypeComment      = "comment"
	NotifyTypeAnnouncement = "announcement"
	NotifyTypeSystem       = "system"
)

type Notification struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Title     string    `gorm:"column:title" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	SourceID  int64     `gorm:"column:source_id;not null;default:0" json:"source_id"`
	IsRead    bool      `gorm:"column:is_read;not null;default:0" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
