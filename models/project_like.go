package models

import "time"

// ProjectLike is the like edge for projects.
// Unique key: project_id + user_id. status: 1=liked, 0=cleared
type ProjectLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	ProjectID int64     `gorm:"column:project_id;not null;index:uk_project_user,priority:1" json:"project_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_project_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n ProjectLike) TableName() string { return "project_likes" }
