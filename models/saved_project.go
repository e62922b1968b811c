package models

import "time"

// SavedProject is the save edge for projects, same shape as ProjectLike.
type SavedProject struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	ProjectID int64     `gorm:"column:project_id;not null;index:uk_project_user,priority:1" json:"project_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_project_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n SavedProject) TableName() string { return "saved_projects" }
