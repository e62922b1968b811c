package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID          int64          `gorm:"column:id;primary_key" json:"id"`
	UserID      int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description" json:"description"`
	RepoURL     string         `gorm:"column:repo_url" json:"repo_url"`
	DemoURL     string         `gorm:"column:demo_url" json:"demo_url"`
	ImageURL    string         `gorm:"column:image_url" json:"image_url"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	Status      int            `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
