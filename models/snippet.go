package models

import (
	"time"

	"gorm.io/datatypes"
)

type Snippet struct {
	ID          int64          `gorm:"column:id;primary_key" json:"id"`
	UserID      int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description" json:"description"`
	Language    string         `gorm:"column:language;not null;index" json:"language"`
	Code        string         `gorm:"column:code;type:mediumtext;not null" json:"code"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	Status      int            `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Snippet) TableName() string {
	return "snippets"
}
