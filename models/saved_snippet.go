package models

import "time"

type SavedSnippet struct {
	ID        int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	SnippetID int64     `gorm:"column:snippet_id;not null;index:uk_snippet_user,priority:1" json:"snippet_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_snippet_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n SavedSnippet) TableName() string { return "saved_snippets" }
