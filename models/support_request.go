package models

import "time"

const (
	SupportOpen     = 0
	SupportResolved = 1
)

type SupportRequest struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Subject   string    `gorm:"column:subject;not null" json:"subject"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	Status    int       `gorm:"column:status;not null;default:0" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}
