package models

import "time"

const (
	SubscriptionPending  = 0
	SubscriptionApproved = 1
	SubscriptionRejected = 2
)

// Subscription is a PRO-tier request reviewed by an admin. The receipt image
// lives in the receipts bucket; approval flips users.is_pro.
type Subscription struct {
	ID         int64      `gorm:"column:id;primary_key" json:"id"`
	UserID     int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	Plan       string     `gorm:"column:plan;not null" json:"plan"`
	ReceiptURL string     `gorm:"column:receipt_url;not null" json:"receipt_url"`
	Status     int        `gorm:"column:status;not null;default:0" json:"status"`
	ReviewerID int64      `gorm:"column:reviewer_id;not null;default:0" json:"reviewer_id"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	ExpiresAt  *time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
