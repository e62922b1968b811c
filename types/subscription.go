package types

import "time"

type RequestProRequest struct {
	Plan       string `json:"plan" binding:"required,oneof=monthly yearly"`
	ReceiptURL string `json:"receipt_url" binding:"required,url"`
}

type ReviewProRequest struct {
	Approve bool `json:"approve"`
}

type SubscriptionItem struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Plan       string     `json:"plan"`
	ReceiptURL string     `json:"receipt_url"`
	Status     int        `json:"status"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
