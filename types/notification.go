package types

import "time"

type NotificationItem struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SourceID  int64     `json:"source_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type MarkReadRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// NotifyEvent is the broker payload for async notification fan-out.
type NotifyEvent struct {
	EventID string  `json:"event_id"`
	Type    string  `json:"type"`
	UserIDs []int64 `json:"user_ids"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	SourceID int64  `json:"source_id"`
}
