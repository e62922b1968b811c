package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

// BatchCreate inserts a fan-out batch in one statement.
func (d *NotificationDAO) BatchCreate(ctx context.Context, items []*models.Notification) error {
	if len(items) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).CreateInBatches(items, 200).Error
}

// ListByCursor pages a user's inbox, newest first.
func (d *NotificationDAO) ListByCursor(ctx context.Context, userID int64, cursor int64, limit int) ([]*models.Notification, error) {
	var items []*models.Notification
	query := d.Db.WithContext(ctx).
		Where("user_id = ?", userID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error

	return items, err
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "user_id = ? AND is_read = 0", userID)
}

// MarkRead marks specific notifications, scoped to the owner.
func (d *NotificationDAO) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("is_read", true).Error
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = 0", userID).
		Update("is_read", true).Error
}
