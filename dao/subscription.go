package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

func (d *SubscriptionDAO) GetByID(ctx context.Context, id int64) (*models.Subscription, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

// GetPendingByUser returns the user's open request, nil when none.
func (d *SubscriptionDAO) GetPendingByUser(ctx context.Context, userID int64) (*models.Subscription, error) {
	return d.FindByWhere(ctx, "user_id = ? AND status = ?", userID, models.SubscriptionPending)
}

// GetActiveByUser returns the latest approved, unexpired subscription.
func (d *SubscriptionDAO) GetActiveByUser(ctx context.Context, userID int64) (*models.Subscription, error) {
	var item models.Subscription
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND (expires_at IS NULL OR expires_at > ?)",
			userID, models.SubscriptionApproved, time.Now()).
		Order("created_at DESC").
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByStatus pages requests for the admin review queue, oldest first.
func (d *SubscriptionDAO) ListByStatus(ctx context.Context, status int, limit, offset int) ([]*models.Subscription, int64, error) {
	var total int64
	err := d.Model(ctx).Where("status = ?", status).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []*models.Subscription
	err = d.Db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, total, err
}

// Review settles a pending request. Runs on the caller's tx so users.is_pro
// flips in the same commit. Reports whether the row was still pending.
func (d *SubscriptionDAO) Review(tx *gorm.DB, id int64, status int, reviewerID int64, expiresAt *time.Time) (bool, error) {
	now := time.Now()
	res := tx.Model(&models.Subscription{}).
		Where("id = ? AND status = ?", id, models.SubscriptionPending).
		Updates(map[string]any{
			"status":      status,
			"reviewer_id": reviewerID,
			"reviewed_at": now,
			"expires_at":  expiresAt,
			"updated_at":  now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
