package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type SupportRequestDAO struct {
	Repo[models.SupportRequest]
}

func NewSupportRequestDAO(db *gorm.DB) *SupportRequestDAO {
	return &SupportRequestDAO{Repo: NewRepo[models.SupportRequest](db)}
}

func (d *SupportRequestDAO) GetByID(ctx context.Context, id int64) (*models.SupportRequest, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

func (d *SupportRequestDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.SupportRequest, int64, error) {
	var total int64
	err := d.Model(ctx).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []*models.SupportRequest
	err = d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, total, err
}

// ListOpen feeds the admin queue, oldest first.
func (d *SupportRequestDAO) ListOpen(ctx context.Context, limit, offset int) ([]*models.SupportRequest, int64, error) {
	var total int64
	err := d.Model(ctx).Where("status = ?", models.SupportOpen).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []*models.SupportRequest
	err = d.Db.WithContext(ctx).
		Where("status = ?", models.SupportOpen).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (d *SupportRequestDAO) Resolve(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.SupportRequest{}).
		Where("id = ?", id).
		Update("status", models.SupportResolved).Error
}
