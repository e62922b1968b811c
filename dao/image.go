package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type ImageDAO struct {
	Repo[models.Image]
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{Repo: NewRepo[models.Image](db)}
}

func (d *ImageDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Image, error) {
	var items []*models.Image
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}
