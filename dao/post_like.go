package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

func (d *PostLikeDAO) SetStatus(tx *gorm.DB, postID, userID int64, status uint8) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ? AND status <> ?", postID, userID, status).
		Updates(map[string]any{"status": status, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.PostLike{PostID: postID, UserID: userID, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID int64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ? AND status = 1", postID, userID)
}

// BatchCheckLiked marks which posts the viewer has liked.
func (d *PostLikeDAO) BatchCheckLiked(ctx context.Context, postIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(postIDs) == 0 {
		return result, nil
	}

	var ids []int64
	err := d.Model(ctx).
		Where("post_id in ? AND user_id = ? AND status = 1", postIDs, userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
